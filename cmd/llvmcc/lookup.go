package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"llvmcc/internal/callconv"
	"llvmcc/internal/trace"
)

var codeFromIR bool

func init() {
	codeCmd.Flags().BoolVar(&codeFromIR, "ir", false, "treat arguments as LLVM IR keywords (fastcc, cc 11, ...)")
}

var lookupCmd = &cobra.Command{
	Use:   "lookup CODE...",
	Short: "Translate numeric codes from LLVM into convention names",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runResolve(cmd, "lookup", args, callconv.ParseCode)
	},
}

var codeCmd = &cobra.Command{
	Use:   "code NAME...",
	Short: "Translate convention names into the codes LLVM expects",
	Long:  "Names are matched case-insensitively against the header names (X86_StdCall, AMDGPU_CS_Chain, ...)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parse := callconv.ParseFold
		if codeFromIR {
			parse = callconv.ParseIRKeyword
		}
		return runResolve(cmd, "code", args, parse)
	},
}

func runResolve(cmd *cobra.Command, name string, args []string, parse func(string) (callconv.CallingConvention, error)) error {
	s := activeSession()
	tracer := trace.FromContext(cmd.Context())
	span := trace.Begin(tracer, trace.ScopeCommand, name, s.span.ID())

	failed := 0
	for _, arg := range args {
		cc, err := parse(arg)
		if err != nil {
			failed++
			trace.Fail(tracer, trace.ScopeEntry, name+":"+arg, err, span.ID())
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", color.RedString("error:"), err)
			continue
		}
		trace.Point(tracer, trace.ScopeEntry, name+":"+arg, cc.String(), span.ID())
		printResolved(cmd.OutOrStdout(), cc, s.quiet)
	}

	span.End(fmt.Sprintf("%d/%d resolved", len(args)-failed, len(args)))
	if failed > 0 {
		return errors.New(resolveSummary(failed, len(args)))
	}
	return nil
}

func printResolved(out io.Writer, cc callconv.CallingConvention, quiet bool) {
	fmt.Fprintf(out, "%-24s %4d  %s\n", cc, cc.Code(), cc.IRKeyword())
	if quiet {
		return
	}
	switch {
	case !cc.Usable():
		fmt.Fprintf(out, "  %s %s is reserved and cannot be requested from LLVM\n", color.YellowString("note:"), cc)
	case cc.Canonical() != cc:
		fmt.Fprintf(out, "  %s %s shares code %d and decodes as %s\n", color.YellowString("note:"), cc, cc.Code(), cc.Canonical())
	}
}

func resolveSummary(failed, total int) string {
	if total == 1 {
		return "could not resolve argument"
	}
	return fmt.Sprintf("could not resolve %d of %d arguments", failed, total)
}
