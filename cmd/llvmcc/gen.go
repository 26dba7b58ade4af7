package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"llvmcc/internal/ccheader"
	"llvmcc/internal/trace"
)

var (
	genOutput  string
	genPackage string
	genMacro   string
)

func init() {
	genCmd.Flags().StringVarP(&genOutput, "output", "o", "-", "file to write (- for stdout)")
	genCmd.Flags().StringVar(&genPackage, "package", "callconv", "package clause of the generated file")
	genCmd.Flags().StringVar(&genMacro, "macro", "", "X-macro that lists the conventions (default "+ccheader.DefaultMacro+")")
}

var genCmd = &cobra.Command{
	Use:   "gen HEADER",
	Short: "Generate the Go calling-convention table from an LLVM header",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := activeSession()
		span := trace.Begin(trace.FromContext(cmd.Context()), trace.ScopeCommand, "gen", s.span.ID())
		defer span.End(genOutput)

		idx := s.timer.Begin("parse " + args[0])
		h, err := ccheader.ParseFile(args[0], genMacro)
		if err != nil {
			s.timer.End(idx, "failed")
			return err
		}
		s.timer.End(idx, fmt.Sprintf("%d entries", len(h.Entries)))

		var buf bytes.Buffer
		idx = s.timer.Begin("render")
		err = ccheader.Render(&buf, genPackage, h)
		s.timer.End(idx, "")
		if err != nil {
			return err
		}

		if genOutput == "" || genOutput == "-" {
			_, err = cmd.OutOrStdout().Write(buf.Bytes())
			return err
		}
		if err := os.WriteFile(genOutput, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", genOutput, err)
		}
		if !s.quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d conventions)\n", genOutput, len(h.Entries))
		}
		return nil
	},
}
