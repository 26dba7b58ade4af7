package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"llvmcc/internal/callconv"
	"llvmcc/internal/ccheader"
	"llvmcc/internal/observ"
	"llvmcc/internal/trace"
)

var checkMacro string

func init() {
	checkCmd.Flags().StringVar(&checkMacro, "macro", "", "X-macro that lists the conventions (default "+ccheader.DefaultMacro+")")
}

var checkCmd = &cobra.Command{
	Use:   "check [HEADER...]",
	Short: "Verify the compiled table against LLVM calling-convention headers",
	Long: `check parses each header's calling-convention X-macro and reports every
convention that is missing, extra, renumbered or reordered relative to the
compiled table. Headers default to [llvm] headers in llvmcc.toml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := activeSession()
		headers := args
		if len(headers) == 0 {
			headers = s.cfg.LLVM.Headers
		}
		if len(headers) == 0 {
			return errors.New("no headers given and llvmcc.toml lists none under [llvm] headers")
		}
		macro := checkMacro
		if macro == "" {
			macro = s.cfg.LLVM.Macro
		}

		span := trace.Begin(trace.FromContext(cmd.Context()), trace.ScopeCommand, "check", s.span.ID())
		results, err := runCheck(cmd.Context(), headers, macro, s.timer, span.ID())
		if err != nil {
			span.End("failed")
			return err
		}
		drifted := reportCheck(cmd.OutOrStdout(), results, s.quiet)
		span.WithExtra("headers", strconv.Itoa(len(results))).End(fmt.Sprintf("%d drifted", drifted))
		if drifted > 0 {
			return fmt.Errorf("%d of %d headers drifted from the compiled table", drifted, len(results))
		}
		return nil
	},
}

type checkResult struct {
	Path    string
	Entries int
	Drift   []ccheader.Drift
}

// runCheck parses and diffs every header concurrently. Results keep the
// order of paths.
func runCheck(ctx context.Context, paths []string, macro string, timer *observ.Timer, parent uint64) ([]checkResult, error) {
	tracer := trace.FromContext(ctx)
	table := callconv.All()
	results := make([]checkResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			idx := timer.Begin("check " + path)
			h, err := ccheader.ParseFile(path, macro)
			if err != nil {
				timer.End(idx, "failed")
				trace.Fail(tracer, trace.ScopeEntry, path, err, parent)
				return fmt.Errorf("%s: %w", path, err)
			}
			drift := ccheader.Diff(h, table)
			timer.End(idx, fmt.Sprintf("%d entries, %d drift", len(h.Entries), len(drift)))
			for _, d := range drift {
				trace.Point(tracer, trace.ScopeEntry, path, d.String(), parent)
			}
			results[i] = checkResult{Path: path, Entries: len(h.Entries), Drift: drift}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func reportCheck(out io.Writer, results []checkResult, quiet bool) int {
	drifted := 0
	for _, r := range results {
		if len(r.Drift) == 0 {
			if !quiet {
				fmt.Fprintf(out, "%s %s (%d conventions)\n", color.GreenString("ok"), r.Path, r.Entries)
			}
			continue
		}
		drifted++
		fmt.Fprintf(out, "%s %s (%d differences)\n", color.RedString("drift"), r.Path, len(r.Drift))
		for _, d := range r.Drift {
			fmt.Fprintf(out, "  %s\n", d)
		}
	}
	return drifted
}
