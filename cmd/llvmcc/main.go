package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"llvmcc/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "llvmcc",
	Short: "LLVM calling-convention table and header sync",
	Long: `llvmcc maps LLVM calling-convention names to the numeric codes LLVM's C API
expects, and checks that table against LLVM's own headers`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupRun(cmd)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(codeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(versionCmd)

	pf := rootCmd.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.String("config", "", "path to llvmcc.toml (default: search upward from the working directory)")
	pf.String("trace", "", "trace output file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|command|entry)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
}

// main sets the version and runs the root command; any command error exits 1.
func main() {
	rootCmd.Version = version.Version

	err := rootCmd.Execute()
	finishRun(rootCmd.ErrOrStderr())
	if err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
