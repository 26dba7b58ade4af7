package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"llvmcc/internal/observ"
	"llvmcc/internal/trace"
)

// session is the per-process state set up before any subcommand runs.
type session struct {
	cfg     fileConfig
	cfgPath string
	tracer  trace.Tracer
	span    *trace.Span
	timer   *observ.Timer
	quiet   bool
	timings bool
}

var current *session

func activeSession() *session {
	if current == nil {
		return &session{tracer: trace.Nop, timer: observ.NewTimer(), span: &trace.Span{}}
	}
	return current
}

func setupRun(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()

	colorMode, err := flags.GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	if err := applyColorMode(colorMode); err != nil {
		return err
	}

	s := &session{timer: observ.NewTimer()}
	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.timings, err = flags.GetBool("timings"); err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	configPath, err := flags.GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	idx := s.timer.Begin("config")
	s.cfg, s.cfgPath, err = resolveConfig(configPath)
	s.timer.End(idx, s.cfgPath)
	if err != nil {
		return err
	}

	s.tracer, err = setupTracing(flags)
	if err != nil {
		return err
	}
	s.span = trace.Begin(s.tracer, trace.ScopeDriver, "llvmcc "+cmd.Name(), 0)
	if s.cfgPath != "" {
		s.span.WithExtra("config", s.cfgPath)
	}

	cmd.SetContext(trace.WithTracer(cmd.Context(), s.tracer))
	current = s
	return nil
}

func setupTracing(flags *pflag.FlagSet) (trace.Tracer, error) {
	output, err := flags.GetString("trace")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := flags.GetString("trace-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	formatStr, err := flags.GetString("trace-format")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-format flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}
	// --trace alone means command-level tracing
	if output != "" && level == trace.LevelOff {
		level = trace.LevelCommand
	}
	if level == trace.LevelOff {
		return trace.Nop, nil
	}
	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return nil, err
	}
	tracer, err := trace.New(trace.Config{Level: level, Format: format, OutputPath: output})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	return tracer, nil
}

func finishRun(errOut io.Writer) {
	s := current
	if s == nil {
		return
	}
	current = nil
	s.span.End("")
	if s.timings && !s.quiet {
		fmt.Fprint(errOut, s.timer.Summary())
	}
	if err := s.tracer.Close(); err != nil {
		fmt.Fprintf(errOut, "failed to close trace output: %v\n", err)
	}
}

func applyColorMode(mode string) error {
	switch strings.TrimSpace(strings.ToLower(mode)) {
	case "", "auto":
		color.NoColor = !isTerminal(os.Stdout)
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
	return nil
}
