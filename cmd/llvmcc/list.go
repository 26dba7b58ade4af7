package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"

	"llvmcc/internal/callconv"
	"llvmcc/internal/trace"
)

var listFormat string

func init() {
	listCmd.Flags().StringVar(&listFormat, "format", "", "output format (pretty|json|msgpack); defaults to [output] format or pretty")
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every calling convention in declaration order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := activeSession()
		format := strings.ToLower(listFormat)
		if format == "" {
			format = strings.ToLower(s.cfg.Output.Format)
		}
		if format == "" {
			format = "pretty"
		}

		span := trace.Begin(trace.FromContext(cmd.Context()), trace.ScopeCommand, "list", s.span.ID())
		defer span.End(format)

		rows := listRows()
		out := cmd.OutOrStdout()
		switch format {
		case "pretty":
			renderListPretty(out, rows)
			return nil
		case "json":
			return renderListJSON(out, rows)
		case "msgpack":
			return renderListMsgpack(out, rows)
		default:
			return fmt.Errorf("unsupported format %q (must be pretty, json or msgpack)", format)
		}
	},
}

type listRow struct {
	Name           string `json:"name" msgpack:"name"`
	Code           uint32 `json:"code" msgpack:"code"`
	IR             string `json:"ir" msgpack:"ir"`
	Sentinel       bool   `json:"sentinel,omitempty" msgpack:"sentinel,omitempty"`
	Usable         bool   `json:"usable" msgpack:"usable"`
	TargetSpecific bool   `json:"target_specific,omitempty" msgpack:"target_specific,omitempty"`
	DecodesAs      string `json:"decodes_as,omitempty" msgpack:"decodes_as,omitempty"`
}

func listRows() []listRow {
	all := callconv.All()
	rows := make([]listRow, 0, len(all))
	for _, e := range all {
		cc := e.Convention
		row := listRow{
			Name:           e.Name,
			Code:           cc.Foreign(),
			IR:             cc.IRKeyword(),
			Sentinel:       cc.IsSentinel(),
			Usable:         cc.Usable(),
			TargetSpecific: cc.IsTargetSpecific(),
		}
		if canon := cc.Canonical(); canon != cc {
			row.DecodesAs = canon.String()
		}
		rows = append(rows, row)
	}
	return rows
}

func rowNote(r listRow) string {
	var notes []string
	if r.TargetSpecific {
		notes = append(notes, "target")
	}
	if r.Sentinel {
		notes = append(notes, "sentinel")
	}
	if !r.Usable {
		notes = append(notes, "reserved")
	}
	if r.DecodesAs != "" {
		notes = append(notes, "decodes as "+r.DecodesAs)
	}
	return strings.Join(notes, ", ")
}

func renderListPretty(out io.Writer, rows []listRow) {
	nameWidth := runewidth.StringWidth("NAME")
	irWidth := runewidth.StringWidth("IR")
	for _, r := range rows {
		nameWidth = max(nameWidth, runewidth.StringWidth(r.Name))
		irWidth = max(irWidth, runewidth.StringWidth(r.IR))
	}

	nameCol := lipgloss.NewStyle().Width(nameWidth + 2)
	codeCol := lipgloss.NewStyle().Width(6).Align(lipgloss.Right).PaddingRight(2)
	irCol := lipgloss.NewStyle().Width(irWidth + 2)
	header := color.New(color.Bold)
	dim := color.New(color.Faint)

	line := func(name, code, ir, note string) string {
		return strings.TrimRight(nameCol.Render(name)+codeCol.Render(code)+irCol.Render(ir)+note, " ")
	}

	fmt.Fprintln(out, header.Sprint(line("NAME", "CODE", "IR", "NOTE")))
	for _, r := range rows {
		text := line(r.Name, fmt.Sprint(r.Code), r.IR, rowNote(r))
		if r.Sentinel {
			text = dim.Sprint(text)
		}
		fmt.Fprintln(out, text)
	}
}

func renderListJSON(out io.Writer, rows []listRow) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func renderListMsgpack(out io.Writer, rows []listRow) error {
	enc := msgpack.NewEncoder(out)
	return enc.Encode(rows)
}
