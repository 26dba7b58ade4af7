package ccheader

import (
	"fmt"
	"io"

	"github.com/dave/jennifer/jen"
)

// Render writes the callconv table source for h: the variant const block in
// declaration order and the keyed table array. Output is gofmt-clean.
func Render(w io.Writer, pkg string, h *Header) error {
	if h == nil || len(h.Entries) == 0 {
		return fmt.Errorf("render: header has no conventions")
	}

	f := jen.NewFile(pkg)
	f.HeaderComment(fmt.Sprintf("Code generated by llvmcc gen from %s; DO NOT EDIT.", h.Source))

	defs := make([]jen.Code, 0, len(h.Entries))
	rows := make([]jen.Code, 0, len(h.Entries))
	for i, e := range h.Entries {
		if i == 0 {
			defs = append(defs, jen.Id(e.Name).Id("CallingConvention").Op("=").Iota())
		} else {
			defs = append(defs, jen.Id(e.Name))
		}
		rows = append(rows, jen.Id(e.Name).Op(":").Values(jen.Lit(e.Name), jen.Lit(int(e.Code))))
	}

	f.Comment("Calling conventions in header declaration order.")
	f.Const().Defs(defs...)
	f.Line()
	f.Const().Id("conventionCount").Op("=").Lit(len(h.Entries))
	f.Line()
	f.Var().Id("table").Op("=").Index(jen.Id("conventionCount")).Id("entry").Custom(jen.Options{
		Open:      "{",
		Close:     "}",
		Separator: ",",
		Multi:     true,
	}, rows...)

	if err := f.Render(w); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
