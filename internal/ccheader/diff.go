package ccheader

import (
	"fmt"

	"llvmcc/internal/callconv"
)

// DriftKind classifies one disagreement between header and table.
type DriftKind uint8

const (
	// DriftMissing: the header declares a convention the table lacks.
	DriftMissing DriftKind = iota + 1
	// DriftExtra: the table carries a convention the header dropped.
	DriftExtra
	// DriftCode: both know the name but disagree on its code.
	DriftCode
	// DriftOrder: declaration order differs, which changes alias resolution.
	DriftOrder
)

func (k DriftKind) String() string {
	switch k {
	case DriftMissing:
		return "missing"
	case DriftExtra:
		return "extra"
	case DriftCode:
		return "renumbered"
	case DriftOrder:
		return "reordered"
	default:
		return "unknown"
	}
}

// Drift is a single disagreement.
type Drift struct {
	Kind       DriftKind
	Name       string
	HeaderCode callconv.Code
	TableCode  callconv.Code
	Line       int // header line, 0 for DriftExtra
}

func (d Drift) String() string {
	switch d.Kind {
	case DriftMissing:
		return fmt.Sprintf("missing %s = %d (header line %d)", d.Name, d.HeaderCode, d.Line)
	case DriftExtra:
		return fmt.Sprintf("extra %s = %d (not in header)", d.Name, d.TableCode)
	case DriftCode:
		return fmt.Sprintf("renumbered %s: header %d, table %d (header line %d)", d.Name, d.HeaderCode, d.TableCode, d.Line)
	case DriftOrder:
		return fmt.Sprintf("reordered %s (header line %d)", d.Name, d.Line)
	default:
		return fmt.Sprintf("drift kind=%d %s", d.Kind, d.Name)
	}
}

// Diff compares h with table. Entries come back in header order, followed by
// table entries the header does not know.
func Diff(h *Header, table []callconv.Entry) []Drift {
	byName := make(map[string]callconv.Entry, len(table))
	for _, e := range table {
		byName[e.Name] = e
	}
	inHeader := make(map[string]bool, len(h.Entries))

	var out []Drift
	var headerCommon []Entry
	for _, e := range h.Entries {
		inHeader[e.Name] = true
		te, ok := byName[e.Name]
		if !ok {
			out = append(out, Drift{Kind: DriftMissing, Name: e.Name, HeaderCode: e.Code, Line: e.Line})
			continue
		}
		headerCommon = append(headerCommon, e)
		if te.Code != e.Code {
			out = append(out, Drift{Kind: DriftCode, Name: e.Name, HeaderCode: e.Code, TableCode: te.Code, Line: e.Line})
		}
	}

	var tableCommon []string
	for _, e := range table {
		if inHeader[e.Name] {
			tableCommon = append(tableCommon, e.Name)
		}
	}
	for i, e := range headerCommon {
		if tableCommon[i] != e.Name {
			out = append(out, Drift{Kind: DriftOrder, Name: e.Name, HeaderCode: e.Code, TableCode: byName[e.Name].Code, Line: e.Line})
		}
	}

	for _, e := range table {
		if !inHeader[e.Name] {
			out = append(out, Drift{Kind: DriftExtra, Name: e.Name, TableCode: e.Code})
		}
	}
	return out
}
