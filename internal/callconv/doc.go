// Package callconv mirrors LLVM's calling-convention numbering for the
// foreign-function boundary.
//
// Invariants:
//   - The variant set is closed; table.go is generated from the header in
//     testdata and is the only place codes are written down.
//   - Variants are ordinals in header declaration order. They are NOT codes:
//     use Code to cross the boundary and Lookup to come back.
//   - Codes are not unique. FirstTargetCC shares 64 with X86_StdCall and is a
//     range anchor, so Lookup(64) yields X86_StdCall.
//   - Gaps in the numbering (21..63, 73..74) are preserved, never renumbered.
//   - MaxID (1023) is present but not Usable.
//   - All indexes are built during package init and are read-only afterwards.
package callconv

//go:generate go run llvmcc/cmd/llvmcc gen -o table.go testdata/CallingConvention.h
