// Package ccheader reads the calling-convention X-macro header that LLVM's
// C bindings are built from, compares it with the compiled callconv table and
// renders the table source from it.
//
// The header is the authority. A non-empty Diff means the binding would pass
// wrong codes to LLVM and the table must be regenerated.
package ccheader
