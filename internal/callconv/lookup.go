package callconv

import (
	"strconv"

	"golang.org/x/text/cases"
)

var (
	byCode = buildCodeIndex()
	byName = buildNameIndex()
	byFold = buildFoldIndex()
)

// buildCodeIndex resolves aliased codes: a non-sentinel variant always wins
// over a sentinel, otherwise the first variant in declaration order wins.
func buildCodeIndex() map[Code]CallingConvention {
	idx := make(map[Code]CallingConvention, conventionCount)
	for i := range table {
		cc := CallingConvention(i)
		prev, seen := idx[table[i].code]
		if !seen || (prev.IsSentinel() && !cc.IsSentinel()) {
			idx[table[i].code] = cc
		}
	}
	return idx
}

func buildNameIndex() map[string]CallingConvention {
	idx := make(map[string]CallingConvention, conventionCount)
	for i := range table {
		idx[table[i].name] = CallingConvention(i)
	}
	return idx
}

func buildFoldIndex() map[string]CallingConvention {
	fold := cases.Fold()
	idx := make(map[string]CallingConvention, conventionCount)
	for i := range table {
		idx[fold.String(table[i].name)] = CallingConvention(i)
	}
	return idx
}

// Lookup returns the convention LLVM means by code.
func Lookup(code Code) (CallingConvention, error) {
	cc, ok := byCode[code]
	if !ok {
		return 0, &Error{Kind: UnrecognizedCode, Code: code}
	}
	return cc, nil
}

// Parse returns the convention with the exact header name.
func Parse(name string) (CallingConvention, error) {
	cc, ok := byName[name]
	if !ok {
		return 0, &Error{Kind: UnknownConvention, Name: name}
	}
	return cc, nil
}

// ParseFold is Parse with Unicode case folding, for user-typed names.
func ParseFold(name string) (CallingConvention, error) {
	cc, ok := byFold[cases.Fold().String(name)]
	if !ok {
		return 0, &Error{Kind: UnknownConvention, Name: name}
	}
	return cc, nil
}

// ParseCode accepts a decimal code as text, as it arrives on a command line.
func ParseCode(s string) (CallingConvention, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, &Error{Kind: UnrecognizedCode, Err: err}
	}
	return Lookup(Code(n))
}
