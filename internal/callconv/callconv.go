package callconv

import "fmt"

// CallingConvention is one named convention from the LLVM table.
type CallingConvention uint8

// Code is the numeric value LLVM expects for a calling convention.
type Code uint32

// MaxCode is the upper bound of the numeric space (LLVM's CallingConv::MaxID).
const MaxCode Code = 1023

// Entry is a single (name, code) row of the table.
type Entry struct {
	Convention CallingConvention
	Name       string
	Code       Code
}

type entry struct {
	name string
	code Code
}

// Valid reports whether cc is a declared variant.
func (cc CallingConvention) Valid() bool {
	return int(cc) < conventionCount
}

// Code returns the numeric code LLVM uses for cc.
func (cc CallingConvention) Code() Code {
	if !cc.Valid() {
		panic(fmt.Sprintf("callconv: invalid calling convention %d", uint8(cc)))
	}
	return table[cc].code
}

// String returns the name LLVM's header uses for cc.
func (cc CallingConvention) String() string {
	if !cc.Valid() {
		return fmt.Sprintf("CallingConvention(%d)", uint8(cc))
	}
	return table[cc].name
}

// IsSentinel reports whether cc marks a range boundary rather than an ABI.
func (cc CallingConvention) IsSentinel() bool {
	return cc == FirstTargetCC || cc == MaxID
}

// Usable reports whether cc may be requested from LLVM. MaxID is the only
// declared variant that is not.
func (cc CallingConvention) Usable() bool {
	return cc.Valid() && cc != MaxID
}

// IsTargetSpecific reports whether cc lives in the target range that starts
// at FirstTargetCC.
func (cc CallingConvention) IsTargetSpecific() bool {
	return cc.Usable() && cc.Code() >= FirstTargetCC.Code()
}

// Canonical returns the variant Lookup yields for cc's code. It differs from
// cc only for aliased codes.
func (cc CallingConvention) Canonical() CallingConvention {
	canon, ok := byCode[cc.Code()]
	if !ok {
		return cc
	}
	return canon
}

// All returns every table row in declaration order.
func All() []Entry {
	out := make([]Entry, conventionCount)
	for i := range table {
		out[i] = Entry{
			Convention: CallingConvention(i),
			Name:       table[i].name,
			Code:       table[i].code,
		}
	}
	return out
}
