package callconv

import "fortio.org/safecast"

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// FromForeign decodes an integer received from the FFI boundary. Values that
// do not fit a Code, or that no entry carries, fail with UnrecognizedCode.
func FromForeign[T integer](v T) (CallingConvention, error) {
	code, err := safecast.Conv[Code](v)
	if err != nil {
		return 0, &Error{Kind: UnrecognizedCode, Err: err}
	}
	if code > MaxCode {
		return 0, &Error{Kind: UnrecognizedCode, Code: code}
	}
	return Lookup(code)
}

// Foreign returns the value to hand to LLVM's C API for cc.
func (cc CallingConvention) Foreign() uint32 {
	return uint32(cc.Code())
}
