package callconv

import (
	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = CallingConvention(0)
	_ msgpack.CustomDecoder = (*CallingConvention)(nil)
)

// MarshalText encodes cc by name, so configs and JSON stay readable.
func (cc CallingConvention) MarshalText() ([]byte, error) {
	if !cc.Valid() {
		return nil, &Error{Kind: UnknownConvention, Name: cc.String()}
	}
	return []byte(cc.String()), nil
}

// UnmarshalText accepts the exact header name.
func (cc *CallingConvention) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*cc = v
	return nil
}

// EncodeMsgpack writes the numeric code, which is what crosses the boundary.
func (cc CallingConvention) EncodeMsgpack(enc *msgpack.Encoder) error {
	if !cc.Valid() {
		return &Error{Kind: UnknownConvention, Name: cc.String()}
	}
	return enc.EncodeUint(uint64(cc.Code()))
}

// DecodeMsgpack reads a numeric code. Aliased codes decode to the canonical
// convention.
func (cc *CallingConvention) DecodeMsgpack(dec *msgpack.Decoder) error {
	raw, err := dec.DecodeUint64()
	if err != nil {
		return err
	}
	v, err := FromForeign(raw)
	if err != nil {
		return err
	}
	*cc = v
	return nil
}
