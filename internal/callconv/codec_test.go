package callconv_test

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/vmihailenco/msgpack/v5"

	"llvmcc/internal/callconv"
)

func TestTextCodecThroughJSON(t *testing.T) {
	type fn struct {
		CC callconv.CallingConvention `json:"cc"`
	}
	data, err := json.Marshal(fn{CC: callconv.X86_FastCall})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"cc":"X86_FastCall"}` {
		t.Fatalf("unexpected json %s", data)
	}
	var back fn
	if err := json.Unmarshal([]byte(`{"cc":"FirstTargetCC"}`), &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.CC != callconv.FirstTargetCC {
		t.Fatalf("decoded %v, want FirstTargetCC", back.CC)
	}
	if err := json.Unmarshal([]byte(`{"cc":"fastcc"}`), &back); !errors.Is(err, callconv.ErrUnknownConvention) {
		t.Fatalf("unmarshal unknown name error = %v", err)
	}
}

func TestTextCodecThroughTOML(t *testing.T) {
	var cfg struct {
		Default callconv.CallingConvention   `toml:"default"`
		Allowed []callconv.CallingConvention `toml:"allowed"`
	}
	src := "default = \"Fast\"\nallowed = [\"C\", \"AMDGPU_Gfx\"]\n"
	if _, err := toml.Decode(src, &cfg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Default != callconv.Fast || len(cfg.Allowed) != 2 || cfg.Allowed[1] != callconv.AMDGPU_Gfx {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestMsgpackCarriesCodes(t *testing.T) {
	data, err := msgpack.Marshal(callconv.AMDGPU_CS_ChainPreserve)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw uint64
	if err := msgpack.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal raw: %v", err)
	}
	if raw != 105 {
		t.Fatalf("wire value = %d, want 105", raw)
	}

	for _, e := range callconv.All() {
		data, err := msgpack.Marshal(e.Convention)
		if err != nil {
			t.Fatalf("marshal %s: %v", e.Name, err)
		}
		var got callconv.CallingConvention
		if err := msgpack.Unmarshal(data, &got); err != nil {
			t.Fatalf("unmarshal %s: %v", e.Name, err)
		}
		if got != e.Convention.Canonical() {
			t.Fatalf("msgpack round trip %s = %v", e.Name, got)
		}
	}
}

func TestMsgpackRejectsUnknownCode(t *testing.T) {
	data, err := msgpack.Marshal(uint32(73))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got callconv.CallingConvention
	if err := msgpack.Unmarshal(data, &got); !errors.Is(err, callconv.ErrUnrecognizedCode) {
		t.Fatalf("unmarshal 73 error = %v", err)
	}
}

func TestFromForeign(t *testing.T) {
	if cc, err := callconv.FromForeign(int32(97)); err != nil || cc != callconv.AArch64_VectorCall {
		t.Fatalf("FromForeign(97) = %v, %v", cc, err)
	}
	if cc, err := callconv.FromForeign(uint64(64)); err != nil || cc != callconv.X86_StdCall {
		t.Fatalf("FromForeign(64) = %v, %v", cc, err)
	}
	if got := callconv.Win64.Foreign(); got != 79 {
		t.Fatalf("Win64.Foreign() = %d", got)
	}
	bad := []error{}
	_, err := callconv.FromForeign(-1)
	bad = append(bad, err)
	_, err = callconv.FromForeign(uint64(math.MaxUint32) + 1)
	bad = append(bad, err)
	_, err = callconv.FromForeign(int64(2048))
	bad = append(bad, err)
	_, err = callconv.FromForeign(uint16(21))
	bad = append(bad, err)
	for i, err := range bad {
		if !errors.Is(err, callconv.ErrUnrecognizedCode) {
			t.Fatalf("case %d: error = %v, want UnrecognizedCode", i, err)
		}
	}
}
