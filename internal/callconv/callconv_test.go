package callconv_test

import (
	"errors"
	"sync"
	"testing"

	"llvmcc/internal/callconv"
)

func TestKnownCodes(t *testing.T) {
	cases := []struct {
		cc   callconv.CallingConvention
		code callconv.Code
	}{
		{callconv.C, 0},
		{callconv.Fast, 8},
		{callconv.Tail, 18},
		{callconv.SwiftTail, 20},
		{callconv.FirstTargetCC, 64},
		{callconv.X86_StdCall, 64},
		{callconv.PTX_Device, 72},
		{callconv.SPIR_FUNC, 75},
		{callconv.AMDGPU_CS_ChainPreserve, 105},
		{callconv.MaxID, 1023},
	}
	for _, tc := range cases {
		if got := tc.cc.Code(); got != tc.code {
			t.Fatalf("%v.Code() = %d, want %d", tc.cc, got, tc.code)
		}
	}
}

func TestLookupRoundTrip(t *testing.T) {
	for _, e := range callconv.All() {
		got, err := callconv.Lookup(e.Code)
		if err != nil {
			t.Fatalf("Lookup(%d): %v", e.Code, err)
		}
		want := e.Convention
		if e.Convention == callconv.FirstTargetCC {
			want = callconv.X86_StdCall
		}
		if got != want {
			t.Fatalf("Lookup(%d) = %v, want %v", e.Code, got, want)
		}
	}
}

func TestLookupAliasIsStable(t *testing.T) {
	for i := 0; i < 100; i++ {
		got, err := callconv.Lookup(64)
		if err != nil || got != callconv.X86_StdCall {
			t.Fatalf("Lookup(64) = %v, %v; want X86_StdCall", got, err)
		}
	}

	var wg sync.WaitGroup
	errs := make(chan callconv.CallingConvention, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, _ := callconv.Lookup(64)
			if got != callconv.X86_StdCall {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Fatalf("concurrent Lookup(64) = %v", got)
	}
}

func TestLookupGaps(t *testing.T) {
	for _, code := range []callconv.Code{1, 7, 21, 63, 73, 74, 106, 1022, 1024} {
		_, err := callconv.Lookup(code)
		if !errors.Is(err, callconv.ErrUnrecognizedCode) {
			t.Fatalf("Lookup(%d) error = %v, want UnrecognizedCode", code, err)
		}
		var ccErr *callconv.Error
		if !errors.As(err, &ccErr) || ccErr.Code != code {
			t.Fatalf("Lookup(%d) error does not carry the code: %#v", code, err)
		}
	}
}

func TestAllOrderAndUniqueness(t *testing.T) {
	all := callconv.All()
	if len(all) != 56 {
		t.Fatalf("len(All()) = %d, want 56", len(all))
	}
	if all[0].Name != "C" || all[0].Code != 0 {
		t.Fatalf("first entry = %+v, want C=0", all[0])
	}
	last := all[len(all)-1]
	if last.Name != "MaxID" || last.Code != 1023 {
		t.Fatalf("last entry = %+v, want MaxID=1023", last)
	}
	seen := make(map[string]bool, len(all))
	for i, e := range all {
		if e.Name == "" {
			t.Fatalf("entry %d has no name", i)
		}
		if seen[e.Name] {
			t.Fatalf("duplicate name %q", e.Name)
		}
		seen[e.Name] = true
		if int(e.Convention) != i {
			t.Fatalf("entry %d carries convention %d", i, e.Convention)
		}
		if e.Convention.String() != e.Name {
			t.Fatalf("String() = %q, want %q", e.Convention.String(), e.Name)
		}
		if e.Code > callconv.MaxCode {
			t.Fatalf("%s code %d exceeds MaxCode", e.Name, e.Code)
		}
	}
	if all[14].Convention != callconv.FirstTargetCC || all[15].Convention != callconv.X86_StdCall {
		t.Fatalf("FirstTargetCC must precede X86_StdCall: %v, %v", all[14].Name, all[15].Name)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	a := callconv.All()
	a[0].Name = "mutated"
	a[0].Code = 999
	if b := callconv.All(); b[0].Name != "C" || b[0].Code != 0 {
		t.Fatalf("All() exposed internal table: %+v", b[0])
	}
}

func TestDecodeEncodeIdentity(t *testing.T) {
	counts := make(map[callconv.Code]int)
	for _, e := range callconv.All() {
		counts[e.Code]++
	}
	for code, n := range counts {
		if n != 1 {
			continue
		}
		cc, err := callconv.Lookup(code)
		if err != nil {
			t.Fatalf("Lookup(%d): %v", code, err)
		}
		if cc.Code() != code {
			t.Fatalf("Lookup(%d).Code() = %d", code, cc.Code())
		}
	}
	if counts[64] != 2 {
		t.Fatalf("code 64 appears %d times, want 2", counts[64])
	}
}

func TestParse(t *testing.T) {
	for _, e := range callconv.All() {
		got, err := callconv.Parse(e.Name)
		if err != nil || got != e.Convention {
			t.Fatalf("Parse(%q) = %v, %v", e.Name, got, err)
		}
	}
	for _, name := range []string{"", "c", "fastcc", "X86_StdCall ", "Bogus"} {
		_, err := callconv.Parse(name)
		if !errors.Is(err, callconv.ErrUnknownConvention) {
			t.Fatalf("Parse(%q) error = %v, want UnknownConvention", name, err)
		}
	}
}

func TestParseFold(t *testing.T) {
	cases := map[string]callconv.CallingConvention{
		"c":                  callconv.C,
		"x86_stdcall":        callconv.X86_StdCall,
		"AMDGPU_CS_CHAIN":    callconv.AMDGPU_CS_Chain,
		"firsttargetcc":      callconv.FirstTargetCC,
		"aarch64_vectorcall": callconv.AArch64_VectorCall,
	}
	for in, want := range cases {
		got, err := callconv.ParseFold(in)
		if err != nil || got != want {
			t.Fatalf("ParseFold(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := callconv.ParseFold("nope"); !errors.Is(err, callconv.ErrUnknownConvention) {
		t.Fatalf("ParseFold(nope) error = %v", err)
	}
}

func TestParseCode(t *testing.T) {
	if cc, err := callconv.ParseCode("105"); err != nil || cc != callconv.AMDGPU_CS_ChainPreserve {
		t.Fatalf("ParseCode(105) = %v, %v", cc, err)
	}
	for _, s := range []string{"", "-1", "x", "21", "99999999999"} {
		if _, err := callconv.ParseCode(s); !errors.Is(err, callconv.ErrUnrecognizedCode) {
			t.Fatalf("ParseCode(%q) error = %v, want UnrecognizedCode", s, err)
		}
	}
}

func TestPredicates(t *testing.T) {
	if callconv.MaxID.Usable() {
		t.Fatalf("MaxID must not be usable")
	}
	if !callconv.FirstTargetCC.IsSentinel() || !callconv.MaxID.IsSentinel() {
		t.Fatalf("FirstTargetCC and MaxID are sentinels")
	}
	if callconv.X86_StdCall.IsSentinel() {
		t.Fatalf("X86_StdCall is not a sentinel")
	}
	if callconv.Fast.IsTargetSpecific() || !callconv.Win64.IsTargetSpecific() || callconv.MaxID.IsTargetSpecific() {
		t.Fatalf("unexpected target-specific classification")
	}
	if got := callconv.FirstTargetCC.Canonical(); got != callconv.X86_StdCall {
		t.Fatalf("FirstTargetCC.Canonical() = %v", got)
	}
	if got := callconv.Cold.Canonical(); got != callconv.Cold {
		t.Fatalf("Cold.Canonical() = %v", got)
	}
	bogus := callconv.CallingConvention(200)
	if bogus.Valid() || bogus.Usable() {
		t.Fatalf("out-of-range variant reported valid")
	}
	if got := bogus.String(); got != "CallingConvention(200)" {
		t.Fatalf("bogus.String() = %q", got)
	}
}

func TestErrorMessages(t *testing.T) {
	_, err := callconv.Parse("Bogus")
	if got := err.Error(); got != `unknown calling convention "Bogus"` {
		t.Fatalf("unexpected message %q", got)
	}
	_, err = callconv.Lookup(21)
	if got := err.Error(); got != "unrecognized calling convention code 21" {
		t.Fatalf("unexpected message %q", got)
	}
}
