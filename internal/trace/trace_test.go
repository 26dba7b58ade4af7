package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for _, l := range []Level{LevelOff, LevelError, LevelCommand, LevelEntry} {
		got, err := ParseLevel(strings.ToUpper(l.String()))
		if err != nil || got != l {
			t.Fatalf("ParseLevel(%q) = %v, %v", l, got, err)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestShouldEmit(t *testing.T) {
	if LevelError.ShouldEmit(ScopeDriver) {
		t.Fatalf("error level must not emit spans")
	}
	if !LevelCommand.ShouldEmit(ScopeCommand) || LevelCommand.ShouldEmit(ScopeEntry) {
		t.Fatalf("command level must stop at command scope")
	}
	if !LevelEntry.ShouldEmit(ScopeEntry) {
		t.Fatalf("entry level emits everything")
	}
}

func TestNewOffIsNop(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if tr.Enabled() {
		t.Fatalf("off tracer must be disabled")
	}
	span := Begin(tr, ScopeDriver, "x", 0)
	if span.ID() != 0 || span.End("") != 0 {
		t.Fatalf("nop span must be inert")
	}
}

func TestStreamText(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelCommand, Format: FormatText, Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	root := Begin(tr, ScopeCommand, "lookup", 0)
	Point(tr, ScopeEntry, "lookup:64", "filtered", root.ID())
	Fail(tr, ScopeEntry, "lookup:21", errors.New("unrecognized"), root.ID())
	root.WithExtra("b", "2").WithExtra("a", "1").End("done")

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "[command] \u2192 lookup") {
		t.Fatalf("unexpected begin line %q", lines[0])
	}
	if !strings.Contains(lines[1], "! lookup:21 (unrecognized)") {
		t.Fatalf("unexpected error line %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], "\u2190 lookup (done) {a=1, b=2}") {
		t.Fatalf("unexpected end line %q", lines[2])
	}
}

func TestStreamNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelEntry, FormatNDJSON)
	Point(tr, ScopeEntry, "row", "C=0", 0)

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid ndjson %q: %v", buf.String(), err)
	}
	if got["kind"] != "point" || got["scope"] != "entry" || got["detail"] != "C=0" {
		t.Fatalf("unexpected event %v", got)
	}
}

func TestContextPropagation(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Fatalf("empty context must yield Nop")
	}
	tr := NewStreamTracer(&bytes.Buffer{}, LevelEntry, FormatText)
	ctx := WithTracer(context.Background(), tr)
	if FromContext(ctx) != Tracer(tr) {
		t.Fatalf("tracer lost in context")
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("json"); err != nil || f != FormatNDJSON {
		t.Fatalf("ParseFormat(json) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatalf("expected error for xml")
	}
}
