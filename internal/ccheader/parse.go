package ccheader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"llvmcc/internal/callconv"
)

// DefaultMacro is the X-macro llvm-hs defines its calling conventions with.
const DefaultMacro = "LLVM_HS_FOR_EACH_CALLING_CONVENTION"

// Entry is one macro(Name, Code) line.
type Entry struct {
	Name string
	Code callconv.Code
	Line int
}

// Header is the parsed convention list.
type Header struct {
	Source  string // base name of the file, for generated-code banners
	Macro   string
	Entries []Entry
}

// ParseError reports a malformed header.
type ParseError struct {
	Source string
	Line   int
	Msg    string
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", e.Source, e.Msg)
	}
	return fmt.Sprintf("%s:%d: %s", e.Source, e.Line, e.Msg)
}

var (
	defineRe = regexp.MustCompile(`^\s*#\s*define\s+([A-Za-z_][A-Za-z0-9_]*)\s*\(\s*([A-Za-z_][A-Za-z0-9_]*)\s*\)`)
	rowRe    = regexp.MustCompile(`^\s*([A-Za-z_][A-Za-z0-9_]*)\s*\(\s*([A-Za-z_][A-Za-z0-9_]*)\s*,\s*([0-9]+)\s*\)\s*(\\?)\s*$`)
)

// ParseFile parses the header at path.
func ParseFile(path, macro string) (*Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open header: %w", err)
	}
	defer f.Close()
	h, err := Parse(f, filepath.Base(path), macro)
	if err != nil {
		return nil, err
	}
	return h, nil
}

// Parse extracts the entries of the X-macro named macro (DefaultMacro when
// empty). source only labels errors and the generated banner.
func Parse(r io.Reader, source, macro string) (*Header, error) {
	if macro == "" {
		macro = DefaultMacro
	}
	h := &Header{Source: source, Macro: macro}

	sc := bufio.NewScanner(r)
	line := 0
	param := ""
	inList := false
	done := false
	names := make(map[string]int)

	for sc.Scan() {
		line++
		text := sc.Text()
		if done {
			continue
		}
		if !inList {
			m := defineRe.FindStringSubmatch(text)
			if m == nil || m[1] != macro {
				continue
			}
			param = m[2]
			inList = true
			if !strings.HasSuffix(strings.TrimSpace(text), `\`) {
				done = true
			}
			continue
		}

		if strings.TrimSpace(text) == "" {
			done = true
			continue
		}
		m := rowRe.FindStringSubmatch(text)
		if m == nil || m[1] != param {
			return nil, &ParseError{Source: source, Line: line, Msg: fmt.Sprintf("expected %s(Name, Code), got %q", param, strings.TrimSpace(text))}
		}
		name := m[2]
		code, err := strconv.ParseUint(m[3], 10, 32)
		if err != nil {
			return nil, &ParseError{Source: source, Line: line, Msg: fmt.Sprintf("bad code for %s: %v", name, err)}
		}
		if callconv.Code(code) > callconv.MaxCode {
			return nil, &ParseError{Source: source, Line: line, Msg: fmt.Sprintf("code %d for %s exceeds %d", code, name, callconv.MaxCode)}
		}
		if prev, dup := names[name]; dup {
			return nil, &ParseError{Source: source, Line: line, Msg: fmt.Sprintf("%s already declared on line %d", name, prev)}
		}
		names[name] = line
		h.Entries = append(h.Entries, Entry{Name: name, Code: callconv.Code(code), Line: line})
		if m[4] == "" {
			done = true
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}
	if !inList {
		return nil, &ParseError{Source: source, Msg: fmt.Sprintf("macro %s not found", macro)}
	}
	if len(h.Entries) == 0 {
		return nil, &ParseError{Source: source, Msg: fmt.Sprintf("macro %s declares no conventions", macro)}
	}
	return h, nil
}
