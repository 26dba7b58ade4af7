package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	if TableSource == "" {
		t.Error("TableSource should name the generating header")
	}
}

func TestVersion_CanBeOverridden(t *testing.T) {
	origVersion, origGitCommit := Version, GitCommit
	defer func() {
		Version, GitCommit = origVersion, origGitCommit
	}()

	// simulating build-time ldflags
	Version = "1.2.3"
	GitCommit = "abc123def456"

	if Version != "1.2.3" {
		t.Errorf("Version = %q, want %q", Version, "1.2.3")
	}
	if GitCommit != "abc123def456" {
		t.Errorf("GitCommit = %q, want %q", GitCommit, "abc123def456")
	}
}

func TestColorize(t *testing.T) {
	orig := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = orig }()

	cases := map[string]string{
		"0.1.0-dev": "0.1.0-dev",
		"1.2.3":     "1.2.3",
		"dev":       "dev",
		"1.2":       "1.2",
	}
	for in, want := range cases {
		if got := Colorize(in); got != want {
			t.Errorf("Colorize(%q) = %q, want %q", in, got, want)
		}
	}
}
