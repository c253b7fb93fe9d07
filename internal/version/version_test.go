package version

import (
	"strings"
	"testing"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	if !strings.HasSuffix(Plain(), "-dev") {
		t.Errorf("Plain() = %q, want -dev suffix", Plain())
	}
}

func TestPlainStripsColor(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = "\x1b[33;1m1\x1b[0m.\x1b[32;1m2\x1b[0m.3"
	if got := Plain(); got != "1.2.3" {
		t.Errorf("Plain() = %q, want %q", got, "1.2.3")
	}
}

func TestVersion_CanBeOverridden(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() {
		Version, GitCommit, BuildDate = origVersion, origCommit, origDate
	}()

	Version = "1.2.3"
	GitCommit = "abc123def456"
	BuildDate = "2024-01-15T10:30:00Z"

	if Plain() != "1.2.3" {
		t.Errorf("Plain() = %q, want %q", Plain(), "1.2.3")
	}
	if GitCommit != "abc123def456" {
		t.Errorf("GitCommit = %q", GitCommit)
	}
}
