package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestToLineCol(t *testing.T) {
	content := []byte("ab\ncdé\n\nxyz")
	tests := []struct {
		name string
		off  uint32
		want LineCol
	}{
		{"start", 0, LineCol{1, 1}},
		{"before newline", 2, LineCol{1, 3}},
		{"right after newline", 3, LineCol{2, 1}},
		{"after multibyte char", 7, LineCol{2, 4}},
		{"empty line", 8, LineCol{3, 1}},
		{"last line", 10, LineCol{4, 2}},
		{"end of content", 12, LineCol{4, 4}},
		{"beyond content is clamped", 99, LineCol{4, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToLineCol(content, tt.off); got != tt.want {
				t.Errorf("ToLineCol(%d) = %+v, want %+v", tt.off, got, tt.want)
			}
		})
	}
}

func TestToLineColCountsCharactersNotBytes(t *testing.T) {
	content := []byte("ёё<x>")
	// "ёё" takes four bytes; '<' sits at byte 4 but is the third character.
	if got := ToLineCol(content, 4); got != (LineCol{Line: 1, Col: 3}) {
		t.Fatalf("got %+v", got)
	}
}

func TestRelativePathOutsideBaseFallsBackToAbsolute(t *testing.T) {
	tmp := t.TempDir()

	baseDir := filepath.Join(tmp, "base")
	otherDir := filepath.Join(tmp, "other")

	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		t.Fatalf("failed to create base dir: %v", err)
	}
	if err := os.MkdirAll(otherDir, 0o755); err != nil {
		t.Fatalf("failed to create other dir: %v", err)
	}

	target := filepath.Join(otherDir, "App.vue")

	got, err := RelativePath(target, baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}

	want := normalizePath(target)
	if got != want {
		t.Fatalf("expected absolute fallback %q, got %q", want, got)
	}
}

func TestRelativePathInsideBaseStaysRelative(t *testing.T) {
	tmp := t.TempDir()

	baseDir := filepath.Join(tmp, "base")
	target := filepath.Join(baseDir, "components", "App.vue")
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	got, err := RelativePath(target, baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}

	want := normalizePath(filepath.Join("components", "App.vue"))
	if got != want {
		t.Fatalf("expected relative path %q, got %q", want, got)
	}
}
