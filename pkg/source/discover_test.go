package source_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-cvgen/pkg/source"
)

func TestIsCandidate(t *testing.T) {
	tests := map[string]bool{
		"cv.txt":           true,
		"cv.tex":           true,
		"jane_cv.txt":      true,
		"data/jane_cv.tex": true,
		"_cv.txt":          false,
		"cv.ts":            false,
		"cv.txt.bak":       false,
		"notes.txt":        false,
	}
	for name, want := range tests {
		if got := source.IsCandidate(name); got != want {
			t.Errorf("IsCandidate(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"zed_cv.txt", "cv.ts", "alice_cv.tex", "readme.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "cv.txt"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := source.Discover(dir)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	want := []string{filepath.Join(dir, "alice_cv.tex"), filepath.Join(dir, "zed_cv.txt")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestDiscoverNoDocument(t *testing.T) {
	_, err := source.Discover(t.TempDir())
	if !errors.Is(err, source.ErrNoDocument) {
		t.Fatalf("expected ErrNoDocument, got %v", err)
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}

	if _, err := source.Discover(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
