package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	pkgsource "github.com/goliatone/go-cvgen/pkg/source"
)

func TestLoader_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.txt")
	if err := os.WriteFile(path, []byte(`\section{Education}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	loader := New(pkgsource.NewLoaderOptions())
	doc, err := loader.Load(context.Background(), pkgsource.FromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.Text() != `\section{Education}` {
		t.Fatalf("text = %q", doc.Text())
	}
	if doc.Location() != path {
		t.Fatalf("location = %q", doc.Location())
	}
}

func TestLoader_FS(t *testing.T) {
	files := fstest.MapFS{
		"data/cv.txt":    {Data: []byte("content")},
		"data/empty.tex": {Data: []byte("  \n")},
	}
	loader := New(pkgsource.NewLoaderOptions(pkgsource.WithFileSystem(files)))

	doc, err := loader.Load(context.Background(), pkgsource.FromFS("data/cv.txt"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.Text() != "content" || doc.Source().Kind() != pkgsource.KindFS {
		t.Fatalf("unexpected document %+v", doc)
	}

	_, err = loader.Load(context.Background(), pkgsource.FromFS("data/empty.tex"))
	if !errors.Is(err, pkgsource.ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
}

func TestLoader_Errors(t *testing.T) {
	loader := New(pkgsource.NewLoaderOptions())
	ctx := context.Background()

	if _, err := loader.Load(ctx, nil); err == nil {
		t.Fatalf("expected error for nil source")
	}
	if _, err := loader.Load(ctx, pkgsource.FromFS("cv.txt")); err == nil {
		t.Fatalf("expected error without filesystem")
	}
	if _, err := loader.Load(ctx, pkgsource.FromFile(filepath.Join(t.TempDir(), "missing.txt"))); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := loader.Load(cancelled, pkgsource.FromFile("cv.txt")); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation, got %v", err)
	}
}
