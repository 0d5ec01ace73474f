package render_test

import (
	"context"
	"errors"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-cvgen/pkg/render"
	"github.com/goliatone/go-cvgen/pkg/resume"
)

type stubRenderer struct {
	name string
	out  []byte
	err  error
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(_ context.Context, record *resume.Record, _ render.RenderOptions) ([]byte, error) {
	if err := render.CheckRecord(record); err != nil {
		return nil, err
	}
	return s.out, s.err
}

func TestCheckRecord(t *testing.T) {
	if err := render.CheckRecord(resume.New()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := render.CheckRecord(nil)
	if !errors.Is(err, render.ErrNilRecord) {
		t.Fatalf("expected ErrNilRecord, got %v", err)
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestRegistry(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer{name: "b", out: []byte("B")})
	registry.MustRegister(stubRenderer{name: "a", out: []byte("A")})

	if err := registry.Register(stubRenderer{name: "a"}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected nil renderer error")
	}
	if diff := cmp.Diff([]string{"a", "b"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if !registry.Has("a") || registry.Has("c") {
		t.Fatalf("unexpected Has results")
	}

	_, err := registry.Get("c")
	if !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
}

func TestRegistryRender(t *testing.T) {
	ctx := context.Background()
	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer{name: "ok", out: []byte("done")})
	registry.MustRegister(stubRenderer{name: "broken", err: errors.New("boom")})

	out, err := registry.Render(ctx, "ok", resume.New(), render.RenderOptions{})
	if err != nil || string(out) != "done" {
		t.Fatalf("render = %q, %v", out, err)
	}

	if _, err := registry.Render(ctx, "ok", nil, render.RenderOptions{}); !errors.Is(err, render.ErrNilRecord) {
		t.Fatalf("expected nil record error, got %v", err)
	}

	_, err = registry.Render(ctx, "broken", resume.New(), render.RenderOptions{})
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := registry.Render(cancelled, "ok", resume.New(), render.RenderOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
}

func TestRenderOptionsLayerDefaults(t *testing.T) {
	layer, err := render.RenderOptions{}.Layer()
	if err != nil {
		t.Fatalf("layer: %v", err)
	}
	if layer.Icons.Email == "" {
		t.Fatalf("expected default icons")
	}
}
