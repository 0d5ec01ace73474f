// Package cvgen turns a LaTeX résumé into a Parsed Record and renders it as a
// TypeScript data module (or JSON). The root package re-exports the common
// entry points; the building blocks live under pkg/.
package cvgen

import (
	"context"
	"fmt"
	"os"

	"github.com/goliatone/go-cvgen/pkg/orchestrator"
	"github.com/goliatone/go-cvgen/pkg/render"
	"github.com/goliatone/go-cvgen/pkg/resume"
	"github.com/goliatone/go-cvgen/pkg/source"
)

// Record aliases the Parsed Record type.
type Record = resume.Record

// RenderOptions carries per-request overrides such as the augmentation layer.
type RenderOptions = render.RenderOptions

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Extract runs the default extractor over document text. It never fails;
// unrecognised input yields an empty, fully shaped record.
func Extract(document string) *Record {
	return NewExtractor().Extract(document)
}

// ExtractFile reads path and extracts it.
func ExtractFile(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cvgen: read %s: %w", path, err)
	}
	return Extract(string(data)), nil
}

// Generate loads the document at src, extracts it and renders it with the
// named renderer. An empty rendererName selects the TypeScript renderer.
func Generate(ctx context.Context, src source.Source, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   src,
		Renderer: rendererName,
	})
}

// GenerateFromDocument renders a pre-loaded document, bypassing the loader
// stage.
func GenerateFromDocument(ctx context.Context, doc source.Document, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Document: &doc,
		Renderer: rendererName,
	})
}
