package orchestrator

import (
	"context"

	"github.com/goliatone/go-cvgen/pkg/resume"
)

// Transformer mutates a Parsed Record after extraction and before rendering.
// Implementations can patch fields the heuristics get wrong.
type Transformer interface {
	Transform(ctx context.Context, record *resume.Record) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, record *resume.Record) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, record *resume.Record) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, record)
}

// ChainTransformers runs transformers in order and stops at the first error.
func ChainTransformers(transformers ...Transformer) Transformer {
	return TransformerFunc(func(ctx context.Context, record *resume.Record) error {
		for _, t := range transformers {
			if t == nil {
				continue
			}
			if err := t.Transform(ctx, record); err != nil {
				return err
			}
		}
		return nil
	})
}
