// Package jsonrecord renders the Parsed Record as indented JSON. The output
// is the extraction result as-is: no augmentation, no derived fields.
package jsonrecord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-cvgen/pkg/render"
	"github.com/goliatone/go-cvgen/pkg/resume"
)

// Name is the registry name of the JSON renderer.
const Name = "json"

type Option func(*Renderer)

// WithIndent overrides the indentation string. An empty indent produces
// compact output.
func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
	}
}

// Renderer implements render.Renderer for JSON output.
type Renderer struct {
	indent string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer; the default indent is two spaces.
func New(options ...Option) *Renderer {
	r := &Renderer{indent: "  "}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

// Render ignores options; the record is serialised without augmentation.
func (r *Renderer) Render(ctx context.Context, record *resume.Record, _ render.RenderOptions) ([]byte, error) {
	if err := render.CheckRecord(record); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if r.indent != "" {
		enc.SetIndent("", r.indent)
	}
	if err := enc.Encode(record); err != nil {
		return nil, fmt.Errorf("json renderer: encode record: %w", err)
	}
	return buf.Bytes(), nil
}
