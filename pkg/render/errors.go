package render

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-cvgen/pkg/resume"
)

const (
	nilRecordCode       = "RENDER_NIL_RECORD"
	unknownRendererCode = "RENDER_UNKNOWN_RENDERER"
	renderFailedCode    = "RENDER_FAILED"
)

var (
	// ErrNilRecord is returned when a renderer is asked to render no record.
	ErrNilRecord = errors.New("render: record is nil")
	// ErrRendererNotFound is returned by Registry.Get for unknown names.
	ErrRendererNotFound = errors.New("render: renderer not found")
)

// CheckRecord fails loudly for a nil record. Renderers call it first.
func CheckRecord(record *resume.Record) error {
	if record != nil {
		return nil
	}
	return goerrors.Wrap(ErrNilRecord, goerrors.CategoryValidation, "cannot render a nil record").
		WithTextCode(nilRecordCode)
}

func rendererNotFound(name string) error {
	return goerrors.Wrap(fmt.Errorf("%w: %q", ErrRendererNotFound, name), goerrors.CategoryValidation, "unknown renderer").
		WithTextCode(unknownRendererCode)
}

// WrapRenderError tags a renderer failure with its renderer name. Errors that
// already carry a category are returned unchanged.
func WrapRenderError(name string, err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(fmt.Errorf("render %s: %w", name, err), goerrors.CategoryCommand, "render failed").
		WithTextCode(renderFailedCode)
}
