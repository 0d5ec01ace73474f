package cvgen

import (
	"io/fs"

	"github.com/goliatone/go-cvgen/pkg/augment"
	"github.com/goliatone/go-cvgen/pkg/renderers/typescript"
)

// EmbeddedTemplates exposes the built-in TypeScript module template so callers
// can copy or extend it without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return typescript.TemplatesFS()
}

// DefaultAugmentation returns the embedded default augmentation document.
// `cvgen init` writes it out as a starting point.
func DefaultAugmentation() []byte {
	return augment.DefaultsYAML()
}
