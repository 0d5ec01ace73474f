package render

import (
	"context"

	"github.com/goliatone/go-cvgen/pkg/resume"
)

// Renderer converts a Parsed Record into output bytes (a TypeScript data
// module, JSON, etc.). Implementations must be deterministic: the same record
// and options yield byte-identical output. A nil record fails with
// ErrNilRecord.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, record *resume.Record, options RenderOptions) ([]byte, error)
}
