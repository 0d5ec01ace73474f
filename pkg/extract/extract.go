package extract

// Extractor contracts for the document -> Parsed Record stage.

import "github.com/goliatone/go-cvgen/pkg/resume"

// DefaultTechnologyLimit caps the number of inferred project technologies.
const DefaultTechnologyLimit = 6

// Extractor turns résumé source text into a Parsed Record. Implementations
// never fail: any field whose pattern does not match keeps its empty default.
// The returned record is freshly allocated and owned by the caller.
type Extractor interface {
	Extract(document string) *resume.Record
}

// Options configures extraction heuristics.
type Options struct {
	// TechnologyLimit caps inferred project technologies. Values <= 0 fall
	// back to DefaultTechnologyLimit.
	TechnologyLimit int

	// DefaultLocation is assigned to experience entries without a trailing
	// location field.
	DefaultLocation string
}

// Option mutates Options during construction.
type Option func(*Options)

// WithTechnologyLimit overrides the inferred technology cap.
func WithTechnologyLimit(limit int) Option {
	return func(opts *Options) {
		opts.TechnologyLimit = limit
	}
}

// WithDefaultLocation overrides the experience location fallback.
func WithDefaultLocation(location string) Option {
	return func(opts *Options) {
		opts.DefaultLocation = location
	}
}

// NewOptions applies Option functions over the defaults. Implementations under
// internal/extract call this helper to stay consistent.
func NewOptions(options ...Option) Options {
	cfg := Options{
		TechnologyLimit: DefaultTechnologyLimit,
		DefaultLocation: resume.DefaultExperienceLocation,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.TechnologyLimit <= 0 {
		cfg.TechnologyLimit = DefaultTechnologyLimit
	}
	return cfg
}

// Construction helpers live in the top-level cvgen package to avoid import cycles.
