package typescript

import (
	"context"
	"errors"
	"fmt"
	"html"
	"io/fs"
	"os"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-cvgen/pkg/render"
	rendertemplate "github.com/goliatone/go-cvgen/pkg/render/template"
	"github.com/goliatone/go-cvgen/pkg/render/template/pongo"
	"github.com/goliatone/go-cvgen/pkg/resume"
)

// Name is the registry name of the TypeScript renderer.
const Name = "typescript"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	sanitize         bool
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must provide TemplateName.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithSanitizer strips HTML-like markup left in free text before it is
// quoted. Entities produced by the sanitizer are decoded again so "R&D"
// stays "R&D".
func WithSanitizer() Option {
	return func(cfg *config) {
		cfg.sanitize = true
	}
}

// Renderer emits the Parsed Record as a TypeScript data module.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	clean     func(string) string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the TypeScript renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := pongo.New(pongo.WithFS(cfg.templateFS))
		if err != nil {
			return nil, fmt.Errorf("typescript renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}
	// Filter tables are usually process-wide; a name registered earlier is
	// the same function.
	for _, filter := range []struct {
		name string
		fn   rendertemplate.FilterFunc
	}{
		{quoteFilterName, quoteFilter},
		{pongo.SquashFilter, pongo.Squash},
	} {
		if err := renderer.RegisterFilter(filter.name, filter.fn); err != nil && !errors.Is(err, rendertemplate.ErrFilterExists) {
			return nil, fmt.Errorf("typescript renderer: register %s filter: %w", filter.name, err)
		}
	}

	clean := strings.TrimSpace
	if cfg.sanitize {
		clean = sanitizer()
	}
	return &Renderer{templates: renderer, clean: clean}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/typescript; charset=utf-8"
}

// Render produces the module source. Output is byte-identical for identical
// records and options.
func (r *Renderer) Render(ctx context.Context, record *resume.Record, options render.RenderOptions) ([]byte, error) {
	if err := render.CheckRecord(record); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("typescript renderer: template renderer is nil")
	}

	layer, err := options.Layer()
	if err != nil {
		return nil, fmt.Errorf("typescript renderer: augmentation: %w", err)
	}
	if err := layer.Validate(); err != nil {
		return nil, err
	}

	summary, err := r.summary(layer.Summary, record)
	if err != nil {
		return nil, err
	}

	result, err := r.templates.RenderTemplate(TemplateName, buildView(record, layer, summary, r.clean))
	if err != nil {
		return nil, fmt.Errorf("typescript renderer: render template: %w", err)
	}
	return []byte(result), nil
}

// summary renders the augmentation summary template with the record's name
// and gpa. The module template squashes it onto one line.
func (r *Renderer) summary(tmpl string, record *resume.Record) (string, error) {
	if strings.TrimSpace(tmpl) == "" {
		return "", nil
	}
	out, err := r.templates.RenderString("{% autoescape off %}"+tmpl+"{% endautoescape %}", map[string]any{
		"name": record.Name,
		"gpa":  record.GPA,
	})
	if err != nil {
		return "", fmt.Errorf("typescript renderer: render summary: %w", err)
	}
	return out, nil
}

func sanitizer() func(string) string {
	policy := bluemonday.StrictPolicy()
	return func(s string) string {
		return strings.TrimSpace(html.UnescapeString(policy.Sanitize(s)))
	}
}
