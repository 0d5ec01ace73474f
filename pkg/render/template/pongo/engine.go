// Package pongo implements template.TemplateRenderer on top of pongo2.
package pongo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-cvgen/pkg/render/template"
)

// DefaultExtension is appended to template names that carry no extension.
const DefaultExtension = ".tmpl"

// SquashFilter collapses whitespace runs into single spaces and trims the
// ends. It is registered by New.
const SquashFilter = "squash"

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	files     fs.FS
	extension string
	filters   map[string]template.FilterFunc
}

// WithFS sets the template bundle. It is required.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.files = files
	}
}

// WithExtension overrides DefaultExtension.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		cfg.extension = ext
	}
}

// WithFilter registers fn under name when the engine is built. A name that
// is already registered is left alone.
func WithFilter(name string, fn template.FilterFunc) Option {
	return func(cfg *config) {
		if cfg.filters == nil {
			cfg.filters = make(map[string]template.FilterFunc)
		}
		cfg.filters[name] = fn
	}
}

// Engine renders templates from one fs.FS. Parsed bundle templates are
// cached; inline templates are parsed on every call.
type Engine struct {
	set       *pongo2.TemplateSet
	extension string

	mu     sync.Mutex
	parsed map[string]*pongo2.Template
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New builds an engine over the configured bundle.
func New(options ...Option) (*Engine, error) {
	cfg := config{extension: DefaultExtension}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.files == nil {
		return nil, errors.New("pongo: template fs is required")
	}

	engine := &Engine{
		set:       pongo2.NewSet("cvgen", pongo2.NewFSLoader(cfg.files)),
		extension: cfg.extension,
		parsed:    make(map[string]*pongo2.Template),
	}

	if err := engine.RegisterFilter(SquashFilter, Squash); err != nil && !errors.Is(err, template.ErrFilterExists) {
		return nil, err
	}
	for name, fn := range cfg.filters {
		if err := engine.RegisterFilter(name, fn); err != nil && !errors.Is(err, template.ErrFilterExists) {
			return nil, fmt.Errorf("pongo: register filter %q: %w", name, err)
		}
	}
	return engine, nil
}

func (e *Engine) RenderTemplate(name string, data any) (string, error) {
	if !strings.HasSuffix(name, e.extension) {
		name += e.extension
	}
	tmpl, err := e.load(name)
	if err != nil {
		return "", err
	}
	return execute(tmpl, data, name)
}

func (e *Engine) RenderString(content string, data any) (string, error) {
	tmpl, err := e.set.FromString(content)
	if err != nil {
		return "", fmt.Errorf("pongo: parse inline template: %w", err)
	}
	return execute(tmpl, data, "inline")
}

// RegisterFilter adds fn to pongo2's process-wide filter table. It returns
// template.ErrFilterExists when name is taken.
func (e *Engine) RegisterFilter(name string, fn template.FilterFunc) error {
	name = strings.TrimSpace(name)
	if name == "" || fn == nil {
		return errors.New("pongo: filter name and function required")
	}
	if pongo2.FilterExists(name) {
		return fmt.Errorf("%w: %s", template.ErrFilterExists, name)
	}
	return pongo2.RegisterFilter(name, func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var arg any
		if param != nil {
			arg = param.Interface()
		}
		out, err := fn(in.Interface(), arg)
		if err != nil {
			return nil, &pongo2.Error{Sender: "filter:" + name, OrigError: err}
		}
		return pongo2.AsValue(out), nil
	})
}

func (e *Engine) load(name string) (*pongo2.Template, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.parsed[name]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("pongo: load template %q: %w", name, err)
	}
	e.parsed[name] = tmpl
	return tmpl, nil
}

func execute(tmpl *pongo2.Template, data any, label string) (string, error) {
	ctx, err := contextOf(data)
	if err != nil {
		return "", fmt.Errorf("pongo: convert data for %s: %w", label, err)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(ctx, &buf); err != nil {
		return "", fmt.Errorf("pongo: execute %s: %w", label, err)
	}
	return buf.String(), nil
}

// contextOf round-trips data through JSON so struct fields are exposed under
// their JSON names. data must encode as an object.
func contextOf(data any) (pongo2.Context, error) {
	if data == nil {
		return pongo2.Context{}, nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	ctx := pongo2.Context{}
	if err := json.Unmarshal(raw, &ctx); err != nil {
		return nil, fmt.Errorf("data is not an object: %w", err)
	}
	return ctx, nil
}

// Squash is the filter registered as SquashFilter.
func Squash(input any, _ any) (any, error) {
	if input == nil {
		return "", nil
	}
	return strings.Join(strings.Fields(fmt.Sprint(input)), " "), nil
}
