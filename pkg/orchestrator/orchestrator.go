package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	internalextract "github.com/goliatone/go-cvgen/internal/extract"
	internalloader "github.com/goliatone/go-cvgen/internal/source/loader"
	"github.com/goliatone/go-cvgen/pkg/augment"
	pkgextract "github.com/goliatone/go-cvgen/pkg/extract"
	"github.com/goliatone/go-cvgen/pkg/render"
	"github.com/goliatone/go-cvgen/pkg/renderers/jsonrecord"
	"github.com/goliatone/go-cvgen/pkg/renderers/typescript"
	"github.com/goliatone/go-cvgen/pkg/resume"
	"github.com/goliatone/go-cvgen/pkg/source"
)

const defaultRendererName = typescript.Name

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom document loader.
func WithLoader(loader source.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithExtractor injects a custom extractor.
func WithExtractor(extractor pkgextract.Extractor) Option {
	return func(o *Orchestrator) {
		o.extractor = extractor
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithTransformer registers a Transformer that runs between extraction and
// rendering.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithAugmentation sets the augmentation layer used when a request carries
// none.
func WithAugmentation(layer *augment.Layer) Option {
	return func(o *Orchestrator) {
		o.augmentation = layer
	}
}

// WithLogger sets the logger used for pipeline progress. The default
// discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// Orchestrator coordinates the pipeline from résumé document to rendered
// output. It applies defaults (file loader, LaTeX extractor, TypeScript and
// JSON renderers) while remaining open to dependency injection.
type Orchestrator struct {
	loader          source.Loader
	extractor       pkgextract.Extractor
	registry        *render.Registry
	defaultRenderer string
	transformer     Transformer
	augmentation    *augment.Layer
	logger          zerolog.Logger
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		logger:          zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one pipeline run.
type Request struct {
	// Source identifies where the document lives. Optional when Document is
	// supplied.
	Source source.Source

	// Document bypasses the loader when the caller already holds the text.
	Document *source.Document

	// Renderer names the renderer to use. Empty selects the default.
	Renderer string

	// RenderOptions is passed to the renderer. A nil Augmentation is replaced
	// by the orchestrator's layer when one is configured.
	RenderOptions render.RenderOptions
}

// Result carries the intermediate record next to the rendered bytes.
type Result struct {
	Location string
	Record   *resume.Record
	Output   []byte
}

// Generate executes load -> extract -> transform -> render and returns the
// rendered bytes.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	result, err := o.Run(ctx, req)
	if err != nil {
		return nil, err
	}
	return result.Output, nil
}

// Run is Generate but also returns the Parsed Record.
func (o *Orchestrator) Run(ctx context.Context, req Request) (Result, error) {
	record, location, err := o.extract(ctx, req)
	if err != nil {
		return Result{}, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return Result{}, err
	}

	options := req.RenderOptions
	if options.Augmentation == nil {
		options.Augmentation = o.augmentation
	}

	output, err := renderer.Render(ctx, record, options)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: render output: %w", render.WrapRenderError(renderer.Name(), err))
	}

	o.logger.Debug().
		Str("renderer", renderer.Name()).
		Int("bytes", len(output)).
		Msg("rendered output")

	return Result{Location: location, Record: record, Output: output}, nil
}

// Extract runs load -> extract -> transform and returns the Parsed Record.
func (o *Orchestrator) Extract(ctx context.Context, req Request) (*resume.Record, error) {
	record, _, err := o.extract(ctx, req)
	return record, err
}

func (o *Orchestrator) extract(ctx context.Context, req Request) (*resume.Record, string, error) {
	if ctx == nil {
		return nil, "", errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	if err := o.initialiseErr; err != nil {
		return nil, "", err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return nil, "", err
		}
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return nil, "", err
	}

	record := o.extractor.Extract(doc.Text())
	o.logger.Info().
		Str("document", doc.Location()).
		Interface("counts", record.Counts()).
		Msg("extracted record")

	if err := o.applyTransformer(ctx, record); err != nil {
		return nil, "", err
	}
	return record, doc.Location(), nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (source.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return source.Document{}, errors.New("orchestrator: source or document is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return source.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyTransformer(ctx context.Context, record *resume.Record) error {
	if o.transformer == nil || record == nil {
		return nil
	}
	if err := o.transformer.Transform(ctx, record); err != nil {
		return fmt.Errorf("orchestrator: transform record: %w", err)
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.loader == nil {
		o.loader = internalloader.New(source.NewLoaderOptions())
	}
	if o.extractor == nil {
		o.extractor = internalextract.New(pkgextract.NewOptions())
	}
	if o.registry == nil {
		registry, err := DefaultRegistry()
		if err != nil {
			o.initialiseErr = err
		}
		o.registry = registry
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.defaultsApplied = true
}

// DefaultRegistry returns a registry holding the built-in renderers. options
// configure the TypeScript renderer; a construction failure is returned
// together with a registry holding the remaining renderers.
func DefaultRegistry(options ...typescript.Option) (*render.Registry, error) {
	registry := render.NewRegistry()
	registry.MustRegister(jsonrecord.New())

	renderer, err := typescript.New(options...)
	if err != nil {
		return registry, fmt.Errorf("orchestrator: default renderer %s: %w", typescript.Name, err)
	}
	registry.MustRegister(renderer)
	return registry, nil
}
