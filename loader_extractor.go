package cvgen

import (
	internalextract "github.com/goliatone/go-cvgen/internal/extract"
	internalloader "github.com/goliatone/go-cvgen/internal/source/loader"
	pkgextract "github.com/goliatone/go-cvgen/pkg/extract"
	pkgsource "github.com/goliatone/go-cvgen/pkg/source"
)

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...pkgsource.LoaderOption) pkgsource.Loader {
	cfg := pkgsource.NewLoaderOptions(options...)
	return internalloader.New(cfg)
}

// NewExtractor constructs the LaTeX résumé extractor.
func NewExtractor(options ...pkgextract.Option) pkgextract.Extractor {
	cfg := pkgextract.NewOptions(options...)
	return internalextract.New(cfg)
}
