package template

import "errors"

// ErrFilterExists is returned when a filter name is already registered.
// Filter registries are usually process-wide, so callers registering a
// well-known filter can treat it as success.
var ErrFilterExists = errors.New("template: filter already registered")

// FilterFunc transforms a template value. param is nil when the filter is
// used without an argument.
type FilterFunc func(input any, param any) (any, error)

// TemplateRenderer is the engine contract renderers rely on. Data is converted
// through its JSON form, so templates address fields by their JSON names.
type TemplateRenderer interface {
	// RenderTemplate executes the named template from the engine's bundle.
	RenderTemplate(name string, data any) (string, error)
	// RenderString parses and executes an inline template.
	RenderString(content string, data any) (string, error)
	RegisterFilter(name string, fn FilterFunc) error
}
