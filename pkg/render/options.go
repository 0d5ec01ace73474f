package render

import "github.com/goliatone/go-cvgen/pkg/augment"

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the record.
type RenderOptions struct {
	// Augmentation supplies the static entries merged into the output. Nil
	// selects the embedded defaults.
	Augmentation *augment.Layer
}

// Layer returns the configured augmentation layer or the embedded defaults.
func (o RenderOptions) Layer() (*augment.Layer, error) {
	if o.Augmentation != nil {
		return o.Augmentation, nil
	}
	return augment.Default()
}
