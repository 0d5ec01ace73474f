package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	pkgsource "github.com/goliatone/go-cvgen/pkg/source"
)

// Loader implements pkgsource.Loader by delegating to file or fs.FS
// strategies. Construction helpers live in the top-level cvgen package.
type Loader struct {
	fs fs.FS
}

// Ensure the implementation satisfies the public interface.
var _ pkgsource.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgsource.LoaderOptions) pkgsource.Loader {
	return &Loader{fs: options.FileSystem}
}

// Load reads a document from the provided source and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src pkgsource.Source) (pkgsource.Document, error) {
	if src == nil {
		return pkgsource.Document{}, errors.New("source loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case pkgsource.KindFile:
		data, err = loadFile(ctx, src.Location())
	case pkgsource.KindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	default:
		err = fmt.Errorf("source loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return pkgsource.Document{}, err
	}

	return pkgsource.NewDocument(src, data)
}
