package source

import (
	"errors"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const emptyDocumentCode = "DOCUMENT_EMPTY"

// ErrEmptyDocument is returned for documents with no content.
var ErrEmptyDocument = errors.New("source: document is empty")

// Document wraps the raw résumé text and its origin.
type Document struct {
	source Source
	text   string
}

// NewDocument validates the inputs and wraps them. Whitespace-only content
// is rejected.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("source: source is required")
	}
	if strings.TrimSpace(string(raw)) == "" {
		return Document{}, goerrors.Wrap(ErrEmptyDocument, goerrors.CategoryValidation, "document has no content").
			WithTextCode(emptyDocumentCode)
	}
	return Document{source: src, text: string(raw)}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Text returns the document content.
func (d Document) Text() string {
	return d.text
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}
