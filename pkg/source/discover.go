package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const noDocumentCode = "DOCUMENT_NOT_FOUND"

// ErrNoDocument is returned when a directory holds no candidate document.
var ErrNoDocument = errors.New("source: no cv document found")

var (
	candidateNames    = []string{"cv.txt", "cv.tex"}
	candidateSuffixes = []string{"_cv.txt", "_cv.tex"}
)

// IsCandidate reports whether a file name looks like a résumé source:
// cv.txt, cv.tex, or anything ending in _cv.txt / _cv.tex.
func IsCandidate(name string) bool {
	base := filepath.Base(name)
	for _, candidate := range candidateNames {
		if base == candidate {
			return true
		}
	}
	for _, suffix := range candidateSuffixes {
		if strings.HasSuffix(base, suffix) && len(base) > len(suffix) {
			return true
		}
	}
	return false
}

// Discover lists candidate documents in dir in lexical order. An empty result
// is reported as ErrNoDocument.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, goerrors.Wrap(fmt.Errorf("source: read %s: %w", dir, err), goerrors.CategoryCommand, "cannot read data directory").
			WithTextCode(noDocumentCode)
	}

	var out []string
	for _, entry := range entries {
		if entry.IsDir() || !IsCandidate(entry.Name()) {
			continue
		}
		out = append(out, filepath.Join(dir, entry.Name()))
	}
	if len(out) == 0 {
		return nil, goerrors.Wrap(fmt.Errorf("%w in %s (expected cv.txt or *_cv.txt)", ErrNoDocument, dir), goerrors.CategoryCommand, "no input document").
			WithTextCode(noDocumentCode)
	}
	sort.Strings(out)
	return out, nil
}
