// Package output writes generated files atomically and only when their
// content changes.
package output

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	goerrors "github.com/goliatone/go-errors"
)

const writeFailedCode = "OUTPUT_WRITE_FAILED"

// Result describes one write.
type Result struct {
	Path    string
	Changed bool
	Bytes   int
}

// Write stores data at path through a temporary file in the same directory
// followed by a rename. When the file already holds data the write is
// skipped and Changed is false.
func Write(path string, data []byte) (Result, error) {
	result := Result{Path: path, Bytes: len(data)}
	if path == "" {
		return result, wrap(errors.New("output: path is required"))
	}

	existing, err := os.ReadFile(path)
	switch {
	case err == nil && bytes.Equal(existing, data):
		return result, nil
	case err != nil && !errors.Is(err, os.ErrNotExist):
		return result, wrap(fmt.Errorf("output: read %s: %w", path, err))
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return result, wrap(fmt.Errorf("output: create %s: %w", dir, err))
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return result, wrap(fmt.Errorf("output: temp file: %w", err))
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return result, wrap(fmt.Errorf("output: write %s: %w", tmpName, err))
	}
	if err := tmp.Close(); err != nil {
		return result, wrap(fmt.Errorf("output: close %s: %w", tmpName, err))
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return result, wrap(fmt.Errorf("output: chmod %s: %w", tmpName, err))
	}
	if err := os.Rename(tmpName, path); err != nil {
		return result, wrap(fmt.Errorf("output: rename to %s: %w", path, err))
	}

	result.Changed = true
	return result, nil
}

func wrap(err error) error {
	return goerrors.Wrap(err, goerrors.CategoryCommand, "write output failed").
		WithTextCode(writeFailedCode)
}
