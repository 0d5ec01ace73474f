package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-cvgen"
	"github.com/goliatone/go-cvgen/internal/config"
	"github.com/goliatone/go-cvgen/pkg/source"
)

// DefaultAugmentationPath is where `init` writes the augmentation document.
const DefaultAugmentationPath = "cvgen.augment.yaml"

type GenerateCmd struct {
	Document string `arg:"" optional:"" help:"Résumé document; discovered in the data directory when omitted." type:"path"`
}

func (g *GenerateCmd) Run(ctx context.Context, a *app) error {
	_, err := a.generate(ctx, g.Document)
	return err
}

type ExtractCmd struct {
	Document string `arg:"" optional:"" help:"Résumé document; discovered in the data directory when omitted." type:"path"`
}

func (e *ExtractCmd) Run(ctx context.Context, a *app) error {
	return a.extract(ctx, e.Document)
}

type WatchCmd struct {
	Document string `arg:"" optional:"" help:"Résumé document; discovered in the data directory when omitted." type:"path"`
}

// Run generates once, then regenerates on every debounced change. Failed
// runs are logged and the watch continues.
func (w *WatchCmd) Run(ctx context.Context, a *app) error {
	regenerate := func() {
		if _, err := a.generate(ctx, w.Document); err != nil {
			a.logger.Error().Err(err).Msg("generate failed")
		}
	}
	regenerate()

	return (&watcher{
		dirs:     a.watchDirs(w.Document),
		debounce: a.cfg.Watch.Debounce,
		match:    a.watchMatcher(w.Document),
		trigger:  regenerate,
		logger:   a.logger,
	}).run(ctx)
}

func (a *app) watchDirs(document string) []string {
	dirs := []string{a.cfg.DataDir}
	if document != "" {
		dirs = append(dirs, filepath.Dir(document))
	}
	if a.cfg.Augmentation != "" {
		dirs = append(dirs, filepath.Dir(a.cfg.Augmentation))
	}
	return dirs
}

// watchMatcher accepts candidate documents, the explicit document and the
// augmentation file. The generated output never matches.
func (a *app) watchMatcher(document string) func(string) bool {
	targets := map[string]bool{}
	for _, path := range []string{document, a.cfg.Augmentation} {
		if path == "" {
			continue
		}
		if abs, err := filepath.Abs(path); err == nil {
			targets[abs] = true
		}
	}
	outputPath, _ := filepath.Abs(a.cfg.OutputPath())

	return func(name string) bool {
		abs, err := filepath.Abs(name)
		if err != nil {
			return false
		}
		if abs == outputPath {
			return false
		}
		return targets[abs] || source.IsCandidate(abs)
	}
}

type InitCmd struct {
	Force            bool   `help:"Overwrite existing files."`
	AugmentationPath string `name:"augmentation-path" help:"Where to write the augmentation document." default:"cvgen.augment.yaml" type:"path"`
}

func (i *InitCmd) Run(a *app) error {
	if err := config.Init(a.configPath, i.Force); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Wrote configuration to %s\n", a.configPath)

	if err := writeAugmentation(i.AugmentationPath, i.Force); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Wrote augmentation defaults to %s\n", i.AugmentationPath)
	return nil
}

func writeAugmentation(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, cvgen.DefaultAugmentation(), 0o644)
}
