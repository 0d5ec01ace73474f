package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-cvgen/internal/config"
	"github.com/goliatone/go-cvgen/internal/logging"
	"github.com/goliatone/go-cvgen/internal/output"
	"github.com/goliatone/go-cvgen/pkg/augment"
	"github.com/goliatone/go-cvgen/pkg/orchestrator"
	"github.com/goliatone/go-cvgen/pkg/renderers/jsonrecord"
	"github.com/goliatone/go-cvgen/pkg/renderers/typescript"
	"github.com/goliatone/go-cvgen/pkg/source"
)

// app carries the resolved configuration shared by every command.
type app struct {
	configPath string

	cfg    *config.Config
	logger zerolog.Logger
	stdout io.Writer
	picker Picker
}

func newApp(cli *CLI, stdout, stderr io.Writer) (*app, error) {
	cfg, err := config.Load(cli.Config, cli.EnvFile...)
	if err != nil {
		return nil, err
	}
	applyFlags(cfg, cli)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &app{
		configPath: cli.Config,
		cfg:        cfg,
		logger:     logging.New(cfg.Logger, stderr),
		stdout:     stdout,
		picker:     surveyPicker{},
	}, nil
}

// applyFlags copies explicitly set flags over the loaded configuration.
func applyFlags(cfg *config.Config, cli *CLI) {
	if cli.DataDir != "" {
		cfg.DataDir = cli.DataDir
	}
	if cli.Output != "" {
		cfg.Output = cli.Output
	}
	if cli.Renderer != "" {
		cfg.Renderer = cli.Renderer
	}
	if cli.Augmentation != "" {
		cfg.Augmentation = cli.Augmentation
	}
	if cli.LogFormat != "" {
		cfg.Logger.Format = strings.ToLower(cli.LogFormat)
	}
	if cli.Verbose {
		cfg.Logger.Level = "debug"
	}
	cfg.Sanitize = cfg.Sanitize || cli.Sanitize
	cfg.Interactive = cfg.Interactive || cli.Interactive
	cfg.Normalize()
}

// resolveDocument returns explicit when set, otherwise a discovered candidate
// from the data directory.
func (a *app) resolveDocument(ctx context.Context, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	candidates, err := source.Discover(a.cfg.DataDir)
	if err != nil {
		return "", err
	}
	if len(candidates) == 1 {
		return candidates[0], nil
	}

	if a.cfg.Interactive && a.picker != nil {
		chosen, err := a.picker.Pick(ctx, candidates)
		if err != nil {
			return "", fmt.Errorf("select document: %w", err)
		}
		return chosen, nil
	}

	a.logger.Warn().
		Strs("candidates", candidates).
		Str("document", candidates[0]).
		Msg("several documents found, using the first")
	return candidates[0], nil
}

func (a *app) orchestrator() (*orchestrator.Orchestrator, error) {
	layer, err := augment.Load(a.cfg.Augmentation)
	if err != nil {
		return nil, err
	}

	var tsOptions []typescript.Option
	if a.cfg.Sanitize {
		tsOptions = append(tsOptions, typescript.WithSanitizer())
	}

	registry, err := orchestrator.DefaultRegistry(tsOptions...)
	if err != nil {
		return nil, err
	}

	return orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer(a.cfg.Renderer),
		orchestrator.WithAugmentation(layer),
		orchestrator.WithLogger(a.logger),
	), nil
}

// generate runs the pipeline for one document and writes the result when it
// differs from what is on disk.
func (a *app) generate(ctx context.Context, explicit string) (output.Result, error) {
	path, err := a.resolveDocument(ctx, explicit)
	if err != nil {
		return output.Result{}, err
	}
	orch, err := a.orchestrator()
	if err != nil {
		return output.Result{}, err
	}

	result, err := orch.Run(ctx, orchestrator.Request{Source: source.FromFile(path)})
	if err != nil {
		return output.Result{}, err
	}

	written, err := output.Write(a.cfg.OutputPath(), result.Output)
	if err != nil {
		return output.Result{}, err
	}

	event := a.logger.Info()
	if !written.Changed {
		event = a.logger.Debug()
	}
	event.
		Str("document", result.Location).
		Str("output", written.Path).
		Int("bytes", written.Bytes).
		Bool("changed", written.Changed).
		Msg("generated data module")
	return written, nil
}

// extract writes the Parsed Record as JSON to stdout.
func (a *app) extract(ctx context.Context, explicit string) error {
	path, err := a.resolveDocument(ctx, explicit)
	if err != nil {
		return err
	}
	orch, err := a.orchestrator()
	if err != nil {
		return err
	}
	out, err := orch.Generate(ctx, orchestrator.Request{
		Source:   source.FromFile(path),
		Renderer: jsonrecord.Name,
	})
	if err != nil {
		return err
	}
	_, err = a.stdout.Write(out)
	return err
}
