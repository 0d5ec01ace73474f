package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	goerrors "github.com/goliatone/go-errors"
	"github.com/rs/zerolog"
)

const watchFailedCode = "WATCH_FAILED"

// watcher fires trigger once per burst of matching file events. A burst ends
// after debounce passes without a new matching event.
type watcher struct {
	dirs     []string
	debounce time.Duration
	match    func(name string) bool
	trigger  func()
	logger   zerolog.Logger
	ready    func()
}

func (w *watcher) run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return watchError(fmt.Errorf("create watcher: %w", err))
	}
	defer fsw.Close()

	seen := map[string]bool{}
	for _, dir := range w.dirs {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return watchError(fmt.Errorf("resolve %s: %w", dir, err))
		}
		if seen[abs] {
			continue
		}
		seen[abs] = true
		if err := fsw.Add(abs); err != nil {
			return watchError(fmt.Errorf("watch %s: %w", abs, err))
		}
		w.logger.Info().Str("dir", abs).Msg("watching")
	}
	if w.ready != nil {
		w.ready()
	}

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !w.match(event.Name) {
				continue
			}
			w.logger.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("change detected")
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error().Err(err).Msg("watcher error")
		case <-fire:
			fire = nil
			w.trigger()
		}
	}
}

func watchError(err error) error {
	return goerrors.Wrap(err, goerrors.CategoryCommand, "watch failed").
		WithTextCode(watchFailedCode)
}
