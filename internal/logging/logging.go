// Package logging builds the zerolog logger used by the cvgen driver.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

const (
	FormatJSON   = "json"
	FormatPretty = "pretty"
)

// Config controls level and output format.
type Config struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	TimeFormat string `yaml:"time_format,omitempty"`
}

// Level parses the configured level. Unknown or empty levels fall back to
// info.
func (c Config) ParsedLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(c.Level)))
	if err != nil || c.Level == "" {
		return zerolog.InfoLevel
	}
	return level
}

// New returns a logger writing to out, or stderr when out is nil. The pretty
// format uses zerolog's console writer.
func New(cfg Config, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stderr
	}

	timeFormat := cfg.TimeFormat
	if timeFormat == "" {
		timeFormat = time.RFC3339
	}

	writer := out
	if strings.EqualFold(cfg.Format, FormatPretty) {
		writer = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: timeFormat,
			NoColor:    !isTerminal(out),
		}
	}

	return zerolog.New(writer).
		Level(cfg.ParsedLevel()).
		With().
		Timestamp().
		Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
