// Package config loads the cvgen driver configuration. Values are layered:
// defaults, then the optional YAML file, then .env, then CVGEN_* environment
// variables. Command-line flags are applied by the caller last.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-cvgen/internal/logging"
	"github.com/goliatone/go-cvgen/pkg/renderers/jsonrecord"
	"github.com/goliatone/go-cvgen/pkg/renderers/typescript"
)

const (
	// DefaultPath is the configuration file looked up when none is given.
	DefaultPath = "cvgen.yaml"
	// DefaultDataDir is where résumé documents and the generated module live.
	DefaultDataDir = "src/data"
	// DefaultOutputName is the generated module file name inside DataDir.
	DefaultOutputName = "cv.ts"
	// DefaultDebounce is the watch quiet period.
	DefaultDebounce = 300 * time.Millisecond

	envPrefix         = "CVGEN_"
	invalidConfigCode = "CONFIG_INVALID"
)

// ErrInvalid is the sentinel behind every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// KnownRenderers lists the renderer names accepted by Validate.
var KnownRenderers = []string{typescript.Name, jsonrecord.Name}

// WatchConfig controls the watch command.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// Config is the driver configuration.
type Config struct {
	DataDir      string         `yaml:"data_dir"`
	Output       string         `yaml:"output,omitempty"`
	Renderer     string         `yaml:"renderer"`
	Augmentation string         `yaml:"augmentation,omitempty"`
	Sanitize     bool           `yaml:"sanitize"`
	Interactive  bool           `yaml:"interactive"`
	Watch        WatchConfig    `yaml:"watch"`
	Logger       logging.Config `yaml:"logger"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DataDir:  DefaultDataDir,
		Renderer: typescript.Name,
		Watch:    WatchConfig{Debounce: DefaultDebounce},
		Logger: logging.Config{
			Level:  "info",
			Format: logging.FormatPretty,
		},
	}
}

// Load builds the configuration from path and the given env files. A missing
// config file or env file is not an error. The result is normalised but not
// validated; call Validate after applying flags.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	if err := loadEnvFiles(envFiles); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	cfg.Normalize()
	return cfg, nil
}

// loadEnvFiles feeds existing files to godotenv. Variables already present in
// the process environment win.
func loadEnvFiles(files []string) error {
	existing := make([]string, 0, len(files))
	for _, file := range files {
		if file == "" {
			continue
		}
		if _, err := os.Stat(file); err == nil {
			existing = append(existing, file)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("config: load env: %w", err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(envPrefix + key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	boolean := func(key string, dst *bool) error {
		v, ok := lookup(envPrefix + key)
		if !ok || strings.TrimSpace(v) == "" {
			return nil
		}
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %s%s: %w", envPrefix, key, err)
		}
		*dst = parsed
		return nil
	}

	str("DATA_DIR", &c.DataDir)
	str("OUTPUT", &c.Output)
	str("RENDERER", &c.Renderer)
	str("AUGMENTATION", &c.Augmentation)
	str("LOG_LEVEL", &c.Logger.Level)
	str("LOG_FORMAT", &c.Logger.Format)

	if err := boolean("SANITIZE", &c.Sanitize); err != nil {
		return err
	}
	if err := boolean("INTERACTIVE", &c.Interactive); err != nil {
		return err
	}

	if v, ok := lookup(envPrefix + "WATCH_DEBOUNCE"); ok && strings.TrimSpace(v) != "" {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %sWATCH_DEBOUNCE: %w", envPrefix, err)
		}
		c.Watch.Debounce = d
	}
	return nil
}

// Normalize fills derived defaults. It is safe to call more than once.
func (c *Config) Normalize() {
	if strings.TrimSpace(c.DataDir) == "" {
		c.DataDir = DefaultDataDir
	}
	if strings.TrimSpace(c.Renderer) == "" {
		c.Renderer = typescript.Name
	}
	c.Renderer = strings.ToLower(strings.TrimSpace(c.Renderer))
}

// OutputPath resolves the output file: the explicit Output, else
// DataDir/cv.ts.
func (c *Config) OutputPath() string {
	if strings.TrimSpace(c.Output) != "" {
		return c.Output
	}
	return filepath.Join(c.DataDir, DefaultOutputName)
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	var problem string
	switch {
	case !slices.Contains(KnownRenderers, c.Renderer):
		problem = fmt.Sprintf("unknown renderer %q (known: %s)", c.Renderer, strings.Join(KnownRenderers, ", "))
	case c.Watch.Debounce <= 0:
		problem = fmt.Sprintf("watch.debounce must be positive, got %s", c.Watch.Debounce)
	case c.Logger.Format != "" && c.Logger.Format != logging.FormatJSON && c.Logger.Format != logging.FormatPretty:
		problem = fmt.Sprintf("logger.format must be %q or %q, got %q", logging.FormatJSON, logging.FormatPretty, c.Logger.Format)
	default:
		return nil
	}
	return goerrors.Wrap(fmt.Errorf("%w: %s", ErrInvalid, problem), goerrors.CategoryValidation, problem).
		WithTextCode(invalidConfigCode)
}

// Init writes a starter configuration to path. An existing file is kept
// unless force is set.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config: %s already exists (use --force to overwrite)", path)
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("config: marshal defaults: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
