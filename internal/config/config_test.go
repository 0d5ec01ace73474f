package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"DATA_DIR", "OUTPUT", "RENDERER", "AUGMENTATION", "SANITIZE",
	"INTERACTIVE", "WATCH_DEBOUNCE", "LOG_LEVEL", "LOG_FORMAT",
}

// clearEnv blanks every CVGEN_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(envPrefix+key, "")
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultDataDir, cfg.DataDir)
	assert.Equal(t, "typescript", cfg.Renderer)
	assert.Equal(t, DefaultDebounce, cfg.Watch.Debounce)
	assert.Equal(t, filepath.Join(DefaultDataDir, "cv.ts"), cfg.OutputPath())
	require.NoError(t, cfg.Validate())
}

func TestLoadYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "cvgen.yaml", `
data_dir: content
renderer: JSON
augmentation: extras.yaml
sanitize: true
watch:
  debounce: 1s
logger:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "content", cfg.DataDir)
	assert.Equal(t, "json", cfg.Renderer)
	assert.Equal(t, "extras.yaml", cfg.Augmentation)
	assert.True(t, cfg.Sanitize)
	assert.False(t, cfg.Interactive)
	assert.Equal(t, time.Second, cfg.Watch.Debounce)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, filepath.Join("content", "cv.ts"), cfg.OutputPath())
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "cvgen.yaml", "data_dir: [unterminated\n")

	_, err := Load(path)
	require.Error(t, err)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "cvgen.yaml", "data_dir: content\noutput: content/out.ts\n")

	t.Setenv("CVGEN_DATA_DIR", "other")
	t.Setenv("CVGEN_INTERACTIVE", "true")
	t.Setenv("CVGEN_WATCH_DEBOUNCE", "750ms")
	t.Setenv("CVGEN_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "other", cfg.DataDir)
	assert.Equal(t, "content/out.ts", cfg.OutputPath())
	assert.True(t, cfg.Interactive)
	assert.Equal(t, 750*time.Millisecond, cfg.Watch.Debounce)
	assert.Equal(t, "warn", cfg.Logger.Level)
}

func TestEnvFileDoesNotOverrideProcessEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env", "CVGEN_RENDERER=json\nCVGEN_AUGMENTATION=from-dotenv.yaml\n")

	// godotenv treats a present-but-empty variable as set.
	require.NoError(t, os.Unsetenv("CVGEN_RENDERER"))

	t.Setenv("CVGEN_AUGMENTATION", "from-process.yaml")

	cfg, err := Load("", envFile, filepath.Join(dir, ".env.missing"))
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Renderer)
	assert.Equal(t, "from-process.yaml", cfg.Augmentation)
}

func TestInvalidEnvironmentValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("CVGEN_SANITIZE", "maybe")
	_, err := Load("")
	require.Error(t, err)

	clearEnv(t)
	t.Setenv("CVGEN_WATCH_DEBOUNCE", "soon")
	_, err = Load("")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "unknown renderer", mutate: func(c *Config) { c.Renderer = "yaml" }},
		{name: "zero debounce", mutate: func(c *Config) { c.Watch.Debounce = 0 }},
		{name: "bad log format", mutate: func(c *Config) { c.Logger.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
			assert.True(t, goerrors.IsCategory(err, goerrors.CategoryValidation))
		})
	}
}

func TestInit(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "cvgen.yaml")

	require.NoError(t, Init(path, false))
	require.Error(t, Init(path, false), "existing file must not be overwritten")
	require.NoError(t, Init(path, true))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().DataDir, cfg.DataDir)
	assert.Equal(t, Default().Watch.Debounce, cfg.Watch.Debounce)
	require.NoError(t, cfg.Validate())
}
