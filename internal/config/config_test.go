package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/catenc/internal/config"
	"github.com/YuminosukeSato/catenc/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), *cfg)
	assert.Equal(t, "label", cfg.Encoding.Mode)
	assert.Equal(t, []string{"id", "target"}, cfg.Encoding.Exclude)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[input]
train = " train.csv "

[encoding]
columns = ["color", " size "]
exclude = []
mode = "BINARY"
handle_missing = true

[output]
preview = 3
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "train.csv", cfg.Input.Train)
	assert.Equal(t, []string{"color", "size"}, cfg.Encoding.Columns)
	assert.Empty(t, cfg.Encoding.Exclude)
	assert.Equal(t, "binary", cfg.Encoding.Mode)
	assert.True(t, cfg.Encoding.HandleMissing)
	assert.Equal(t, 3, cfg.Output.Preview)
	assert.Equal(t, "info", cfg.Logging.Level, "unset keys keep defaults")
	require.NoError(t, cfg.Validate())
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "[encoding]\nencoding_type = \"ohe\"\n")

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestSampleConfigParses(t *testing.T) {
	var cfg config.Config
	require.NoError(t, toml.Unmarshal([]byte(config.Sample()), &cfg))
	assert.Equal(t, "label", cfg.Encoding.Mode)
	assert.True(t, cfg.Encoding.HandleMissing)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	valid := func() config.Config {
		cfg := config.Default()
		cfg.Input.Train = "train.csv"
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*config.Config)
		param  string
	}{
		{"missing train", func(c *config.Config) { c.Input.Train = "" }, "input.train"},
		{"negative preview", func(c *config.Config) { c.Output.Preview = -1 }, "output.preview"},
		{"test output without input", func(c *config.Config) { c.Output.Test = "out.csv" }, "output.test"},
		{"test input without output", func(c *config.Config) { c.Input.Test = "test.csv" }, "input.test"},
		{"bad level", func(c *config.Config) { c.Logging.Level = "trace" }, "logging.level"},
		{"bad format", func(c *config.Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"column excluded", func(c *config.Config) { c.Encoding.Columns = []string{"id"} }, "encoding.columns"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			var valErr *errors.ValidationError
			require.True(t, errors.As(err, &valErr), "got %v", err)
			assert.Equal(t, tt.param, valErr.ParamName)
		})
	}

	t.Run("unsupported mode", func(t *testing.T) {
		cfg := valid()
		cfg.Encoding.Mode = "ohe"
		var modeErr *errors.UnsupportedModeError
		assert.True(t, errors.As(cfg.Validate(), &modeErr))
	})

	t.Run("valid", func(t *testing.T) {
		cfg := valid()
		assert.NoError(t, cfg.Validate())
	})
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "job.toml")
	require.NoError(t, config.CreateSample(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.Sample(), string(data))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "input/train_cat.csv", cfg.Input.Train)
}
