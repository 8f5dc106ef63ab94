// Package config loads catenc job files.
//
// A job file is TOML. Values missing from the file keep the defaults from
// Default, and command-line flags override both.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/YuminosukeSato/catenc/categorical"
	"github.com/YuminosukeSato/catenc/pkg/errors"
	"github.com/YuminosukeSato/catenc/pkg/log"
)

//go:embed sample_config.toml
var sampleConfig string

// Input names the CSV files to read.
type Input struct {
	Train string `toml:"train"`
	Test  string `toml:"test"`
}

// Encoding mirrors the EncoderManager configuration.
type Encoding struct {
	Columns       []string `toml:"columns"`
	Exclude       []string `toml:"exclude"`
	Mode          string   `toml:"mode"`
	HandleMissing bool     `toml:"handle_missing"`
}

// Output names the CSV files to write.
type Output struct {
	Train   string `toml:"train"`
	Test    string `toml:"test"`
	Preview int    `toml:"preview"`
}

// Logging configures the process-wide logger.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config is a complete job description.
type Config struct {
	Input    Input    `toml:"input"`
	Encoding Encoding `toml:"encoding"`
	Output   Output   `toml:"output"`
	Logging  Logging  `toml:"logging"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Encoding: Encoding{
			Exclude: []string{"id", "target"},
			Mode:    string(categorical.ModeLabel),
		},
		Logging: Logging{
			Level:  "info",
			Format: "auto",
		},
	}
}

// Sample returns the commented sample job file.
func Sample() string {
	return sampleConfig
}

// CreateSample writes the sample job file to path, creating parent
// directories as needed.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create config directory %q", dir)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return errors.Wrap(err, "write sample config")
	}
	return nil
}

// Load reads the job file at path on top of Default. An empty path returns
// the defaults unvalidated, since flags usually fill in the inputs.
func Load(path string) (*Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return &cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open config")
	}
	defer file.Close()

	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}

	cfg.normalize()
	return &cfg, nil
}

func (c *Config) normalize() {
	c.Input.Train = strings.TrimSpace(c.Input.Train)
	c.Input.Test = strings.TrimSpace(c.Input.Test)
	c.Encoding.Mode = strings.ToLower(strings.TrimSpace(c.Encoding.Mode))
	c.Encoding.Columns = trimAll(c.Encoding.Columns)
	c.Encoding.Exclude = trimAll(c.Encoding.Exclude)
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	c.normalize()
	if c.Input.Train == "" {
		return errors.NewValidationError("input.train", "a training CSV is required", c.Input.Train)
	}
	if _, err := categorical.ParseMode(c.Encoding.Mode); err != nil {
		return err
	}
	if c.Output.Preview < 0 {
		return errors.NewValidationError("output.preview", "must not be negative", c.Output.Preview)
	}
	if c.Output.Test != "" && c.Input.Test == "" {
		return errors.NewValidationError("output.test", "requires input.test", c.Output.Test)
	}
	if c.Input.Test != "" && c.Output.Test == "" {
		return errors.NewValidationError("input.test", "requires output.test", c.Input.Test)
	}
	if _, err := log.ParseLevel(c.Logging.Level); err != nil {
		return errors.NewValidationError("logging.level", "must be debug, info, warn or error", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "auto", "json", "console":
	default:
		return errors.NewValidationError("logging.format", "must be auto, json or console", c.Logging.Format)
	}
	excluded := make(map[string]struct{}, len(c.Encoding.Exclude))
	for _, e := range c.Encoding.Exclude {
		excluded[e] = struct{}{}
	}
	for _, col := range c.Encoding.Columns {
		if _, ok := excluded[col]; ok {
			return errors.NewValidationError("encoding.columns", "column is also excluded", col)
		}
	}
	return nil
}
