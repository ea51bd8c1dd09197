package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/rshade/batchview/internal/engine/batch"
)

// Output formats understood by the CLI renderers.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
	FormatYAML   = "yaml"
)

// Environment variables consulted by New and Load.
const (
	EnvHome         = "BATCHVIEW_HOME"
	EnvBatchSize    = "BATCHVIEW_BATCH_SIZE"
	EnvOutputFormat = "BATCHVIEW_OUTPUT_FORMAT"
	EnvLogLevel     = "BATCHVIEW_LOG_LEVEL"
	EnvLogFormat    = "BATCHVIEW_LOG_FORMAT"
)

const (
	configFileName  = "config.yaml"
	projectFileName = ".batchview.yaml"
	configDirName   = ".batchview"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the batchview configuration file.
type Config struct {
	SchemaVersion string        `yaml:"schema_version"`
	Batch         BatchConfig   `yaml:"batch"`
	Output        OutputConfig  `yaml:"output"`
	Logging       LoggingConfig `yaml:"logging"`

	configPath string
}

// BatchConfig holds batching defaults.
type BatchConfig struct {
	Size int `yaml:"size"`
}

// OutputConfig holds rendering defaults.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// Dir returns the batchview home directory: $BATCHVIEW_HOME, or
// ~/.batchview when unset.
func Dir() string {
	if home := os.Getenv(EnvHome); home != "" {
		return home
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return configDirName
	}
	return filepath.Join(userHome, configDirName)
}

// DefaultPath returns the path of the global config file.
func DefaultPath() string {
	return filepath.Join(Dir(), configFileName)
}

// Default returns a Config populated with built-in defaults only.
func Default() *Config {
	return &Config{
		SchemaVersion: CurrentSchemaVersion,
		Batch:         BatchConfig{Size: batch.DefaultBatchSize},
		Output:        OutputConfig{DefaultFormat: FormatTable},
		Logging:       LoggingConfig{Level: "info", Format: "console"},
		configPath:    DefaultPath(),
	}
}

// New loads the global config file, ignoring a missing or unreadable file,
// and applies environment overrides. It never fails; use Load to surface
// file errors.
func New() *Config {
	cfg, err := Load(DefaultPath())
	if err != nil {
		cfg = Default()
		cfg.applyEnv()
	}
	return cfg
}

// Load reads path on top of the defaults, shallow-merges a project overlay
// (.batchview.yaml in the working directory) when present, and applies
// environment overrides. A missing path is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.configPath = path

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err = CheckSchemaVersion(cfg.SchemaVersion); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	if _, statErr := os.Stat(projectFileName); statErr == nil {
		if err = ShallowMergeYAML(cfg, projectFileName); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overrides fields from BATCHVIEW_* environment variables.
// Unparseable sizes are ignored.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvBatchSize); v != "" {
		if size, err := strconv.Atoi(v); err == nil {
			c.Batch.Size = size
		}
	}
	if v := os.Getenv(EnvOutputFormat); v != "" {
		c.Output.DefaultFormat = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
}

// ConfigPath returns the file the config was loaded from and saves to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes where Save writes.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Validate checks every section and returns an error wrapping ErrInvalidConfig.
func (c *Config) Validate() error {
	if err := CheckSchemaVersion(c.SchemaVersion); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Batch.Size < batch.MinBatchSize || c.Batch.Size > batch.MaxBatchSize {
		return fmt.Errorf("%w: batch.size must be between %d and %d, got %d",
			ErrInvalidConfig, batch.MinBatchSize, batch.MaxBatchSize, c.Batch.Size)
	}
	if !IsValidFormat(c.Output.DefaultFormat) {
		return fmt.Errorf("%w: output.default_format %q must be one of %s",
			ErrInvalidConfig, c.Output.DefaultFormat, strings.Join(Formats(), ", "))
	}
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil || c.Logging.Level == "" {
		return fmt.Errorf("%w: logging.level %q is not a valid level", ErrInvalidConfig, c.Logging.Level)
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("%w: logging.format %q must be console or json", ErrInvalidConfig, c.Logging.Format)
	}
	return nil
}

// Save writes the config as YAML to ConfigPath, creating its directory.
func (c *Config) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", c.configPath, err)
	}
	return nil
}

// Formats returns the supported output formats.
func Formats() []string {
	return []string{FormatTable, FormatJSON, FormatNDJSON, FormatYAML}
}

// IsValidFormat reports whether format is a supported output format.
func IsValidFormat(format string) bool {
	switch format {
	case FormatTable, FormatJSON, FormatNDJSON, FormatYAML:
		return true
	default:
		return false
	}
}
