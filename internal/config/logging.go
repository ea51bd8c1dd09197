package config

import (
	"sync"

	"github.com/rshade/batchview/internal/logging"
)

// global is the configuration loaded for the current CLI invocation.
//
//nolint:gochecknoglobals // Set once at startup, read by commands.
var (
	global   *Config
	globalMu sync.RWMutex
)

// SetGlobalConfig installs cfg as the process-wide configuration.
func SetGlobalConfig(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	global = cfg
}

// GetGlobalConfig returns the process-wide configuration, loading it with
// New on first use.
func GetGlobalConfig() *Config {
	globalMu.RLock()
	cfg := global
	globalMu.RUnlock()
	if cfg != nil {
		return cfg
	}

	globalMu.Lock()
	defer globalMu.Unlock()
	if global == nil {
		global = New()
	}
	return global
}

// ToLoggingConfig converts the logging section into a logging.Config.
// A configured file switches output to that file; otherwise logs go to stderr.
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}
