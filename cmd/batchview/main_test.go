package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/batchview/internal/cli"
	"github.com/rshade/batchview/internal/config"
	"github.com/rshade/batchview/pkg/version"
)

func TestRun(t *testing.T) {
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvLogLevel, "error")
	t.Chdir(t.TempDir())
	t.Cleanup(func() { config.SetGlobalConfig(nil) })

	t.Run("success", func(t *testing.T) {
		var out, errOut bytes.Buffer
		code := run([]string{"range", "0", "5", "--size", "2", "-o", "json"}, &out, &errOut)
		assert.Equal(t, 0, code)
		assert.Contains(t, out.String(), `"total_batches": 3`)
		assert.Empty(t, errOut.String())
	})

	t.Run("failure", func(t *testing.T) {
		var out, errOut bytes.Buffer
		code := run([]string{"range", "0", "5", "--size", "0", "--closed", "x"}, &out, &errOut)
		assert.Equal(t, 1, code)
		assert.Contains(t, errOut.String(), "Error:")
	})

	t.Run("failure still finishes the log file", func(t *testing.T) {
		t.Setenv(config.EnvLogLevel, "debug")
		logPath := filepath.Join(home, "run.log")
		cfgPath := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("logging:\n  file: "+logPath+"\n"), 0o600))

		var out, errOut bytes.Buffer
		code := run([]string{"--config", cfgPath, "range", "5", "1", "--closed"}, &out, &errOut)
		assert.Equal(t, 1, code)

		data, err := os.ReadFile(logPath)
		require.NoError(t, err)
		assert.Contains(t, string(data), "command finished")
	})
}

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		assert.NotNil(t, root)
		assert.Equal(t, "batchview", root.Use)
	})
}
