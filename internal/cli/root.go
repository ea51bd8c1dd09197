package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/batchview/internal/config"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the batchview CLI.
// It loads configuration, wires up logging and tracing, and registers the
// subcommands.
func NewRootCmd(ver string) *cobra.Command {
	cmd, _ := NewRootCmdWithCleanup(ver)
	return cmd
}

// NewRootCmdWithCleanup is NewRootCmd plus a function that closes the log
// file opened for the run. Cobra skips PersistentPostRunE when RunE fails,
// so callers should defer the cleanup after Execute. It may be called more
// than once.
func NewRootCmdWithCleanup(ver string) (*cobra.Command, func() error) {
	var logs logSession

	cmd := &cobra.Command{
		Use:   "batchview",
		Short: "Split sequences into fixed-size batches without copying them",
		Long: `batchview partitions lines, integer ranges and text into consecutive
batches of a fixed size. Batches are computed lazily from the input; nothing
is copied until it is printed.`,
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			logs.start(cmd, setupLogging(cmd))
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return logs.close()
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default $BATCHVIEW_HOME/config.yaml)")
	cmd.PersistentFlags().String("log-level", "", "log level: trace, debug, info, warn, error")
	cmd.PersistentFlags().StringP("output", "o", "", "output format: table, json, ndjson, yaml (default from config)")

	cmd.AddCommand(
		NewSplitCmd(), NewPageCmd(), NewCountCmd(),
		NewRangeCmd(), NewRunesCmd(), NewBrowseCmd(),
		newConfigCmd(),
	)

	return cmd, logs.close
}

// loadConfig reads the config file named by --config, or the default path,
// and installs it as the global config.
func loadConfig(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	config.SetGlobalConfig(cfg)
	return nil
}

const rootCmdExample = `  # Split a file into batches of 100 lines
  batchview split --size 100 input.txt

  # Read from stdin and emit one JSON object per batch
  cat input.txt | batchview split --size 10 --output ndjson

  # Show the third page of 20 lines
  batchview page --page 3 --page-size 20 input.txt

  # Batch the integers 1 through 10 in threes, last batch first
  batchview range 1 10 --closed --size 3 --reverse

  # Batch the characters of a string
  batchview runes --size 4 "héllo, wörld"

  # Browse batches interactively
  batchview browse --size 50 input.txt

  # Set configuration values
  batchview config set batch.size 250`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigSetCmd(), NewConfigGetCmd(),
		NewConfigListCmd(), NewConfigValidateCmd(),
	)
	return cmd
}
