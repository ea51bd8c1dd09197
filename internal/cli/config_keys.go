package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/rshade/batchview/internal/config"
)

// NewConfigGetCmd creates the config get command.
func NewConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "get KEY",
		Short:     "Print a configuration value",
		Example:   `  batchview config get batch.size`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: config.Keys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := config.GetGlobalConfig().Get(args[0])
			if err != nil {
				return err
			}
			cmd.Println(value)
			return nil
		},
	}
}

// NewConfigSetCmd creates the config set command. The value is validated
// before the file is written.
func NewConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Example: `  batchview config set batch.size 250
  batchview config set output.default_format json`,
		Args:      cobra.ExactArgs(2), //nolint:mnd // KEY and VALUE
		ValidArgs: config.Keys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetGlobalConfig()
			if err := cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}
			logger.Info().Ctx(cmd.Context()).Str("key", args[0]).Str("value", args[1]).Msg("configuration updated")
			cmd.Printf("Set %s = %s\n", args[0], args[1])
			return nil
		},
	}
}

// NewConfigListCmd creates the config list command.
func NewConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			values := config.GetGlobalConfig().List()
			keys := make([]string, 0, len(values))
			for k := range values {
				keys = append(keys, k)
			}
			slices.Sort(keys)
			for _, k := range keys {
				cmd.Printf("%s = %s\n", k, values[k])
			}
			return nil
		},
	}
}
