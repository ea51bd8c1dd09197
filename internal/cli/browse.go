package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/batchview/internal/tui"
	"github.com/rshade/batchview/pkg/batched"
)

// errNotInteractive is returned by browse when stdout is not a terminal.
var errNotInteractive = errors.New("browse requires an interactive terminal; use split or page instead")

// NewBrowseCmd creates the browse command, an interactive pager that shows
// one batch of the input at a time.
func NewBrowseCmd() *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "browse FILE",
		Short: "Browse input lines batch by batch",
		Long: `Opens an interactive pager over the batches of FILE. Use ←/→ to move
between batches, ↑/↓ to scroll within one, and q to quit.`,
		Example: `  batchview browse --size 50 input.txt`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, ok := cmd.OutOrStdout().(*os.File)
			if !ok || !isTerminal(out) {
				return errNotInteractive
			}

			n, err := resolveBatchSize(size)
			if err != nil {
				return err
			}
			lines, err := readLines(cmd, args)
			if err != nil {
				return err
			}

			view := batched.ArrayOf(lines).Batched(n)
			model := tui.NewPagerModel[[]string](args[0], view, tui.StringItems)

			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err = p.Run(); err != nil {
				return fmt.Errorf("failed to run interactive TUI: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&size, "size", "s", 0, "lines per batch (default from config)")

	return cmd
}
