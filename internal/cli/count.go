package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/batchview/internal/cli/output"
	"github.com/rshade/batchview/pkg/batched"
)

// NewCountCmd creates the count command, which reports how many batches the
// input splits into.
func NewCountCmd() *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "count [file]",
		Short: "Count input lines and batches",
		Example: `  # How many batches of 1000 lines?
  batchview count --size 1000 input.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := resolveBatchSize(size)
			if err != nil {
				return err
			}
			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}
			lines, err := readLines(cmd, args)
			if err != nil {
				return err
			}

			view := batched.ArrayOf(lines).Batched(n)
			return renderer.Summary(output.Summary{
				TotalItems:   len(lines),
				TotalBatches: view.Count(),
				BatchSize:    view.BatchSize(),
			})
		},
	}

	cmd.Flags().IntVarP(&size, "size", "s", 0, "lines per batch (default from config)")

	return cmd
}
