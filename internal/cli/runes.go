package cli

import (
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/rshade/batchview/internal/cli/output"
	"github.com/rshade/batchview/internal/engine/batch"
	"github.com/rshade/batchview/pkg/batched"
)

// NewRunesCmd creates the runes command, which splits text into batches of
// characters. Multi-byte characters are never split.
func NewRunesCmd() *cobra.Command {
	var (
		size    int
		reverse bool
	)

	cmd := &cobra.Command{
		Use:   "runes TEXT...",
		Short: "Split text into batches of characters",
		Long: `Splits TEXT (multiple arguments are joined with spaces) into consecutive
batches of --size characters. Each batch is printed as a substring.`,
		Example: `  # "héll" "o, w" "örld"
  batchview runes --size 4 "héllo, wörld"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := resolveBatchSize(size)
			if err != nil {
				return err
			}
			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}

			text := batched.Text(strings.Join(args, " "))
			view := text.Batched(n)

			var batches batch.Batches[string] = view
			if reverse {
				batches = batch.Reverse(view)
			}

			proc, err := batch.NewProcessor[string](n)
			if err != nil {
				return err
			}

			seq, procErr := processed(cmd.Context(), proc, batches)
			summary := output.Summary{
				TotalItems:   utf8.RuneCountInString(string(text)),
				TotalBatches: view.Count(),
				BatchSize:    n,
			}
			if err = renderer.Batches(summary, mapBatches(seq, func(s string) []string {
				return []string{s}
			})); err != nil {
				return err
			}
			return procErr()
		},
	}

	cmd.Flags().IntVarP(&size, "size", "s", 0, "characters per batch (default from config)")
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "print batches last to first")

	return cmd
}
