package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/batchview/internal/cli/output"
	"github.com/rshade/batchview/internal/engine/batch"
	"github.com/rshade/batchview/pkg/batched"
)

type splitParams struct {
	size     int
	reverse  bool
	progress bool
}

// NewSplitCmd creates the split command, which prints every batch of the
// input lines.
func NewSplitCmd() *cobra.Command {
	var params splitParams

	cmd := &cobra.Command{
		Use:   "split [file]",
		Short: "Split input lines into fixed-size batches",
		Long: `Reads lines from a file (or stdin when no file or "-" is given) and prints
them grouped into consecutive batches. Every batch has --size lines except the
last, which holds the remainder.`,
		Example: `  # Batches of 100 lines (size from config when omitted)
  batchview split --size 100 input.txt

  # Last batch first
  batchview split --size 10 --reverse input.txt

  # Stream batches as NDJSON and log progress to stderr
  cat input.txt | batchview split --size 500 --output ndjson --progress`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd, args, params)
		},
	}

	cmd.Flags().IntVarP(&params.size, "size", "s", 0, "lines per batch (default from config)")
	cmd.Flags().BoolVarP(&params.reverse, "reverse", "r", false, "print batches last to first")
	cmd.Flags().BoolVar(&params.progress, "progress", false, "log progress after each batch")

	return cmd
}

func runSplit(cmd *cobra.Command, args []string, params splitParams) error {
	ctx := cmd.Context()

	size, err := resolveBatchSize(params.size)
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

	view := batched.ArrayOf(lines).Batched(size)
	var batches batch.Batches[[]string] = view
	if params.reverse {
		batches = batch.Reverse(view)
	}

	proc, err := batch.NewProcessor[[]string](size)
	if err != nil {
		return err
	}
	proc = withProgress(ctx, proc, params.progress)

	seq, procErr := processed(ctx, proc, batches)
	summary := output.Summary{TotalItems: len(lines), TotalBatches: view.Count(), BatchSize: size}
	if err = renderer.Batches(summary, seq); err != nil {
		return err
	}
	return procErr()
}
