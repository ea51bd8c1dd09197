package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/batchview/internal/cli/output"
	"github.com/rshade/batchview/internal/config"
	"github.com/rshade/batchview/internal/engine/batch"
	"github.com/rshade/batchview/internal/logging"
)

// maxLineSize is the longest input line accepted.
const maxLineSize = 1 << 20

// errStopped ends a Processor run early when the consumer stops iterating.
var errStopped = errors.New("iteration stopped")

// readLines reads newline-separated input from the file named by args[0],
// or from the command's stdin when no file (or "-") is given.
func readLines(cmd *cobra.Command, args []string) ([]string, error) {
	var r io.Reader = cmd.InOrStdin()
	name := "stdin"

	if len(args) > 0 && args[0] != "-" {
		name = args[0]
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	logging.FromContext(cmd.Context()).Debug().Ctx(cmd.Context()).
		Str("input", name).Int("lines", len(lines)).Msg("input loaded")
	return lines, nil
}

// resolveBatchSize returns size, or the configured batch size when size is
// zero, validated against the processor's bounds.
func resolveBatchSize(size int) (int, error) {
	if size == 0 {
		size = config.GetGlobalConfig().Batch.Size
	}
	if size < batch.MinBatchSize || size > batch.MaxBatchSize {
		return 0, fmt.Errorf("%w: got %d", batch.ErrInvalidBatchSize, size)
	}
	return size, nil
}

// newRenderer builds a renderer for the --output flag, falling back to the
// configured default format.
func newRenderer(cmd *cobra.Command) (*output.Renderer, error) {
	format, _ := cmd.Flags().GetString("output")
	if format == "" {
		format = config.GetGlobalConfig().Output.DefaultFormat
	}
	return output.New(cmd.OutOrStdout(), format)
}

// processed drives batches through a Processor and exposes the batches it
// hands to the callback as an iterator. The returned error function reports
// the processing error once iteration has finished.
func processed[S any](
	ctx context.Context,
	proc *batch.Processor[S],
	batches batch.Batches[S],
) (iter.Seq2[int, S], func() error) {
	var procErr error

	seq := func(yield func(int, S) bool) {
		procErr = proc.Process(ctx, batches, func(_ context.Context, b S, i int) error {
			if !yield(i, b) {
				return errStopped
			}
			return nil
		})
	}

	errFn := func() error {
		if errors.Is(procErr, errStopped) {
			return nil
		}
		return procErr
	}
	return seq, errFn
}

// mapBatches converts each batch to display strings.
func mapBatches[S any](seq iter.Seq2[int, S], items func(S) []string) iter.Seq2[int, []string] {
	return func(yield func(int, []string) bool) {
		for i, b := range seq {
			if !yield(i, items(b)) {
				return
			}
		}
	}
}

// withProgress attaches a progress logger to proc when enabled.
func withProgress[S any](ctx context.Context, proc *batch.Processor[S], enabled bool) *batch.Processor[S] {
	if !enabled {
		return proc
	}
	log := logging.FromContext(ctx)
	return proc.WithProgressCallback(func(p *batch.Progress) {
		log.Info().Ctx(ctx).Object("progress", p.Snapshot()).
			Dur("eta", p.EstimatedTimeRemaining()).Msg("batch progress")
	})
}
