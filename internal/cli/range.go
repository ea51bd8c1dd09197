package cli

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rshade/batchview/internal/cli/output"
	"github.com/rshade/batchview/internal/engine/batch"
	"github.com/rshade/batchview/pkg/batched"
)

// errEmptyClosedRange is returned for --closed ranges with LO > HI.
var errEmptyClosedRange = errors.New("closed range requires LO <= HI")

// errRangeTooLarge is returned when the range holds more than math.MaxInt values.
var errRangeTooLarge = errors.New("range holds more values than fit in an int")

type rangeParams struct {
	size    int
	closed  bool
	reverse bool
	bounds  bool
}

// NewRangeCmd creates the range command, which batches an integer range.
func NewRangeCmd() *cobra.Command {
	var params rangeParams

	cmd := &cobra.Command{
		Use:   "range LO HI",
		Short: "Split an integer range into batches",
		Long: `Splits the half-open range [LO, HI) into batches. With --closed the range is
[LO, HI] and must not be empty. A half-open range with LO >= HI has no batches.`,
		Example: `  # 0..9 in batches of 4: [0 1 2 3] [4 5 6 7] [8 9]
  batchview range 0 10 --size 4

  # Only the bounds of each batch of a large range
  batchview range 0 1000000 --size 10000 --bounds`,
		Args: cobra.ExactArgs(2), //nolint:mnd // LO and HI
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRange(cmd, args, params)
		},
	}

	cmd.Flags().IntVarP(&params.size, "size", "s", 0, "values per batch (default from config)")
	cmd.Flags().BoolVar(&params.closed, "closed", false, "include HI in the range")
	cmd.Flags().BoolVarP(&params.reverse, "reverse", "r", false, "print batches last to first")
	cmd.Flags().BoolVar(&params.bounds, "bounds", false, "print each batch's bounds instead of its values")

	return cmd
}

func runRange(cmd *cobra.Command, args []string, params rangeParams) error {
	lo, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid LO %q: %w", args[0], err)
	}
	hi, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid HI %q: %w", args[1], err)
	}
	if params.closed && lo > hi {
		return fmt.Errorf("%w: got [%d, %d]", errEmptyClosedRange, lo, hi)
	}
	if rangeOverflows(lo, hi, params.closed) {
		return fmt.Errorf("%w: got LO=%d HI=%d", errRangeTooLarge, lo, hi)
	}

	size, err := resolveBatchSize(params.size)
	if err != nil {
		return err
	}
	renderer, err := newRenderer(cmd)
	if err != nil {
		return err
	}

	var view *batched.BidirectionalView[int, batched.Range]
	if params.closed {
		view = batched.NewClosedRange(lo, hi).Batched(size)
	} else {
		view = batched.Range{Lo: lo, Hi: hi}.Batched(size)
	}

	var batches batch.Batches[batched.Range] = view
	if params.reverse {
		batches = batch.Reverse(view)
	}

	proc, err := batch.NewProcessor[batched.Range](size)
	if err != nil {
		return err
	}

	items := rangeValues
	if params.bounds {
		items = func(r batched.Range) []string { return []string{r.String()} }
	}

	seq, procErr := processed(cmd.Context(), proc, batches)
	summary := output.Summary{
		TotalItems:   view.Source().Count(),
		TotalBatches: view.Count(),
		BatchSize:    size,
	}
	if err = renderer.Batches(summary, mapBatches(seq, items)); err != nil {
		return err
	}
	return procErr()
}

// rangeOverflows reports whether the range's element count or end position
// cannot be represented as an int. A closed range ends at HI+1.
func rangeOverflows(lo, hi int, closed bool) bool {
	if closed {
		span := hi - lo
		return hi == math.MaxInt || span < 0 || span == math.MaxInt
	}
	return hi > lo && hi-lo < 0
}

func rangeValues(r batched.Range) []string {
	out := make([]string, 0, r.Count())
	for v := range r.Values() {
		out = append(out, strconv.Itoa(v))
	}
	return out
}
