package batch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/batchview/pkg/batched"
)

func TestProcessor_Process(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	t.Run("Sequential", func(t *testing.T) {
		p, err := NewProcessor[[]int](10)
		require.NoError(t, err)
		var sizes, indexes []int

		callback := func(_ context.Context, batch []int, batchIndex int) error {
			sizes = append(sizes, len(batch))
			indexes = append(indexes, batchIndex)
			return nil
		}

		view := batched.ArrayOf(items).Batched(p.GetBatchSize())
		require.NoError(t, p.Process(context.Background(), view, callback))
		assert.Equal(t, []int{10, 10, 5}, sizes)
		assert.Equal(t, []int{0, 1, 2}, indexes)
	})

	t.Run("Reverse", func(t *testing.T) {
		p, err := NewProcessor[[]int](10)
		require.NoError(t, err)
		var firsts, indexes []int

		callback := func(_ context.Context, batch []int, batchIndex int) error {
			firsts = append(firsts, batch[0])
			indexes = append(indexes, batchIndex)
			return nil
		}

		view := batched.ArrayOf(items).Batched(10)
		require.NoError(t, p.Process(context.Background(), Reverse(view), callback))
		assert.Equal(t, []int{20, 10, 0}, firsts)
		assert.Equal(t, []int{2, 1, 0}, indexes)
	})

	t.Run("ForwardOnlySource", func(t *testing.T) {
		p, err := NewProcessor[batched.ListSlice[string]](2)
		require.NoError(t, err)
		var counts []int

		callback := func(_ context.Context, batch batched.ListSlice[string], _ int) error {
			counts = append(counts, batch.Count())
			return nil
		}

		view := batched.NewList("a", "b", "c", "d", "e").Batched(2)
		require.NoError(t, p.Process(context.Background(), view, callback))
		assert.Equal(t, []int{2, 2, 1}, counts)
	})

	t.Run("ErrorHandling", func(t *testing.T) {
		p, _ := NewProcessor[[]int](10)
		boom := errors.New("fail")
		callback := func(_ context.Context, _ []int, batchIndex int) error {
			if batchIndex == 1 {
				return boom
			}
			return nil
		}

		err := p.Process(context.Background(), batched.ArrayOf(items).Batched(10), callback)
		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "batch 1 failed")
	})

	t.Run("Cancelled", func(t *testing.T) {
		p, err := NewProcessor[[]int](5)
		require.NoError(t, err)
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		callback := func(_ context.Context, _ []int, _ int) error {
			calls++
			cancel()
			return nil
		}

		err = p.Process(ctx, batched.ArrayOf(items).Batched(5), callback)
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})

	t.Run("EmptyItems", func(t *testing.T) {
		p, err := NewProcessor[[]int](3)
		require.NoError(t, err)
		called := false
		err = p.Process(context.Background(), batched.ArrayOf([]int{}).Batched(3),
			func(context.Context, []int, int) error {
				called = true
				return nil
			})
		require.NoError(t, err)
		assert.False(t, called)
	})

	t.Run("NilCallback", func(t *testing.T) {
		p := NewProcessorWithDefaults[[]int]()
		err := p.Process(context.Background(), batched.ArrayOf(items).Batched(3), nil)
		assert.Equal(t, ErrNilCallback, err)
	})

	t.Run("SizeMismatch", func(t *testing.T) {
		p, err := NewProcessor[[]int](10)
		require.NoError(t, err)
		called := false
		err = p.Process(context.Background(), batched.ArrayOf(items).Batched(5),
			func(context.Context, []int, int) error {
				called = true
				return nil
			})
		require.ErrorIs(t, err, ErrSizeMismatch)
		assert.Contains(t, err.Error(), "view has 5, processor has 10")
		assert.False(t, called)

		err = NewProcessorWithDefaults[[]int]().Process(context.Background(),
			batched.ArrayOf(items).Batched(DefaultBatchSize),
			func(context.Context, []int, int) error { return nil })
		require.NoError(t, err)
	})

	t.Run("InvalidBatchSize", func(t *testing.T) {
		_, err := NewProcessor[[]int](0)
		require.ErrorIs(t, err, ErrInvalidBatchSize)
		_, err = NewProcessor[[]int](MaxBatchSize + 1)
		require.ErrorIs(t, err, ErrInvalidBatchSize)
	})

	t.Run("ProgressCallback", func(t *testing.T) {
		var snaps []ProgressSnapshot
		p, err := NewProcessor[[]int](10)
		require.NoError(t, err)
		p.WithProgressCallback(func(pr *Progress) {
			snaps = append(snaps, pr.Snapshot())
		})

		require.NoError(t, p.Process(context.Background(), batched.ArrayOf(items).Batched(10),
			func(context.Context, []int, int) error { return nil }))

		require.Len(t, snaps, 3)
		last := snaps[2]
		assert.Equal(t, 25, last.TotalItems)
		assert.Equal(t, 25, last.ProcessedItems)
		assert.Equal(t, 3, last.TotalBatches)
		assert.Equal(t, 3, last.ProcessedBatches)
		assert.Equal(t, 10, last.BatchSize)
		assert.InDelta(t, 100.0, last.PercentComplete, 0.001)
		assert.Equal(t, 20, snaps[1].ProcessedItems)
	})
}

func TestProgress(t *testing.T) {
	p := NewProgress(100, 10, 10)

	assert.Equal(t, 0.0, p.PercentComplete())
	assert.False(t, p.IsComplete())
	assert.Equal(t, time.Duration(0), p.EstimatedTimeRemaining())

	p.AddProcessed(10)
	assert.Equal(t, 10.0, p.PercentComplete())
	assert.Equal(t, 10, p.ProcessedItems)
	assert.Equal(t, 1, p.ProcessedBatches)

	time.Sleep(time.Millisecond)
	p.AddProcessed(40)
	assert.Greater(t, p.ItemsPerSecond(), 0.0)
	assert.Greater(t, p.EstimatedTimeRemaining(), time.Duration(0))

	p.AddProcessed(50)
	assert.Equal(t, 100.0, p.PercentComplete())
	assert.True(t, p.IsComplete())
	assert.Greater(t, p.ElapsedTime(), time.Duration(0))

	snap := p.Snapshot()
	assert.Equal(t, p.TotalItems, snap.TotalItems)
	assert.Equal(t, p.ProcessedItems, snap.ProcessedItems)

	t.Run("empty total", func(t *testing.T) {
		empty := NewProgress(0, 0, 5)
		assert.Equal(t, 0.0, empty.PercentComplete())
		assert.True(t, empty.IsComplete())
	})
}

func TestProcessor_CalculateBatches(t *testing.T) {
	p, _ := NewProcessor[[]int](10)

	batches := p.CalculateBatches(25)
	require.Len(t, batches, 3)
	assert.Equal(t, [2]int{0, 10}, batches[0])
	assert.Equal(t, [2]int{10, 20}, batches[1])
	assert.Equal(t, [2]int{20, 25}, batches[2])
	assert.Equal(t, 10, p.GetBatchSize())

	assert.Empty(t, p.CalculateBatches(0))
	assert.Equal(t, [][2]int{{0, 10}, {10, 20}}, p.CalculateBatches(20))
}
