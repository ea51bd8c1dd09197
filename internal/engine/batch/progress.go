package batch

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// percentMultiplier converts a ratio to a percentage.
const percentMultiplier = 100

// Progress tracks how far a Processor has got. It is safe for concurrent use
// so progress callbacks may hand it to other goroutines (a UI, a ticker).
type Progress struct {
	TotalItems       int
	ProcessedItems   int
	TotalBatches     int
	ProcessedBatches int
	BatchSize        int
	StartTime        time.Time
	LastUpdateTime   time.Time

	mu sync.RWMutex
}

// NewProgress creates a progress tracker starting now.
func NewProgress(totalItems, totalBatches, batchSize int) *Progress {
	now := time.Now()
	return &Progress{
		TotalItems:     totalItems,
		TotalBatches:   totalBatches,
		BatchSize:      batchSize,
		StartTime:      now,
		LastUpdateTime: now,
	}
}

// AddProcessed records one finished batch of itemsProcessed items.
func (p *Progress) AddProcessed(itemsProcessed int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.ProcessedItems += itemsProcessed
	p.ProcessedBatches++
	p.LastUpdateTime = time.Now()
}

// PercentComplete returns the completion percentage (0-100).
func (p *Progress) PercentComplete() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.percent()
}

// IsComplete reports whether every item has been processed.
func (p *Progress) IsComplete() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.ProcessedItems >= p.TotalItems
}

// ElapsedTime returns the time since processing started.
func (p *Progress) ElapsedTime() time.Duration {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return time.Since(p.StartTime)
}

// EstimatedTimeRemaining extrapolates from the average time per item so far.
// It returns 0 until an item has been processed.
func (p *Progress) EstimatedTimeRemaining() time.Duration {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.ProcessedItems == 0 {
		return 0
	}
	perItem := time.Since(p.StartTime) / time.Duration(p.ProcessedItems)
	return perItem * time.Duration(p.TotalItems-p.ProcessedItems)
}

// ItemsPerSecond returns the processing rate.
func (p *Progress) ItemsPerSecond() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.rate()
}

// Snapshot returns a consistent copy of the current state.
func (p *Progress) Snapshot() ProgressSnapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return ProgressSnapshot{
		TotalItems:       p.TotalItems,
		ProcessedItems:   p.ProcessedItems,
		TotalBatches:     p.TotalBatches,
		ProcessedBatches: p.ProcessedBatches,
		BatchSize:        p.BatchSize,
		PercentComplete:  p.percent(),
		ElapsedTime:      time.Since(p.StartTime),
		ItemsPerSecond:   p.rate(),
	}
}

// percent and rate must be called with mu held.
func (p *Progress) percent() float64 {
	if p.TotalItems == 0 {
		return 0
	}
	return float64(p.ProcessedItems) / float64(p.TotalItems) * percentMultiplier
}

func (p *Progress) rate() float64 {
	elapsed := time.Since(p.StartTime).Seconds()
	if elapsed == 0 {
		return 0
	}
	return float64(p.ProcessedItems) / elapsed
}

// ProgressSnapshot is an immutable copy of a Progress.
type ProgressSnapshot struct {
	TotalItems       int
	ProcessedItems   int
	TotalBatches     int
	ProcessedBatches int
	BatchSize        int
	PercentComplete  float64
	ElapsedTime      time.Duration
	ItemsPerSecond   float64
}

// MarshalZerologObject lets a snapshot be logged with Event.Object.
func (s ProgressSnapshot) MarshalZerologObject(e *zerolog.Event) {
	e.Int("items", s.ProcessedItems).
		Int("total_items", s.TotalItems).
		Int("batches", s.ProcessedBatches).
		Int("total_batches", s.TotalBatches).
		Float64("percent", s.PercentComplete).
		Dur("elapsed", s.ElapsedTime)
}
