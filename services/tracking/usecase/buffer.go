package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/hushryd/tracking-service/internal/pkg/logger"
	"github.com/hushryd/tracking-service/internal/pkg/models"
	"github.com/hushryd/tracking-service/services/tracking"
)

// Buffer is the write-behind buffer between per-tick GPS ingestion and bulk
// history persistence. A crash loses at most one flush interval of history;
// the cache stays authoritative for "current" location regardless.
type Buffer struct {
	history      tracking.HistoryRepo
	threshold    int
	maxCarryover int
	perTripLimit int
	interval     time.Duration

	mu      sync.Mutex
	entries []models.TrackingHistoryEntry

	kick     chan struct{}
	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	started  bool
}

// NewBuffer creates the location batching buffer
func NewBuffer(history tracking.HistoryRepo, cfg models.TrackingConfig) *Buffer {
	threshold := cfg.FlushThreshold
	if threshold <= 0 {
		threshold = 50
	}
	interval := time.Duration(cfg.FlushIntervalSeconds) * time.Second
	if interval <= 0 {
		interval = 30 * time.Second
	}
	perTripLimit := cfg.HistoryLimitPerTrip
	if perTripLimit <= 0 {
		perTripLimit = 1000
	}

	return &Buffer{
		history:      history,
		threshold:    threshold,
		maxCarryover: threshold * 3,
		perTripLimit: perTripLimit,
		interval:     interval,
		entries:      make([]models.TrackingHistoryEntry, 0, threshold),
		kick:         make(chan struct{}, 1),
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}
}

// Append accumulates one entry and signals an immediate flush when the size
// threshold is reached
func (b *Buffer) Append(entry models.TrackingHistoryEntry) {
	b.mu.Lock()
	b.entries = append(b.entries, entry)
	full := len(b.entries) >= b.threshold
	b.mu.Unlock()

	if full {
		select {
		case b.kick <- struct{}{}:
		default: // a flush is already pending
		}
	}
}

// Len returns the number of buffered entries
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Flush swaps the buffer and attempts bulk persistence. On failure the
// batch is re-enqueued ahead of newer entries, bounded to avoid unbounded
// growth while the store is down.
func (b *Buffer) Flush(ctx context.Context) error {
	b.mu.Lock()
	if len(b.entries) == 0 {
		b.mu.Unlock()
		return nil
	}
	batch := b.entries
	b.entries = make([]models.TrackingHistoryEntry, 0, b.threshold)
	b.mu.Unlock()

	err := b.history.BulkInsert(ctx, batch, b.perTripLimit)
	if err == nil {
		logger.Debug("Flushed tracking history batch", logger.Int("entries", len(batch)))
		return nil
	}

	b.mu.Lock()
	requeued := append(batch, b.entries...)
	if len(requeued) > b.maxCarryover {
		dropped := len(requeued) - b.maxCarryover
		requeued = requeued[dropped:]
		logger.Warn("History buffer over carryover bound, dropping oldest entries",
			logger.Int("dropped", dropped))
	}
	b.entries = requeued
	b.mu.Unlock()

	logger.Warn("History flush failed, batch re-enqueued",
		logger.Int("entries", len(batch)),
		logger.Err(err))
	return err
}

// Start runs the periodic flush loop until Stop is called
func (b *Buffer) Start() {
	b.mu.Lock()
	b.started = true
	b.mu.Unlock()

	go func() {
		defer close(b.done)
		ticker := time.NewTicker(b.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				_ = b.Flush(context.Background())
			case <-b.kick:
				_ = b.Flush(context.Background())
			case <-b.stop:
				return
			}
		}
	}()
}

// Stop halts the flush loop and performs a final flush
func (b *Buffer) Stop(ctx context.Context) error {
	b.stopOnce.Do(func() {
		close(b.stop)
		b.mu.Lock()
		started := b.started
		b.mu.Unlock()
		if started {
			<-b.done
		}
	})
	return b.Flush(ctx)
}
