package generator

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/yatraflow/yatraflow/internal/domain"
	"github.com/yatraflow/yatraflow/internal/repository"
)

// Feed is the periodic synthetic writer. Start and Stop are structurally
// idempotent: the idle/running state lives behind a mutex, so a second
// Start cannot leak a ticker and Stop on an idle feed is a no-op. An
// in-flight tick always completes.
type Feed struct {
	reports  repository.ReportRepository
	interval time.Duration
	logger   *zap.Logger

	mu      sync.Mutex
	running bool
	stop    chan struct{}
	done    chan struct{}
}

// NewFeed constructs an idle feed.
func NewFeed(reports repository.ReportRepository, interval time.Duration, logger *zap.Logger) *Feed {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &Feed{reports: reports, interval: interval, logger: logger}
}

// Start launches the ticker goroutine if not already running.
func (f *Feed) Start() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.running {
		return
	}
	f.running = true
	f.stop = make(chan struct{})
	f.done = make(chan struct{})

	go f.run(f.stop, f.done)
	f.logger.Info("synthetic feed started", zap.Duration("interval", f.interval))
}

// Stop cancels future ticks and waits for the loop to exit.
func (f *Feed) Stop() {
	f.mu.Lock()
	if !f.running {
		f.mu.Unlock()
		return
	}
	f.running = false
	stop, done := f.stop, f.done
	f.mu.Unlock()

	close(stop)
	<-done
	f.logger.Info("synthetic feed stopped")
}

// Running reports whether the feed is active.
func (f *Feed) Running() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.running
}

func (f *Feed) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			f.tick()
		}
	}
}

// tick prepends a fresh batch to the current collection in one bulk
// replacement, the same way the dashboard's live feed merges data.
func (f *Feed) tick() {
	batch := NewBatch()
	current := f.reports.List()
	merged := make([]domain.Report, 0, len(batch)+len(current))
	merged = append(merged, batch...)
	merged = append(merged, current...)
	f.reports.ReplaceAll(context.Background(), merged)
}
