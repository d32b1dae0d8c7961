package tasks

import (
	"context"
	"sync"
	"time"

	"github.com/kauhanhernandes/portfolio/internal/logging"
)

// Pruner drops idle sessions.
type Pruner interface {
	Prune(now time.Time) int
}

// SessionCleanup handles periodic cleaning of expired sessions
type SessionCleanup struct {
	store    Pruner
	interval time.Duration
	logger   *logging.Logger
	done     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewSessionCleanup creates a new session cleanup task
func NewSessionCleanup(store Pruner, interval time.Duration, logger *logging.Logger) *SessionCleanup {
	return &SessionCleanup{
		store:    store,
		interval: interval,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Start begins the session cleanup task in the background. It runs until
// ctx is cancelled or Stop is called.
func (sc *SessionCleanup) Start(ctx context.Context) {
	sc.wg.Add(1)
	go sc.runPeriodically(ctx)
}

// Stop gracefully stops the cleanup task
func (sc *SessionCleanup) Stop() {
	sc.stopOnce.Do(func() { close(sc.done) })
	sc.wg.Wait()
}

// runPeriodically runs the cleanup task at regular intervals
func (sc *SessionCleanup) runPeriodically(ctx context.Context) {
	defer sc.wg.Done()

	ticker := time.NewTicker(sc.interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			sc.cleanup(now)
		case <-ctx.Done():
			sc.logger.Debug("Session cleanup task stopped: %v", ctx.Err())
			return
		case <-sc.done:
			sc.logger.Debug("Session cleanup task stopped")
			return
		}
	}
}

// cleanup performs the actual session cleanup
func (sc *SessionCleanup) cleanup(now time.Time) {
	if removed := sc.store.Prune(now); removed > 0 {
		sc.logger.Info("Deleted %d expired sessions", removed)
	}
}
