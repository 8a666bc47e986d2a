package service

import (
	"context"
	"sync"
	"time"
)

type reconcileJob struct {
	areas AreaSyncService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewReconcileJob creates a reconcileJob that calls areas.ReconcileAll on a
// ticker. The job is idle until Start is called.
func NewReconcileJob(areas AreaSyncService) ReconcileJob {
	return &reconcileJob{areas: areas}
}

// Start implements ReconcileJob. It stops any previously running job, then
// launches a background goroutine that replays pending mutations every
// interval. If interval is zero or negative it defaults to one minute. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *reconcileJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_ = j.areas.ReconcileAll(jobCtx)
			}
		}
	}()
}

// Stop implements ReconcileJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *reconcileJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
