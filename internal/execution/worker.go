package execution

import (
	"context"
	"sync"
	"time"

	"zrep/internal/config"
	"zrep/internal/domain"
	"zrep/internal/ui"
)

// EventHandler receives finished tests. It must be safe for concurrent use.
type EventHandler interface {
	OnTestEnd(event domain.TestEvent)
}

// Stats summarizes the events delivered by a WorkerPool
type Stats struct {
	Total    int
	Passed   int
	Failed   int
	Skipped  int
	Duration time.Duration
}

// WorkerPool delivers test events to a handler from several goroutines,
// the way a parallel test runner reports finished tests.
type WorkerPool struct {
	workers  int
	handler  EventHandler
	progress *ui.ProgressBar
}

// NewWorkerPool creates a new WorkerPool
func NewWorkerPool(cfg *config.Config, handler EventHandler) *WorkerPool {
	return &WorkerPool{
		workers: cfg.Workers,
		handler: handler,
	}
}

// SetProgress sets the progress bar for the worker pool
func (wp *WorkerPool) SetProgress(progress *ui.ProgressBar) {
	wp.progress = progress
}

// Dispatch hands every event from the channel to the handler and returns
// once the channel is closed and all events are handled. After ctx is done
// the remaining events are drained without being handled.
func (wp *WorkerPool) Dispatch(ctx context.Context, events <-chan domain.TestEvent) Stats {
	var mu sync.Mutex
	var stats Stats
	startTime := time.Now()
	workerCount := wp.workers
	if workerCount <= 0 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	for i := 1; i <= workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for event := range events {
				if ctx.Err() != nil {
					continue
				}
				wp.handler.OnTestEnd(event)

				mu.Lock()
				stats.Total++
				switch domain.ZephyrStatus(event.Status) {
				case domain.StatusPass:
					stats.Passed++
				case domain.StatusFail, domain.StatusBlocked:
					stats.Failed++
				default:
					stats.Skipped++
				}
				if wp.progress != nil {
					wp.progress.Update(stats.Passed, stats.Failed, stats.Skipped)
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if wp.progress != nil {
		wp.progress.Finish()
	}
	stats.Duration = time.Since(startTime)
	return stats
}

// Feed returns a closed channel preloaded with events.
func Feed(events []domain.TestEvent) <-chan domain.TestEvent {
	ch := make(chan domain.TestEvent, len(events))
	for _, e := range events {
		ch <- e
	}
	close(ch)
	return ch
}
