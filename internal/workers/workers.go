package workers

import (
	"context"
	"sync"
	"time"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in its own goroutine and returns once all of them
// have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		worker := worker
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}

// ticker calls task right away and then once per interval.
type ticker struct {
	interval time.Duration
	task     func(ctx context.Context)
}

func NewTicker(interval time.Duration, task func(ctx context.Context)) Worker {
	return &ticker{interval: interval, task: task}
}

func (t *ticker) Run(ctx context.Context) {
	t.task(ctx)

	tick := time.NewTicker(t.interval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			t.task(ctx)
		}
	}
}
