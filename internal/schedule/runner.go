package schedule

import (
	"context"
	"log/slog"
	"time"
)

// Runner drives a task forever. A failed run is logged and followed by a
// backoff pause, then the task starts over from scratch. The runner only
// stops when the context is cancelled.
type Runner struct {
	task    Task
	backoff time.Duration
}

func NewRunner(task Task, backoff time.Duration) *Runner {
	return &Runner{
		task:    task,
		backoff: backoff,
	}
}

func (r *Runner) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		if err := r.task.Run(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			slog.Error("task failed, backing off", "task", r.task.Name(), "backoff", r.backoff, "error", err)
			timer := time.NewTimer(r.backoff)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}
}
