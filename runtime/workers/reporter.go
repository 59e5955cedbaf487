package workers

import (
	"context"
	"log/slog"
)

// TaskReporter logs the failures of fire-and-forget tasks.
type TaskReporter struct {
	errs <-chan TaskError
	log  *slog.Logger
}

func NewTaskReporter(log *slog.Logger, errs <-chan TaskError) *TaskReporter {
	return &TaskReporter{errs: errs, log: log}
}

func (w *TaskReporter) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping task reporter")
			return nil
		case taskErr := <-w.errs:
			w.log.Error("Background task failed",
				"task", taskErr.Name, "at", taskErr.At, "error", taskErr.Err)
		}
	}
}
