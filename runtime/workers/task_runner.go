package workers

import (
	"chat-relay/errors"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

const defaultTaskTimeout = 10 * time.Second

type TaskError struct {
	Name string
	Err  error
	At   time.Time
}

// TaskRunner spawns fire-and-forget side effects. A task never reports to
// the request that spawned it: failures and panics go to the runner's error
// channel, drained by a TaskReporter.
type TaskRunner struct {
	errs    chan TaskError
	slots   chan struct{}
	timeout time.Duration
	wg      sync.WaitGroup
	log     *slog.Logger
}

func NewTaskRunner(log *slog.Logger, maxInFlight, errorBuffer int, timeout time.Duration) *TaskRunner {
	if timeout <= 0 {
		timeout = defaultTaskTimeout
	}
	return &TaskRunner{
		errs:    make(chan TaskError, max(errorBuffer, 1)),
		slots:   make(chan struct{}, max(maxInFlight, 1)),
		timeout: timeout,
		log:     log,
	}
}

// Spawn never blocks. When every slot is taken the task is rejected and the
// rejection is reported like any other failure.
func (r *TaskRunner) Spawn(name string, task func(ctx context.Context) error) {
	select {
	case r.slots <- struct{}{}:
	default:
		r.report(TaskError{Name: name, Err: fmt.Errorf("too many tasks in flight: %w", errors.ErrOperationFailed), At: time.Now().UTC()})
		return
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer func() { <-r.slots }()

		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()
		if err := runSafely(ctx, task); err != nil {
			r.report(TaskError{Name: name, Err: err, At: time.Now().UTC()})
		}
	}()
}

func (r *TaskRunner) Errors() <-chan TaskError {
	return r.errs
}

// Wait blocks until every spawned task returned.
func (r *TaskRunner) Wait() {
	r.wg.Wait()
}

func (r *TaskRunner) report(taskErr TaskError) {
	select {
	case r.errs <- taskErr:
	default:
		r.log.Error("Task error channel is full", "task", taskErr.Name, "error", taskErr.Err)
	}
}

func runSafely(ctx context.Context, task func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errors.ErrWorkerPanic, r)
		}
	}()
	return task(ctx)
}
