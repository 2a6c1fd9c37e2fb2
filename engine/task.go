package engine

import (
	"sync"
	"time"
)

// Scheduler runs deferred and repeating callbacks
// Callbacks may run on a goroutine other than the caller's
type Scheduler interface {
	// Every calls fn each interval until fn returns false or the task is cancelled
	Every(interval time.Duration, fn func(now time.Time) bool) *Task

	// After calls fn once after delay unless the task is cancelled first
	After(delay time.Duration, fn func(now time.Time)) *Task
}

// Task is the cancellation token for a scheduled callback
type Task struct {
	cancel     chan struct{}
	cancelOnce sync.Once
	done       chan struct{}
	doneOnce   sync.Once
}

func newTask() *Task {
	return &Task{
		cancel: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Cancel stops future invocations, safe to call repeatedly and from within the callback
func (t *Task) Cancel() {
	t.cancelOnce.Do(func() { close(t.cancel) })
}

// Cancelled reports whether Cancel has been called
func (t *Task) Cancelled() bool {
	select {
	case <-t.cancel:
		return true
	default:
		return false
	}
}

// Done is closed once the task will never run its callback again
func (t *Task) Done() <-chan struct{} {
	return t.done
}

func (t *Task) finish() {
	t.doneOnce.Do(func() { close(t.done) })
}
