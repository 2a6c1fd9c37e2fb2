package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/excuse-wheel/core"
)

// RealScheduler backs tasks with wall-clock timers, one goroutine per task
type RealScheduler struct {
	active atomic.Int64
	wg     sync.WaitGroup
}

// NewRealScheduler creates a scheduler driven by the system clock
func NewRealScheduler() *RealScheduler {
	return &RealScheduler{}
}

// Every implements Scheduler
func (s *RealScheduler) Every(interval time.Duration, fn func(now time.Time) bool) *Task {
	t := newTask()
	s.active.Add(1)
	s.wg.Add(1)

	// Use core.Go for safe execution with centralized crash handling
	core.Go(func() {
		defer s.wg.Done()
		defer s.active.Add(-1)
		defer t.finish()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-t.cancel:
				return
			case now := <-ticker.C:
				// Cancellation may race the tick
				if t.Cancelled() {
					return
				}
				if !fn(now) {
					t.Cancel()
					return
				}
			}
		}
	})

	return t
}

// After implements Scheduler
func (s *RealScheduler) After(delay time.Duration, fn func(now time.Time)) *Task {
	t := newTask()
	s.active.Add(1)
	s.wg.Add(1)

	core.Go(func() {
		defer s.wg.Done()
		defer s.active.Add(-1)
		defer t.finish()

		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-t.cancel:
		case now := <-timer.C:
			if !t.Cancelled() {
				fn(now)
			}
		}
	})

	return t
}

// Active returns the number of tasks whose goroutine has not exited
func (s *RealScheduler) Active() int {
	return int(s.active.Load())
}

// Wait blocks until every task has finished
func (s *RealScheduler) Wait() {
	s.wg.Wait()
}
