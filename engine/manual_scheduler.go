package engine

import (
	"sort"
	"sync"
	"time"
)

// manualEntry is a pending task in a ManualScheduler
type manualEntry struct {
	task     *Task
	due      time.Time
	interval time.Duration // Zero for one-shot
	seq      uint64        // Registration order breaks ties
	every    func(time.Time) bool
	once     func(time.Time)
}

// ManualScheduler fires tasks only when time is advanced explicitly
// Callbacks run synchronously on the goroutine calling Advance
type ManualScheduler struct {
	mu      sync.Mutex
	clock   *ManualClock
	entries []*manualEntry
	seq     uint64
}

// NewManualScheduler creates a scheduler sharing the given mock clock
func NewManualScheduler(clock *ManualClock) *ManualScheduler {
	return &ManualScheduler{clock: clock}
}

// Every implements Scheduler
func (s *ManualScheduler) Every(interval time.Duration, fn func(now time.Time) bool) *Task {
	return s.add(interval, interval, fn, nil)
}

// After implements Scheduler
func (s *ManualScheduler) After(delay time.Duration, fn func(now time.Time)) *Task {
	return s.add(delay, 0, nil, fn)
}

func (s *ManualScheduler) add(delay, interval time.Duration, every func(time.Time) bool, once func(time.Time)) *Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := newTask()
	s.seq++
	s.entries = append(s.entries, &manualEntry{
		task:     t,
		due:      s.clock.Now().Add(delay),
		interval: interval,
		seq:      s.seq,
		every:    every,
		once:     once,
	})
	return t
}

// Advance moves the clock forward by d, firing every task that comes due in time order
func (s *ManualScheduler) Advance(d time.Duration) {
	target := s.clock.Now().Add(d)

	for {
		e := s.nextDue(target)
		if e == nil {
			break
		}

		s.clock.Set(e.due)
		now := e.due

		if e.every != nil {
			if !e.every(now) {
				e.task.Cancel()
			}
			s.mu.Lock()
			e.due = e.due.Add(e.interval)
			s.mu.Unlock()
		} else {
			e.once(now)
			e.task.Cancel()
		}
	}

	s.clock.Set(target)
	s.prune()
}

// nextDue pops the earliest live entry due at or before target without removing repeaters
func (s *ManualScheduler) nextDue(target time.Time) *manualEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked()

	sort.SliceStable(s.entries, func(i, j int) bool {
		if s.entries[i].due.Equal(s.entries[j].due) {
			return s.entries[i].seq < s.entries[j].seq
		}
		return s.entries[i].due.Before(s.entries[j].due)
	})

	if len(s.entries) == 0 || s.entries[0].due.After(target) {
		return nil
	}
	return s.entries[0]
}

func (s *ManualScheduler) prune() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()
}

func (s *ManualScheduler) pruneLocked() {
	live := s.entries[:0]
	for _, e := range s.entries {
		if e.task.Cancelled() {
			e.task.finish()
			continue
		}
		live = append(live, e)
	}
	// Drop references held past the new length
	for i := len(live); i < len(s.entries); i++ {
		s.entries[i] = nil
	}
	s.entries = live
}

// Pending returns the number of live tasks
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()
	return len(s.entries)
}
