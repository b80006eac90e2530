// Package flowtest provides a manually advanced scheduler for driving
// flow.Controller deterministically in tests.
package flowtest

import (
	"sort"
	"sync"
	"time"

	"github.com/conorfennell/quizflow/internal/flow"
)

// Scheduler runs tasks only when Advance moves its clock past their deadline.
type Scheduler struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []*task
}

type task struct {
	s       *Scheduler
	at      time.Duration
	seq     int
	fn      func()
	stopped bool
	fired   bool
}

func (t *task) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// New returns a scheduler whose clock starts at zero.
func New() *Scheduler {
	return &Scheduler{}
}

// AfterFunc implements flow.Scheduler.
func (s *Scheduler) AfterFunc(d time.Duration, f func()) flow.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	t := &task{s: s, at: s.now + d, seq: s.seq, fn: f}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves the clock forward by d, running every task that comes due
// in deadline order. Tasks scheduled by running tasks are included.
func (s *Scheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}
		s.now = next.at
		next.fired = true
		s.mu.Unlock()
		next.fn()
		s.mu.Lock()
	}
	s.now = target
	s.compact()
	s.mu.Unlock()
}

// Pending returns the number of tasks that are neither stopped nor run.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.tasks {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// Now returns the elapsed scheduler time.
func (s *Scheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

func (s *Scheduler) nextDue(target time.Duration) *task {
	var due []*task
	for _, t := range s.tasks {
		if !t.stopped && !t.fired && t.at <= target {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].at != due[j].at {
			return due[i].at < due[j].at
		}
		return due[i].seq < due[j].seq
	})
	return due[0]
}

func (s *Scheduler) compact() {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.stopped && !t.fired {
			live = append(live, t)
		}
	}
	s.tasks = live
}
