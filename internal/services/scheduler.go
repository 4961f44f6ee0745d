package services

import (
	"log"
	"sync"
	"time"
)

// Scheduler runs fire-and-forget delayed callbacks keyed by submission
// id, so pending status advances can be cancelled per submission and
// tests can substitute a manual implementation.
type Scheduler interface {
	Schedule(id string, delay time.Duration, fn func())
	Cancel(id string)
	Stop()
}

type timerScheduler struct {
	mu      sync.Mutex
	timers  map[string][]*time.Timer
	stopped bool
}

func NewScheduler() Scheduler {
	return &timerScheduler{
		timers: make(map[string][]*time.Timer),
	}
}

// Schedule implements Scheduler.
func (s *timerScheduler) Schedule(id string, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		log.Printf("⚠️  Scheduler stopped, dropping task for %s\n", id)
		return
	}

	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		fn()
		s.remove(id, timer)
	})
	s.timers[id] = append(s.timers[id], timer)
}

// Cancel implements Scheduler. Pending tasks for the id are stopped;
// tasks that already fired are unaffected.
func (s *timerScheduler) Cancel(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, timer := range s.timers[id] {
		timer.Stop()
	}
	delete(s.timers, id)
}

// Stop implements Scheduler. All pending tasks are discarded.
func (s *timerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	for id, timers := range s.timers {
		for _, timer := range timers {
			timer.Stop()
		}
		delete(s.timers, id)
	}
	log.Println("✅ Scheduler stopped")
}

func (s *timerScheduler) remove(id string, fired *time.Timer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining := s.timers[id][:0]
	for _, timer := range s.timers[id] {
		if timer != fired {
			remaining = append(remaining, timer)
		}
	}
	if len(remaining) == 0 {
		delete(s.timers, id)
	} else {
		s.timers[id] = remaining
	}
}
