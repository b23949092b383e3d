package core

import (
	"sort"
	"time"
)

// Scheduler is a single-threaded timeline of fire-once deferred callbacks.
// The platform advances it from its tick loop; nothing runs on its own
// goroutine, so callbacks never race with input handling.
type Scheduler struct {
	now    time.Duration
	seq    uint64
	timers []timer // sorted by (at, seq)
}

type timer struct {
	at  time.Duration
	seq uint64
	fn  func()
}

// NewScheduler creates an empty scheduler positioned at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the current position on the timeline.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once, d after the current time.
// Negative delays are treated as zero. Callbacks due at the same instant
// run in the order they were scheduled.
func (s *Scheduler) After(d time.Duration, fn func()) {
	if fn == nil {
		return
	}
	if d < 0 {
		d = 0
	}
	s.seq++
	t := timer{at: s.now + d, seq: s.seq, fn: fn}

	i := sort.Search(len(s.timers), func(i int) bool {
		other := s.timers[i]
		if other.at != t.at {
			return other.at > t.at
		}
		return other.seq > t.seq
	})
	s.timers = append(s.timers, timer{})
	copy(s.timers[i+1:], s.timers[i:])
	s.timers[i] = t
}

// Advance moves the timeline forward by d, running every callback that
// becomes due on the way. Callbacks scheduled while advancing also run if
// they fall inside the window. Returns the number of callbacks run.
func (s *Scheduler) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	target := s.now + d
	ran := 0

	for len(s.timers) > 0 && s.timers[0].at <= target {
		t := s.timers[0]
		s.timers = s.timers[1:]
		s.now = t.at
		t.fn()
		ran++
	}

	s.now = target
	return ran
}

// RunAll advances until no callbacks remain, up to limit callbacks.
// Returns the number of callbacks run.
func (s *Scheduler) RunAll(limit int) int {
	ran := 0
	for len(s.timers) > 0 && ran < limit {
		ran += s.Advance(s.timers[0].at - s.now)
	}
	return ran
}

// Pending returns the number of callbacks not yet run.
func (s *Scheduler) Pending() int {
	return len(s.timers)
}
