package skillfield

import "time"

// TimerHandle identifies a scheduled callback. The zero handle is never
// issued, so it can be used as "no timer".
type TimerHandle uint64

// Scheduler runs callbacks after a delay. Callbacks run on the goroutine that
// drives the scheduler, interleaved with pointer events and ticks.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) TimerHandle
	Cancel(h TimerHandle)
}

// advancer is implemented by schedulers driven from Engine.Tick.
type advancer interface {
	Advance(d time.Duration)
}

type timer struct {
	id       TimerHandle
	deadline time.Duration
	fn       func()
}

// TickScheduler is a deterministic Scheduler on a virtual clock. Time only
// moves when Advance is called, which makes decay timing reproducible in
// tests and ties it to the frame loop in the host.
//
// Not safe for concurrent use.
type TickScheduler struct {
	now    time.Duration
	nextID TimerHandle
	timers []timer
}

// NewTickScheduler returns a scheduler with its clock at zero.
func NewTickScheduler() *TickScheduler {
	return &TickScheduler{}
}

// Now returns the virtual time elapsed since creation.
func (s *TickScheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of timers that have not fired or been cancelled.
func (s *TickScheduler) Pending() int {
	return len(s.timers)
}

// Schedule registers fn to run once the clock has advanced by delay.
// A non-positive delay fires on the next Advance.
func (s *TickScheduler) Schedule(delay time.Duration, fn func()) TimerHandle {
	s.nextID++
	s.timers = append(s.timers, timer{id: s.nextID, deadline: s.now + max(delay, 0), fn: fn})
	return s.nextID
}

// Cancel removes a pending timer. Unknown or already fired handles are ignored.
func (s *TickScheduler) Cancel(h TimerHandle) {
	for i := range s.timers {
		if s.timers[i].id == h {
			copy(s.timers[i:], s.timers[i+1:])
			s.timers[len(s.timers)-1] = timer{}
			s.timers = s.timers[:len(s.timers)-1]
			return
		}
	}
}

// CancelAll drops every pending timer.
func (s *TickScheduler) CancelAll() {
	clear(s.timers)
	s.timers = s.timers[:0]
}

// Advance moves the clock forward by d and runs every due timer in deadline
// order; timers with equal deadlines run in the order they were scheduled.
// Callbacks may schedule or cancel timers; newly scheduled timers that are
// already due also run before Advance returns.
func (s *TickScheduler) Advance(d time.Duration) {
	if d > 0 {
		s.now += d
	}
	for {
		idx := -1
		for i := range s.timers {
			t := &s.timers[i]
			if t.deadline > s.now {
				continue
			}
			if idx < 0 || t.deadline < s.timers[idx].deadline ||
				(t.deadline == s.timers[idx].deadline && t.id < s.timers[idx].id) {
				idx = i
			}
		}
		if idx < 0 {
			return
		}
		fn := s.timers[idx].fn
		s.Cancel(s.timers[idx].id)
		fn()
	}
}
