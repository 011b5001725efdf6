package render

import (
	"sync"
	"time"
)

// DefaultFlushInterval is roughly one display frame at 60Hz.
const DefaultFlushInterval = 16 * time.Millisecond

// Scheduler coalesces a fast stream of content updates into periodic
// emissions. At most one emission is pending at a time; intermediate
// values are dropped and only the latest content is delivered. The final
// value is never lost as long as the caller ends with Flush.
//
// Scheduler is safe for concurrent use. Emissions are serialized: emit is
// never called from two goroutines at once, and a Flush on one goroutine
// happens after any timer emission already in flight.
type Scheduler struct {
	mu       sync.Mutex
	emitMu   sync.Mutex
	interval time.Duration
	emit     func(string)
	latest   string
	dirty    bool
	timer    *time.Timer
	stopped  bool
}

// NewScheduler creates a Scheduler that delivers coalesced content to emit
// at most once per interval. A non-positive interval falls back to
// DefaultFlushInterval.
func NewScheduler(interval time.Duration, emit func(string)) *Scheduler {
	if interval <= 0 {
		interval = DefaultFlushInterval
	}
	return &Scheduler{interval: interval, emit: emit}
}

// Update records content as the latest value and schedules an emission if
// none is pending. Calling Update while an emission is pending only
// replaces the value that will be emitted.
func (s *Scheduler) Update(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.latest = content
	s.dirty = true
	if s.timer == nil {
		s.timer = time.AfterFunc(s.interval, s.fire)
	}
}

// fire and Flush take emitMu before mu so the latest value is captured
// only once the emission slot is held. A timer callback that loses the
// race to a Flush finds dirty cleared and emits nothing.
func (s *Scheduler) fire() {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	s.timer = nil
	if s.stopped || !s.dirty {
		s.mu.Unlock()
		return
	}
	content := s.latest
	s.dirty = false
	s.mu.Unlock()

	s.emit(content)
}

// Flush cancels any pending emission and synchronously delivers the latest
// content if one is outstanding. Call it when the stream ends so the final
// value is shown without waiting out the interval.
func (s *Scheduler) Flush() {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.stopped || !s.dirty {
		s.mu.Unlock()
		return
	}
	content := s.latest
	s.dirty = false
	s.mu.Unlock()

	s.emit(content)
}

// Stop cancels any pending emission without delivering it. The Scheduler
// ignores further updates after Stop.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.dirty = false
}
