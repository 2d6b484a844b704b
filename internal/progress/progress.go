// Package progress carries seeding progress from the store layer to
// whatever presentation code cares to watch. There is no buffering and no
// history: a subscriber registered after an event has fired never sees it.
package progress

import "sync"

// Callback receives progress updates. current == 0 marks a run starting,
// current == total marks completion.
type Callback func(current, total int, message string)

// Sink holds at most one callback. The last registration wins.
type Sink struct {
	mu sync.RWMutex
	cb Callback
}

// NewSink creates an empty sink.
func NewSink() *Sink {
	return &Sink{}
}

// Set registers the callback, replacing any previous one. Passing nil
// unregisters; unregistering an empty sink is a no-op.
func (s *Sink) Set(cb Callback) {
	s.mu.Lock()
	s.cb = cb
	s.mu.Unlock()
}

// Notify invokes the registered callback synchronously, if any.
func (s *Sink) Notify(current, total int, message string) {
	s.mu.RLock()
	cb := s.cb
	s.mu.RUnlock()

	if cb != nil {
		cb(current, total, message)
	}
}
