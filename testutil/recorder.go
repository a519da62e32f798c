// Package testutil provides shared helpers for modkit tests.
package testutil

import (
	"sync"
)

// Recorder collects structured events emitted during a test, in order.
// The zero value is ready to use. Install its Record method wherever a
// handler func(E) is expected.
type Recorder[E any] struct {
	mu     sync.Mutex
	events []E
}

// Record appends an event
func (r *Recorder[E]) Record(e E) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events in emission order
func (r *Recorder[E]) Events() []E {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]E, len(r.events))
	copy(out, r.events)
	return out
}

// Len returns the number of recorded events
func (r *Recorder[E]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// Reset discards all recorded events
func (r *Recorder[E]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
