package scheduler

import "sync"

// Latest is a single-slot mailbox. Publishing replaces any value that has not
// been received yet, so a slow reader only ever sees the newest value.
type Latest[T any] struct {
	mu sync.Mutex
	ch chan T
}

// NewLatest creates an empty mailbox.
func NewLatest[T any]() *Latest[T] {
	return &Latest[T]{ch: make(chan T, 1)}
}

// Publish stores v, discarding any pending value. It never blocks.
func (l *Latest[T]) Publish(v T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	select {
	case <-l.ch:
	default:
	}
	l.ch <- v
}

// C returns the channel the newest value is delivered on.
func (l *Latest[T]) C() <-chan T {
	return l.ch
}
