package utils

import (
	"sync"
	"time"
)

// Debouncer collapses bursts of calls into one. Each Call restarts
// the wait; when it finally expires, the callback fires once with
// the value from the most recent Call.
type Debouncer[T any] struct {
	mu    sync.Mutex
	wait  time.Duration
	fn    func(T)
	timer *time.Timer
	last  T
}

// NewDebouncer creates a debouncer that invokes fn with the latest
// value once calls have been quiet for wait.
func NewDebouncer[T any](wait time.Duration, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{wait: wait, fn: fn}
}

// Call records a value and (re)starts the countdown.
func (d *Debouncer[T]) Call(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.last = v
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, d.fire)
}

func (d *Debouncer[T]) fire() {
	d.mu.Lock()
	v := d.last
	d.timer = nil
	d.mu.Unlock()
	d.fn(v)
}

// Stop cancels any pending invocation.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
