package strutil

import (
	"sync"
	"time"
)

// Debouncer delays calls to fn until delay has passed without another call.
// Only the argument of the last call in a burst reaches fn.
//
// fn runs on its own goroutine (time.AfterFunc). A Debouncer is safe for
// concurrent use.
type Debouncer[T any] struct {
	fn    func(T)
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending T
	gen     uint64 // bumped by every Call; a timer only fires for its own generation
	armed   bool
	stopped bool
}

// Debounce wraps fn. Call the returned Debouncer instead of fn.
func Debounce[T any](fn func(T), delay time.Duration) *Debouncer[T] {
	return &Debouncer[T]{fn: fn, delay: delay}
}

// Call schedules fn(arg), cancelling any call still waiting.
func (d *Debouncer[T]) Call(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.pending = arg
	d.armed = true
	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

// Flush runs a waiting call right away on the caller's goroutine.
// It reports whether there was one.
func (d *Debouncer[T]) Flush() bool {
	arg, ok := d.take(0)
	if ok {
		d.fn(arg)
	}
	return ok
}

// Stop drops any waiting call and ignores future calls.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.armed = false
	if d.timer != nil {
		d.timer.Stop()
	}
}

func (d *Debouncer[T]) fire(gen uint64) {
	if arg, ok := d.take(gen); ok {
		d.fn(arg)
	}
}

// take claims the pending argument so it runs at most once, whichever of
// the timer and Flush gets there first. gen 0 means "any generation".
func (d *Debouncer[T]) take(gen uint64) (T, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var zero T
	if !d.armed || (gen != 0 && gen != d.gen) {
		return zero, false
	}
	arg := d.pending
	d.pending = zero
	d.armed = false
	if d.timer != nil {
		d.timer.Stop()
	}
	return arg, true
}
