// Package throttle provides the leading-edge rate limiter used for keyboard
// repeat suppression: the first invocation runs immediately, subsequent ones
// are dropped until the window elapses or is cancelled.
package throttle

import (
	"sync"
	"time"
)

// Throttle admits at most one invocation per interval. The zero interval
// disables throttling entirely. Safe for concurrent use.
type Throttle struct {
	mu       sync.Mutex
	interval time.Duration
	timer    *time.Timer
	blocked  bool
}

// New returns a throttle with the given window.
func New(interval time.Duration) *Throttle {
	return &Throttle{interval: interval}
}

// Invoke runs fn if the window is open and reports whether it ran. The
// window closes on a successful invocation and reopens after the interval.
func (t *Throttle) Invoke(fn func()) bool {
	if t == nil {
		fn()
		return true
	}
	t.mu.Lock()
	if t.blocked {
		t.mu.Unlock()
		return false
	}
	if t.interval > 0 {
		t.blocked = true
		t.timer = time.AfterFunc(t.interval, t.release)
	}
	t.mu.Unlock()

	fn()
	return true
}

func (t *Throttle) release() {
	t.mu.Lock()
	t.blocked = false
	t.timer = nil
	t.mu.Unlock()
}

// Cancel reopens the window immediately and stops the pending timer, so the
// next Invoke fires without waiting out the interval.
func (t *Throttle) Cancel() {
	if t == nil {
		return
	}
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.blocked = false
	t.mu.Unlock()
}

// Stop releases the throttle's timer resources. The throttle remains usable,
// so Stop doubles as teardown for owners that may still receive stray calls.
func (t *Throttle) Stop() {
	t.Cancel()
}
