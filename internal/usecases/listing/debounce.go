package listing

import (
	"sync"
	"time"
)

const DefaultDebounce = 500 * time.Millisecond

// Debouncer runs only the last function triggered within the delay window
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay}
}

// Trigger restarts the window; fn replaces any pending function. It reports
// whether a pending function was dropped.
func (d *Debouncer) Trigger(fn func()) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	dropped := d.timer != nil && d.timer.Stop()
	d.timer = time.AfterFunc(d.delay, fn)

	return dropped
}

// Stop drops the pending function and reports whether there was one
func (d *Debouncer) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	dropped := d.timer != nil && d.timer.Stop()
	d.timer = nil

	return dropped
}
