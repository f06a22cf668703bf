package query

import (
	"sync"
	"time"
)

// SearchDebounceInterval is the quiet period before typed search text
// takes effect.
const SearchDebounceInterval = 300 * time.Millisecond

// Debouncer delivers the last value typed within the debounce window to
// its callback. A newer keystroke supersedes a pending one outright; the
// values are never merged. Values equal to the previously delivered one
// are dropped, so re-typing the same text does not trigger a recompute.
type Debouncer struct {
	mu        sync.Mutex
	interval  time.Duration
	deliver   func(string)
	timer     *time.Timer
	pending   string
	last      string
	delivered bool
}

// NewDebouncer wires deliver to run interval after the last Type call.
func NewDebouncer(interval time.Duration, deliver func(string)) *Debouncer {
	return &Debouncer{interval: interval, deliver: deliver}
}

// Type registers a keystroke, restarting the quiet period.
func (d *Debouncer) Type(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = text
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, d.fire)
}

// Flush delivers any pending value immediately, without waiting out the
// quiet period.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	armed := d.timer != nil && d.timer.Stop()
	d.timer = nil
	d.mu.Unlock()
	if armed {
		d.fire()
	}
}

// Stop discards any pending value.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	text := d.pending
	if d.delivered && text == d.last {
		d.mu.Unlock()
		return
	}
	d.last = text
	d.delivered = true
	d.mu.Unlock()
	d.deliver(text)
}
