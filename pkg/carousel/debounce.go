package carousel

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// Debouncer coalesces a burst of triggers into one call: each Trigger
// cancels the pending timer before scheduling a fresh one, so only the last
// trigger in a burst runs its function, after the configured delay of
// quiet. At most one timer is outstanding at any time.
type Debouncer struct {
	clk   clock.Clock
	delay time.Duration

	mu    sync.Mutex
	timer *clock.Timer
}

// NewDebouncer creates a debouncer with the given settle delay. A nil clk
// means the system clock.
func NewDebouncer(clk clock.Clock, delay time.Duration) *Debouncer {
	if clk == nil {
		clk = clock.New()
	}
	return &Debouncer{clk: clk, delay: delay}
}

// Trigger schedules fn to run after the settle delay, replacing any
// previously pending call.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	var t *clock.Timer
	t = d.clk.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if d.timer == t {
			d.timer = nil
		}
		d.mu.Unlock()
		fn()
	})
	d.timer = t
}

// Stop cancels any pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
