// Package debounce runs the last of a burst of calls after a quiet period.
package debounce

import (
	"sync"
	"time"
)

// Debouncer delays a function until Delay has passed without another call to Trigger.
type Debouncer struct {
	Delay time.Duration

	mu         sync.Mutex
	timer      *time.Timer
	generation uint64
	stopped    bool
	running    sync.WaitGroup
}

func New(delay time.Duration) *Debouncer {
	return &Debouncer{Delay: delay}
}

// Trigger cancels any pending call and schedules f to run after Delay.
// Calls after Stop are ignored.
func (d *Debouncer) Trigger(f func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.generation++
	gen := d.generation
	d.timer = time.AfterFunc(d.Delay, func() {
		d.mu.Lock()
		// a timer that already fired can't be stopped; the generation check drops it
		current := !d.stopped && gen == d.generation
		if current {
			d.running.Add(1)
		}
		d.mu.Unlock()
		if current {
			defer d.running.Done()
			f()
		}
	})
}

// Stop cancels any pending call and waits for a call already running to return.
// The Debouncer can't be reused, and f must not call Stop.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()
	d.running.Wait()
}
