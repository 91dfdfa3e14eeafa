// Package trigger provides a repeating, pass-driven timer that emits typed
// events. It knows nothing about what an event means; consumers drain the
// queue on the same pass.
package trigger

import (
	"fmt"
	"math"
	"time"

	"github.com/milk9111/flipbook/ecs"
)

// Trigger accumulates elapsed time and queues one event each time the
// accumulated time reaches Interval. The accumulator is reset to zero on fire,
// so a single long pass fires once rather than catching up.
type Trigger[E any] struct {
	interval time.Duration
	elapsed  time.Duration
	newEvent func() E
	fired    uint64
	queue    ecs.EventQueue[E]
}

// New creates a repeating trigger firing every seconds. newEvent builds the
// payload for each fire; nil emits the zero value of E. New panics on a
// non-positive interval.
func New[E any](seconds float64, newEvent func() E) *Trigger[E] {
	return NewDuration(Seconds(seconds), newEvent)
}

// NewDuration is New with a time.Duration interval.
func NewDuration[E any](interval time.Duration, newEvent func() E) *Trigger[E] {
	if interval <= 0 {
		panic(fmt.Sprintf("trigger: non-positive interval %v", interval))
	}
	return &Trigger[E]{interval: interval, newEvent: newEvent}
}

// Seconds converts a float seconds value to a Duration.
func Seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}

// Tick advances the trigger by elapsed and reports whether it fired.
func (t *Trigger[E]) Tick(elapsed time.Duration) bool {
	if t == nil || elapsed < 0 {
		return false
	}
	t.elapsed += elapsed
	if t.elapsed < t.interval {
		return false
	}
	t.elapsed = 0
	t.fired++

	var evt E
	if t.newEvent != nil {
		evt = t.newEvent()
	}
	t.queue.Push(evt)
	return true
}

// Drain returns the pending events and clears the queue.
func (t *Trigger[E]) Drain() []E {
	if t == nil {
		return nil
	}
	return t.queue.Drain()
}

// Pending returns the number of undrained events.
func (t *Trigger[E]) Pending() int {
	if t == nil {
		return 0
	}
	return t.queue.Len()
}

// Reset zeroes the accumulator and drops pending events.
func (t *Trigger[E]) Reset() {
	if t == nil {
		return
	}
	t.elapsed = 0
	t.queue.Clear()
}

func (t *Trigger[E]) Interval() time.Duration {
	return t.interval
}

// Elapsed returns the time accumulated since the last fire.
func (t *Trigger[E]) Elapsed() time.Duration {
	return t.elapsed
}

// Fired returns how many times the trigger has fired.
func (t *Trigger[E]) Fired() uint64 {
	return t.fired
}
