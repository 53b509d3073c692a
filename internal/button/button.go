// Package button turns raw falling edges into debounced events.
//
// A Button is driven from interrupt context; its Flag is the only value shared with the main loop.
package button

import (
	"sync/atomic"
	"time"
)

// Flag is a pending event. The interrupt handler sets it, the main loop takes or clears it.
type Flag struct {
	v atomic.Bool
}

func (f *Flag) Set() {
	f.v.Store(true)
}

// Take reports whether the flag was set and clears it.
func (f *Flag) Take() bool {
	return f.v.Swap(false)
}

func (f *Flag) Clear() {
	f.v.Store(false)
}

func (f *Flag) IsSet() bool {
	return f.v.Load()
}

type Button struct {
	Flag

	window time.Duration
	last   time.Duration
}

func New(window time.Duration) *Button {
	return &Button{window: window}
}

// Edge handles a falling edge seen at now, measured since boot. Edges closer than the debounce
// window to the last accepted one are dropped.
func (b *Button) Edge(now time.Duration) bool {
	if now-b.last <= b.window {
		return false
	}
	b.last = now
	b.Set()
	return true
}
