// Package gesture detects the multi-touch hold that opens the settings
// panel.
package gesture

import (
	"sync"
	"time"
)

// HoldTimer fires OnFire once when the number of active touches stays in
// Counts for Threshold. Any other touch count disarms it.
type HoldTimer struct {
	Counts    []int
	Threshold time.Duration
	OnFire    func()

	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

// NewHoldTimer returns a timer with the given trigger.
func NewHoldTimer(counts []int, threshold time.Duration, onFire func()) *HoldTimer {
	return &HoldTimer{Counts: counts, Threshold: threshold, OnFire: onFire}
}

// Touches reports the current number of active touches.
func (h *HoldTimer) Touches(n int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.matches(n) {
		h.stopLocked()
		return
	}
	if h.timer != nil {
		return
	}
	h.gen++
	gen := h.gen
	h.timer = time.AfterFunc(h.Threshold, func() { h.fire(gen) })
}

// Armed reports whether a hold is in progress.
func (h *HoldTimer) Armed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.timer != nil
}

// Stop disarms the timer.
func (h *HoldTimer) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stopLocked()
}

func (h *HoldTimer) stopLocked() {
	if h.timer == nil {
		return
	}
	h.timer.Stop()
	h.timer = nil
	h.gen++
}

// fire runs OnFire unless the hold was released or restarted after the
// timer was scheduled.
func (h *HoldTimer) fire(gen uint64) {
	h.mu.Lock()
	if gen != h.gen || h.timer == nil {
		h.mu.Unlock()
		return
	}
	h.timer = nil
	fn := h.OnFire
	h.mu.Unlock()

	if fn != nil {
		fn()
	}
}

func (h *HoldTimer) matches(n int) bool {
	for _, c := range h.Counts {
		if c == n {
			return true
		}
	}
	return false
}
