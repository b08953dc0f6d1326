// Package testutil provides deterministic doubles for the timer ports.
package testutil

import (
	"sync"
	"time"

	"pomotask/internal/core/timekeeper"
)

type schedule struct {
	interval  time.Duration
	fn        func()
	cancelled bool
}

// ManualScheduler fires scheduled callbacks only when the test advances it.
type ManualScheduler struct {
	mu        sync.Mutex
	schedules []*schedule
	created   int
}

// NewManualScheduler returns an empty scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// ScheduleRepeating records fn; it runs on each Advance step until cancelled.
func (scheduler *ManualScheduler) ScheduleRepeating(interval time.Duration, fn func()) timekeeper.CancelFunc {
	entry := &schedule{interval: interval, fn: fn}
	scheduler.mu.Lock()
	scheduler.schedules = append(scheduler.schedules, entry)
	scheduler.created++
	scheduler.mu.Unlock()

	return func() {
		scheduler.mu.Lock()
		entry.cancelled = true
		scheduler.mu.Unlock()
	}
}

// Advance fires every live schedule once per step.
func (scheduler *ManualScheduler) Advance(steps int) {
	for i := 0; i < steps; i++ {
		for _, fn := range scheduler.live() {
			fn()
		}
	}
}

// Active returns the number of schedules that have not been cancelled.
func (scheduler *ManualScheduler) Active() int {
	return len(scheduler.live())
}

// Created returns how many schedules were ever registered.
func (scheduler *ManualScheduler) Created() int {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	return scheduler.created
}

// Stale returns the callbacks of cancelled schedules, for replaying a tick that
// was already in flight when its schedule was cancelled.
func (scheduler *ManualScheduler) Stale() []func() {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	var stale []func()
	for _, entry := range scheduler.schedules {
		if entry.cancelled {
			stale = append(stale, entry.fn)
		}
	}
	return stale
}

func (scheduler *ManualScheduler) live() []func() {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	var live []func()
	for _, entry := range scheduler.schedules {
		if !entry.cancelled {
			live = append(live, entry.fn)
		}
	}
	return live
}
