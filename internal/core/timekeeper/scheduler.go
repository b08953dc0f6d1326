package timekeeper

import (
	"sync"
	"time"
)

// CancelFunc stops a repeating schedule. Calling it more than once is safe.
type CancelFunc func()

// Scheduler runs fn every interval until cancelled. Implementations must not
// run two callbacks of the same schedule concurrently.
type Scheduler interface {
	ScheduleRepeating(interval time.Duration, fn func()) CancelFunc
}

// TickerScheduler drives schedules from wall-clock tickers.
type TickerScheduler struct{}

// NewTickerScheduler returns the production scheduler.
func NewTickerScheduler() *TickerScheduler {
	return &TickerScheduler{}
}

// ScheduleRepeating starts a goroutine that calls fn on every tick.
func (scheduler *TickerScheduler) ScheduleRepeating(interval time.Duration, fn func()) CancelFunc {
	if interval <= 0 {
		interval = time.Second
	}
	stopCh := make(chan struct{})
	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				select {
				case <-stopCh:
					return
				default:
				}
				fn()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stopCh)
		})
	}
}
