// Package notify delivers the best-effort alert played when a countdown ends.
package notify

import (
	"errors"
	"sync"
	"time"

	"pomotask/internal/core/timekeeper"
	"pomotask/internal/platform"
)

// Player plays an audible alert from source. An empty source means the
// built-in chime.
type Player interface {
	Play(source string) error
}

// Logger is the subset of *log.Logger the dispatcher uses.
type Logger interface {
	Printf(format string, args ...any)
}

// Config wires a Dispatcher to its host capabilities. Haptics may be nil.
type Config struct {
	SoundEnabled func() bool
	Haptics      platform.Haptics
	Pattern      []time.Duration
	Player       Player
	Source       string
	Logger       Logger
}

// Dispatcher fires haptic and audio alerts without blocking the caller.
type Dispatcher struct {
	config   Config
	inflight sync.WaitGroup
}

// NewDispatcher creates a dispatcher.
func NewDispatcher(config Config) *Dispatcher {
	if len(config.Pattern) == 0 {
		config.Pattern = platform.DefaultVibration
	}
	return &Dispatcher{config: config}
}

// Notify starts the alert for a completed mode. Each mechanism is attempted
// independently and failures are only logged.
func (dispatcher *Dispatcher) Notify(completed timekeeper.Mode) {
	if dispatcher.config.SoundEnabled == nil || !dispatcher.config.SoundEnabled() {
		return
	}

	if haptics := dispatcher.config.Haptics; haptics != nil {
		dispatcher.inflight.Add(1)
		go func() {
			defer dispatcher.inflight.Done()
			if err := haptics.Vibrate(dispatcher.config.Pattern); err != nil && !errors.Is(err, platform.ErrHapticsUnsupported) {
				dispatcher.logf("notify: vibrate after %s: %v", completed, err)
			}
		}()
	}

	if player := dispatcher.config.Player; player != nil {
		dispatcher.inflight.Add(1)
		go func() {
			defer dispatcher.inflight.Done()
			if err := player.Play(dispatcher.config.Source); err != nil {
				dispatcher.logf("notify: play sound after %s: %v", completed, err)
			}
		}()
	}
}

// Wait blocks until every alert started so far has returned.
func (dispatcher *Dispatcher) Wait() {
	dispatcher.inflight.Wait()
}

func (dispatcher *Dispatcher) logf(format string, args ...any) {
	if dispatcher.config.Logger != nil {
		dispatcher.config.Logger.Printf(format, args...)
	}
}
