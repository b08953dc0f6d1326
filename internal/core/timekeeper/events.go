package timekeeper

import "time"

// Mode is the current phase of the Pomodoro cycle.
type Mode string

const (
	ModeWork       Mode = "work"
	ModeShortBreak Mode = "short_break"
	ModeLongBreak  Mode = "long_break"
)

// Modes lists every mode in cycle order.
var Modes = []Mode{ModeWork, ModeShortBreak, ModeLongBreak}

// Valid reports whether mode is one of the known phases.
func (mode Mode) Valid() bool {
	switch mode {
	case ModeWork, ModeShortBreak, ModeLongBreak:
		return true
	}
	return false
}

// Label returns the untranslated user-facing name of the mode.
func (mode Mode) Label() string {
	switch mode {
	case ModeWork:
		return "Focus"
	case ModeShortBreak:
		return "Short Break"
	case ModeLongBreak:
		return "Long Break"
	}
	return string(mode)
}

// IsBreak reports whether mode is a short or long break.
func (mode Mode) IsBreak() bool {
	return mode == ModeShortBreak || mode == ModeLongBreak
}

// State is a full snapshot of the timer.
type State struct {
	Mode      Mode
	Remaining int
	Active    bool
	Session   int
}

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	// EventStateChange follows a command: start, pause, reset, mode or settings change.
	EventStateChange EventType = "state_change"
	// EventTick follows a countdown decrement that did not reach zero.
	EventTick EventType = "tick"
	// EventAlert carries the state being left when a countdown reaches zero.
	// It is always emitted before the matching EventComplete.
	EventAlert EventType = "alert"
	// EventComplete follows a natural completion.
	EventComplete EventType = "complete"
	// EventSkip follows a manual skip.
	EventSkip EventType = "skip"
)

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type  EventType
	State State
	At    time.Time
}
