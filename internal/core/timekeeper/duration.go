package timekeeper

import "pomotask/internal/core/model"

// Resolve returns the length of mode in seconds under settings.
// Unknown modes resolve to zero.
func Resolve(mode Mode, settings model.TimerSettings) int {
	switch mode {
	case ModeWork:
		return settings.WorkMinutes * 60
	case ModeShortBreak:
		return settings.ShortBreakMinutes * 60
	case ModeLongBreak:
		return settings.LongBreakMinutes * 60
	}
	return 0
}

// resolveRemaining is Resolve floored at zero, used for stored state.
func resolveRemaining(mode Mode, settings model.TimerSettings) int {
	seconds := Resolve(mode, settings)
	if seconds < 0 {
		return 0
	}
	return seconds
}
