package model

// TimerSettings holds the configured phase lengths and the long break cadence.
// Ranges are enforced by the settings provider, not here.
type TimerSettings struct {
	WorkMinutes       int
	ShortBreakMinutes int
	LongBreakMinutes  int
	LongBreakInterval int
}

// TimerSettingsPatch is a partial update; nil fields keep their prior value.
type TimerSettingsPatch struct {
	WorkMinutes       *int
	ShortBreakMinutes *int
	LongBreakMinutes  *int
	LongBreakInterval *int
}

// DefaultTimerSettings returns the classic 25/5/15 cycle with a long break every fourth session.
func DefaultTimerSettings() TimerSettings {
	return TimerSettings{
		WorkMinutes:       25,
		ShortBreakMinutes: 5,
		LongBreakMinutes:  15,
		LongBreakInterval: 4,
	}
}

// Merge returns settings with every non-nil patch field applied.
func (settings TimerSettings) Merge(patch TimerSettingsPatch) TimerSettings {
	if patch.WorkMinutes != nil {
		settings.WorkMinutes = *patch.WorkMinutes
	}
	if patch.ShortBreakMinutes != nil {
		settings.ShortBreakMinutes = *patch.ShortBreakMinutes
	}
	if patch.LongBreakMinutes != nil {
		settings.LongBreakMinutes = *patch.LongBreakMinutes
	}
	if patch.LongBreakInterval != nil {
		settings.LongBreakInterval = *patch.LongBreakInterval
	}
	return settings
}

// IsEmpty reports whether the patch changes nothing.
func (patch TimerSettingsPatch) IsEmpty() bool {
	return patch.WorkMinutes == nil &&
		patch.ShortBreakMinutes == nil &&
		patch.LongBreakMinutes == nil &&
		patch.LongBreakInterval == nil
}

// Int returns a pointer to value, for building patches inline.
func Int(value int) *int {
	return &value
}
