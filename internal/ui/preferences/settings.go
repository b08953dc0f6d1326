package preferences

import (
	"sync"

	"pomotask/internal/core/model"
)

// Upper bounds accepted from the settings UI. Every value is at least 1.
const (
	MaxWorkMinutes       = 60
	MaxShortBreakMinutes = 30
	MaxLongBreakMinutes  = 60
	MaxLongBreakInterval = 10
)

// Settings defines editable user preferences.
type Settings struct {
	Timer        model.TimerSettings
	SoundEnabled bool
	Autostart    bool
}

// Patch is a partial settings update; nil fields keep their prior value.
type Patch struct {
	Timer        model.TimerSettingsPatch
	SoundEnabled *bool
	Autostart    *bool
}

// DefaultSettings returns default settings for pomotask.
func DefaultSettings() Settings {
	return Settings{
		Timer:        model.DefaultTimerSettings(),
		SoundEnabled: true,
		Autostart:    false,
	}
}

// Clamp constrains every timer value to its UI range.
func Clamp(settings model.TimerSettings) model.TimerSettings {
	settings.WorkMinutes = clampInt(settings.WorkMinutes, MaxWorkMinutes)
	settings.ShortBreakMinutes = clampInt(settings.ShortBreakMinutes, MaxShortBreakMinutes)
	settings.LongBreakMinutes = clampInt(settings.LongBreakMinutes, MaxLongBreakMinutes)
	settings.LongBreakInterval = clampInt(settings.LongBreakInterval, MaxLongBreakInterval)
	return settings
}

func clampPatch(patch model.TimerSettingsPatch) model.TimerSettingsPatch {
	clampField := func(value *int, upper int) *int {
		if value == nil {
			return nil
		}
		return model.Int(clampInt(*value, upper))
	}
	return model.TimerSettingsPatch{
		WorkMinutes:       clampField(patch.WorkMinutes, MaxWorkMinutes),
		ShortBreakMinutes: clampField(patch.ShortBreakMinutes, MaxShortBreakMinutes),
		LongBreakMinutes:  clampField(patch.LongBreakMinutes, MaxLongBreakMinutes),
		LongBreakInterval: clampField(patch.LongBreakInterval, MaxLongBreakInterval),
	}
}

func clampInt(value, upper int) int {
	if value < 1 {
		return 1
	}
	if value > upper {
		return upper
	}
	return value
}

// ChangeFunc observes a committed settings change.
type ChangeFunc func(previous, current Settings, timer model.TimerSettingsPatch)

// Store is the settings provider shared by the timer, the dispatcher and the UI.
type Store struct {
	mu        sync.RWMutex
	settings  Settings
	listeners []ChangeFunc
}

// NewStore creates a store holding settings, clamped to the UI ranges.
func NewStore(settings Settings) *Store {
	settings.Timer = Clamp(settings.Timer)
	return &Store{settings: settings}
}

// Get returns the current settings.
func (store *Store) Get() Settings {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.settings
}

// SoundEnabled reports whether completion alerts are wanted.
func (store *Store) SoundEnabled() bool {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.settings.SoundEnabled
}

// OnChange registers fn to run after every Apply, outside the store lock.
func (store *Store) OnChange(fn ChangeFunc) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.listeners = append(store.listeners, fn)
}

// Apply merges patch, clamping timer values, and notifies listeners with the
// clamped timer patch. It returns the new settings.
func (store *Store) Apply(patch Patch) Settings {
	timerPatch := clampPatch(patch.Timer)

	store.mu.Lock()
	previous := store.settings
	current := previous
	current.Timer = current.Timer.Merge(timerPatch)
	if patch.SoundEnabled != nil {
		current.SoundEnabled = *patch.SoundEnabled
	}
	if patch.Autostart != nil {
		current.Autostart = *patch.Autostart
	}
	store.settings = current
	listeners := append([]ChangeFunc(nil), store.listeners...)
	store.mu.Unlock()

	for _, listener := range listeners {
		listener(previous, current, timerPatch)
	}
	return current
}

// Bool returns a pointer to value, for building patches inline.
func Bool(value bool) *bool {
	return &value
}
