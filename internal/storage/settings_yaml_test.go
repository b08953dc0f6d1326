package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomotask/internal/core/model"
	"pomotask/internal/ui/preferences"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	settings, err := LoadSettings(SettingsPath(t.TempDir()))

	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestSaveThenLoad(t *testing.T) {
	path := SettingsPath(filepath.Join(t.TempDir(), "nested"))
	want := preferences.Settings{
		Timer:        model.TimerSettings{WorkMinutes: 50, ShortBreakMinutes: 10, LongBreakMinutes: 30, LongBreakInterval: 3},
		SoundEnabled: false,
		Autostart:    true,
	}

	require.NoError(t, SaveSettings(path, want))
	got, err := LoadSettings(path)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadIgnoresOutOfRangeValues(t *testing.T) {
	path := SettingsPath(t.TempDir())
	require.NoError(t, os.WriteFile(path, []byte("work_minutes: 90\nshort_break_minutes: 0\nlong_break_minutes: 20\nlong_break_interval: 12\n"), 0o644))

	got, err := LoadSettings(path)

	require.NoError(t, err)
	assert.Equal(t, model.TimerSettings{WorkMinutes: 25, ShortBreakMinutes: 5, LongBreakMinutes: 20, LongBreakInterval: 4}, got.Timer)
	assert.True(t, got.SoundEnabled, "absent sound_enabled keeps the default")
}

func TestLoadRejectsBrokenYaml(t *testing.T) {
	path := SettingsPath(t.TempDir())
	require.NoError(t, os.WriteFile(path, []byte("work_minutes: [\n"), 0o644))

	got, err := LoadSettings(path)

	assert.ErrorContains(t, err, "parse settings yaml")
	assert.Equal(t, preferences.DefaultSettings(), got)
}
