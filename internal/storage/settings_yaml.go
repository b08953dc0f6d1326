package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"pomotask/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	WorkMinutes       int   `yaml:"work_minutes"`
	ShortBreakMinutes int   `yaml:"short_break_minutes"`
	LongBreakMinutes  int   `yaml:"long_break_minutes"`
	LongBreakInterval int   `yaml:"long_break_interval"`
	SoundEnabled      *bool `yaml:"sound_enabled"`
	Autostart         bool  `yaml:"autostart"`
}

// SettingsPath returns the settings file location inside appDir.
func SettingsPath(appDir string) string {
	return filepath.Join(appDir, settingsFileName)
}

// LoadSettings reads user preferences from YAML.
// If the file does not exist, default settings are returned.
func LoadSettings(path string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(path string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	sound := settings.SoundEnabled
	fileData := yamlSettings{
		WorkMinutes:       settings.Timer.WorkMinutes,
		ShortBreakMinutes: settings.Timer.ShortBreakMinutes,
		LongBreakMinutes:  settings.Timer.LongBreakMinutes,
		LongBreakInterval: settings.Timer.LongBreakInterval,
		SoundEnabled:      &sound,
		Autostart:         settings.Autostart,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// applyYamlSettings keeps defaults for values outside the UI ranges.
func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if inRange(fileData.WorkMinutes, preferences.MaxWorkMinutes) {
		settings.Timer.WorkMinutes = fileData.WorkMinutes
	}
	if inRange(fileData.ShortBreakMinutes, preferences.MaxShortBreakMinutes) {
		settings.Timer.ShortBreakMinutes = fileData.ShortBreakMinutes
	}
	if inRange(fileData.LongBreakMinutes, preferences.MaxLongBreakMinutes) {
		settings.Timer.LongBreakMinutes = fileData.LongBreakMinutes
	}
	if inRange(fileData.LongBreakInterval, preferences.MaxLongBreakInterval) {
		settings.Timer.LongBreakInterval = fileData.LongBreakInterval
	}
	if fileData.SoundEnabled != nil {
		settings.SoundEnabled = *fileData.SoundEnabled
	}
	settings.Autostart = fileData.Autostart
}

func inRange(value, upper int) bool {
	return value > 0 && value <= upper
}
