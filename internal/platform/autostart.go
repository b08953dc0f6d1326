package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// HiddenFlag is passed to the binary when it is launched at login, so it
// starts in the tray instead of opening its window.
const HiddenFlag = "--hidden"

// Service defines OS-specific helpers needed by the application.
type Service interface {
	GetConfigDir() (string, error)
	AppDir(appName string) (string, error)
	SetAutostart(appName, execPath string, enabled bool) error
}

type platformService struct{}

// NewService returns a platform-specific implementation.
func NewService() Service {
	return &platformService{}
}

// GetConfigDir returns the OS-standard configuration directory.
func (service *platformService) GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return configDir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}

	return fallbackConfigDir(homeDir), nil
}

// AppDir returns the per-application directory under the config dir, creating it.
func (service *platformService) AppDir(appName string) (string, error) {
	configDir, err := service.GetConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(configDir, slug(appName))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create app dir: %w", err)
	}
	return dir, nil
}

// SetAutostart registers or removes the login item for execPath.
func (service *platformService) SetAutostart(appName, execPath string, enabled bool) error {
	if enabled {
		return service.enableAutostart(appName, execPath)
	}
	return service.disableAutostart(appName)
}

func slug(appName string) string {
	name := strings.TrimSpace(appName)
	if name == "" {
		name = "pomotask"
	}
	name = strings.ToLower(name)
	return strings.ReplaceAll(name, " ", "-")
}
