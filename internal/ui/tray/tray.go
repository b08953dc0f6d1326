package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"pomotask/internal/core/timekeeper"
	"pomotask/internal/i18n"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnPreferences func()
	OnToggle      func()
	OnSkip        func()
	OnReset       func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	callbacks  Callbacks
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem(fmt.Sprintf(i18n.T("Status: %s"), "..."), nil)
	manager.statusItem.Disabled = true
	manager.toggleItem = fyne.NewMenuItem(i18n.T("Start"), safe(manager.callbacks.OnToggle))

	manager.refreshMenu()
	return manager
}

// SetState updates the status line and the start/pause entry from state.
func (manager *Manager) SetState(state timekeeper.State) {
	manager.statusItem.Label = fmt.Sprintf(i18n.T("Status: %s"), statusText(state))
	if state.Active {
		manager.toggleItem.Label = i18n.T("Pause")
	} else {
		manager.toggleItem.Label = i18n.T("Start")
	}
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("pomotask",
		manager.statusItem,
		manager.toggleItem,
		fyne.NewMenuItem(i18n.T("Skip"), safe(manager.callbacks.OnSkip)),
		fyne.NewMenuItem(i18n.T("Reset"), safe(manager.callbacks.OnReset)),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(i18n.T("Timer"), safe(manager.callbacks.OnShow)),
		fyne.NewMenuItem(i18n.T("Preferences"), safe(manager.callbacks.OnPreferences)),
		fyne.NewMenuItem(i18n.T("Quit"), safe(manager.callbacks.OnQuit)),
	))
}

func safe(callback func()) func() {
	return func() {
		if callback != nil {
			callback()
		}
	}
}

// statusText renders state as "Focus 12:34", marking a stopped timer.
func statusText(state timekeeper.State) string {
	status := fmt.Sprintf("%s %s", i18n.T(state.Mode.Label()), timekeeper.FormatClock(state.Remaining))
	if !state.Active {
		status = fmt.Sprintf("%s (%s)", status, i18n.T("paused"))
	}
	return status
}
