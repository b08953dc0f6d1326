package timerview

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"pomotask/internal/core/timekeeper"
	"pomotask/internal/i18n"
)

// Controller is the part of the timer the panel drives.
type Controller interface {
	Start()
	Pause()
	Reset()
	Skip()
	SetMode(mode timekeeper.Mode)
	Snapshot() timekeeper.State
	Progress() float64
}

// Panel shows the countdown with its controls.
type Panel struct {
	timer       Controller
	content     fyne.CanvasObject
	modeButtons map[timekeeper.Mode]*widget.Button
	clock       *canvas.Text
	modeLabel   *widget.Label
	session     *widget.Label
	progress    *widget.ProgressBar
	toggle      *widget.Button
}

// New builds the timer panel for timer.
func New(timer Controller) *Panel {
	panel := &Panel{
		timer:       timer,
		modeButtons: make(map[timekeeper.Mode]*widget.Button, len(timekeeper.Modes)),
	}

	modeRow := container.NewGridWithColumns(len(timekeeper.Modes))
	for _, mode := range timekeeper.Modes {
		button := widget.NewButton(i18n.T(mode.Label()), func() {
			timer.SetMode(mode)
		})
		panel.modeButtons[mode] = button
		modeRow.Add(button)
	}

	panel.clock = canvas.NewText("00:00", theme.Color(theme.ColorNameForeground))
	panel.clock.TextSize = 72
	panel.clock.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	panel.clock.Alignment = fyne.TextAlignCenter

	panel.modeLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	panel.session = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})

	panel.progress = widget.NewProgressBar()
	panel.progress.TextFormatter = func() string { return "" }

	panel.toggle = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), panel.handleToggle)
	panel.toggle.Importance = widget.HighImportance
	reset := widget.NewButtonWithIcon(i18n.T("Reset"), theme.MediaReplayIcon(), timer.Reset)
	skip := widget.NewButtonWithIcon(i18n.T("Skip"), theme.MediaSkipNextIcon(), timer.Skip)

	panel.content = container.NewVBox(
		modeRow,
		panel.modeLabel,
		panel.clock,
		panel.progress,
		panel.session,
		container.NewGridWithColumns(3, reset, panel.toggle, skip),
	)

	panel.Render(timer.Snapshot(), timer.Progress())
	return panel
}

// Content returns the panel root object.
func (panel *Panel) Content() fyne.CanvasObject {
	return panel.content
}

// Watch renders every event from events on the fyne thread until the channel
// closes.
func (panel *Panel) Watch(events <-chan timekeeper.Event) {
	go func() {
		for event := range events {
			state := event.State
			progress := panel.timer.Progress()
			fyne.Do(func() {
				panel.Render(state, progress)
			})
		}
	}()
}

// Render updates every widget from state. It must run on the fyne thread.
func (panel *Panel) Render(state timekeeper.State, progress float64) {
	view := newView(state, progress)

	panel.clock.Text = view.Clock
	panel.clock.Color = clockColor(state)
	panel.clock.Refresh()
	panel.modeLabel.SetText(view.Mode)
	panel.session.SetText(view.Session)
	panel.progress.SetValue(view.Progress)

	panel.toggle.SetText(view.Toggle)
	if state.Active {
		panel.toggle.SetIcon(theme.MediaPauseIcon())
	} else {
		panel.toggle.SetIcon(theme.MediaPlayIcon())
	}

	for mode, button := range panel.modeButtons {
		if mode == state.Mode {
			button.Importance = widget.HighImportance
		} else {
			button.Importance = widget.MediumImportance
		}
		button.Refresh()
	}
}

func (panel *Panel) handleToggle() {
	if panel.timer.Snapshot().Active {
		panel.timer.Pause()
		return
	}
	panel.timer.Start()
}

type view struct {
	Clock    string
	Mode     string
	Session  string
	Toggle   string
	Progress float64
}

func newView(state timekeeper.State, progress float64) view {
	toggle := i18n.T("Start")
	if state.Active {
		toggle = i18n.T("Pause")
	}
	return view{
		Clock:    timekeeper.FormatClock(state.Remaining),
		Mode:     i18n.T(state.Mode.Label()),
		Session:  fmt.Sprintf(i18n.T("Session %d"), state.Session),
		Toggle:   toggle,
		Progress: progress,
	}
}

func clockColor(state timekeeper.State) color.Color {
	if state.Mode.IsBreak() {
		return theme.Color(theme.ColorNameSuccess)
	}
	return theme.Color(theme.ColorNameForeground)
}
