package preferences

import (
	"fmt"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"pomotask/internal/core/model"
	"pomotask/internal/i18n"
)

// Window handles the preferences UI.
type Window struct {
	window    fyne.Window
	store     *Store
	values    map[string]*widget.Label
	work      *widget.Slider
	short     *widget.Slider
	long      *widget.Slider
	interval  *widget.Slider
	sound     *widget.Check
	autostart *widget.Check
}

// New creates a preferences window editing store.
func New(app fyne.App, store *Store) *Window {
	window := app.NewWindow("pomotask " + i18n.T("Preferences"))

	prefs := &Window{
		window: window,
		store:  store,
		values: map[string]*widget.Label{
			"work":     widget.NewLabel(""),
			"short":    widget.NewLabel(""),
			"long":     widget.NewLabel(""),
			"interval": widget.NewLabel(""),
		},
	}

	prefs.work = prefs.newSlider("work", MaxWorkMinutes)
	prefs.short = prefs.newSlider("short", MaxShortBreakMinutes)
	prefs.long = prefs.newSlider("long", MaxLongBreakMinutes)
	prefs.interval = prefs.newSlider("interval", MaxLongBreakInterval)
	prefs.sound = widget.NewCheck(i18n.T("Sound"), nil)
	prefs.autostart = widget.NewCheck(i18n.T("Start at login"), nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle(i18n.T("Settings"), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewBorder(nil, nil, widget.NewLabel(i18n.T("Focus length")), prefs.values["work"], prefs.work),
		container.NewBorder(nil, nil, widget.NewLabel(i18n.T("Short break length")), prefs.values["short"], prefs.short),
		container.NewBorder(nil, nil, widget.NewLabel(i18n.T("Long break length")), prefs.values["long"], prefs.long),
		container.NewBorder(nil, nil, widget.NewLabel(i18n.T("Long break every")), prefs.values["interval"], prefs.interval),
		prefs.sound,
		prefs.autostart,
	)

	saveButton := widget.NewButton(i18n.T("Save"), prefs.handleSave)
	cancelButton := widget.NewButton(i18n.T("Cancel"), window.Hide)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(460, 360))
	window.SetCloseIntercept(window.Hide)

	prefs.UpdateSettings(store.Get())
	return prefs
}

func (prefs *Window) newSlider(key string, upper int) *widget.Slider {
	slider := widget.NewSlider(1, float64(upper))
	slider.Step = 1
	slider.OnChanged = func(value float64) {
		prefs.values[key].SetText(sliderText(key, value))
	}
	return slider
}

// Show displays the preferences window with the stored values.
func (prefs *Window) Show() {
	prefs.UpdateSettings(prefs.store.Get())
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.setSlider(prefs.work, "work", settings.Timer.WorkMinutes)
	prefs.setSlider(prefs.short, "short", settings.Timer.ShortBreakMinutes)
	prefs.setSlider(prefs.long, "long", settings.Timer.LongBreakMinutes)
	prefs.setSlider(prefs.interval, "interval", settings.Timer.LongBreakInterval)
	prefs.sound.SetChecked(settings.SoundEnabled)
	prefs.autostart.SetChecked(settings.Autostart)
}

func (prefs *Window) setSlider(slider *widget.Slider, key string, value int) {
	slider.SetValue(float64(value))
	prefs.values[key].SetText(sliderText(key, float64(value)))
}

func (prefs *Window) handleSave() {
	prefs.store.Apply(patchFromForm(
		prefs.work.Value,
		prefs.short.Value,
		prefs.long.Value,
		prefs.interval.Value,
		prefs.sound.Checked,
		prefs.autostart.Checked,
	))
	prefs.window.Hide()
}

// patchFromForm builds a full patch from the widget values.
func patchFromForm(work, short, long, interval float64, sound, autostart bool) Patch {
	return Patch{
		Timer: model.TimerSettingsPatch{
			WorkMinutes:       model.Int(roundValue(work)),
			ShortBreakMinutes: model.Int(roundValue(short)),
			LongBreakMinutes:  model.Int(roundValue(long)),
			LongBreakInterval: model.Int(roundValue(interval)),
		},
		SoundEnabled: Bool(sound),
		Autostart:    Bool(autostart),
	}
}

func sliderText(key string, value float64) string {
	if key == "interval" {
		return fmt.Sprintf("%d", roundValue(value))
	}
	return fmt.Sprintf("%d min", roundValue(value))
}

func roundValue(value float64) int {
	return int(math.Round(value))
}
