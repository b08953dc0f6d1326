package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"github.com/spf13/cobra"

	"pomotask/internal/core/model"
	"pomotask/internal/core/timekeeper"
	"pomotask/internal/i18n"
	"pomotask/internal/notify"
	"pomotask/internal/platform"
	"pomotask/internal/storage"
	"pomotask/internal/tasks"
	"pomotask/internal/ui/preferences"
	"pomotask/internal/ui/tasklist"
	"pomotask/internal/ui/timerview"
	"pomotask/internal/ui/tray"
)

const appName = "pomotask"

var Version = "dev"

func main() {
	var (
		hidden bool
		lang   string
	)
	rootCmd := &cobra.Command{
		Use:     appName,
		Short:   "Pomodoro timer with a task list",
		Version: Version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if lang != "" {
				i18n.SetLang(lang)
			}
			return run(hidden)
		},
	}
	rootCmd.Flags().BoolVar(&hidden, "hidden", false, "start minimized to the system tray")
	rootCmd.Flags().StringVar(&lang, "lang", "", "interface language (en, ru, pt, es)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(hidden bool) error {
	guard, err := platform.AcquireSingleInstance(appName)
	if errors.Is(err, platform.ErrAlreadyRunning) {
		log.Printf("single instance: %v", err)
		return nil
	}
	if err != nil {
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	service := platform.NewService()
	appDir, err := service.AppDir(appName)
	if err != nil {
		return err
	}
	settingsPath := storage.SettingsPath(appDir)

	settings, err := storage.LoadSettings(settingsPath)
	if err != nil {
		log.Printf("settings load failed, using defaults: %v", err)
	}
	store := preferences.NewStore(settings)

	taskStore, err := storage.OpenTaskStore(storage.TasksPath(appDir))
	if err != nil {
		return err
	}
	defer taskStore.Close()

	dispatcher := notify.NewDispatcher(notify.Config{
		SoundEnabled: store.SoundEnabled,
		Haptics:      platform.NewHaptics(),
		Player:       notify.NewBeepPlayer(),
		Logger:       log.Default(),
	})
	defer dispatcher.Wait()

	keeper := timekeeper.New(store.Get().Timer, timekeeper.Config{
		Notifier: dispatcher,
		Logger:   log.Default(),
	})
	defer keeper.Close()

	executable, err := os.Executable()
	if err != nil {
		log.Printf("autostart unavailable: %v", err)
	}
	store.OnChange(func(previous, current preferences.Settings, timer model.TimerSettingsPatch) {
		if !timer.IsEmpty() {
			keeper.UpdateSettings(timer)
		}
		if err := storage.SaveSettings(settingsPath, current); err != nil {
			log.Printf("settings save failed: %v", err)
		}
		if executable != "" && previous.Autostart != current.Autostart {
			if err := service.SetAutostart(appName, executable, current.Autostart); err != nil {
				log.Printf("autostart: %v", err)
			}
		}
	})

	fyneApp := app.NewWithID("app.pomotask")
	fyneApp.SetIcon(theme.HistoryIcon())

	timerPanel := timerview.New(keeper)
	timerPanel.Watch(keeper.Subscribe(16))
	taskPanel := tasklist.New(tasks.NewService(taskStore))

	mainWindow := fyneApp.NewWindow("pomotask")
	mainWindow.SetContent(container.NewAppTabs(
		container.NewTabItemWithIcon(i18n.T("Timer"), theme.HistoryIcon(), timerPanel.Content()),
		container.NewTabItemWithIcon(i18n.T("Tasks"), theme.ListIcon(), taskPanel.Content()),
	))
	mainWindow.Resize(fyne.NewSize(420, 480))

	prefsWindow := preferences.New(fyneApp, store)
	showMain := func() {
		mainWindow.Show()
		mainWindow.RequestFocus()
	}
	guard.OnActivate(func() {
		fyne.Do(showMain)
	})

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager := tray.New(desktopApp, tray.Callbacks{
			OnShow:        showMain,
			OnPreferences: prefsWindow.Show,
			OnToggle: func() {
				if keeper.Snapshot().Active {
					keeper.Pause()
				} else {
					keeper.Start()
				}
			},
			OnSkip:  keeper.Skip,
			OnReset: keeper.Reset,
			OnQuit:  fyneApp.Quit,
		})
		desktopApp.SetSystemTrayIcon(theme.MediaPlayIcon())
		mainWindow.SetCloseIntercept(mainWindow.Hide)

		trayManager.SetState(keeper.Snapshot())
		trayEvents := keeper.Subscribe(16)
		go func() {
			wasActive := false
			for event := range trayEvents {
				state := event.State
				iconChanged := state.Active != wasActive
				wasActive = state.Active
				fyne.Do(func() {
					trayManager.SetState(state)
					if !iconChanged {
						return
					}
					if state.Active {
						desktopApp.SetSystemTrayIcon(theme.MediaPauseIcon())
					} else {
						desktopApp.SetSystemTrayIcon(theme.MediaPlayIcon())
					}
				})
			}
		}()
	} else {
		log.Printf("system tray unsupported on this platform")
		mainWindow.SetMaster()
		hidden = false
	}

	if !hidden {
		mainWindow.Show()
	}
	fyneApp.Run()
	return nil
}
