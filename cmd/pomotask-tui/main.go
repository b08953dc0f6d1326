package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pomotask/internal/core/timekeeper"
	"pomotask/internal/i18n"
	"pomotask/internal/notify"
	"pomotask/internal/platform"
	"pomotask/internal/storage"
	"pomotask/internal/tui"
	"pomotask/internal/ui/preferences"
)

const appName = "pomotask"

var Version = "dev"

type options struct {
	configPath string
	mute       bool
	lang       string
	sound      string
	logPath    string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:     "pomotask-tui",
		Short:   "Pomodoro timer in the terminal",
		Version: Version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "settings file (default <config dir>/pomotask/settings.yaml)")
	cmd.Flags().BoolVarP(&opts.mute, "mute", "m", false, "disable completion sound and bell")
	cmd.Flags().StringVar(&opts.lang, "lang", "", "interface language (en, ru, pt, es)")
	cmd.Flags().StringVar(&opts.sound, "sound", "", "alert sound file (.ogg or .wav); default is a built-in chime")
	cmd.Flags().StringVar(&opts.logPath, "log", "", "write diagnostics to this file")

	return cmd
}

func run(opts *options) error {
	logger := log.New(io.Discard, "", log.LstdFlags)
	if opts.logPath != "" {
		logFile, err := os.OpenFile(opts.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer logFile.Close()
		logger.SetOutput(logFile)
	}

	if opts.lang != "" {
		i18n.SetLang(opts.lang)
	}

	configPath, err := resolveConfigPath(opts.configPath)
	if err != nil {
		return err
	}
	settings, err := storage.LoadSettings(configPath)
	if err != nil {
		logger.Printf("settings load failed, using defaults: %v", err)
	}
	if opts.mute {
		settings.SoundEnabled = false
	}
	store := preferences.NewStore(settings)

	dispatcher := notify.NewDispatcher(notify.Config{
		SoundEnabled: store.SoundEnabled,
		Haptics:      tui.NewBell(os.Stderr),
		Player:       notify.NewBeepPlayer(),
		Source:       opts.sound,
		Logger:       logger,
	})
	defer dispatcher.Wait()

	keeper := timekeeper.New(store.Get().Timer, timekeeper.Config{
		Notifier: dispatcher,
		Logger:   logger,
	})
	defer keeper.Close()

	model := tui.NewModel(keeper, keeper.Subscribe(64), !store.SoundEnabled())
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}

func resolveConfigPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	appDir, err := platform.NewService().AppDir(appName)
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return storage.SettingsPath(appDir), nil
}
