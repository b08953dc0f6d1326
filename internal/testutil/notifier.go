package testutil

import (
	"fmt"
	"sync"

	"pomotask/internal/core/timekeeper"
)

// RecordingNotifier remembers every mode it was notified about.
type RecordingNotifier struct {
	mu    sync.Mutex
	modes []timekeeper.Mode
}

// Notify records the completed mode.
func (notifier *RecordingNotifier) Notify(completed timekeeper.Mode) {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	notifier.modes = append(notifier.modes, completed)
}

// Calls returns the recorded modes in call order.
func (notifier *RecordingNotifier) Calls() []timekeeper.Mode {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	return append([]timekeeper.Mode(nil), notifier.modes...)
}

// Logger collects formatted log lines.
type Logger struct {
	mu    sync.Mutex
	lines []string
}

// Printf records one line.
func (logger *Logger) Printf(format string, args ...any) {
	logger.mu.Lock()
	defer logger.mu.Unlock()
	logger.lines = append(logger.lines, fmt.Sprintf(format, args...))
}

// Lines returns the recorded lines.
func (logger *Logger) Lines() []string {
	logger.mu.Lock()
	defer logger.mu.Unlock()
	return append([]string(nil), logger.lines...)
}
