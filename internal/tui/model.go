// Package tui runs the timer in a terminal using Bubble Tea.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pomotask/internal/core/timekeeper"
	"pomotask/internal/i18n"
)

const maxBarWidth = 60

// Timer is the part of the timekeeper the terminal drives.
type Timer interface {
	Start()
	Pause()
	Reset()
	Skip()
	SetMode(mode timekeeper.Mode)
	Snapshot() timekeeper.State
	Progress() float64
}

// eventMsg carries a timer event into the update loop.
type eventMsg timekeeper.Event

// closedMsg reports that the timer stopped publishing events.
type closedMsg struct{}

var (
	workColor   = lipgloss.Color("#E06C75")
	breakColor  = lipgloss.Color("#98C379")
	pausedColor = lipgloss.Color("#7F848E")
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#5C6370"))
	alertStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E5C07B"))
)

// Model is the Bubble Tea model of the terminal timer.
type Model struct {
	timer    Timer
	events   <-chan timekeeper.Event
	state    timekeeper.State
	percent  float64
	progress progress.Model
	finished string
	muted    bool
}

// NewModel creates a model that reads timer state from events.
func NewModel(timer Timer, events <-chan timekeeper.Event, muted bool) Model {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 40
	return Model{
		timer:    timer,
		events:   events,
		state:    timer.Snapshot(),
		percent:  timer.Progress(),
		progress: bar,
		muted:    muted,
	}
}

// Init starts listening for timer events.
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func waitForEvent(events <-chan timekeeper.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return closedMsg{}
		}
		return eventMsg(event)
	}
}

// Update handles keys and timer events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if m.timer.Snapshot().Active {
				m.timer.Pause()
			} else {
				m.finished = ""
				m.timer.Start()
			}
		case "r":
			m.timer.Reset()
		case "s":
			m.timer.Skip()
		case "1", "2", "3":
			index := int(msg.String()[0] - '1')
			m.timer.SetMode(timekeeper.Modes[index])
		default:
			return m, nil
		}
		m.state = m.timer.Snapshot()
		m.percent = m.timer.Progress()
		return m, nil

	case eventMsg:
		event := timekeeper.Event(msg)
		if event.Type == timekeeper.EventAlert {
			m.finished = event.State.Mode.Label()
		}
		m.state = event.State
		m.percent = m.timer.Progress()
		return m, waitForEvent(m.events)

	case closedMsg:
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.progress.Width = min(msg.Width-4, maxBarWidth)
		return m, nil
	}

	return m, nil
}

// View renders the timer.
func (m Model) View() string {
	accent := workColor
	if m.state.Mode.IsBreak() {
		accent = breakColor
	}
	clockColor := accent
	if !m.state.Active {
		clockColor = pausedColor
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(accent).Render(i18n.T(m.state.Mode.Label()))
	clock := lipgloss.NewStyle().Bold(true).Foreground(clockColor).Render(timekeeper.FormatClock(m.state.Remaining))

	var b strings.Builder
	b.WriteString("\n  " + title + "  " + fmt.Sprintf(i18n.T("Session %d"), m.state.Session) + "\n\n")
	b.WriteString("  " + clock + "\n\n")
	b.WriteString("  " + m.progress.ViewAs(m.percent) + "\n\n")
	if m.finished != "" {
		b.WriteString("  " + alertStyle.Render(fmt.Sprintf("%s ✓", i18n.T(m.finished))) + "\n\n")
	}

	toggle := i18n.T("Start")
	if m.state.Active {
		toggle = i18n.T("Pause")
	}
	sound := ""
	if m.muted {
		sound = " · muted"
	}
	help := fmt.Sprintf("space %s · r %s · s %s · 1/2/3 mode · q %s%s",
		strings.ToLower(toggle), strings.ToLower(i18n.T("Reset")), strings.ToLower(i18n.T("Skip")), strings.ToLower(i18n.T("Quit")), sound)
	b.WriteString("  " + helpStyle.Render(help) + "\n")
	return b.String()
}
