package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomotask/internal/core/model"
	"pomotask/internal/core/timekeeper"
	"pomotask/internal/i18n"
	"pomotask/internal/testutil"
)

func newTestModel(t *testing.T) (Model, *timekeeper.TimeKeeper, *testutil.ManualScheduler) {
	t.Helper()
	i18n.SetLang("en")
	scheduler := testutil.NewManualScheduler()
	keeper := timekeeper.New(model.DefaultTimerSettings(), timekeeper.Config{Scheduler: scheduler})
	t.Cleanup(keeper.Close)
	return NewModel(keeper, keeper.Subscribe(64), false), keeper, scheduler
}

func press(t *testing.T, m Model, key tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(key)
	updated, ok := next.(Model)
	require.True(t, ok)
	return updated
}

func runes(value string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(value)}
}

func TestSpaceTogglesTimer(t *testing.T) {
	m, keeper, scheduler := newTestModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.True(t, keeper.Snapshot().Active)
	assert.True(t, m.state.Active)

	scheduler.Advance(10)
	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.False(t, keeper.Snapshot().Active)
	assert.Equal(t, 1490, m.state.Remaining)
}

func TestResetSkipAndModeKeys(t *testing.T) {
	m, keeper, scheduler := newTestModel(t)

	keeper.Start()
	scheduler.Advance(5)
	m = press(t, m, runes("r"))
	assert.Equal(t, 1500, m.state.Remaining)
	assert.False(t, m.state.Active)

	m = press(t, m, runes("s"))
	assert.Equal(t, timekeeper.ModeShortBreak, m.state.Mode)
	assert.Equal(t, 300, m.state.Remaining)

	m = press(t, m, runes("3"))
	assert.Equal(t, timekeeper.ModeLongBreak, m.state.Mode)
	assert.Equal(t, 900, m.state.Remaining)

	m = press(t, m, runes("1"))
	assert.Equal(t, timekeeper.ModeWork, m.state.Mode)
	assert.Equal(t, 1, m.state.Session)
}

func TestQuitKeys(t *testing.T) {
	m, _, _ := newTestModel(t)

	for _, key := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(key)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestEventsUpdateState(t *testing.T) {
	m, keeper, _ := newTestModel(t)
	keeper.SetMode(timekeeper.ModeShortBreak)

	cmd := m.Init()
	msg := cmd()
	next, follow := m.Update(msg)
	m = next.(Model)

	assert.Equal(t, timekeeper.ModeShortBreak, m.state.Mode)
	assert.NotNil(t, follow)
}

func TestAlertShowsBanner(t *testing.T) {
	m, _, _ := newTestModel(t)

	next, _ := m.Update(eventMsg(timekeeper.Event{
		Type:  timekeeper.EventAlert,
		State: timekeeper.State{Mode: timekeeper.ModeWork, Session: 1},
	}))
	m = next.(Model)

	assert.Equal(t, "Focus", m.finished)
	assert.Contains(t, m.View(), "Focus ✓")
}

func TestClosedChannelQuits(t *testing.T) {
	m, keeper, _ := newTestModel(t)
	keeper.Close()

	msg := m.Init()()
	assert.IsType(t, closedMsg{}, msg)

	_, cmd := m.Update(msg)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewShowsClockAndSession(t *testing.T) {
	m, _, _ := newTestModel(t)

	view := m.View()

	assert.Contains(t, view, "25:00")
	assert.Contains(t, view, "Session 1")
	assert.Contains(t, view, "space start")
}
