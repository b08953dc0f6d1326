package timekeeper

import (
	"sync"
	"time"

	"pomotask/internal/core/model"
)

// Notifier is told when a countdown reaches zero on its own. It is called with
// the keeper locked, so it must return promptly and must not call back into the
// keeper.
type Notifier interface {
	Notify(completed Mode)
}

// Logger is the subset of *log.Logger the keeper uses.
type Logger interface {
	Printf(format string, args ...any)
}

// Config contains runtime options for TimeKeeper.
type Config struct {
	TickInterval time.Duration
	Scheduler    Scheduler
	Notifier     Notifier
	Logger       Logger
	Now          func() time.Time
}

// TimeKeeper is the Pomodoro state machine. It owns the timer state, drives the
// countdown through its Scheduler and cycles modes on completion.
type TimeKeeper struct {
	mu         sync.Mutex
	settings   model.TimerSettings
	options    Config
	state      State
	cancelTick CancelFunc
	generation uint64
	events     []chan Event
	closed     bool
}

// New creates a TimeKeeper at the start of the first work session.
func New(settings model.TimerSettings, options Config) *TimeKeeper {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Scheduler == nil {
		options.Scheduler = NewTickerScheduler()
	}
	if options.Now == nil {
		options.Now = time.Now
	}

	return &TimeKeeper{
		settings: settings,
		options:  options,
		state: State{
			Mode:      ModeWork,
			Remaining: resolveRemaining(ModeWork, settings),
			Active:    false,
			Session:   1,
		},
	}
}

// Subscribe registers a new observer channel. Slow observers miss events
// rather than stall the timer.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		close(ch)
		return ch
	}
	keeper.events = append(keeper.events, ch)
	return ch
}

// Snapshot returns the current state.
func (keeper *TimeKeeper) Snapshot() State {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.state
}

// Settings returns the settings durations are currently resolved from.
func (keeper *TimeKeeper) Settings() model.TimerSettings {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.settings
}

// Progress returns the elapsed fraction of the current mode in [0, 1].
func (keeper *TimeKeeper) Progress() float64 {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return progress(keeper.state.Remaining, Resolve(keeper.state.Mode, keeper.settings))
}

// Start runs the countdown. A timer with nothing left completes immediately.
func (keeper *TimeKeeper) Start() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed || keeper.state.Active {
		return
	}

	if keeper.state.Remaining <= 0 {
		keeper.completeLocked(true)
		return
	}

	keeper.state.Active = true
	keeper.scheduleLocked()
	keeper.emitLocked(EventStateChange)
}

// Pause stops the countdown, keeping the remaining time.
func (keeper *TimeKeeper) Pause() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed || !keeper.state.Active {
		return
	}

	keeper.cancelLocked()
	keeper.state.Active = false
	keeper.emitLocked(EventStateChange)
}

// Reset stops the countdown and refills the current mode.
func (keeper *TimeKeeper) Reset() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		return
	}

	keeper.cancelLocked()
	keeper.state.Active = false
	keeper.state.Remaining = resolveRemaining(keeper.state.Mode, keeper.settings)
	keeper.emitLocked(EventStateChange)
}

// SetMode switches to mode, stopped and full. Unknown modes are ignored.
func (keeper *TimeKeeper) SetMode(mode Mode) {
	if !mode.Valid() {
		keeper.logf("timekeeper: ignoring unknown mode %q", mode)
		return
	}

	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		return
	}

	keeper.cancelLocked()
	keeper.state.Mode = mode
	keeper.state.Active = false
	keeper.state.Remaining = resolveRemaining(mode, keeper.settings)
	keeper.emitLocked(EventStateChange)
}

// Skip moves to the next mode as if the countdown had finished, without alerting.
func (keeper *TimeKeeper) Skip() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		return
	}

	keeper.cancelLocked()
	keeper.completeLocked(false)
}

// UpdateSettings merges patch into the settings. A stopped timer is refilled
// for the current mode; a running countdown keeps its remaining time.
func (keeper *TimeKeeper) UpdateSettings(patch model.TimerSettingsPatch) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		return
	}

	keeper.settings = keeper.settings.Merge(patch)
	if !keeper.state.Active {
		keeper.state.Remaining = resolveRemaining(keeper.state.Mode, keeper.settings)
	}
	keeper.emitLocked(EventStateChange)
}

// Close cancels the countdown and closes every observer channel.
func (keeper *TimeKeeper) Close() {
	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		return
	}
	keeper.cancelLocked()
	keeper.state.Active = false
	keeper.closed = true
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (keeper *TimeKeeper) scheduleLocked() {
	keeper.cancelLocked()
	generation := keeper.generation
	keeper.cancelTick = keeper.options.Scheduler.ScheduleRepeating(keeper.options.TickInterval, func() {
		keeper.tick(generation)
	})
}

// cancelLocked drops the pending schedule. Bumping the generation makes any
// tick already waiting on the lock a no-op.
func (keeper *TimeKeeper) cancelLocked() {
	keeper.generation++
	if keeper.cancelTick != nil {
		keeper.cancelTick()
		keeper.cancelTick = nil
	}
}

func (keeper *TimeKeeper) tick(generation uint64) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed || generation != keeper.generation || !keeper.state.Active {
		return
	}

	keeper.state.Remaining--
	if keeper.state.Remaining > 0 {
		keeper.emitLocked(EventTick)
		return
	}

	keeper.cancelLocked()
	keeper.state.Remaining = 0
	keeper.state.Active = false
	keeper.completeLocked(true)
}

// completeLocked cycles to the next mode. On a natural completion the notifier
// hears about the mode being left before the next state is committed.
func (keeper *TimeKeeper) completeLocked(natural bool) {
	next := keeper.nextStateLocked()

	if natural {
		if keeper.options.Notifier != nil {
			keeper.options.Notifier.Notify(keeper.state.Mode)
		}
		keeper.emitLocked(EventAlert)
	}

	keeper.state = next
	if natural {
		keeper.emitLocked(EventComplete)
	} else {
		keeper.emitLocked(EventSkip)
	}
}

func (keeper *TimeKeeper) nextStateLocked() State {
	current := keeper.state
	if current.Mode == ModeWork {
		nextMode := ModeShortBreak
		if keeper.longBreakDueLocked() {
			nextMode = ModeLongBreak
		}
		return State{
			Mode:      nextMode,
			Remaining: resolveRemaining(nextMode, keeper.settings),
			Active:    false,
			Session:   current.Session,
		}
	}

	return State{
		Mode:      ModeWork,
		Remaining: resolveRemaining(ModeWork, keeper.settings),
		Active:    false,
		Session:   current.Session + 1,
	}
}

func (keeper *TimeKeeper) longBreakDueLocked() bool {
	interval := keeper.settings.LongBreakInterval
	return interval != 0 && keeper.state.Session%interval == 0
}

func (keeper *TimeKeeper) emitLocked(eventType EventType) {
	event := Event{
		Type:  eventType,
		State: keeper.state,
		At:    keeper.options.Now(),
	}
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}

func (keeper *TimeKeeper) logf(format string, args ...any) {
	if keeper.options.Logger != nil {
		keeper.options.Logger.Printf(format, args...)
	}
}
