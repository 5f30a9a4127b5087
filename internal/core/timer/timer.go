package timer

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"cork/internal/core/model"
)

// DefaultTickInterval is the refresh period of both the stopwatch and the
// countdown.
const DefaultTickInterval = 100 * time.Millisecond

var (
	// ErrLapIndexOutOfRange indicates RemoveLap was given an index outside the lap list.
	ErrLapIndexOutOfRange = errors.New("lap index out of range")
	// ErrNonPositiveCountdown indicates StartCountdown was given a duration <= 0.
	ErrNonPositiveCountdown = errors.New("countdown duration must be positive")
)

// Config contains runtime options for Engine.
type Config struct {
	TickInterval time.Duration
	Clock        Clock
}

// Engine owns the stopwatch, its laps and an independent countdown.
//
// The stopwatch tick is active only while the state is StateRunning and the
// countdown tick only while a countdown is in progress. Both may run at the
// same time. All mutations, tick-driven ones included, happen under mu.
type Engine struct {
	mu      sync.Mutex
	config  model.StopwatchConfig
	options Config

	state           State
	startTime       time.Time
	elapsed         time.Duration
	held            time.Duration
	laps            []time.Duration
	previousElapsed time.Duration
	countdown       time.Duration

	stopwatchTick Handle
	stopwatchGen  uint64
	countdownTick Handle
	countdownGen  uint64

	events []chan Event
	closed bool
}

// New creates a stopped Engine with the provided configuration.
func New(config model.StopwatchConfig, options Config) *Engine {
	if options.TickInterval <= 0 {
		options.TickInterval = DefaultTickInterval
	}
	if options.Clock == nil {
		options.Clock = SystemClock
	}

	return &Engine{
		config:  config,
		options: options,
		state:   StateStopped,
	}
}

// UpdateConfig replaces the runtime configuration. Timer data is untouched.
func (engine *Engine) UpdateConfig(config model.StopwatchConfig) {
	engine.mu.Lock()
	engine.config = config
	engine.mu.Unlock()
}

// Subscribe registers a new observer channel. Events are dropped for an
// observer whose buffer is full.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	if engine.closed {
		close(ch)
	} else {
		engine.events = append(engine.events, ch)
	}
	engine.mu.Unlock()
	return ch
}

// Close cancels both ticks and closes all observer channels.
func (engine *Engine) Close() {
	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		return
	}
	engine.closed = true
	engine.cancelStopwatchLocked()
	engine.cancelCountdownLocked()
	events := engine.events
	engine.events = nil
	engine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Start resumes counting from the current elapsed time. It does nothing
// while the stopwatch is already running.
func (engine *Engine) Start() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed || engine.state == StateRunning {
		return
	}

	now := engine.options.Clock.Now()
	engine.startTime = now.Add(-engine.elapsed)
	engine.state = StateRunning
	engine.stopwatchGen++
	generation := engine.stopwatchGen
	engine.stopwatchTick = engine.options.Clock.Every(engine.options.TickInterval, func(time.Time) {
		engine.tickStopwatch(generation)
	})

	engine.emitLocked(EventStateChange, now)
}

// Stop freezes the elapsed time into the held time. It does nothing while
// the stopwatch is stopped.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.state != StateRunning {
		return
	}

	engine.cancelStopwatchLocked()
	engine.held = engine.elapsed
	engine.startTime = time.Time{}
	engine.state = StateStopped

	engine.emitLocked(EventStateChange, engine.options.Clock.Now())
}

// Reset stops the stopwatch and clears elapsed time, held time and laps.
func (engine *Engine) Reset() {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	engine.cancelStopwatchLocked()
	engine.state = StateStopped
	engine.startTime = time.Time{}
	engine.held = 0
	engine.elapsed = 0
	engine.laps = nil
	engine.previousElapsed = 0

	engine.emitLocked(EventReset, engine.options.Clock.Now())
}

// AddLap records the split since the previous lap boundary and returns it.
// The first lap spans the whole elapsed time.
func (engine *Engine) AddLap() time.Duration {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	split := engine.elapsed
	if len(engine.laps) > 0 {
		split = engine.elapsed - engine.previousElapsed
	}
	engine.laps = append(engine.laps, split)
	engine.previousElapsed = engine.elapsed

	engine.emitLocked(EventLaps, engine.options.Clock.Now())
	return split
}

// RemoveLap deletes the lap at index and merges its duration forward: into
// the following lap if there is one, otherwise into the in-progress split.
func (engine *Engine) RemoveLap(index int) error {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	if index < 0 || index >= len(engine.laps) {
		return fmt.Errorf("remove lap %d of %d: %w", index, len(engine.laps), ErrLapIndexOutOfRange)
	}

	removed := engine.laps[index]
	engine.laps = append(engine.laps[:index], engine.laps[index+1:]...)
	if index < len(engine.laps) {
		engine.laps[index] += removed
	} else {
		engine.previousElapsed -= removed
	}

	engine.emitLocked(EventLaps, engine.options.Clock.Now())
	return nil
}

// ClearLaps empties the lap list. The lap boundary is kept unless
// ClearLapsResetsBoundary is set.
func (engine *Engine) ClearLaps() {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	engine.laps = nil
	if engine.config.ClearLapsResetsBoundary {
		engine.previousElapsed = 0
	}

	engine.emitLocked(EventLaps, engine.options.Clock.Now())
}

// StartCountdown begins counting down from duration. It does nothing while
// another countdown is active.
func (engine *Engine) StartCountdown(duration time.Duration) error {
	if duration <= 0 {
		return fmt.Errorf("start countdown %s: %w", duration, ErrNonPositiveCountdown)
	}

	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed || engine.countdownTick != nil {
		return nil
	}

	engine.countdown = duration
	engine.countdownGen++
	generation := engine.countdownGen
	engine.countdownTick = engine.options.Clock.Every(engine.options.TickInterval, func(time.Time) {
		engine.tickCountdown(generation)
	})

	engine.emitLocked(EventCountdown, engine.options.Clock.Now())
	return nil
}

// ClearCountdown cancels the countdown and zeroes the remaining time.
func (engine *Engine) ClearCountdown() {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	if engine.countdownTick == nil && engine.countdown == 0 {
		return
	}
	engine.cancelCountdownLocked()
	engine.emitLocked(EventCountdownCleared, engine.options.Clock.Now())
}

// Snapshot returns a consistent copy of the engine state.
func (engine *Engine) Snapshot() Snapshot {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.snapshotLocked()
}

// State returns the stopwatch run state.
func (engine *Engine) State() State {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.state
}

// Elapsed returns the accumulated running time.
func (engine *Engine) Elapsed() time.Duration {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.elapsed
}

// Held returns the elapsed time captured by the last Stop.
func (engine *Engine) Held() time.Duration {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.held
}

// Laps returns a copy of the recorded splits.
func (engine *Engine) Laps() []time.Duration {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return append([]time.Duration(nil), engine.laps...)
}

// Countdown returns the remaining countdown time.
func (engine *Engine) Countdown() time.Duration {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.countdown
}

// CountdownActive reports whether the countdown tick is running.
func (engine *Engine) CountdownActive() bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.countdownTick != nil
}

func (engine *Engine) tickStopwatch(generation uint64) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if generation != engine.stopwatchGen || engine.state != StateRunning {
		return
	}

	now := engine.options.Clock.Now()
	engine.elapsed = now.Sub(engine.startTime)
	if engine.elapsed < 0 {
		engine.elapsed = 0
	}
	engine.emitLocked(EventElapsed, now)
}

func (engine *Engine) tickCountdown(generation uint64) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if generation != engine.countdownGen || engine.countdownTick == nil {
		return
	}

	now := engine.options.Clock.Now()
	if engine.countdown > 0 {
		engine.countdown -= engine.options.TickInterval
	}
	if engine.countdown <= 0 {
		engine.cancelCountdownLocked()
		engine.emitLocked(EventCountdownDone, now)
		return
	}
	engine.emitLocked(EventCountdown, now)
}

func (engine *Engine) cancelStopwatchLocked() {
	if engine.stopwatchTick != nil {
		engine.stopwatchTick.Cancel()
		engine.stopwatchTick = nil
	}
	engine.stopwatchGen++
}

func (engine *Engine) cancelCountdownLocked() {
	if engine.countdownTick != nil {
		engine.countdownTick.Cancel()
		engine.countdownTick = nil
	}
	engine.countdownGen++
	engine.countdown = 0
}

func (engine *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		State:           engine.state,
		StartedAt:       engine.startTime,
		Elapsed:         engine.elapsed,
		Held:            engine.held,
		PreviousElapsed: engine.previousElapsed,
		Laps:            append([]time.Duration(nil), engine.laps...),
		Countdown:       engine.countdown,
		CountdownActive: engine.countdownTick != nil,
	}
}

func (engine *Engine) emitLocked(eventType EventType, at time.Time) {
	if len(engine.events) == 0 {
		return
	}
	event := Event{
		Type:     eventType,
		Snapshot: engine.snapshotLocked(),
		At:       at,
	}
	for _, ch := range engine.events {
		select {
		case ch <- event:
		default:
		}
	}
}
