package timer

import "time"

// State represents the stopwatch run state.
type State string

const (
	StateStopped State = "stopped"
	StateRunning State = "running"
)

// EventType defines the type of engine event.
type EventType string

const (
	EventStateChange      EventType = "state_change"
	EventElapsed          EventType = "elapsed"
	EventReset            EventType = "reset"
	EventLaps             EventType = "laps"
	EventCountdown        EventType = "countdown"
	EventCountdownDone    EventType = "countdown_done"
	EventCountdownCleared EventType = "countdown_cleared"
)

// Snapshot is a consistent copy of the engine state.
type Snapshot struct {
	State           State
	StartedAt       time.Time
	Elapsed         time.Duration
	Held            time.Duration
	PreviousElapsed time.Duration
	Laps            []time.Duration
	Countdown       time.Duration
	CountdownActive bool
}

// CurrentSplit returns the in-progress split since the last lap boundary.
func (snapshot Snapshot) CurrentSplit() time.Duration {
	return snapshot.Elapsed - snapshot.PreviousElapsed
}

// LapTotal returns the sum of all recorded splits.
func (snapshot Snapshot) LapTotal() time.Duration {
	var total time.Duration
	for _, lap := range snapshot.Laps {
		total += lap
	}
	return total
}

// Event represents an engine update for observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	At       time.Time
}
