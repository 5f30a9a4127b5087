package timer

import (
	"sync"
	"time"
)

// manualClock fires registered ticks only when Advance is called.
type manualClock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*manualTicker
}

type manualTicker struct {
	clock    *manualClock
	interval time.Duration
	next     time.Time
	tick     func(time.Time)
	canceled bool
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2024, 2, 15, 9, 0, 0, 0, time.UTC)}
}

func (clock *manualClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

func (clock *manualClock) Every(interval time.Duration, tick func(time.Time)) Handle {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	ticker := &manualTicker{
		clock:    clock,
		interval: interval,
		next:     clock.now.Add(interval),
		tick:     tick,
	}
	clock.tickers = append(clock.tickers, ticker)
	return ticker
}

func (ticker *manualTicker) Cancel() {
	ticker.clock.mu.Lock()
	defer ticker.clock.mu.Unlock()
	ticker.canceled = true
}

// Advance moves time forward by step, firing due ticks in order.
func (clock *manualClock) Advance(step time.Duration) {
	clock.mu.Lock()
	target := clock.now.Add(step)
	clock.mu.Unlock()

	for {
		clock.mu.Lock()
		var due *manualTicker
		for _, ticker := range clock.tickers {
			if ticker.canceled || ticker.next.After(target) {
				continue
			}
			if due == nil || ticker.next.Before(due.next) {
				due = ticker
			}
		}
		if due == nil {
			clock.now = target
			clock.mu.Unlock()
			return
		}
		clock.now = due.next
		due.next = due.next.Add(due.interval)
		fireAt := clock.now
		clock.mu.Unlock()

		due.tick(fireAt)
	}
}

// Ticks advances the clock by n intervals of step.
func (clock *manualClock) Ticks(n int, step time.Duration) {
	for i := 0; i < n; i++ {
		clock.Advance(step)
	}
}

// Active returns the number of tickers that were not canceled.
func (clock *manualClock) Active() int {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	count := 0
	for _, ticker := range clock.tickers {
		if !ticker.canceled {
			count++
		}
	}
	return count
}
