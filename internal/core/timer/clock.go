package timer

import (
	"sync"
	"time"
)

// Handle cancels a periodic tick. Cancel is safe to call more than once
// and from inside the tick callback.
type Handle interface {
	Cancel()
}

// Clock provides the current time and periodic ticks.
// Tests substitute a manual implementation.
type Clock interface {
	Now() time.Time
	Every(interval time.Duration, tick func(time.Time)) Handle
}

// SystemClock is the default Clock backed by time.Ticker.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Every(interval time.Duration, tick func(time.Time)) Handle {
	handle := &tickerHandle{stopCh: make(chan struct{})}
	go handle.run(interval, tick)
	return handle
}

type tickerHandle struct {
	once   sync.Once
	stopCh chan struct{}
}

func (handle *tickerHandle) Cancel() {
	handle.once.Do(func() {
		close(handle.stopCh)
	})
}

func (handle *tickerHandle) run(interval time.Duration, tick func(time.Time)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-handle.stopCh:
			return
		case tickTime := <-ticker.C:
			tick(tickTime)
		}
	}
}
