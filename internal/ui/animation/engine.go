package animation

import (
	"context"
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// Config contains flash timing values.
type Config struct {
	AlertDuration time.Duration
	RestDuration  time.Duration
	FlashDuration time.Duration
}

// Engine alternates the tray icon to draw attention.
type Engine struct {
	mu         sync.Mutex
	config     Config
	updateIcon func(fyne.Resource)
	cancel     context.CancelFunc
	done       chan struct{}
}

// New creates a new animation engine.
func New(config Config, updateIcon func(fyne.Resource)) *Engine {
	return &Engine{
		config:     config,
		updateIcon: updateIcon,
	}
}

// Flash alternates between the alert and rest icons until FlashDuration
// elapses or ctx is canceled. The rest icon is always shown last.
// A new Flash replaces the one in progress.
func (engine *Engine) Flash(ctx context.Context, spec FlashSpec) {
	engine.start(ctx, func(runCtx context.Context) {
		defer engine.updateIcon(spec.Rest)

		deadline := time.Now().Add(engine.config.FlashDuration)
		for time.Now().Before(deadline) {
			engine.updateIcon(spec.Alert)
			if !sleepWithContext(runCtx, engine.config.AlertDuration) {
				return
			}
			engine.updateIcon(spec.Rest)
			if !sleepWithContext(runCtx, engine.config.RestDuration) {
				return
			}
		}
	})
}

// Stop terminates any active animation.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
}

// Done returns a channel closed when the current animation has finished.
func (engine *Engine) Done() <-chan struct{} {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.done == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return engine.done
}

func (engine *Engine) start(parent context.Context, run func(context.Context)) {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
	}
	previous := engine.done
	runCtx, cancel := context.WithCancel(parent)
	done := make(chan struct{})
	engine.cancel = cancel
	engine.done = done
	engine.mu.Unlock()

	go func() {
		defer close(done)
		defer cancel()
		if previous != nil {
			<-previous
		}
		run(runCtx)
	}()
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
