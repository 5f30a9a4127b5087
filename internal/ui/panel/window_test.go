package panel

import (
	"errors"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"cork/internal/core/timer"
)

type fakeController struct {
	snapshot   timer.Snapshot
	calls      []string
	countdowns []time.Duration
	removed    []int
}

func (ctrl *fakeController) Start() {
	ctrl.calls = append(ctrl.calls, "start")
	ctrl.snapshot.State = timer.StateRunning
}

func (ctrl *fakeController) Stop() {
	ctrl.calls = append(ctrl.calls, "stop")
	ctrl.snapshot.State = timer.StateStopped
}

func (ctrl *fakeController) Reset() {
	ctrl.calls = append(ctrl.calls, "reset")
	ctrl.snapshot = timer.Snapshot{State: timer.StateStopped}
}

func (ctrl *fakeController) AddLap() time.Duration {
	ctrl.calls = append(ctrl.calls, "lap")
	ctrl.snapshot.Laps = append(ctrl.snapshot.Laps, time.Second)
	return time.Second
}

func (ctrl *fakeController) RemoveLap(index int) error {
	if index < 0 || index >= len(ctrl.snapshot.Laps) {
		return timer.ErrLapIndexOutOfRange
	}
	ctrl.removed = append(ctrl.removed, index)
	ctrl.snapshot.Laps = append(ctrl.snapshot.Laps[:index], ctrl.snapshot.Laps[index+1:]...)
	return nil
}

func (ctrl *fakeController) ClearLaps() {
	ctrl.calls = append(ctrl.calls, "clear_laps")
	ctrl.snapshot.Laps = nil
}

func (ctrl *fakeController) StartCountdown(duration time.Duration) error {
	if duration <= 0 {
		return timer.ErrNonPositiveCountdown
	}
	ctrl.countdowns = append(ctrl.countdowns, duration)
	ctrl.snapshot.Countdown = duration
	ctrl.snapshot.CountdownActive = true
	return nil
}

func (ctrl *fakeController) ClearCountdown() {
	ctrl.calls = append(ctrl.calls, "clear_countdown")
	ctrl.snapshot.Countdown = 0
	ctrl.snapshot.CountdownActive = false
}

func (ctrl *fakeController) Snapshot() timer.Snapshot {
	snapshot := ctrl.snapshot
	snapshot.Laps = append([]time.Duration(nil), ctrl.snapshot.Laps...)
	return snapshot
}

func newTestPanel(t *testing.T) (*Window, *fakeController) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)
	ctrl := &fakeController{snapshot: timer.Snapshot{State: timer.StateStopped}}
	return New(app, ctrl), ctrl
}

func TestStartStopToggle(t *testing.T) {
	panel, ctrl := newTestPanel(t)

	test.Tap(panel.startStop)
	if panel.startStop.Text != "Stop" {
		t.Errorf("expected Stop label while running, got %q", panel.startStop.Text)
	}

	test.Tap(panel.startStop)
	if panel.startStop.Text != "Start" {
		t.Errorf("expected Start label while stopped, got %q", panel.startStop.Text)
	}

	if len(ctrl.calls) != 2 || ctrl.calls[0] != "start" || ctrl.calls[1] != "stop" {
		t.Errorf("unexpected calls %v", ctrl.calls)
	}
}

func TestRenderElapsedAndLaps(t *testing.T) {
	panel, ctrl := newTestPanel(t)
	if panel.clearLaps.Visible() {
		t.Error("expected Clear Laps hidden without laps")
	}

	test.Tap(panel.lapButton)
	test.Tap(panel.lapButton)

	if len(panel.laps) != 2 || !panel.clearLaps.Visible() || !panel.lapsHeader.Visible() {
		t.Fatalf("expected two rendered laps with header, got %v", panel.laps)
	}

	panel.removeLap(0)
	if len(ctrl.removed) != 1 || len(panel.laps) != 1 {
		t.Errorf("expected one lap left after removal, got %v", panel.laps)
	}
	panel.removeLap(5)
	if len(ctrl.removed) != 1 {
		t.Error("out of range removal must not reach the engine state")
	}

	test.Tap(panel.clearLaps)
	if panel.clearLaps.Visible() {
		t.Error("expected Clear Laps hidden after clearing")
	}

	panel.Render(timer.Snapshot{Elapsed: 75*time.Second + 600*time.Millisecond})
	if panel.elapsedText.Text != "01:15.6" {
		t.Errorf("expected formatted elapsed, got %q", panel.elapsedText.Text)
	}
}

func TestSubmitCountdown(t *testing.T) {
	panel, ctrl := newTestPanel(t)
	panel.now = func() time.Time {
		return time.Date(2024, 2, 15, 9, 30, 0, 0, time.Local)
	}

	test.Type(panel.targetEntry, "10:00")
	test.Tap(panel.startCountdown)

	if len(ctrl.countdowns) != 1 || ctrl.countdowns[0] != 30*time.Minute {
		t.Fatalf("expected a 30m countdown, got %v", ctrl.countdowns)
	}
	if !panel.remainingText.Visible() || panel.remainingText.Text != "30:00.0" {
		t.Errorf("expected remaining 30:00.0 shown, got %q", panel.remainingText.Text)
	}
	if !panel.startCountdown.Disabled() || panel.clearCountdown.Disabled() {
		t.Error("expected start disabled and clear enabled while active")
	}

	test.Tap(panel.clearCountdown)
	if panel.remainingText.Visible() {
		t.Error("expected remaining time hidden after clear")
	}
}

func TestSubmitCountdownShowsErrors(t *testing.T) {
	panel, ctrl := newTestPanel(t)

	test.Type(panel.targetEntry, "later")
	panel.submitCountdown()

	if !panel.countdownError.Visible() {
		t.Fatal("expected error label for unparsable target")
	}
	if len(ctrl.countdowns) != 0 {
		t.Errorf("expected no countdown started, got %v", ctrl.countdowns)
	}
}

func TestCountdownErrorText(t *testing.T) {
	if got := countdownErrorText(timer.ErrNonPositiveCountdown); got == "" {
		t.Error("expected message for non-positive countdown")
	}
	if got := countdownErrorText(errors.New("boom")); got != "boom" {
		t.Errorf("expected passthrough message, got %q", got)
	}
}
