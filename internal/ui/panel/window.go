package panel

import (
	"errors"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"cork/internal/core/timer"
	"cork/internal/i18n"
)

// Controller is the part of the timer engine driven by the panel.
type Controller interface {
	Start()
	Stop()
	Reset()
	AddLap() time.Duration
	RemoveLap(index int) error
	ClearLaps()
	StartCountdown(duration time.Duration) error
	ClearCountdown()
	Snapshot() timer.Snapshot
}

// Window is the menu bar panel with a stopwatch tab and a countdown tab.
// Every method must run on the Fyne UI goroutine.
type Window struct {
	window     fyne.Window
	controller Controller
	now        func() time.Time
	onQuit     func()

	elapsedText *canvas.Text
	startStop   *widget.Button
	resetButton *widget.Button
	lapButton   *widget.Button
	clearLaps   *widget.Button
	lapsHeader  *widget.Label
	lapsList    *widget.List

	remainingTitle *widget.Label
	remainingText  *canvas.Text
	targetEntry    *widget.Entry
	startCountdown *widget.Button
	clearCountdown *widget.Button
	countdownError *widget.Label

	laps []time.Duration
}

const (
	elapsedTextSize   = 34
	remainingTextSize = 24
)

// New creates the panel window. It starts hidden.
func New(app fyne.App, controller Controller) *Window {
	panel := &Window{
		window:     app.NewWindow("Cork"),
		controller: controller,
		now:        time.Now,
	}
	if app.Icon() != nil {
		panel.window.SetIcon(app.Icon())
	}

	tabs := container.NewAppTabs(
		container.NewTabItem(i18n.T("Stopwatch"), panel.buildStopwatch()),
		container.NewTabItem(i18n.T("Countdown"), panel.buildCountdown()),
	)

	quitButton := widget.NewButtonWithIcon("", theme.CancelIcon(), func() {
		if panel.onQuit != nil {
			panel.onQuit()
		}
	})
	quitButton.Importance = widget.LowImportance
	header := container.NewHBox(quitButton, layout.NewSpacer())

	panel.window.SetContent(container.NewBorder(header, nil, nil, nil, tabs))
	panel.window.Resize(fyne.NewSize(300, 420))
	panel.window.SetCloseIntercept(func() {
		panel.window.Hide()
	})

	panel.Render(controller.Snapshot())
	return panel
}

// Window returns the underlying Fyne window.
func (panel *Window) Window() fyne.Window {
	return panel.window
}

// Show displays the panel.
func (panel *Window) Show() {
	panel.window.Show()
	panel.window.RequestFocus()
}

// Hide hides the panel.
func (panel *Window) Hide() {
	panel.window.Hide()
}

// SetOnQuit sets the quit handler.
func (panel *Window) SetOnQuit(handler func()) {
	panel.onQuit = handler
}

// Render refreshes every widget from an engine snapshot.
func (panel *Window) Render(snapshot timer.Snapshot) {
	panel.elapsedText.Text = timer.FormatDuration(snapshot.Elapsed)
	panel.elapsedText.Refresh()

	if snapshot.State == timer.StateRunning {
		panel.startStop.SetText(i18n.T("Stop"))
		panel.startStop.Importance = widget.WarningImportance
	} else {
		panel.startStop.SetText(i18n.T("Start"))
		panel.startStop.Importance = widget.HighImportance
	}
	panel.startStop.Refresh()

	panel.laps = snapshot.Laps
	if len(panel.laps) > 0 {
		panel.lapsHeader.Show()
		panel.clearLaps.Show()
	} else {
		panel.lapsHeader.Hide()
		panel.clearLaps.Hide()
	}
	panel.lapsList.Refresh()

	if snapshot.Countdown > 0 {
		panel.remainingText.Text = timer.FormatDuration(snapshot.Countdown)
		panel.remainingTitle.Show()
		panel.remainingText.Show()
	} else {
		panel.remainingTitle.Hide()
		panel.remainingText.Hide()
	}
	panel.remainingText.Refresh()

	if snapshot.CountdownActive {
		panel.startCountdown.Disable()
		panel.clearCountdown.Enable()
	} else {
		panel.startCountdown.Enable()
		panel.clearCountdown.Disable()
	}
}

func (panel *Window) buildStopwatch() fyne.CanvasObject {
	panel.elapsedText = canvas.NewText("0.0", theme.Color(theme.ColorNameForeground))
	panel.elapsedText.Alignment = fyne.TextAlignCenter
	panel.elapsedText.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	panel.elapsedText.TextSize = elapsedTextSize

	panel.startStop = widget.NewButton(i18n.T("Start"), panel.toggleRunning)
	panel.resetButton = widget.NewButton(i18n.T("Reset"), func() {
		panel.controller.Reset()
		panel.Render(panel.controller.Snapshot())
	})
	panel.lapButton = widget.NewButton(i18n.T("Lap"), func() {
		panel.controller.AddLap()
		panel.Render(panel.controller.Snapshot())
	})
	panel.clearLaps = widget.NewButton(i18n.T("Clear Laps"), func() {
		panel.controller.ClearLaps()
		panel.Render(panel.controller.Snapshot())
	})
	panel.clearLaps.Importance = widget.LowImportance

	panel.lapsHeader = widget.NewLabelWithStyle(i18n.T("Laps:"), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	panel.lapsList = widget.NewList(
		func() int {
			return len(panel.laps)
		},
		func() fyne.CanvasObject {
			return container.NewHBox(
				widget.NewLabel("Lap 000"),
				widget.NewLabelWithStyle("00:00:00.0", fyne.TextAlignTrailing, fyne.TextStyle{Monospace: true}),
				layout.NewSpacer(),
				widget.NewButtonWithIcon("", theme.CancelIcon(), nil),
			)
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			if id < 0 || id >= len(panel.laps) {
				return
			}
			row := item.(*fyne.Container)
			row.Objects[0].(*widget.Label).SetText(fmt.Sprintf("%s %d", i18n.T("Lap"), id+1))
			row.Objects[1].(*widget.Label).SetText(timer.FormatDuration(panel.laps[id]))
			row.Objects[3].(*widget.Button).OnTapped = func() {
				panel.removeLap(id)
			}
		},
	)

	controls := container.NewGridWithColumns(2, panel.startStop, panel.resetButton)
	top := container.NewVBox(
		panel.elapsedText,
		controls,
		panel.lapButton,
		container.NewHBox(panel.lapsHeader, layout.NewSpacer(), panel.clearLaps),
	)
	return container.NewBorder(top, nil, nil, nil, panel.lapsList)
}

func (panel *Window) buildCountdown() fyne.CanvasObject {
	panel.remainingTitle = widget.NewLabelWithStyle(i18n.T("Time Remaining:"), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	panel.remainingText = canvas.NewText("", theme.Color(theme.ColorNameForeground))
	panel.remainingText.Alignment = fyne.TextAlignCenter
	panel.remainingText.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	panel.remainingText.TextSize = remainingTextSize

	panel.targetEntry = widget.NewEntry()
	panel.targetEntry.SetPlaceHolder("HH:MM / 25m")
	panel.targetEntry.OnSubmitted = func(string) {
		panel.submitCountdown()
	}

	panel.countdownError = widget.NewLabel("")
	panel.countdownError.Importance = widget.DangerImportance
	panel.countdownError.Hide()

	panel.startCountdown = widget.NewButton(i18n.T("Start"), panel.submitCountdown)
	panel.clearCountdown = widget.NewButton(i18n.T("Clear"), func() {
		panel.controller.ClearCountdown()
		panel.Render(panel.controller.Snapshot())
	})

	form := container.NewBorder(nil, nil, widget.NewLabel(i18n.T("Enter Time:")), nil, panel.targetEntry)
	return container.NewVBox(
		panel.remainingTitle,
		panel.remainingText,
		form,
		panel.countdownError,
		container.NewGridWithColumns(2, panel.startCountdown, panel.clearCountdown),
	)
}

func (panel *Window) toggleRunning() {
	if panel.controller.Snapshot().State == timer.StateRunning {
		panel.controller.Stop()
	} else {
		panel.controller.Start()
	}
	panel.Render(panel.controller.Snapshot())
}

func (panel *Window) removeLap(index int) {
	if err := panel.controller.RemoveLap(index); err != nil {
		// The list can be one render behind the engine; the next event redraws it.
		if !errors.Is(err, timer.ErrLapIndexOutOfRange) {
			fyne.LogError("remove lap", err)
		}
	}
	panel.Render(panel.controller.Snapshot())
}

func (panel *Window) submitCountdown() {
	duration, err := timer.ParseCountdown(panel.targetEntry.Text, panel.now())
	if err == nil {
		err = panel.controller.StartCountdown(duration)
	}
	if err != nil {
		panel.countdownError.SetText(countdownErrorText(err))
		panel.countdownError.Show()
		return
	}
	panel.countdownError.Hide()
	panel.Render(panel.controller.Snapshot())
}

func countdownErrorText(err error) string {
	switch {
	case errors.Is(err, timer.ErrNonPositiveCountdown):
		return "Enter a duration above zero"
	case errors.Is(err, timer.ErrInvalidTarget):
		return "Use HH:MM or a duration like 25m"
	default:
		return err.Error()
	}
}
