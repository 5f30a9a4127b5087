package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"cork/internal/i18n"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShowPanel      func()
	OnToggleRun      func()
	OnLap            func()
	OnReset          func()
	OnClearCountdown func()
	OnPreferences    func()
	OnQuit           func()
}

// Manager handles system tray state.
type Manager struct {
	app             desktop.App
	statusItem      *fyne.MenuItem
	runItem         *fyne.MenuItem
	lapItem         *fyne.MenuItem
	clearItem       *fyne.MenuItem
	callbacks       Callbacks
	running         bool
	countdownActive bool
	statusLabel     string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:         app,
		callbacks:   callbacks,
		statusLabel: "0.0",
	}

	manager.statusItem = fyne.NewMenuItem(manager.statusLabel, nil)
	manager.statusItem.Disabled = true

	manager.runItem = fyne.NewMenuItem(i18n.T("Start"), func() {
		invoke(manager.callbacks.OnToggleRun)
	})

	manager.lapItem = fyne.NewMenuItem(i18n.T("Lap"), func() {
		invoke(manager.callbacks.OnLap)
	})
	manager.lapItem.Disabled = true

	manager.clearItem = fyne.NewMenuItem(i18n.T("Clear countdown"), func() {
		invoke(manager.callbacks.OnClearCountdown)
	})
	manager.clearItem.Disabled = true

	manager.refreshMenu()
	return manager
}

// SetStatus updates the status label with the stopwatch text and, when a
// countdown is in progress, its remaining time.
func (manager *Manager) SetStatus(elapsed, remaining string) {
	status := elapsed
	if remaining != "" {
		status = fmt.Sprintf("%s  ·  %s %s", elapsed, i18n.T("Countdown"), remaining)
	}
	if status == manager.statusLabel {
		return
	}
	manager.statusLabel = status
	manager.statusItem.Label = status
	manager.refreshMenu()
}

// SetRunning switches the Start/Stop item and enables Lap while running.
func (manager *Manager) SetRunning(running bool) {
	if running == manager.running {
		return
	}
	manager.running = running
	if running {
		manager.runItem.Label = i18n.T("Stop")
	} else {
		manager.runItem.Label = i18n.T("Start")
	}
	manager.lapItem.Disabled = !running
	manager.refreshMenu()
}

// SetCountdownActive enables the clear countdown item.
func (manager *Manager) SetCountdownActive(active bool) {
	if active == manager.countdownActive {
		return
	}
	manager.countdownActive = active
	manager.clearItem.Disabled = !active
	manager.refreshMenu()
}

// Status returns the current status label.
func (manager *Manager) Status() string {
	return manager.statusLabel
}

func (manager *Manager) items() []*fyne.MenuItem {
	return []*fyne.MenuItem{
		manager.statusItem,
		fyne.NewMenuItem(i18n.T("Show Cork"), func() {
			invoke(manager.callbacks.OnShowPanel)
		}),
		fyne.NewMenuItemSeparator(),
		manager.runItem,
		manager.lapItem,
		fyne.NewMenuItem(i18n.T("Reset"), func() {
			invoke(manager.callbacks.OnReset)
		}),
		manager.clearItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(i18n.T("Preferences"), func() {
			invoke(manager.callbacks.OnPreferences)
		}),
		fyne.NewMenuItem(i18n.T("Quit"), func() {
			invoke(manager.callbacks.OnQuit)
		}),
	}
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(fyne.NewMenu("Cork", manager.items()...))
	}
}

func invoke(callback func()) {
	if callback != nil {
		callback()
	}
}
