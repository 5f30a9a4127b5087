package tray

import (
	"testing"

	"fyne.io/fyne/v2"
)

type recordingApp struct {
	menus []*fyne.Menu
	icons []fyne.Resource
}

func (app *recordingApp) SetSystemTrayMenu(menu *fyne.Menu) {
	app.menus = append(app.menus, menu)
}

func (app *recordingApp) SetSystemTrayIcon(icon fyne.Resource) {
	app.icons = append(app.icons, icon)
}

func (app *recordingApp) SetSystemTrayWindow(fyne.Window) {}

func findItem(menu *fyne.Menu, label string) *fyne.MenuItem {
	for _, item := range menu.Items {
		if item.Label == label {
			return item
		}
	}
	return nil
}

func TestMenuReflectsRunState(t *testing.T) {
	app := &recordingApp{}
	manager := New(app, Callbacks{})

	if len(app.menus) != 1 {
		t.Fatalf("expected initial menu, got %d", len(app.menus))
	}
	if item := findItem(app.menus[0], "Lap"); item == nil || !item.Disabled {
		t.Error("expected Lap disabled while stopped")
	}

	manager.SetRunning(true)
	latest := app.menus[len(app.menus)-1]
	if findItem(latest, "Stop") == nil {
		t.Error("expected Stop item while running")
	}
	if item := findItem(latest, "Lap"); item == nil || item.Disabled {
		t.Error("expected Lap enabled while running")
	}

	count := len(app.menus)
	manager.SetRunning(true)
	if len(app.menus) != count {
		t.Error("unchanged run state must not rebuild the menu")
	}
}

func TestCountdownItem(t *testing.T) {
	app := &recordingApp{}
	manager := New(app, Callbacks{})

	manager.SetCountdownActive(true)
	latest := app.menus[len(app.menus)-1]
	if item := findItem(latest, "Clear countdown"); item == nil || item.Disabled {
		t.Error("expected clear countdown enabled")
	}

	manager.SetStatus("12.3", "04:59.9")
	if manager.Status() != "12.3  ·  Countdown 04:59.9" {
		t.Errorf("unexpected status %q", manager.Status())
	}
	manager.SetStatus("12.3", "")
	if manager.Status() != "12.3" {
		t.Errorf("unexpected status %q", manager.Status())
	}
}

func TestCallbacks(t *testing.T) {
	app := &recordingApp{}
	var calls []string
	New(app, Callbacks{
		OnShowPanel: func() { calls = append(calls, "show") },
		OnReset:     func() { calls = append(calls, "reset") },
		OnQuit:      func() { calls = append(calls, "quit") },
	})

	menu := app.menus[0]
	for _, label := range []string{"Show Cork", "Reset", "Quit", "Preferences"} {
		item := findItem(menu, label)
		if item == nil {
			t.Fatalf("missing %q item", label)
		}
		item.Action()
	}

	if len(calls) != 3 || calls[0] != "show" || calls[1] != "reset" || calls[2] != "quit" {
		t.Errorf("unexpected calls %v", calls)
	}
}

func TestNilApp(t *testing.T) {
	manager := New(nil, Callbacks{})
	manager.SetRunning(true)
	manager.SetStatus("1.0", "")
	if manager.Status() != "1.0" {
		t.Errorf("unexpected status %q", manager.Status())
	}
}
