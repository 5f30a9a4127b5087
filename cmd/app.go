package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/spf13/cobra"

	"cork/internal/alarm"
	"cork/internal/core/timer"
	"cork/internal/i18n"
	"cork/internal/platform"
	"cork/internal/storage"
	"cork/internal/ui/animation"
	"cork/internal/ui/panel"
	"cork/internal/ui/preferences"
	"cork/internal/ui/tray"
	"cork/resources"
)

// trayApp holds the state shared by the tray, the panel and the preferences
// window. Apart from construction, it is only touched on the Fyne UI goroutine.
type trayApp struct {
	desktop  desktop.App
	engine   *timer.Engine
	panel    *panel.Window
	tray     *tray.Manager
	flasher  *animation.Engine
	player   alarm.Player
	settings preferences.Settings

	idleIcon    fyne.Resource
	runningIcon fyne.Resource
	alertIcon   fyne.Resource
	running     bool
}

func runTray(cmd *cobra.Command, args []string) error {
	activations := make(chan struct{}, 1)
	guard, err := platform.AcquireSingleInstance(appName, func() {
		select {
		case activations <- struct{}{}:
		default:
		}
	})
	if errors.Is(err, platform.ErrAlreadyRunning) {
		log.Printf("%s is already running, activating it", appName)
		return platform.ActivateRunning(appName)
	}
	if err != nil {
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v", err)
		settings = preferences.DefaultSettings()
	}
	preferred := settings.Language
	if language != "" {
		preferred = language
	}
	i18n.Init(preferred)

	fyneApp := app.NewWithID("com.cork.app")
	fyneApp.SetIcon(resources.MustIcon(resources.IconIdle))
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		return errors.New("system tray unsupported on this platform")
	}

	state := &trayApp{
		desktop:     desktopApp,
		engine:      timer.New(settings.StopwatchConfig(), timer.Config{TickInterval: tickInterval}),
		settings:    settings,
		idleIcon:    resources.MustIcon(resources.IconIdle),
		runningIcon: resources.MustIcon(resources.IconRunning),
		alertIcon:   resources.MustIcon(resources.IconAlert),
	}
	state.player = newPlayer(settings.SoundEnabled, settings.SoundVolume)
	state.flasher = animation.New(animation.DefaultConfig(), func(icon fyne.Resource) {
		fyne.Do(func() {
			desktopApp.SetSystemTrayIcon(icon)
		})
	})

	state.panel = panel.New(fyneApp, state.engine)
	state.panel.SetOnQuit(func() {
		state.quit(fyneApp)
	})
	desktopApp.SetSystemTrayWindow(state.panel.Window())

	prefsWindow := preferences.New(fyneApp, settings, state.applySettings)

	state.tray = tray.New(desktopApp, tray.Callbacks{
		OnShowPanel: state.panel.Show,
		OnToggleRun: func() {
			if state.engine.State() == timer.StateRunning {
				state.engine.Stop()
			} else {
				state.engine.Start()
			}
		},
		OnLap: func() {
			state.engine.AddLap()
		},
		OnReset:          state.engine.Reset,
		OnClearCountdown: state.engine.ClearCountdown,
		OnPreferences:    prefsWindow.Show,
		OnQuit: func() {
			state.quit(fyneApp)
		},
	})
	desktopApp.SetSystemTrayIcon(state.idleIcon)

	events := state.engine.Subscribe(32)
	go func() {
		for event := range events {
			fyne.Do(func() {
				state.handleEvent(event)
			})
		}
	}()

	go func() {
		for range activations {
			fyne.Do(state.panel.Show)
		}
	}()

	fyneApp.Run()
	state.engine.Close()
	return nil
}

func (state *trayApp) handleEvent(event timer.Event) {
	snapshot := event.Snapshot
	state.panel.Render(snapshot)

	remaining := ""
	if snapshot.CountdownActive {
		remaining = timer.FormatDuration(snapshot.Countdown.Truncate(time.Second))
	}
	state.tray.SetStatus(timer.FormatDuration(snapshot.Elapsed.Truncate(time.Second)), remaining)
	state.tray.SetRunning(snapshot.State == timer.StateRunning)
	state.tray.SetCountdownActive(snapshot.CountdownActive)

	running := snapshot.State == timer.StateRunning
	if running != state.running {
		state.running = running
		state.desktop.SetSystemTrayIcon(state.restIcon())
	}

	if event.Type == timer.EventCountdownDone {
		log.Printf("countdown done")
		state.player.Play()
		if state.settings.FlashIcon {
			state.flasher.Flash(context.Background(), animation.FlashSpec{
				Alert: state.alertIcon,
				Rest:  state.restIcon(),
			})
		}
	}
}

func (state *trayApp) restIcon() fyne.Resource {
	if state.running {
		return state.runningIcon
	}
	return state.idleIcon
}

func (state *trayApp) applySettings(updated preferences.Settings) {
	previous := state.settings
	state.settings = updated
	state.engine.UpdateConfig(updated.StopwatchConfig())

	if updated.SoundEnabled != previous.SoundEnabled || updated.SoundVolume != previous.SoundVolume {
		state.player = newPlayer(updated.SoundEnabled, updated.SoundVolume)
	}
	if updated.LaunchAtLogin != previous.LaunchAtLogin {
		if err := platform.ApplyAutostart(platform.NewService(), appName, updated.LaunchAtLogin); err != nil {
			log.Printf("autostart: %v", err)
		}
	}
	if updated.Language != previous.Language {
		log.Printf("language change applies after restart")
	}

	if err := storage.SaveSettings(appName, updated); err != nil {
		log.Printf("save settings: %v", err)
	}
}

func (state *trayApp) quit(fyneApp fyne.App) {
	state.flasher.Stop()
	state.engine.Close()
	fyneApp.Quit()
}
