package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"cork/internal/alarm"
	"cork/internal/core/model"
	"cork/internal/core/timer"
	"cork/internal/ui/preferences"
)

var countdownCmd = &cobra.Command{
	Use:   "countdown <duration|HH:MM>",
	Short: "Run a countdown in the terminal",
	Long: `countdown runs a single countdown without the tray and prints the remaining
time once per second. The target is either a duration or a 24h wall-clock time;
a time that has already passed today refers to tomorrow. Ctrl-C clears it.

Example:
  cork countdown 25m
  cork countdown 1h30m --mute
  cork countdown 17:45`,
	Args: cobra.ExactArgs(1),
	RunE: runCountdown,
}

func init() {
	rootCmd.AddCommand(countdownCmd)
}

func runCountdown(cmd *cobra.Command, args []string) error {
	duration, err := timer.ParseCountdown(args[0], time.Now())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine := timer.New(model.StopwatchConfig{}, timer.Config{TickInterval: tickInterval})
	defer engine.Close()

	done, err := watchCountdown(ctx, engine, duration, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if !done {
		return nil
	}

	newPlayer(true, preferences.DefaultSettings().SoundVolume).Play()
	if !muted {
		select {
		case <-time.After(alarm.Length(alarm.DefaultMelody)):
		case <-ctx.Done():
		}
	}
	return nil
}

// watchCountdown starts the countdown and prints the remaining time each
// time the whole seconds change. It reports whether the countdown reached
// zero before ctx was canceled.
func watchCountdown(ctx context.Context, engine *timer.Engine, duration time.Duration, out io.Writer) (bool, error) {
	events := engine.Subscribe(64)
	if err := engine.StartCountdown(duration); err != nil {
		return false, err
	}

	last := time.Duration(-1)
	show := func(remaining time.Duration) {
		remaining = remaining.Truncate(time.Second)
		if remaining == last {
			return
		}
		last = remaining
		fmt.Fprintf(out, "\r%s ", timer.FormatDuration(remaining))
	}
	show(duration)

	for {
		select {
		case <-ctx.Done():
			engine.ClearCountdown()
			fmt.Fprintln(out, "\rcleared")
			return false, nil
		case event, ok := <-events:
			if !ok {
				return false, nil
			}
			switch event.Type {
			case timer.EventCountdown:
				show(event.Snapshot.Countdown)
			case timer.EventCountdownDone:
				show(0)
				fmt.Fprintln(out)
				fmt.Fprintln(out, "done")
				return true, nil
			}
		}
	}
}
