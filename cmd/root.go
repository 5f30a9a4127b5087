package main

import (
	"log"
	"time"

	"github.com/spf13/cobra"

	"cork/internal/alarm"
	"cork/internal/core/timer"
)

const appName = "Cork"

var (
	tickInterval time.Duration
	muted        bool
	language     string
)

var rootCmd = &cobra.Command{
	Use:   "cork",
	Short: "Menu bar stopwatch and countdown",
	Long: `cork runs a stopwatch with laps and an independent countdown from the
system tray. Only one instance runs at a time; starting it again brings the
panel of the running instance to the front.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runTray,
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&tickInterval, "tick", timer.DefaultTickInterval, "refresh period of the stopwatch and the countdown")
	rootCmd.PersistentFlags().BoolVar(&muted, "mute", false, "do not play the countdown chime")
	rootCmd.Flags().StringVar(&language, "lang", "", "interface language (de, es, pt or en); CORK_LANG takes precedence")
}

// newPlayer opens the speaker unless muted. A missing audio device only
// costs the chime.
func newPlayer(enabled bool, volume float64) alarm.Player {
	if muted || !enabled {
		return alarm.Silent{}
	}
	chime, err := alarm.NewChime(alarm.DefaultMelody, volume)
	if err != nil {
		log.Printf("alarm disabled: %v", err)
		return alarm.Silent{}
	}
	return chime
}
