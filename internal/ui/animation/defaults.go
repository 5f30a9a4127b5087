package animation

import "time"

// DefaultConfig returns the tray flash timing used after a countdown ends.
func DefaultConfig() Config {
	return Config{
		AlertDuration: 400 * time.Millisecond,
		RestDuration:  300 * time.Millisecond,
		FlashDuration: 6 * time.Second,
	}
}
