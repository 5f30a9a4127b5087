package preferences

import (
	"cork/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	SoundEnabled            bool
	SoundVolume             float64
	FlashIcon               bool
	ClearLapsResetsBoundary bool
	LaunchAtLogin           bool
	// Language is a two-letter code; empty means the system locale.
	Language string
}

// DefaultSettings returns default settings for Cork.
func DefaultSettings() Settings {
	return Settings{
		SoundEnabled:            true,
		SoundVolume:             0.6,
		FlashIcon:               true,
		ClearLapsResetsBoundary: false,
		LaunchAtLogin:           false,
		Language:                "",
	}
}

// StopwatchConfig converts settings to StopwatchConfig.
func (settings Settings) StopwatchConfig() model.StopwatchConfig {
	return model.StopwatchConfig{
		ClearLapsResetsBoundary: settings.ClearLapsResetsBoundary,
	}
}
