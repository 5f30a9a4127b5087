package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cork/internal/ui/preferences"
	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	SoundEnabled            *bool    `yaml:"sound_enabled"`
	SoundVolume             *float64 `yaml:"sound_volume"`
	FlashIcon               *bool    `yaml:"flash_icon"`
	ClearLapsResetsBoundary bool     `yaml:"clear_laps_resets_boundary"`
	LaunchAtLogin           bool     `yaml:"launch_at_login"`
	Language                string   `yaml:"language,omitempty"`
}

// LoadSettings reads user preferences from YAML in the user config directory.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := ResolveConfigPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// SaveSettings writes user preferences to YAML in the user config directory.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := ResolveConfigPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsFile(configPath, settings)
}

// LoadSettingsFile reads user preferences from the YAML file at configPath.
func LoadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettingsFile writes user preferences to the YAML file at configPath.
func SaveSettingsFile(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		SoundEnabled:            &settings.SoundEnabled,
		SoundVolume:             &settings.SoundVolume,
		FlashIcon:               &settings.FlashIcon,
		ClearLapsResetsBoundary: settings.ClearLapsResetsBoundary,
		LaunchAtLogin:           settings.LaunchAtLogin,
		Language:                settings.Language,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// ResolveConfigPath returns the settings file location for appName.
func ResolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.SoundEnabled != nil {
		settings.SoundEnabled = *fileData.SoundEnabled
	}
	if fileData.SoundVolume != nil && *fileData.SoundVolume >= 0 && *fileData.SoundVolume <= 1 {
		settings.SoundVolume = *fileData.SoundVolume
	}
	if fileData.FlashIcon != nil {
		settings.FlashIcon = *fileData.FlashIcon
	}

	settings.ClearLapsResetsBoundary = fileData.ClearLapsResetsBoundary
	settings.LaunchAtLogin = fileData.LaunchAtLogin
	settings.Language = fileData.Language
}
