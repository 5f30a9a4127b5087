//go:build linux

package platform

import (
	"fmt"
	"path/filepath"
	"strings"
)

// launcherPath is $XDG_CONFIG_HOME/autostart/<name>.desktop.
func (service *platformService) launcherPath(appName string) (string, error) {
	configDir, err := service.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "autostart", desktopFileName(appName)), nil
}

func launcherContent(appName, execPath string) string {
	return buildDesktopEntry(appName, execPath)
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config")
}

func desktopFileName(appName string) string {
	return autostartSlug(appName) + ".desktop"
}

func buildDesktopEntry(appName, execPath string) string {
	execLine := execPath
	if strings.Contains(execLine, " ") && !strings.HasPrefix(execLine, `"`) {
		execLine = `"` + execLine + `"`
	}

	return fmt.Sprintf(
		`[Desktop Entry]
Type=Application
Name=%s
Comment=Menu bar stopwatch and countdown
Exec=%s
Icon=chronometer
X-GNOME-Autostart-enabled=true
Terminal=false
`,
		appName,
		execLine,
	)
}
