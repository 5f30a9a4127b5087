//go:build windows

package platform

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

const registryRunKey = `HKCU\Software\Microsoft\Windows\CurrentVersion\Run`

func (service *platformService) EnableAutostart(appName, execPath string) error {
	if appName == "" {
		return fmt.Errorf("enable autostart: app name is empty")
	}
	if execPath == "" {
		return fmt.Errorf("enable autostart: exec path is empty")
	}

	if err := runReg("add", registryRunKey, "/v", appName, "/t", "REG_SZ", "/d", quoteWindowsPath(execPath), "/f"); err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	return nil
}

// DisableAutostart removes the Run value. A value that is already gone is
// not an error.
func (service *platformService) DisableAutostart(appName string) error {
	if appName == "" {
		return fmt.Errorf("disable autostart: app name is empty")
	}

	if !runKeyHasValue(appName) {
		return nil
	}
	if err := runReg("delete", registryRunKey, "/v", appName, "/f"); err != nil {
		return fmt.Errorf("disable autostart: %w", err)
	}
	return nil
}

func runKeyHasValue(appName string) bool {
	return exec.Command("reg", "query", registryRunKey, "/v", appName).Run() == nil
}

func runReg(action string, args ...string) error {
	output, err := exec.Command("reg", append([]string{action}, args...)...).CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("reg %s exited with %d: %s", action, exitErr.ExitCode(), strings.TrimSpace(string(output)))
		}
		return fmt.Errorf("reg %s: %w", action, err)
	}
	return nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "AppData", "Roaming")
}

func quoteWindowsPath(execPath string) string {
	return `"` + strings.Trim(execPath, `"`) + `"`
}
