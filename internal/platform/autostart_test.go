package platform

import (
	"testing"
)

type recordingService struct {
	enabled  []string
	disabled []string
}

func (service *recordingService) GetConfigDir() (string, error) {
	return "", nil
}

func (service *recordingService) EnableAutostart(appName, execPath string) error {
	service.enabled = append(service.enabled, appName+"="+execPath)
	return nil
}

func (service *recordingService) DisableAutostart(appName string) error {
	service.disabled = append(service.disabled, appName)
	return nil
}

func TestApplyAutostart(t *testing.T) {
	service := &recordingService{}

	if err := ApplyAutostart(service, "Cork", true); err != nil {
		t.Fatalf("ApplyAutostart(true): %v", err)
	}
	if len(service.enabled) != 1 || len(service.disabled) != 0 {
		t.Fatalf("expected one enable call, got %+v", service)
	}

	if err := ApplyAutostart(service, "Cork", false); err != nil {
		t.Fatalf("ApplyAutostart(false): %v", err)
	}
	if len(service.disabled) != 1 || service.disabled[0] != "Cork" {
		t.Errorf("expected one disable call for Cork, got %+v", service.disabled)
	}
}

func TestAutostartSlug(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Cork", "cork"},
		{"  My Cork  ", "my-cork"},
		{"", "cork"},
	}
	for _, tt := range tests {
		if got := autostartSlug(tt.name); got != tt.expected {
			t.Errorf("autostartSlug(%q) = %q, expected %q", tt.name, got, tt.expected)
		}
	}
}
