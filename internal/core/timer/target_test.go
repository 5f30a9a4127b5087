package timer

import (
	"errors"
	"testing"
	"time"
)

func TestUntilClock(t *testing.T) {
	now := time.Date(2024, 2, 15, 9, 30, 15, 0, time.UTC)

	tests := []struct {
		name     string
		target   string
		expected time.Duration
		wantErr  bool
	}{
		{"later today", "10:00", 29*time.Minute + 45*time.Second, false},
		{"padded hour", "09:31", 45 * time.Second, false},
		{"earlier rolls to tomorrow", "09:00", 23*time.Hour + 29*time.Minute + 45*time.Second, false},
		{"same minute rolls to tomorrow", "09:30", 23*time.Hour + 59*time.Minute + 45*time.Second, false},
		{"midnight", "00:00", 14*time.Hour + 29*time.Minute + 45*time.Second, false},
		{"missing colon", "0930", 0, true},
		{"hour out of range", "24:00", 0, true},
		{"minute out of range", "10:60", 0, true},
		{"single digit minute", "10:5", 0, true},
		{"not a number", "ab:cd", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UntilClock(tt.target, now)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UntilClock(%q) error = %v, wantErr %v", tt.target, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidTarget) {
					t.Errorf("expected ErrInvalidTarget, got %v", err)
				}
				return
			}
			if got != tt.expected {
				t.Errorf("UntilClock(%q) = %v, expected %v", tt.target, got, tt.expected)
			}
		})
	}
}

func TestParseCountdown(t *testing.T) {
	now := time.Date(2024, 2, 15, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		value    string
		expected time.Duration
		wantErr  error
	}{
		{"minutes", "25m", 25 * time.Minute, nil},
		{"compound", " 1h30m ", 90 * time.Minute, nil},
		{"clock target", "10:15", 45 * time.Minute, nil},
		{"zero", "0s", 0, ErrNonPositiveCountdown},
		{"garbage", "soon", 0, ErrInvalidTarget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCountdown(tt.value, now)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseCountdown(%q) error = %v, expected %v", tt.value, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCountdown(%q) unexpected error: %v", tt.value, err)
			}
			if got != tt.expected {
				t.Errorf("ParseCountdown(%q) = %v, expected %v", tt.value, got, tt.expected)
			}
		})
	}
}
