package timer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTarget indicates a countdown target could not be parsed.
var ErrInvalidTarget = errors.New("invalid countdown target")

// UntilClock converts a 24h "HH:MM" wall-clock target into the duration
// from now. A target that is not after now refers to the next day.
func UntilClock(target string, now time.Time) (time.Duration, error) {
	hourText, minuteText, found := strings.Cut(strings.TrimSpace(target), ":")
	if !found {
		return 0, fmt.Errorf("parse %q: %w", target, ErrInvalidTarget)
	}
	hour, err := strconv.Atoi(hourText)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("parse hour %q: %w", hourText, ErrInvalidTarget)
	}
	minute, err := strconv.Atoi(minuteText)
	if err != nil || minute < 0 || minute > 59 || len(minuteText) != 2 {
		return 0, fmt.Errorf("parse minute %q: %w", minuteText, ErrInvalidTarget)
	}

	at := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !at.After(now) {
		at = at.AddDate(0, 0, 1)
	}
	return at.Sub(now), nil
}

// ParseCountdown accepts either a Go duration such as "25m" or "1h30m", or
// an "HH:MM" wall-clock target.
func ParseCountdown(value string, now time.Time) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if strings.Contains(value, ":") {
		return UntilClock(value, now)
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", value, ErrInvalidTarget)
	}
	if duration <= 0 {
		return 0, fmt.Errorf("parse %q: %w", value, ErrNonPositiveCountdown)
	}
	return duration, nil
}
