package timer

import (
	"fmt"
	"time"
)

// FormatDuration renders a duration the way the stopwatch displays it:
// HH:MM:SS.F, MM:SS.F, SS.F or S.F depending on the largest non-zero unit.
// Every field, the tenths included, is truncated rather than rounded.
func FormatDuration(value time.Duration) string {
	if value < 0 {
		value = 0
	}

	totalSeconds := int64(value / time.Second)
	hours := totalSeconds / 3600
	minutes := totalSeconds / 60 % 60
	seconds := totalSeconds % 60
	tenths := int64(value/(100*time.Millisecond)) % 10

	switch {
	case hours > 0:
		return fmt.Sprintf("%02d:%02d:%02d.%d", hours, minutes, seconds, tenths)
	case minutes > 0:
		return fmt.Sprintf("%02d:%02d.%d", minutes, seconds, tenths)
	case seconds > 10:
		return fmt.Sprintf("%02d.%d", seconds, tenths)
	default:
		return fmt.Sprintf("%d.%d", seconds, tenths)
	}
}
