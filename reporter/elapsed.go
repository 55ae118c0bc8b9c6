package reporter

import (
	"fmt"
	"math"
	"time"
)

// ElapsedSeconds rounds d up to whole seconds, never reporting less than one.
func ElapsedSeconds(d time.Duration) int {
	seconds := int(math.Ceil(d.Seconds()))
	if seconds < 1 {
		return 1
	}
	return seconds
}

// FormatElapsed renders seconds in the timespan format TestRail accepts.
func FormatElapsed(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds / 60) % 60
	seconds %= 60

	return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
}
