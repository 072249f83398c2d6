package stopwatch

import (
	"fmt"
	"time"
)

// FormatDuration renders d as MM:SS:hh (minutes, seconds, hundredths).
// Minutes are not wrapped at an hour. Negative durations render as zero.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int64(d / time.Minute)
	seconds := int64((d % time.Minute) / time.Second)
	hundredths := int64((d % time.Second) / (10 * time.Millisecond))
	return fmt.Sprintf("%02d:%02d:%02d", minutes, seconds, hundredths)
}
