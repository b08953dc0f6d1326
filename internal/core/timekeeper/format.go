package timekeeper

import "fmt"

// FormatClock renders seconds as mm:ss. Negative values render as 00:00.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// progress returns the elapsed fraction of total, clamped to [0, 1].
func progress(remaining, total int) float64 {
	if total <= 0 {
		return 0
	}
	value := float64(total-remaining) / float64(total)
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
