// Package format provides shared formatting utilities for human-readable output.
package format

import (
	"fmt"
	"time"
)

// Duration formats a duration for human-readable output.
// Handles microseconds, milliseconds, seconds, and minutes.
func Duration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.0fµs", float64(d.Microseconds()))
	}
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d.Milliseconds()))
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}

	return fmt.Sprintf("%.1fm", d.Minutes())
}

// Millis formats a k6 trend value, which k6 reports in milliseconds.
func Millis(ms float64) string {
	return fmt.Sprintf("%.3f ms", ms)
}

// Bytes converts bytes to human-readable format (KiB, MiB, GiB, etc.)
func Bytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
