// Package sysinfo - Formatting utilities
package sysinfo

import (
	"fmt"
	"strings"
	"time"
)

// FormatBytes converts a byte count to a human-readable string with appropriate units.
//
// Parameters:
//   - bytes: The number of bytes to format
//
// Returns:
//   - A formatted string with the most appropriate unit (B, KB, MB, GB, TB, PB, EB)
//
// Example: FormatBytes(1536) returns "1.5 KB"
func FormatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KB", "MB", "GB", "TB", "PB", "EB"}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), units[exp])
}

// TruncateString shortens s to at most maxLen runes, marking the cut with "...".
//
// Parameters:
//   - s: The string to truncate
//   - maxLen: Maximum number of runes in the result
//
// Returns:
//   - The original string if it fits in maxLen runes
//   - The first maxLen-3 runes followed by "..." otherwise
//   - A plain cut without "..." when maxLen is 3 or less
//
// Example: TruncateString("Hello World", 8) returns "Hello..."
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// FormatUptime renders a duration as days, hours and minutes.
//
// Parameters:
//   - uptime: Time since boot
//
// Returns:
//   - The non-zero units joined by ", ", always at least the minutes
//
// Example: FormatUptime(53*time.Hour + 30*time.Minute) returns "2 days, 5 hours, 30 mins"
func FormatUptime(uptime time.Duration) string {
	days := int(uptime.Hours() / 24)
	hours := int(uptime.Hours()) % 24
	mins := int(uptime.Minutes()) % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%d day%s", days, plural(days)))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d hour%s", hours, plural(hours)))
	}
	if mins > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%d min%s", mins, plural(mins)))
	}

	return strings.Join(parts, ", ")
}

// plural returns "s" if count is not 1, empty string otherwise.
func plural(count int) string {
	if count != 1 {
		return "s"
	}
	return ""
}
