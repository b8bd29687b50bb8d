package ui

import "fmt"

// FormatMB renders a byte count as megabytes with one decimal.
func FormatMB(bytes uint64) string {
	return fmt.Sprintf("%.1f", float64(bytes)/(1024*1024))
}

// FormatPercent renders a percentage, or a placeholder when the value is not
// available yet (no previous sample to diff against).
func FormatPercent(v float64, ok bool) string {
	if !ok {
		return "--"
	}
	return fmt.Sprintf("%.1f", v)
}

// Truncate shortens s to at most n characters, marking the cut with an
// ellipsis when n allows one.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
