package scrape

import "fmt"

// TruncatePath shortens a path for progress output, keeping its tail.
func TruncatePath(path string, maxLen int) string {
	switch {
	case maxLen <= 0:
		return ""
	case len(path) <= maxLen:
		return path
	case maxLen < 4:
		return path[:maxLen]
	default:
		return "..." + path[len(path)-maxLen+3:]
	}
}

// FormatBytes formats a byte count in human-readable form.
func FormatBytes(n int) string {
	const (
		kb = 1024
		mb = kb * 1024
	)
	switch {
	case n >= mb:
		return fmt.Sprintf("%.1f MB", float64(n)/mb)
	case n >= kb:
		return fmt.Sprintf("%.1f KB", float64(n)/kb)
	default:
		return fmt.Sprintf("%d B", n)
	}
}
