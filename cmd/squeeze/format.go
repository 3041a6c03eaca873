package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
)

func fileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

func formatSize(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	return humanize.Bytes(uint64(bytes))
}

func formatDuration(seconds float64) string {
	switch {
	case seconds < 60:
		return fmt.Sprintf("%.1fs", seconds)
	case seconds < 3600:
		mins := int(seconds) / 60
		secs := seconds - float64(mins*60)
		return fmt.Sprintf("%dm %.0fs", mins, secs)
	default:
		hours := int(seconds) / 3600
		mins := (int(seconds) % 3600) / 60
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
}

func formatBitrate(kbps int) string {
	if kbps < 1000 {
		return fmt.Sprintf("%d kbps", kbps)
	}
	return fmt.Sprintf("%.1f Mbps", float64(kbps)/1000)
}
