package services

import "fmt"

var speedUnits = []string{"B/s", "KB/s", "MB/s", "GB/s"}

// FormatSpeed renders a bytes/sec value scaled to the largest unit
// where it stays below 1024, with one decimal place. GB/s is the
// ceiling; values beyond it are not scaled further.
func FormatSpeed(bytesPerSec float64) string {
	unit := 0
	for bytesPerSec >= 1024 && unit < len(speedUnits)-1 {
		bytesPerSec /= 1024
		unit++
	}
	return fmt.Sprintf("%.1f %s", bytesPerSec, speedUnits[unit])
}

// FormatSpeedPair composes the download/upload display line delivered
// to consumers, e.g. "↓ 12.3 KB/s ↑ 0.0 B/s"
func FormatSpeedPair(rxRate, txRate float64) string {
	return fmt.Sprintf("↓ %s ↑ %s", FormatSpeed(rxRate), FormatSpeed(txRate))
}
