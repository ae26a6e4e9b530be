// Package units converts raw numeric metric values into short display
// strings for axis ticks and tooltips.
package units

import (
	humanize "github.com/dustin/go-humanize"
)

// Base-1024 steps, suffixed the way the dashboard has always shown them.
var byteSuffixes = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// Bytes renders a byte count scaled to the largest unit that keeps the
// mantissa at or above one, with up to digits fractional digits (trailing
// zeros trimmed). Bytes(2048, 1) == "2 KB".
func Bytes(v float64, digits int) string {
	neg := ""
	if v < 0 {
		neg = "-"
		v = -v
	}
	i := 0
	for v >= 1024 && i < len(byteSuffixes)-1 {
		v /= 1024
		i++
	}
	return neg + humanize.FtoaWithDigits(v, digits) + " " + byteSuffixes[i]
}
