package barchart

import (
	"math"
	"strconv"
	"time"

	"github.com/sdil/lens/src/chartjs"
	"github.com/sdil/lens/src/units"
)

// The tooltip swatch outline is a fixed neutral gray, independent of theme.
const swatchBorderColor = "darkgray"

// TooltipTitle returns the hovered tick's timestamp as the tooltip heading,
// or "" when that timestamp lies after now. Charts pre-render buckets ahead
// of wall clock; titling those would mislead. An unparseable timestamp is
// returned as-is.
func TooltipTitle(timestamp string, now time.Time) string {
	t, err := ParseTimestamp(timestamp)
	if err != nil {
		return timestamp
	}
	if t.After(now) {
		return ""
	}
	return timestamp
}

// BytesTooltipLabel formats one tooltip body line for byte-valued series
// (memory, network, disk).
func BytesTooltipLabel(datasetLabel string, value float64) string {
	return datasetLabel + ": " + units.Bytes(value, 3)
}

// CPUTooltipLabel formats one tooltip body line for decimal-valued series.
func CPUTooltipLabel(datasetLabel string, value float64) string {
	return datasetLabel + ": " + sigDigits(value, 2)
}

// BytesTickLabel formats a numeric axis tick on a byte-valued axis.
// Sub-byte fractions keep three fixed decimals so small axes stay readable.
func BytesTickLabel(value float64) string {
	switch {
	case value == 0:
		return "0"
	case value < 1:
		return strconv.FormatFloat(value, 'f', 3, 64)
	default:
		return units.Bytes(value, 1)
	}
}

// CPUTickLabel formats a numeric axis tick on a decimal-valued axis. The
// graduated precision keeps displayed width roughly constant across
// magnitudes.
func CPUTickLabel(value float64) string {
	switch {
	case value == 0:
		return "0"
	case value < 10:
		return strconv.FormatFloat(value, 'f', 3, 64)
	case value < 100:
		return strconv.FormatFloat(value, 'f', 2, 64)
	default:
		return strconv.FormatFloat(value, 'f', 1, 64)
	}
}

// TooltipSwatch returns the fill and outline colors for a dataset's tooltip
// color box. The fill mirrors the series border color.
func TooltipSwatch(ds chartjs.Dataset) (fill, border string) {
	return ds.BorderColor, swatchBorderColor
}

// sigDigits rounds v to p significant digits and renders it in plain
// (non-exponent) notation.
func sigDigits(v float64, p int) string {
	if v == 0 {
		return "0"
	}
	d := p - 1 - int(math.Floor(math.Log10(math.Abs(v))))
	if d < 0 {
		scale := math.Pow(10, float64(-d))
		v = math.Round(v/scale) * scale
		d = 0
	}
	return strconv.FormatFloat(v, 'f', d, 64)
}
