package barchart

import (
	"strconv"
	"strings"
	"time"
)

// DefaultLabelStep is the interior label cadence: one visible label every
// ten ticks.
const DefaultLabelStep = 10

// edgePad pulls the first and last labels away from the chart origin.
const edgePad = "     "

// rightEdgeIndex marks the final tick of the 60-minute visible window. The
// window length is a fixed design constant of the dashboard, not derived
// from the number of generated ticks.
const rightEdgeIndex = 60

// Integer timestamps at or above this threshold are milliseconds; smaller
// values are seconds.
const msThreshold = int64(1e11)

// ParseTimestamp converts an integer-encoded timestamp string (seconds or
// milliseconds) into a time.Time.
func ParseTimestamp(ts string) (time.Time, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(ts), 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	if n >= msThreshold || n <= -msThreshold {
		return time.UnixMilli(n), nil
	}
	return time.Unix(n, 0), nil
}

// TimeLabel formats the label of the index-th time-axis tick as a local
// 24-hour HH:mm string. The left edge (index 0) is prefixed and the right
// edge (index 60) suffixed with fixed-width padding; interior ticks show a
// label only on every step-th position, all others render empty. A step of
// zero or below means DefaultLabelStep.
func TimeLabel(timestamp string, index, step int) string {
	if step <= 0 {
		step = DefaultLabelStep
	}
	t, err := ParseTimestamp(timestamp)
	if err != nil {
		Debugf("time label: unparseable timestamp %q: %v", timestamp, err)
		return ""
	}
	label := t.Local().Format("15:04")
	switch {
	case index == 0:
		return edgePad + label
	case index == rightEdgeIndex:
		return label + edgePad
	case index%step == 0:
		return label
	default:
		return ""
	}
}
