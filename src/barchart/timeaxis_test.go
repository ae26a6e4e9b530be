package barchart

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

// hhmm formats the expected bare label for a unix-seconds timestamp.
func hhmm(sec int64) string {
	return time.Unix(sec, 0).Local().Format("15:04")
}

func TestTimeLabel_EdgePadding(t *testing.T) {
	const sec = int64(1700000000)
	ts := strconv.FormatInt(sec, 10)

	left := TimeLabel(ts, 0, DefaultLabelStep)
	if !strings.HasPrefix(left, edgePad) || !strings.HasSuffix(left, hhmm(sec)) {
		t.Fatalf("left edge: got %q want %q", left, edgePad+hhmm(sec))
	}
	right := TimeLabel(ts, 60, DefaultLabelStep)
	if !strings.HasSuffix(right, edgePad) || !strings.HasPrefix(right, hhmm(sec)) {
		t.Fatalf("right edge: got %q want %q", right, hhmm(sec)+edgePad)
	}
}

func TestTimeLabel_InteriorStep(t *testing.T) {
	const sec = int64(1700000000)
	ts := strconv.FormatInt(sec, 10)

	if got := TimeLabel(ts, 25, 10); got != "" {
		t.Fatalf("index 25 should be blank, got %q", got)
	}
	if got := TimeLabel(ts, 30, 10); got != hhmm(sec) {
		t.Fatalf("index 30: got %q want %q", got, hhmm(sec))
	}
	// custom step
	if got := TimeLabel(ts, 25, 5); got != hhmm(sec) {
		t.Fatalf("index 25 with step 5: got %q want %q", got, hhmm(sec))
	}
	// zero step falls back to the default cadence
	if got := TimeLabel(ts, 30, 0); got != hhmm(sec) {
		t.Fatalf("index 30 with step 0: got %q want %q", got, hhmm(sec))
	}
}

func TestTimeLabel_MillisecondTimestamps(t *testing.T) {
	const sec = int64(1700000000)
	ms := strconv.FormatInt(sec*1000, 10)
	if got := TimeLabel(ms, 10, 10); got != hhmm(sec) {
		t.Fatalf("millisecond timestamp: got %q want %q", got, hhmm(sec))
	}
}

func TestTimeLabel_MalformedTimestamp(t *testing.T) {
	if got := TimeLabel("not-a-number", 10, 10); got != "" {
		t.Fatalf("malformed timestamp should yield empty label, got %q", got)
	}
}

func TestParseTimestamp(t *testing.T) {
	sec, err := ParseTimestamp("1700000000")
	if err != nil {
		t.Fatalf("seconds parse: %v", err)
	}
	ms, err := ParseTimestamp("1700000000000")
	if err != nil {
		t.Fatalf("milliseconds parse: %v", err)
	}
	if !sec.Equal(ms) {
		t.Fatalf("second/millisecond mismatch: %v vs %v", sec, ms)
	}
	if _, err := ParseTimestamp("12:34"); err == nil {
		t.Fatalf("expected error for non-integer timestamp")
	}
}
