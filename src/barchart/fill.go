package barchart

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// fillAlpha is the fixed translucency of bar fills derived from a series'
// border color.
const fillAlpha = 0.2

var namedColors = map[string]drawing.Color{
	"black":    {R: 0, G: 0, B: 0, A: 255},
	"white":    {R: 255, G: 255, B: 255, A: 255},
	"red":      {R: 255, G: 0, B: 0, A: 255},
	"green":    {R: 0, G: 128, B: 0, A: 255},
	"blue":     {R: 0, G: 0, B: 255, A: 255},
	"yellow":   {R: 255, G: 255, B: 0, A: 255},
	"cyan":     {R: 0, G: 255, B: 255, A: 255},
	"magenta":  {R: 255, G: 0, B: 255, A: 255},
	"orange":   {R: 255, G: 165, B: 0, A: 255},
	"teal":     {R: 0, G: 128, B: 128, A: 255},
	"gray":     {R: 128, G: 128, B: 128, A: 255},
	"grey":     {R: 128, G: 128, B: 128, A: 255},
	"darkgray": {R: 169, G: 169, B: 169, A: 255},
	"darkgrey": {R: 169, G: 169, B: 169, A: 255},
}

// FillColor derives the translucent bar fill from a dataset's border color:
// same channels, opacity forced to 20%, serialized back to an rgba() string.
// Setting rather than scaling the alpha makes the derivation idempotent. An
// unparseable input is an input-contract violation and fails immediately: it
// signals a bug in dataset construction, not a condition to paper over.
func FillColor(borderColor string) (string, error) {
	c, err := ParseColor(borderColor)
	if err != nil {
		return "", fmt.Errorf("derive fill from %q: %w", borderColor, err)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.R, c.G, c.B, fillAlpha), nil
}

// ParseColor accepts hex (#rgb / #rrggbb), rgb()/rgba() and a small set of
// named colors. Unlike the chart engine's own lenient parsing it reports
// failure instead of defaulting to black.
func ParseColor(s string) (drawing.Color, error) {
	raw := strings.ToLower(strings.TrimSpace(s))
	switch {
	case raw == "":
		return drawing.Color{}, errors.New("empty color")
	case strings.HasPrefix(raw, "#"):
		return colorFromHex(raw[1:])
	case strings.HasPrefix(raw, "rgba(") && strings.HasSuffix(raw, ")"):
		return colorFromChannels(raw[5:len(raw)-1], true)
	case strings.HasPrefix(raw, "rgb(") && strings.HasSuffix(raw, ")"):
		return colorFromChannels(raw[4:len(raw)-1], false)
	default:
		if c, ok := namedColors[raw]; ok {
			return c, nil
		}
		return drawing.Color{}, fmt.Errorf("unrecognized color %q", s)
	}
}

func colorFromHex(hex string) (drawing.Color, error) {
	if len(hex) != 3 && len(hex) != 6 {
		return drawing.Color{}, fmt.Errorf("hex color needs 3 or 6 digits, got %d", len(hex))
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return drawing.Color{}, fmt.Errorf("invalid hex digit %q", r)
		}
	}
	return drawing.ColorFromHex(hex), nil
}

func colorFromChannels(body string, hasAlpha bool) (drawing.Color, error) {
	parts := strings.Split(body, ",")
	want := 3
	if hasAlpha {
		want = 4
	}
	if len(parts) != want {
		return drawing.Color{}, fmt.Errorf("want %d channels, got %d", want, len(parts))
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return drawing.Color{}, fmt.Errorf("invalid channel %q", strings.TrimSpace(parts[i]))
		}
		ch[i] = uint8(n)
	}
	c := drawing.Color{R: ch[0], G: ch[1], B: ch[2], A: 255}
	if hasAlpha {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return drawing.Color{}, fmt.Errorf("invalid alpha %q", strings.TrimSpace(parts[3]))
		}
		c.A = uint8(a*255 + 0.5)
	}
	return c, nil
}
