package barchart

// ThemeColors is the set of named colors the chart pulls from the active
// visual theme.
type ThemeColors struct {
	TextColorPrimary  string
	BorderFaintColor  string
	ChartStripesColor string
}

// ThemeProvider hands out the current theme colors. Compose reads it fresh
// on every pass so a theme switch takes effect on the next render.
type ThemeProvider interface {
	ChartTheme() ThemeColors
}

// StaticTheme is a fixed-color provider for tests and headless rendering.
type StaticTheme ThemeColors

func (t StaticTheme) ChartTheme() ThemeColors { return ThemeColors(t) }
