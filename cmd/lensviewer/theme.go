package main

import (
	"fmt"
	"image/color"
	"math"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/sdil/lens/src/barchart"
)

// dark theme wrapper
type darkTheme struct{}

func (d *darkTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}
func (d *darkTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (d *darkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (d *darkTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

// appTheme adapts the running fyne theme into the pipeline's chart colors.
// The pipeline reads it on every pass, so switching the app theme shows up
// on the next render.
type appTheme struct {
	app fyne.App
}

func (p appTheme) ChartTheme() barchart.ThemeColors {
	th := p.app.Settings().Theme()
	v := p.app.Settings().ThemeVariant()
	return barchart.ThemeColors{
		TextColorPrimary:  cssColor(th.Color(theme.ColorNameForeground, v)),
		BorderFaintColor:  cssColor(th.Color(theme.ColorNameSeparator, v)),
		ChartStripesColor: cssColor(th.Color(theme.ColorNameInputBackground, v)),
	}
}

// headlessTheme supplies the dark palette without a running app, for -out
// mode and tests.
type headlessTheme struct{}

func (headlessTheme) ChartTheme() barchart.ThemeColors {
	return barchart.ThemeColors{
		TextColorPrimary:  "#e8e8e8",
		BorderFaintColor:  "#2b2b2b",
		ChartStripesColor: "rgba(255, 255, 255, 0.03)",
	}
}

// cssColor serializes a fyne color into the rgba() form the pipeline parses.
func cssColor(c color.Color) string {
	r, g, b, a := c.RGBA()
	alpha := math.Round(float64(a)/65535*100) / 100
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", r>>8, g>>8, b>>8, alpha)
}
