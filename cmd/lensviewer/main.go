package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	png "image/png"
	"os"
	"path/filepath"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/sdil/lens/src/barchart"
	"github.com/sdil/lens/src/chartjs"
)

// chartSpec ties one tab's datasets to its unit bundle and hint text.
type chartSpec struct {
	name     string
	datasets []chartjs.Dataset
	options  chartjs.Options
	hint     string
}

func charts(now time.Time) []chartSpec {
	cpu, mem := sampleDatasets(now)
	return []chartSpec{
		{
			name:     "cpu-usage",
			datasets: cpu,
			options:  barchart.CPUOptions(),
			hint:     "Hint: stacked per-minute CPU cores; labels every 10 minutes.",
		},
		{
			name:     "memory-usage",
			datasets: mem,
			options:  barchart.BytesOptions(),
			hint:     "Hint: stacked per-minute memory; byte units scale automatically.",
		},
	}
}

func main() {
	var outDir string
	var dark bool
	var showHints bool
	var step int
	var logLevel string
	flag.StringVar(&outDir, "out", "", "render chart PNGs into this directory and exit (headless)")
	flag.BoolVar(&dark, "dark", true, "use the dark theme")
	flag.BoolVar(&showHints, "hints", false, "overlay hint text on charts")
	flag.IntVar(&step, "step", barchart.DefaultLabelStep, "time-axis label cadence in ticks")
	flag.StringVar(&logLevel, "loglevel", "info", "log level: debug|info|warn|error")
	flag.Parse()
	barchart.SetLogLevel(logLevel)

	if outDir != "" {
		if err := renderToDir(outDir, step, showHints); err != nil {
			barchart.Errorf("headless render: %v", err)
			os.Exit(1)
		}
		return
	}

	a := app.NewWithID("com.sdil.lens.viewer")
	if dark {
		a.Settings().SetTheme(&darkTheme{})
	}
	w := a.NewWindow("Lens Metrics")
	w.Resize(fyne.NewSize(1000, 640))

	provider := appTheme{app: a}
	tracker := &barchart.NameTracker{}

	tabs := container.NewAppTabs()
	for _, spec := range charts(time.Now()) {
		tabs.Append(container.NewTabItem(tabTitle(spec.name), chartContent(spec, step, showHints, provider, tracker)))
	}
	w.SetContent(tabs)
	w.ShowAndRun()
}

func tabTitle(name string) string {
	switch name {
	case "cpu-usage":
		return "CPU"
	case "memory-usage":
		return "Memory"
	default:
		return name
	}
}

// chartContent runs one full pipeline pass for a tab and wraps the result in
// a canvas image, or substitutes the placeholder when nothing is renderable.
func chartContent(spec chartSpec, step int, showHints bool, provider barchart.ThemeProvider, tracker *barchart.NameTracker) fyne.CanvasObject {
	cfg, err := barchart.Compose(barchart.Input{
		Datasets:  spec.datasets,
		Overrides: spec.options,
		LabelStep: step,
		Name:      spec.name,
	}, provider)
	if err != nil {
		// ErrNoData and render failures both fall back to the placeholder.
		barchart.Debugf("chart %s: %v", spec.name, err)
		return noDataPlaceholder()
	}
	cw, chh := chartSize(960)
	img, err := renderConfig(cfg, cw, chh)
	if err != nil {
		barchart.Warnf("chart %s render: %v", spec.name, err)
		return noDataPlaceholder()
	}
	if showHints {
		img = drawHint(img, spec.hint)
	}
	if tracker.Update(spec.name) {
		barchart.Debugf("chart changed to %s", tracker.Last())
	}
	ci := canvas.NewImageFromImage(img)
	ci.FillMode = canvas.ImageFillContain
	ci.SetMinSize(fyne.NewSize(float32(cw)/2, float32(chh)/2))
	return ci
}

// noDataPlaceholder is the view shown when no dataset survives filtering.
func noDataPlaceholder() fyne.CanvasObject {
	lbl := widget.NewLabel("Metrics are not available at the moment")
	lbl.Alignment = fyne.TextAlignCenter
	return container.NewCenter(lbl)
}

// renderToDir renders the curated chart set headlessly and writes PNGs under
// outDir, one file per chart.
func renderToDir(outDir string, step int, showHints bool) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	tracker := &barchart.NameTracker{}
	for _, spec := range charts(time.Now()) {
		cfg, err := barchart.Compose(barchart.Input{
			Datasets:  spec.datasets,
			Overrides: spec.options,
			LabelStep: step,
			Name:      spec.name,
		}, headlessTheme{})
		if err != nil {
			barchart.Infof("chart %s skipped: %v", spec.name, err)
			continue
		}
		cw, chh := chartSize(1024)
		img, err := renderConfig(cfg, cw, chh)
		if err != nil {
			return fmt.Errorf("render %s: %w", spec.name, err)
		}
		if showHints {
			img = drawHint(img, spec.hint)
		}
		if err := writePNG(filepath.Join(outDir, spec.name+".png"), img); err != nil {
			return err
		}
		tracker.Update(spec.name)
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("png encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
