// Package barchart turns raw metric datasets into a ready-to-render stacked
// bar chart configuration for the resource dashboard: it filters empty
// datasets, injects bar-geometry defaults, binds sparse padded time-axis
// labels, unit-aware tooltip and tick formatting, translucent fills derived
// from each series' border color, folds in the active theme colors, and
// merges caller overrides on top. The rendering engine itself is an external
// collaborator; it receives the composed configuration and nothing else.
package barchart

import (
	"errors"
	"time"

	"github.com/sdil/lens/src/chartjs"
)

// ErrNoData reports that no dataset survived normalization. It is a defined
// terminal state, not a failure: callers substitute their placeholder view.
var ErrNoData = errors.New("barchart: no renderable data")

// Input carries one render pass worth of data and caller preferences.
type Input struct {
	Datasets []chartjs.Dataset
	// Overrides are merged over the computed defaults, deep, last-wins.
	// Callers may add options this package does not define.
	Overrides chartjs.Options
	// Plugins are handed to the rendering engine untouched.
	Plugins []any
	// LabelStep is the interior time-label cadence; 0 means DefaultLabelStep.
	LabelStep int
	// Name identifies the chart for host-side change tracking.
	Name string
}

// Callback types bound into the options tree. They are plain functions
// parameterized by the data they need, so hosts and tests can invoke them
// without any engine state.
type (
	// TimeTickFunc formats the label of the index-th time-axis tick.
	TimeTickFunc func(timestamp string, index int) string
	// ValueTickFunc formats a numeric axis tick value.
	ValueTickFunc func(value float64) string
	// TitleFunc returns the tooltip title for the hovered timestamp.
	TitleFunc func(timestamp string) string
	// LabelFunc formats one tooltip body line for a series value.
	LabelFunc func(datasetLabel string, value float64) string
	// SwatchFunc returns fill and outline for the tooltip color box of the
	// dataset at index i.
	SwatchFunc func(datasets []chartjs.Dataset, i int) (fill, border string)
	// FillFunc derives the bar fill color from a dataset's border color.
	FillFunc func(borderColor string) (string, error)
)

// Compose runs the whole pipeline for one render pass. It returns ErrNoData
// when nothing renderable remains after filtering; otherwise the returned
// configuration is complete and immutable.
func Compose(in Input, theme ThemeProvider) (*chartjs.Config, error) {
	datasets := normalizeDatasets(in.Datasets)
	if len(datasets) == 0 {
		return nil, ErrNoData
	}
	opts := defaultOptions(in.LabelStep, theme.ChartTheme())
	if len(in.Overrides) > 0 {
		opts = mergeOptions(opts, in.Overrides)
	}
	return &chartjs.Config{
		Type:    "bar",
		Data:    chartjs.Data{Datasets: datasets},
		Options: opts,
		Plugins: in.Plugins,
	}, nil
}

// defaultOptions assembles the fixed layout policy plus theme-derived colors
// and the bound formatting callbacks: non-animated, responsive with free
// aspect ratio, stacked bars over a minute-bucketed time axis, value axis on
// the right with at most six tick labels.
func defaultOptions(step int, colors ThemeColors) chartjs.Options {
	return chartjs.Options{
		"animation":           false,
		"responsive":          true,
		"maintainAspectRatio": false,
		"elements": chartjs.Options{
			"bar": chartjs.Options{
				"backgroundColor": FillFunc(FillColor),
			},
		},
		"scales": chartjs.Options{
			"x": chartjs.Options{
				"type":    "time",
				"stacked": true,
				"offset":  true,
				"grid":    chartjs.Options{"display": false},
				"time":    chartjs.Options{"unit": "minute"},
				"ticks": chartjs.Options{
					"autoSkip": false,
					"color":    colors.TextColorPrimary,
					"callback": TimeTickFunc(func(ts string, index int) string {
						return TimeLabel(ts, index, step)
					}),
				},
			},
			"y": chartjs.Options{
				"position": "right",
				"stacked":  true,
				"grid":     chartjs.Options{"color": colors.BorderFaintColor},
				"ticks": chartjs.Options{
					"maxTicksLimit": 6,
					"padding":       8,
					"color":         colors.TextColorPrimary,
				},
			},
		},
		"plugins": chartjs.Options{
			"stripes": chartjs.Options{"color": colors.ChartStripesColor},
			"tooltip": chartjs.Options{
				"mode": "index",
				"callbacks": chartjs.Options{
					"title": TitleFunc(func(ts string) string {
						return TooltipTitle(ts, time.Now())
					}),
					"labelColor": SwatchFunc(func(ds []chartjs.Dataset, i int) (string, string) {
						if i < 0 || i >= len(ds) {
							return "", swatchBorderColor
						}
						return TooltipSwatch(ds[i])
					}),
				},
			},
		},
	}
}
