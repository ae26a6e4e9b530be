package main

import (
	"bytes"
	"errors"
	"image"
	png "image/png"
	"math"
	"sort"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/sdil/lens/src/barchart"
	"github.com/sdil/lens/src/chartjs"
)

// optionAt walks the nested options tree; nil when any path segment is
// missing.
func optionAt(opts chartjs.Options, path ...string) any {
	var cur any = map[string]any(opts)
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur, ok = m[key]
		if !ok {
			return nil
		}
	}
	return cur
}

// stackSeries aligns the datasets on the union of their timestamps and
// returns, per dataset, the running bottom-up totals go-chart needs to draw
// the stack as layered filled areas. The returned keys keep the raw
// timestamp strings so tick callbacks see them unchanged.
func stackSeries(datasets []chartjs.Dataset) (keys []string, times []time.Time, stacks [][]float64, err error) {
	type bucket struct {
		key string
		t   time.Time
	}
	seen := map[string]bool{}
	buckets := []bucket{}
	for _, ds := range datasets {
		for _, p := range ds.Data {
			if seen[p.X] {
				continue
			}
			t, perr := barchart.ParseTimestamp(p.X)
			if perr != nil {
				return nil, nil, nil, perr
			}
			seen[p.X] = true
			buckets = append(buckets, bucket{key: p.X, t: t})
		}
	}
	if len(buckets) == 0 {
		return nil, nil, nil, errors.New("no samples")
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].t.Before(buckets[j].t) })
	index := make(map[string]int, len(buckets))
	for i, b := range buckets {
		keys = append(keys, b.key)
		times = append(times, b.t)
		index[b.key] = i
	}

	running := make([]float64, len(buckets))
	stacks = make([][]float64, len(datasets))
	for i, ds := range datasets {
		for _, p := range ds.Data {
			running[index[p.X]] += p.Y
		}
		row := make([]float64, len(running))
		copy(row, running)
		stacks[i] = row
	}
	return keys, times, stacks, nil
}

// renderConfig draws a composed configuration as a PNG image: one filled
// go-chart time series per dataset, topmost stack layer first so the lower
// layers paint over it, axis labels pulled through the configuration's own
// tick callbacks.
func renderConfig(cfg *chartjs.Config, width, height int) (image.Image, error) {
	if cfg == nil || len(cfg.Data.Datasets) == 0 {
		return nil, errors.New("nothing to render")
	}
	keys, times, stacks, err := stackSeries(cfg.Data.Datasets)
	if err != nil {
		return nil, err
	}

	xTick, _ := optionAt(cfg.Options, "scales", "x", "ticks", "callback").(barchart.TimeTickFunc)
	yTick, _ := optionAt(cfg.Options, "scales", "y", "ticks", "callback").(barchart.ValueTickFunc)
	fill, _ := optionAt(cfg.Options, "elements", "bar", "backgroundColor").(barchart.FillFunc)
	maxLabels := 6
	if n, ok := optionAt(cfg.Options, "scales", "y", "ticks", "maxTicksLimit").(int); ok {
		maxLabels = n
	}

	xTicks := make([]chart.Tick, 0, len(times))
	for i, tm := range times {
		label := ""
		if xTick != nil {
			label = xTick(keys[i], i)
		}
		xTicks = append(xTicks, chart.Tick{Value: chart.TimeToFloat64(tm), Label: label})
	}

	maxY := 0.0
	top := stacks[len(stacks)-1]
	for _, v := range top {
		if v > maxY {
			maxY = v
		}
	}
	_, nMax := niceAxisBounds(0, maxY)
	yTicks := niceValueTicks(0, nMax, maxLabels, yTick)

	series := make([]chart.Series, 0, len(cfg.Data.Datasets))
	for i := len(cfg.Data.Datasets) - 1; i >= 0; i-- {
		ds := cfg.Data.Datasets[i]
		stroke, err := barchart.ParseColor(ds.BorderColor)
		if err != nil {
			return nil, err
		}
		fillColor := drawing.Color{}
		if fill != nil {
			css, err := fill(ds.BorderColor)
			if err != nil {
				return nil, err
			}
			if fillColor, err = barchart.ParseColor(css); err != nil {
				return nil, err
			}
		}
		series = append(series, chart.TimeSeries{
			Name:    ds.Label,
			XValues: times,
			YValues: stacks[i],
			Style:   chart.Style{StrokeWidth: 2, StrokeColor: stroke, FillColor: fillColor},
		})
	}

	ch := chart.Chart{
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 36}},
		XAxis:      chart.XAxis{Ticks: xTicks},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: nMax},
			Ticks: yTicks,
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

// niceAxisBounds expands [min,max] by a small margin and rounds to "nice"
// numbers for readability.
func niceAxisBounds(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return min, max
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	pad := span * 0.05
	if pad <= 0 {
		pad = 1
	}
	a := min - pad
	b := max + pad
	mag := math.Pow(10, math.Floor(math.Log10(span)))
	if !math.IsInf(mag, 0) && mag > 0 {
		a = math.Floor(a/mag) * mag
		b = math.Ceil(b/mag) * mag
	}
	if min >= 0 && a < 0 {
		a = 0
	}
	return a, b
}

// niceValueTicks generates up to n tick marks between [min, max] using nice
// increments, labeling them through the configuration's value callback when
// one is present.
func niceValueTicks(min, max float64, n int, format barchart.ValueTickFunc) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	mag := math.Pow(10, math.Floor(math.Log10((max-min)/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil((max - min) / step)
		if count < 2 {
			count = 2
		}
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	ticks := []chart.Tick{}
	for v := start; v <= end+bestStep/2; v += bestStep {
		label := ""
		if format != nil {
			label = format(v)
		} else {
			label = chart.FloatValueFormatter(v)
		}
		ticks = append(ticks, chart.Tick{Value: v, Label: label})
		if len(ticks) > n+2 {
			break
		}
	}
	return ticks
}

// chartSize applies the width/height clamp rules used for rendered charts.
func chartSize(rawW int) (int, int) {
	w := rawW
	if w < 800 {
		w = 800
	}
	h := int(float32(w) * 0.4)
	if h < 280 {
		h = 280
	}
	if h > 560 {
		h = 560
	}
	return w, h
}
