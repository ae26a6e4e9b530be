// Package chartjs holds the render-configuration model handed to a
// Chart.js-style rendering engine: typed structs for chart data plus an open
// options tree for everything scriptable or engine-specific.
package chartjs

// Point is a single sample. X carries the integer-encoded timestamp exactly
// as the data source emits it (seconds or milliseconds); ordering inside a
// dataset is by non-decreasing timestamp.
type Point struct {
	X string  `json:"x"`
	Y float64 `json:"y"`
}

// Dataset is one named series of points plus its visual attributes.
// BorderWidth is either a number or a per-edge object such as
// map[string]any{"top": 3}, matching the engine's own convention.
type Dataset struct {
	ID                 string  `json:"id,omitempty"`
	Label              string  `json:"label,omitempty"`
	Type               string  `json:"type,omitempty"`
	Data               []Point `json:"data"`
	BorderColor        string  `json:"borderColor,omitempty"`
	BackgroundColor    string  `json:"backgroundColor,omitempty"`
	BarPercentage      float64 `json:"barPercentage,omitempty"`
	CategoryPercentage float64 `json:"categoryPercentage,omitempty"`
	BorderWidth        any     `json:"borderWidth,omitempty"`
}

// Data groups the datasets of one chart.
type Data struct {
	Labels   []string  `json:"labels,omitempty"`
	Datasets []Dataset `json:"datasets"`
}

// Options is the open options tree. Nested option objects are
// map[string]any at every level; leaf values may be Go funcs for scriptable
// callbacks, which in-process renderers invoke directly. Because of those
// funcs a composed Options tree is not JSON-marshalable as a whole.
type Options = map[string]any

// Config is the complete render configuration, the sole artifact handed to
// the rendering engine. It is built fresh on every input change and never
// mutated afterwards.
type Config struct {
	Type    string  `json:"type"`
	Data    Data    `json:"data"`
	Options Options `json:"options,omitempty"`
	Plugins []any   `json:"-"`
}
