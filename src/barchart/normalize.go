package barchart

import "github.com/sdil/lens/src/chartjs"

// Bar-geometry defaults injected per dataset unless the caller already set
// the field. Bars fill their whole category slot; only the top edge carries
// a visible border.
const (
	defaultBarPercentage      = 1
	defaultCategoryPercentage = 1
	topBorderWidth            = 3
)

// normalizeDatasets drops datasets with no points and fills bar-geometry
// defaults in on the rest. Caller-specified attributes win, field by field.
// Point sequences pass through untouched.
func normalizeDatasets(in []chartjs.Dataset) []chartjs.Dataset {
	out := make([]chartjs.Dataset, 0, len(in))
	for _, ds := range in {
		if len(ds.Data) == 0 {
			continue
		}
		if ds.Type == "" {
			ds.Type = "bar"
		}
		if ds.BarPercentage == 0 {
			ds.BarPercentage = defaultBarPercentage
		}
		if ds.CategoryPercentage == 0 {
			ds.CategoryPercentage = defaultCategoryPercentage
		}
		if ds.BorderWidth == nil {
			ds.BorderWidth = map[string]any{"top": topBorderWidth}
		}
		out = append(out, ds)
	}
	return out
}
