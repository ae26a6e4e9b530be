package barchart

import "github.com/sdil/lens/src/chartjs"

// Precomputed override bundles. Each supplies the unit-specific y-tick and
// tooltip-body rules for one metric family and is meant to be passed as
// Input.Overrides into Compose.

// BytesOptions is the bundle for byte-valued charts (memory, network, disk).
func BytesOptions() chartjs.Options {
	return chartjs.Options{
		"scales": chartjs.Options{
			"y": chartjs.Options{
				"ticks": chartjs.Options{
					"callback": ValueTickFunc(BytesTickLabel),
				},
			},
		},
		"plugins": chartjs.Options{
			"tooltip": chartjs.Options{
				"callbacks": chartjs.Options{
					"label": LabelFunc(BytesTooltipLabel),
				},
			},
		},
	}
}

// CPUOptions is the bundle for decimal-valued charts (CPU cores and other
// plain numbers).
func CPUOptions() chartjs.Options {
	return chartjs.Options{
		"scales": chartjs.Options{
			"y": chartjs.Options{
				"ticks": chartjs.Options{
					"callback": ValueTickFunc(CPUTickLabel),
				},
			},
		},
		"plugins": chartjs.Options{
			"tooltip": chartjs.Options{
				"callbacks": chartjs.Options{
					"label": LabelFunc(CPUTooltipLabel),
				},
			},
		},
	}
}
