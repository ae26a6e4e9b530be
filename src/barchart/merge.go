package barchart

import "github.com/sdil/lens/src/chartjs"

// mergeOptions deep-merges src over dst and returns a fresh tree, leaving
// both inputs untouched. Nested option objects combine key by key to any
// depth with src winning on conflicts; arrays and all other values replace
// wholesale.
func mergeOptions(dst, src chartjs.Options) chartjs.Options {
	out := make(chartjs.Options, len(dst)+len(src))
	for k, v := range dst {
		out[k] = cloneValue(v)
	}
	for k, v := range src {
		if dm, ok := out[k].(map[string]any); ok {
			if sm, ok := v.(map[string]any); ok {
				out[k] = mergeOptions(dm, sm)
				continue
			}
		}
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	if m, ok := v.(map[string]any); ok {
		return mergeOptions(m, nil)
	}
	return v
}
