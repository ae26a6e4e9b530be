package main

import (
	"math"
	"strconv"
	"time"

	"github.com/sdil/lens/src/chartjs"
)

// sampleWindow is one trailing hour of per-minute buckets, matching the
// dashboard's fixed 60-minute visible window.
const sampleWindow = 61

// sampleDatasets fabricates the trailing hour of per-minute CPU and memory
// samples ending at now, shaped like what the metrics source would deliver.
func sampleDatasets(now time.Time) (cpu, mem []chartjs.Dataset) {
	start := now.Add(-time.Duration(sampleWindow-1) * time.Minute).Truncate(time.Minute)

	points := func(gen func(i int) float64) []chartjs.Point {
		out := make([]chartjs.Point, sampleWindow)
		for i := 0; i < sampleWindow; i++ {
			ts := start.Add(time.Duration(i) * time.Minute).Unix()
			out[i] = chartjs.Point{X: strconv.FormatInt(ts, 10), Y: gen(i)}
		}
		return out
	}

	cpu = []chartjs.Dataset{
		{
			ID:          "cpuUsage",
			Label:       "Usage",
			BorderColor: "#3d90ce",
			Data: points(func(i int) float64 {
				return 0.35 + 0.18*math.Sin(float64(i)/7) + 0.04*float64(i%5)/5
			}),
		},
		{
			ID:          "cpuRequests",
			Label:       "Requests",
			BorderColor: "#30b24d",
			Data: points(func(i int) float64 {
				return 0.25
			}),
		},
	}
	mem = []chartjs.Dataset{
		{
			ID:          "memUsage",
			Label:       "Usage",
			BorderColor: "#ce3d90",
			Data: points(func(i int) float64 {
				return 384*1024*1024 + 64*1024*1024*math.Sin(float64(i)/9)
			}),
		},
		{
			ID:          "memRequests",
			Label:       "Requests",
			BorderColor: "#b2a130",
			Data: points(func(i int) float64 {
				return 256 * 1024 * 1024
			}),
		},
	}
	return cpu, mem
}
