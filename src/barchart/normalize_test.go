package barchart

import (
	"reflect"
	"testing"

	"github.com/sdil/lens/src/chartjs"
)

func TestNormalizeDatasets_DropsEmptyKeepsPoints(t *testing.T) {
	points := []chartjs.Point{{X: "1700000000", Y: 1}, {X: "1700000060", Y: 2}}
	in := []chartjs.Dataset{
		{ID: "empty", Label: "Empty"},
		{ID: "cpu", Label: "CPU", Data: points},
		{ID: "also-empty", Label: "Empty2", Data: []chartjs.Point{}},
	}
	out := normalizeDatasets(in)
	if len(out) != 1 {
		t.Fatalf("expected 1 dataset to survive, got %d", len(out))
	}
	if out[0].ID != "cpu" {
		t.Fatalf("wrong dataset kept: %q", out[0].ID)
	}
	if !reflect.DeepEqual(out[0].Data, points) {
		t.Fatalf("points changed during normalization: %+v", out[0].Data)
	}
}

func TestNormalizeDatasets_InjectsGeometryDefaults(t *testing.T) {
	out := normalizeDatasets([]chartjs.Dataset{
		{ID: "mem", Data: []chartjs.Point{{X: "1700000000", Y: 10}}},
	})
	if len(out) != 1 {
		t.Fatalf("expected 1 dataset, got %d", len(out))
	}
	ds := out[0]
	if ds.Type != "bar" {
		t.Fatalf("type default: got %q want %q", ds.Type, "bar")
	}
	if ds.BarPercentage != 1 || ds.CategoryPercentage != 1 {
		t.Fatalf("geometry defaults: bar=%v category=%v, want 1 and 1", ds.BarPercentage, ds.CategoryPercentage)
	}
	bw, ok := ds.BorderWidth.(map[string]any)
	if !ok {
		t.Fatalf("borderWidth default missing: %#v", ds.BorderWidth)
	}
	if bw["top"] != topBorderWidth {
		t.Fatalf("borderWidth top: got %v want %v", bw["top"], topBorderWidth)
	}
}

func TestNormalizeDatasets_CallerValuesWin(t *testing.T) {
	out := normalizeDatasets([]chartjs.Dataset{
		{
			ID:                 "net",
			Type:               "line",
			BarPercentage:      0.5,
			CategoryPercentage: 0.8,
			BorderWidth:        2,
			Data:               []chartjs.Point{{X: "1700000000", Y: 3}},
		},
	})
	ds := out[0]
	if ds.Type != "line" {
		t.Fatalf("caller type overridden: got %q", ds.Type)
	}
	if ds.BarPercentage != 0.5 || ds.CategoryPercentage != 0.8 {
		t.Fatalf("caller geometry overridden: bar=%v category=%v", ds.BarPercentage, ds.CategoryPercentage)
	}
	if ds.BorderWidth != 2 {
		t.Fatalf("caller borderWidth overridden: %#v", ds.BorderWidth)
	}
}

func TestNormalizeDatasets_OrderPreserved(t *testing.T) {
	out := normalizeDatasets([]chartjs.Dataset{
		{ID: "a", Data: []chartjs.Point{{X: "1", Y: 1}}},
		{ID: "b"},
		{ID: "c", Data: []chartjs.Point{{X: "2", Y: 2}}},
		{ID: "d", Data: []chartjs.Point{{X: "3", Y: 3}}},
	})
	got := []string{}
	for _, ds := range out {
		got = append(got, ds.ID)
	}
	want := []string{"a", "c", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("order: got %v want %v", got, want)
	}
}
