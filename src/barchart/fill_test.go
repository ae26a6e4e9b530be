package barchart

import (
	"strings"
	"testing"
)

func TestFillColor_HexAndRGB(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"#3d90ce", "rgba(61, 144, 206, 0.2)"},
		{"#fff", "rgba(255, 255, 255, 0.2)"},
		{"rgb(10, 20, 30)", "rgba(10, 20, 30, 0.2)"},
		{"rgba(10, 20, 30, 1)", "rgba(10, 20, 30, 0.2)"},
		{"teal", "rgba(0, 128, 128, 0.2)"},
	}
	for _, c := range cases {
		got, err := FillColor(c.in)
		if err != nil {
			t.Fatalf("FillColor(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("FillColor(%q): got %q want %q", c.in, got, c.want)
		}
	}
}

func TestFillColor_Idempotent(t *testing.T) {
	first, err := FillColor("#3d90ce")
	if err != nil {
		t.Fatalf("first derivation: %v", err)
	}
	second, err := FillColor(first)
	if err != nil {
		t.Fatalf("second derivation: %v", err)
	}
	if first != second {
		t.Fatalf("derivation not idempotent: %q then %q", first, second)
	}
}

func TestFillColor_InvalidInputFails(t *testing.T) {
	for _, in := range []string{"", "#12", "#zzzzzz", "rgb(300, 0, 0)", "rgba(1, 2, 3)", "chartreuse-ish", "rgba(1, 2, 3, 2)"} {
		got, err := FillColor(in)
		if err == nil {
			t.Fatalf("FillColor(%q): expected error, got %q", in, got)
		}
		if !strings.Contains(err.Error(), "derive fill") {
			t.Fatalf("FillColor(%q): error lacks context: %v", in, err)
		}
	}
}
