package units

import "testing"

func TestBytes(t *testing.T) {
	cases := []struct {
		in     float64
		digits int
		want   string
	}{
		{0, 1, "0 B"},
		{512, 1, "512 B"},
		{2048, 1, "2 KB"},
		{2048, 3, "2 KB"},
		{1536, 1, "1.5 KB"},
		{1048576, 1, "1 MB"},
		{1073741824, 1, "1 GB"},
		{1234567, 3, "1.177 MB"},
		{-2048, 1, "-2 KB"},
	}
	for _, c := range cases {
		if got := Bytes(c.in, c.digits); got != c.want {
			t.Fatalf("Bytes(%v, %d): got %q want %q", c.in, c.digits, got, c.want)
		}
	}
}
