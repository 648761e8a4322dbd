package grid

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustModel(t *testing.T, sizes ...CellSize) Model {
	t.Helper()
	m, err := NewModel(sizes...)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

func TestSizeTracks(t *testing.T) {
	tests := []struct {
		name      string
		sizes     []CellSize
		available int
		want      []int
	}{
		{
			name:      "single fixed row",
			sizes:     []CellSize{MustFixed(40)},
			available: 40,
			want:      []int{40},
		},
		{
			name:      "weights divide evenly",
			sizes:     []CellSize{MustWeight(1), MustWeight(2)},
			available: 90,
			want:      []int{30, 60},
		},
		{
			name:      "remainder carried between thirds",
			sizes:     []CellSize{MustWeight(1), MustWeight(1), MustWeight(1)},
			available: 100,
			want:      []int{33, 34, 33},
		},
		{
			name:      "odd pixel across thirds",
			sizes:     []CellSize{MustWeight(1), MustWeight(1), MustWeight(1)},
			available: 101,
			want:      []int{34, 33, 34},
		},
		{
			name:      "seven equal weights",
			sizes:     []CellSize{MustWeight(1), MustWeight(1), MustWeight(1), MustWeight(1), MustWeight(1), MustWeight(1), MustWeight(1)},
			available: 76,
			want:      []int{11, 11, 11, 10, 11, 11, 11},
		},
		{
			name:      "fixed then weights with half pixel",
			sizes:     []CellSize{MustFixed(50), MustWeight(1), MustWeight(1)},
			available: 151,
			want:      []int{50, 51, 50},
		},
		{
			name:      "fixed sizes are rounded",
			sizes:     []CellSize{MustFixed(40.4), MustFixed(10.6)},
			available: 100,
			want:      []int{40, 11},
		},
		{
			name:      "weights clamp to zero when fixed overflows",
			sizes:     []CellSize{MustFixed(100), MustWeight(1)},
			available: 60,
			want:      []int{100, 0},
		},
		{
			name:      "nothing available",
			sizes:     []CellSize{MustWeight(1), MustWeight(2)},
			available: 0,
			want:      []int{0, 0},
		},
		{
			name:      "fixed between weights",
			sizes:     []CellSize{MustWeight(1), MustFixed(20), MustWeight(1)},
			available: 101,
			want:      []int{41, 20, 40},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SizeTracks(tt.available, mustModel(t, tt.sizes...))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SizeTracks(%d) mismatch (-want +got):\n%s", tt.available, diff)
			}
		})
	}
}

func TestSizeTracksConservesPixels(t *testing.T) {
	models := [][]CellSize{
		{MustWeight(1)},
		{MustWeight(1), MustWeight(1), MustWeight(1)},
		{MustWeight(0.3), MustWeight(1.7), MustWeight(2.9), MustWeight(0.1)},
		{MustFixed(12.5), MustWeight(1), MustWeight(3)},
		{MustWeight(7), MustFixed(3.3), MustWeight(1), MustFixed(9.6), MustWeight(2)},
	}

	for _, sizes := range models {
		m := mustModel(t, sizes...)
		fixed := 0
		for _, s := range sizes {
			if s.IsFixed() {
				fixed += int(math.Round(s.Value()))
			}
		}
		for available := fixed; available <= 500; available++ {
			got := SizeTracks(available, m)
			if sum := Sum(got); sum != available {
				t.Fatalf("%v at %d: sum = %d (%v)", sizes, available, sum, got)
			}
			for i, px := range got {
				if px < 0 {
					t.Fatalf("%v at %d: track %d negative (%v)", sizes, available, i, got)
				}
			}
		}
	}
}

func TestSizeTracksFixedPriority(t *testing.T) {
	m := mustModel(t, MustWeight(5), MustFixed(33.6), MustWeight(1))
	for available := 0; available <= 300; available += 7 {
		if got := SizeTracks(available, m); got[1] != 34 {
			t.Fatalf("at %d fixed track = %d, want 34", available, got[1])
		}
	}
}

func TestSizeTracksProportionality(t *testing.T) {
	pairs := [][2]float64{{1, 1}, {1, 2}, {2, 3}, {1, 5}, {3, 7}}
	for _, w := range pairs {
		m := mustModel(t, MustWeight(w[0]), MustWeight(w[1]))
		for available := 0; available <= 400; available++ {
			got := SizeTracks(available, m)
			ratio := float64(got[0])/w[0] - float64(got[1])/w[1]
			if math.Abs(ratio) > 1 {
				t.Fatalf("weights %v at %d: sizes %v drift %.3f", w, available, got, ratio)
			}
		}
	}
}

func TestSizeTracksAllFixed(t *testing.T) {
	m := mustModel(t, MustFixed(30), MustFixed(20))
	got := SizeTracks(200, m)
	if Sum(got) != 50 {
		t.Errorf("all-fixed axis sum = %d, want 50", Sum(got))
	}
}
