package grid

import "math"

// SizeTracks resolves the pixel size of every track of m for an axis that
// is available pixels long.
//
// Fixed tracks get round(pixels) regardless of anything else. The pixels
// that remain are shared by weighted tracks in proportion to their factor.
// The rounding error of each weighted track is carried into the next one
// and the last weighted track absorbs what is left, so the result sums to
// available whenever m has a weighted track and the fixed tracks fit.
//
// If the fixed tracks need more than available, weighted tracks get zero;
// the overflow is never pushed into negative sizes. An axis with only fixed
// tracks sums to its rounded fixed sizes, whatever available is.
func SizeTracks(available int, m Model) []int {
	out := make([]int, len(m.sizes))

	fixed, lastWeight := 0, -1
	for i, s := range m.sizes {
		switch s.kind {
		case KindFixed:
			out[i] = int(math.Round(s.value))
			fixed += out[i]
		case KindWeight:
			lastWeight = i
		}
	}
	if lastWeight < 0 || m.totalWeight <= 0 {
		return out
	}

	remaining := max(available-fixed, 0)

	var carry float64
	assigned := 0
	for i, s := range m.sizes {
		if s.kind != KindWeight {
			continue
		}
		if i == lastWeight {
			out[i] = remaining - assigned
			break
		}
		exact := float64(remaining)*s.value/m.totalWeight + carry
		px := int(math.Round(exact))
		carry = exact - float64(px)
		out[i] = px
		assigned += px
	}
	return out
}

// Sum adds up track sizes.
func Sum(sizes []int) int {
	total := 0
	for _, s := range sizes {
		total += s
	}
	return total
}
