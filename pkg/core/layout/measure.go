package layout

import "math"

// Infinity marks an unbounded constraint.
const Infinity = math.MaxInt

// Size is a measured width and height in pixels.
type Size struct {
	Width  int `json:"width" bson:"width"`
	Height int `json:"height" bson:"height"`
}

// Constraints bound the size an item may take.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Tight returns constraints that only admit w x h.
func Tight(w, h int) Constraints {
	return Constraints{MinWidth: w, MaxWidth: w, MinHeight: h, MaxHeight: h}
}

// Loose returns constraints from zero up to w x h.
func Loose(w, h int) Constraints {
	return Constraints{MaxWidth: w, MaxHeight: h}
}

// IsBounded reports whether both maxima are finite.
func (c Constraints) IsBounded() bool {
	return c.MaxWidth != Infinity && c.MaxHeight != Infinity
}

// Constrain clamps s into c.
func (c Constraints) Constrain(s Size) Size {
	return Size{
		Width:  min(max(s.Width, c.MinWidth), c.MaxWidth),
		Height: min(max(s.Height, c.MinHeight), c.MaxHeight),
	}
}

// Measurer is implemented by item payloads that know their own size.
type Measurer interface {
	Measure(c Constraints) Size
}

// MeasureFunc adapts a function to Measurer.
type MeasureFunc func(c Constraints) Size

// Measure calls f(c).
func (f MeasureFunc) Measure(c Constraints) Size { return f(c) }
