package grid

import "fmt"

// CellRect is a pixel rectangle. X and Y are the top-left corner.
type CellRect struct {
	X      int `json:"x" bson:"x"`
	Y      int `json:"y" bson:"y"`
	Width  int `json:"width" bson:"width"`
	Height int `json:"height" bson:"height"`
}

// Right returns the x coordinate one past the right edge.
func (r CellRect) Right() int { return r.X + r.Width }

// Bottom returns the y coordinate one past the bottom edge.
func (r CellRect) Bottom() int { return r.Y + r.Height }

func (r CellRect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// Offsets returns the start position of every track: offsets[i] is the sum
// of sizes[0:i].
func Offsets(sizes []int) []int {
	offsets := make([]int, len(sizes))
	pos := 0
	for i, s := range sizes {
		offsets[i] = pos
		pos += s
	}
	return offsets
}

// BuildCellRects lays out the table of cell rectangles for resolved row and
// column sizes. The result is indexed [row][column].
func BuildCellRects(rowSizes, columnSizes []int) [][]CellRect {
	ys := Offsets(rowSizes)
	xs := Offsets(columnSizes)

	cells := make([][]CellRect, len(rowSizes))
	for r, h := range rowSizes {
		row := make([]CellRect, len(columnSizes))
		for c, w := range columnSizes {
			row[c] = CellRect{X: xs[c], Y: ys[r], Width: w, Height: h}
		}
		cells[r] = row
	}
	return cells
}

// SpanRect returns the rectangle covered by b: it starts at the top-left
// cell of b and is as large as the spanned tracks together. b must lie
// inside the grid described by the sizes.
func SpanRect(rowSizes, columnSizes []int, b Bounds) CellRect {
	rect := CellRect{
		X: Sum(columnSizes[:b.Left]),
		Y: Sum(rowSizes[:b.Top]),
	}
	rect.Width = Sum(columnSizes[b.Left : b.Right+1])
	rect.Height = Sum(rowSizes[b.Top : b.Bottom+1])
	return rect
}
