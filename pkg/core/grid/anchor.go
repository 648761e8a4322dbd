package grid

// HorizontalAnchor selects which vertical edge a column coordinate names.
type HorizontalAnchor uint8

const (
	// AnchorStart: the column is the left edge and the span grows right.
	AnchorStart HorizontalAnchor = iota
	// AnchorEnd: the column is the right edge and the span grows left.
	AnchorEnd
)

func (a HorizontalAnchor) String() string {
	if a == AnchorEnd {
		return "end"
	}
	return "start"
}

// VerticalAnchor selects which horizontal edge a row coordinate names.
type VerticalAnchor uint8

const (
	// AnchorTop: the row is the top edge and the span grows down.
	AnchorTop VerticalAnchor = iota
	// AnchorBottom: the row is the bottom edge and the span grows up.
	AnchorBottom
)

func (a VerticalAnchor) String() string {
	if a == AnchorBottom {
		return "bottom"
	}
	return "top"
}

// Anchor is the corner of an item's block that its (row, column) names.
type Anchor struct {
	Horizontal HorizontalAnchor
	Vertical   VerticalAnchor
}

func (a Anchor) String() string {
	return a.Vertical.String() + "-" + a.Horizontal.String()
}

// Bounds is an inclusive block of grid lines: rows Top..Bottom and columns
// Left..Right.
type Bounds struct {
	Top    int `json:"top" bson:"top"`
	Left   int `json:"left" bson:"left"`
	Bottom int `json:"bottom" bson:"bottom"`
	Right  int `json:"right" bson:"right"`
}

// RowSpan returns the number of rows covered.
func (b Bounds) RowSpan() int { return b.Bottom - b.Top + 1 }

// ColumnSpan returns the number of columns covered.
func (b Bounds) ColumnSpan() int { return b.Right - b.Left + 1 }

// Within reports whether every cell of b exists in a rows x columns grid.
func (b Bounds) Within(rows, columns int) bool {
	return b.Top >= 0 && b.Left >= 0 && b.Bottom < rows && b.Right < columns
}

// ResolveAxis returns the inclusive track range covered by span tracks
// anchored at coord. With fromEnd set, coord is the high edge and the span
// extends backward.
func ResolveAxis(coord, span int, fromEnd bool) (low, high int) {
	if fromEnd {
		return coord - span + 1, coord
	}
	return coord, coord + span - 1
}

// Resolve expands an anchored (row, column) and span into grid bounds.
func (a Anchor) Resolve(row, column int, span Span) Bounds {
	top, bottom := ResolveAxis(row, span.Rows, a.Vertical == AnchorBottom)
	left, right := ResolveAxis(column, span.Columns, a.Horizontal == AnchorEnd)
	return Bounds{Top: top, Left: left, Bottom: bottom, Right: right}
}

// Corner returns the coordinate pair that a names for b, the inverse of
// Resolve.
func (a Anchor) Corner(b Bounds) Position {
	p := Position{Row: b.Top, Column: b.Left}
	if a.Vertical == AnchorBottom {
		p.Row = b.Bottom
	}
	if a.Horizontal == AnchorEnd {
		p.Column = b.Right
	}
	return p
}
