package grid

// Span is the number of rows and columns an item occupies.
type Span struct {
	Rows    int `json:"rows" bson:"rows"`
	Columns int `json:"columns" bson:"columns"`
}

// UnitSpan covers a single cell.
var UnitSpan = Span{Rows: 1, Columns: 1}

// Position is an anchored (row, column) coordinate.
type Position struct {
	Row    int `json:"row" bson:"row"`
	Column int `json:"column" bson:"column"`
}

// Flow computes auto-flow coordinates for a rows x columns grid. It holds
// no history; callers pass the last placed item on every call, so the
// sequence of positions is a pure function of the placement history.
type Flow struct {
	Policy  Policy
	Rows    int
	Columns int
}

// NextPosition is shorthand for Flow{policy, rows, columns}.Next(last, span).
func NextPosition(policy Policy, rows, columns int, last *Bounds, span Span) Position {
	return Flow{Policy: policy, Rows: rows, Columns: columns}.Next(last, span)
}

// cursor is where the previous item sits, read on its anchored edges, and
// where the main and cross axes would advance to from there.
type cursor struct {
	row, column         int
	nextRow, nextColumn int
}

func (f Flow) cursor(last Bounds) cursor {
	corner := f.Policy.Anchor().Corner(last)
	return cursor{
		row:        corner.Row,
		column:     corner.Column,
		nextRow:    corner.Row + f.Policy.rowStep()*last.RowSpan(),
		nextColumn: corner.Column + f.Policy.columnStep()*last.ColumnSpan(),
	}
}

// Next returns the anchored position for an item of the given span that
// follows last. With no last item it returns the policy's first cell.
//
// The main-axis coordinate advances past last. If the span would then
// leave the grid on the main axis, the line wraps: the main-axis coordinate
// resets to the first track and the cross axis advances past last. The
// result is not bounds-checked; a position past the final line is how the
// caller learns the grid is full.
func (f Flow) Next(last *Bounds, span Span) Position {
	first := Position{Row: f.Policy.FirstRow(f.Rows), Column: f.Policy.FirstColumn(f.Columns)}
	if last == nil {
		return first
	}

	c := f.cursor(*last)
	anchor := f.Policy.Anchor()

	if f.Policy.MainAxis == Vertical {
		low, high := ResolveAxis(c.nextRow, span.Rows, anchor.Vertical == AnchorBottom)
		if low < 0 || high >= f.Rows {
			return Position{Row: first.Row, Column: c.nextColumn}
		}
		return Position{Row: c.nextRow, Column: c.column}
	}

	low, high := ResolveAxis(c.nextColumn, span.Columns, anchor.Horizontal == AnchorEnd)
	if low < 0 || high >= f.Columns {
		return Position{Row: c.nextRow, Column: first.Column}
	}
	return Position{Row: c.row, Column: c.nextColumn}
}

// NextInRow resolves the column for an item whose row is fixed by the
// caller. On a horizontal flow the item continues after last when last
// sits in the same row and starts the row otherwise. On a vertical flow
// the item stays in last's column if row is still ahead of last, and moves
// to the next column otherwise.
func (f Flow) NextInRow(last *Bounds, row int) Position {
	if last == nil {
		return Position{Row: row, Column: f.Policy.FirstColumn(f.Columns)}
	}
	c := f.cursor(*last)

	if f.Policy.MainAxis == Vertical {
		if ahead(row, c.nextRow, f.Policy.rowStep()) {
			return Position{Row: row, Column: c.column}
		}
		return Position{Row: row, Column: c.nextColumn}
	}

	if row == c.row {
		return Position{Row: row, Column: c.nextColumn}
	}
	return Position{Row: row, Column: f.Policy.FirstColumn(f.Columns)}
}

// NextInColumn is the transpose of NextInRow for an item whose column is
// fixed by the caller.
func (f Flow) NextInColumn(last *Bounds, column int) Position {
	if last == nil {
		return Position{Row: f.Policy.FirstRow(f.Rows), Column: column}
	}
	c := f.cursor(*last)

	if f.Policy.MainAxis == Vertical {
		if column == c.column {
			return Position{Row: c.nextRow, Column: column}
		}
		return Position{Row: f.Policy.FirstRow(f.Rows), Column: column}
	}

	if ahead(column, c.nextColumn, f.Policy.columnStep()) {
		return Position{Row: c.row, Column: column}
	}
	return Position{Row: c.nextRow, Column: column}
}

// ahead reports whether coord is at or past next in the direction of step.
func ahead(coord, next, step int) bool {
	if step < 0 {
		return coord <= next
	}
	return coord >= next
}
