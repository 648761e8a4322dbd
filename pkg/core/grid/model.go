package grid

import (
	"slices"

	errs "github.com/matzehuels/gridpad/pkg/errors"
)

// Model is one axis of a grid: the ordered track sizes plus the totals that
// the sizer needs. A Model is immutable once built and safe to share.
type Model struct {
	sizes       []CellSize
	totalFixed  float64
	totalWeight float64
}

// NewModel builds an axis from its track sizes. At least one track is
// required and every size must be valid.
func NewModel(sizes ...CellSize) (Model, error) {
	if len(sizes) == 0 {
		return Model{}, errs.New(errs.ErrCodeInvalidDeclaration, "an axis needs at least one track")
	}
	m := Model{sizes: slices.Clone(sizes)}
	for i, s := range m.sizes {
		if s.value <= 0 {
			return Model{}, errs.New(errs.ErrCodeInvalidCellSize, "track %d has no size", i)
		}
		switch s.kind {
		case KindFixed:
			m.totalFixed += s.value
		case KindWeight:
			m.totalWeight += s.value
		}
	}
	return m, nil
}

// Len returns the number of tracks.
func (m Model) Len() int { return len(m.sizes) }

// At returns the size of track i.
func (m Model) At(i int) CellSize { return m.sizes[i] }

// Sizes returns a copy of the track sizes.
func (m Model) Sizes() []CellSize { return slices.Clone(m.sizes) }

// TotalFixed is the sum of all fixed track pixels.
func (m Model) TotalFixed() float64 { return m.totalFixed }

// TotalWeight is the sum of all weight factors.
func (m Model) TotalWeight() float64 { return m.totalWeight }

// Equal reports whether both axes declare the same tracks in the same order.
func (m Model) Equal(o Model) bool { return slices.Equal(m.sizes, o.sizes) }

// Spec is the declared shape of a grid: a row axis and a column axis.
type Spec struct {
	Rows    Model
	Columns Model
}

// NewSpec pairs two axes into a grid spec.
func NewSpec(rows, columns Model) (Spec, error) {
	if rows.Len() == 0 || columns.Len() == 0 {
		return Spec{}, errs.New(errs.ErrCodeInvalidDeclaration, "grid needs at least one row and one column")
	}
	return Spec{Rows: rows, Columns: columns}, nil
}

// RowCount returns the number of rows.
func (s Spec) RowCount() int { return s.Rows.Len() }

// ColumnCount returns the number of columns.
func (s Spec) ColumnCount() int { return s.Columns.Len() }

// Equal reports structural equality of both axes.
func (s Spec) Equal(o Spec) bool {
	return s.Rows.Equal(o.Rows) && s.Columns.Equal(o.Columns)
}

// Contains reports whether (row, column) addresses a cell of the grid.
func (s Spec) Contains(row, column int) bool {
	return row >= 0 && row < s.RowCount() && column >= 0 && column < s.ColumnCount()
}

// Builder stages a grid spec. Every track starts as a unit weight.
type Builder struct {
	rows    []CellSize
	columns []CellSize
	err     error
}

// NewBuilder stages a rows x columns grid of unit weights.
func NewBuilder(rows, columns int) *Builder {
	b := &Builder{}
	if rows < 1 || columns < 1 {
		b.err = errs.New(errs.ErrCodeInvalidDeclaration, "grid needs at least one row and one column, got %dx%d", rows, columns)
		return b
	}
	b.rows = slices.Repeat([]CellSize{unitWeight}, rows)
	b.columns = slices.Repeat([]CellSize{unitWeight}, columns)
	return b
}

// SetRow sets the size of row i.
func (b *Builder) SetRow(i int, size CellSize) *Builder {
	b.set(b.rows, "row", i, size)
	return b
}

// SetColumn sets the size of column i.
func (b *Builder) SetColumn(i int, size CellSize) *Builder {
	b.set(b.columns, "column", i, size)
	return b
}

// SetRows replaces all row sizes; the count must match.
func (b *Builder) SetRows(sizes ...CellSize) *Builder {
	b.setAll(b.rows, "rows", sizes)
	return b
}

// SetColumns replaces all column sizes; the count must match.
func (b *Builder) SetColumns(sizes ...CellSize) *Builder {
	b.setAll(b.columns, "columns", sizes)
	return b
}

// FillRows sets every row to size.
func (b *Builder) FillRows(size CellSize) *Builder {
	b.fill(b.rows, size)
	return b
}

// FillColumns sets every column to size.
func (b *Builder) FillColumns(size CellSize) *Builder {
	b.fill(b.columns, size)
	return b
}

func (b *Builder) fill(track []CellSize, size CellSize) {
	if b.err != nil {
		return
	}
	for i := range track {
		track[i] = size
	}
}

func (b *Builder) set(track []CellSize, axis string, i int, size CellSize) {
	if b.err != nil {
		return
	}
	if i < 0 || i >= len(track) {
		b.err = errs.New(errs.ErrCodeInvalidDeclaration, "%s %d out of range [0, %d)", axis, i, len(track))
		return
	}
	track[i] = size
}

func (b *Builder) setAll(track []CellSize, axis string, sizes []CellSize) {
	if b.err != nil {
		return
	}
	if len(sizes) != len(track) {
		b.err = errs.New(errs.ErrCodeInvalidDeclaration, "expected %d %s, got %d", len(track), axis, len(sizes))
		return
	}
	copy(track, sizes)
}

// Build finalizes the staged sizes into an immutable Spec. The first error
// recorded by a setter is returned here.
func (b *Builder) Build() (Spec, error) {
	if b.err != nil {
		return Spec{}, b.err
	}
	rows, err := NewModel(b.rows...)
	if err != nil {
		return Spec{}, err
	}
	columns, err := NewModel(b.columns...)
	if err != nil {
		return Spec{}, err
	}
	return NewSpec(rows, columns)
}
