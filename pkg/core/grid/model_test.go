package grid

import (
	"testing"

	errs "github.com/matzehuels/gridpad/pkg/errors"
)

func TestNewModelTotals(t *testing.T) {
	m, err := NewModel(MustFixed(40), MustWeight(1), MustFixed(10.5), MustWeight(2))
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	if m.Len() != 4 {
		t.Errorf("Len() = %d, want 4", m.Len())
	}
	if m.TotalFixed() != 50.5 {
		t.Errorf("TotalFixed() = %v, want 50.5", m.TotalFixed())
	}
	if m.TotalWeight() != 3 {
		t.Errorf("TotalWeight() = %v, want 3", m.TotalWeight())
	}
}

func TestNewModelRejects(t *testing.T) {
	if _, err := NewModel(); !errs.Is(err, errs.ErrCodeInvalidDeclaration) {
		t.Errorf("empty model error = %v, want INVALID_DECLARATION", err)
	}
	if _, err := NewModel(MustWeight(1), CellSize{}); !errs.Is(err, errs.ErrCodeInvalidCellSize) {
		t.Errorf("zero size error = %v, want INVALID_CELL_SIZE", err)
	}
}

func TestModelIsImmutable(t *testing.T) {
	sizes := []CellSize{MustWeight(1), MustWeight(1)}
	m, _ := NewModel(sizes...)
	sizes[0] = MustFixed(99)
	if m.At(0) != MustWeight(1) {
		t.Error("model shares the caller's slice")
	}
	out := m.Sizes()
	out[1] = MustFixed(99)
	if m.At(1) != MustWeight(1) {
		t.Error("Sizes() exposes internal storage")
	}
}

func TestBuilderDefaults(t *testing.T) {
	spec, err := NewBuilder(2, 3).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if spec.RowCount() != 2 || spec.ColumnCount() != 3 {
		t.Fatalf("got %dx%d, want 2x3", spec.RowCount(), spec.ColumnCount())
	}
	for i := 0; i < spec.ColumnCount(); i++ {
		if spec.Columns.At(i) != MustWeight(1) {
			t.Errorf("column %d = %v, want 1w", i, spec.Columns.At(i))
		}
	}
}

func TestBuilderSetters(t *testing.T) {
	spec, err := NewBuilder(1, 2).
		SetRow(0, MustFixed(40)).
		SetColumns(MustWeight(1), MustWeight(2)).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if spec.Rows.At(0) != MustFixed(40) {
		t.Errorf("row 0 = %v", spec.Rows.At(0))
	}
	if spec.Columns.TotalWeight() != 3 {
		t.Errorf("column weight = %v, want 3", spec.Columns.TotalWeight())
	}
}

func TestBuilderFill(t *testing.T) {
	each, err := NewBuilder(2, 2).
		SetRow(0, MustWeight(3)).SetRow(1, MustWeight(3)).
		SetColumn(0, MustWeight(2)).SetColumn(1, MustWeight(2)).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	filled, err := NewBuilder(2, 2).FillRows(MustWeight(3)).FillColumns(MustWeight(2)).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !each.Equal(filled) {
		t.Error("filled spec differs from per-track spec")
	}

	spec, err := NewBuilder(3, 1).FillRows(MustFixed(10)).SetRow(1, MustWeight(1)).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if spec.Rows.TotalFixed() != 20 || spec.Rows.TotalWeight() != 1 {
		t.Errorf("totals = %v fixed, %v weight, want 20 and 1", spec.Rows.TotalFixed(), spec.Rows.TotalWeight())
	}
}

func TestBuilderErrors(t *testing.T) {
	tests := []struct {
		name string
		b    *Builder
	}{
		{"zero rows", NewBuilder(0, 1)},
		{"row out of range", NewBuilder(1, 1).SetRow(1, MustFixed(1))},
		{"negative column", NewBuilder(1, 1).SetColumn(-1, MustFixed(1))},
		{"count mismatch", NewBuilder(1, 2).SetColumns(MustFixed(1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.b.Build(); !errs.Is(err, errs.ErrCodeInvalidDeclaration) {
				t.Errorf("Build() error = %v, want INVALID_DECLARATION", err)
			}
		})
	}
}

func TestSpecEqual(t *testing.T) {
	a, _ := NewBuilder(2, 2).SetRow(0, MustFixed(10)).Build()
	b, _ := NewBuilder(2, 2).SetRow(0, MustFixed(10)).Build()
	c, _ := NewBuilder(2, 2).SetRow(0, MustFixed(11)).Build()
	d, _ := NewBuilder(2, 3).SetRow(0, MustFixed(10)).Build()

	if !a.Equal(b) {
		t.Error("identical specs should be equal")
	}
	if a.Equal(c) {
		t.Error("different sizes should not be equal")
	}
	if a.Equal(d) {
		t.Error("different column counts should not be equal")
	}
}
