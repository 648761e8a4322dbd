package grid

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	errs "github.com/matzehuels/gridpad/pkg/errors"
)

func TestNewFixedAndWeight(t *testing.T) {
	tests := []struct {
		name    string
		build   func(float64) (CellSize, error)
		value   float64
		wantErr bool
	}{
		{"fixed positive", NewFixed, 40, false},
		{"fixed fraction", NewFixed, 0.5, false},
		{"fixed zero", NewFixed, 0, true},
		{"fixed negative", NewFixed, -10, true},
		{"fixed at limit", NewFixed, MaxFixed, false},
		{"fixed beyond int range", NewFixed, 1e300, true},
		{"weight positive", NewWeight, 2, false},
		{"weight zero", NewWeight, 0, true},
		{"weight negative", NewWeight, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := tt.build(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errs.Is(err, errs.ErrCodeInvalidCellSize) {
					t.Errorf("code = %q, want %q", errs.GetCode(err), errs.ErrCodeInvalidCellSize)
				}
				return
			}
			if s.Value() != tt.value {
				t.Errorf("Value() = %v, want %v", s.Value(), tt.value)
			}
		})
	}
}

func TestCellSizeLists(t *testing.T) {
	tests := []struct {
		name string
		got  func() ([]CellSize, error)
		want []CellSize
	}{
		{"fixed repeated", func() ([]CellSize, error) { return FixedN(2, 1) }, []CellSize{MustFixed(1), MustFixed(1)}},
		{"fixed listed", func() ([]CellSize, error) { return Fixeds(1, 2) }, []CellSize{MustFixed(1), MustFixed(2)}},
		{"weight repeated", func() ([]CellSize, error) { return WeightN(2, 0.5) }, []CellSize{MustWeight(0.5), MustWeight(0.5)}},
		{"weight listed", func() ([]CellSize, error) { return Weights(0.5, 1.5) }, []CellSize{MustWeight(0.5), MustWeight(1.5)}},
		{"empty", func() ([]CellSize, error) { return WeightN(0, 1) }, []CellSize{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.got()
			if err != nil {
				t.Fatalf("error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got, cmp.Comparer(func(a, b CellSize) bool { return a == b })); diff != "" {
				t.Errorf("sizes mismatch (-want +got):\n%s", diff)
			}
		})
	}

	errCases := map[string]func() ([]CellSize, error){
		"fixed zero size": func() ([]CellSize, error) { return FixedN(3, 0) },
		"weight negative": func() ([]CellSize, error) { return WeightN(3, -1) },
		"negative count":  func() ([]CellSize, error) { return FixedN(-1, 10) },
		"one bad fixed":   func() ([]CellSize, error) { return Fixeds(10, 0, 20) },
		"one bad weight":  func() ([]CellSize, error) { return Weights(1, 2, -3) },
	}
	for name, build := range errCases {
		t.Run(name, func(t *testing.T) {
			if _, err := build(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestMustFixedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustFixed(0) did not panic")
		}
	}()
	MustFixed(0)
}

func TestParseCellSize(t *testing.T) {
	tests := []struct {
		input   string
		kind    Kind
		value   float64
		wantErr bool
	}{
		{input: "40px", kind: KindFixed, value: 40},
		{input: " 12.5PX ", kind: KindFixed, value: 12.5},
		{input: "2w", kind: KindWeight, value: 2},
		{input: "1.5", kind: KindWeight, value: 1.5},
		{input: "0px", wantErr: true},
		{input: "1e300px", wantErr: true},
		{input: "-1w", wantErr: true},
		{input: "px", wantErr: true},
		{input: "wide", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCellSize(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCellSize(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got.Kind() != tt.kind || got.Value() != tt.value {
				t.Errorf("ParseCellSize(%q) = %v %v, want %v %v", tt.input, got.Kind(), got.Value(), tt.kind, tt.value)
			}
		})
	}
}

func TestCellSizeText(t *testing.T) {
	for _, s := range []CellSize{MustFixed(40), MustWeight(2), MustWeight(0.25)} {
		text, err := s.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", s, err)
		}
		var back CellSize
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != s {
			t.Errorf("text %q decoded to %v, want %v", text, back, s)
		}
	}

	if _, err := (CellSize{}).MarshalText(); err == nil {
		t.Error("zero CellSize should not marshal")
	}
}
