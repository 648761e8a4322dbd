package document

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/gridpad/pkg/core/grid"
	"github.com/matzehuels/gridpad/pkg/core/layout"
	errs "github.com/matzehuels/gridpad/pkg/errors"
)

// =============================================================================
// Layout - Serialized Output
// =============================================================================

// Layout is the serialized result of a layout pass.
type Layout struct {
	Width       int               `json:"width" bson:"width"`
	Height      int               `json:"height" bson:"height"`
	RowSizes    []int             `json:"row_sizes" bson:"row_sizes"`
	ColumnSizes []int             `json:"column_sizes" bson:"column_sizes"`
	Cells       [][]grid.CellRect `json:"cells" bson:"cells"`
	Items       []PlacedItem      `json:"items" bson:"items"`
	Skipped     []Skip            `json:"skipped,omitempty" bson:"skipped,omitempty"`
}

// PlacedItem is one item in a serialized layout.
type PlacedItem struct {
	ID     string        `json:"id" bson:"id"`
	Index  int           `json:"index" bson:"index"`
	Bounds grid.Bounds   `json:"bounds" bson:"bounds"`
	Span   grid.CellRect `json:"span" bson:"span"`
	Frame  grid.CellRect `json:"frame" bson:"frame"`
}

// Skip records a request that was dropped during placement.
type Skip struct {
	ID         string `json:"id" bson:"id"`
	Index      int    `json:"index" bson:"index"`
	Row        int    `json:"row" bson:"row"`
	Column     int    `json:"column" bson:"column"`
	RowSpan    int    `json:"row_span" bson:"row_span"`
	ColumnSpan int    `json:"column_span" bson:"column_span"`
	Reason     string `json:"reason" bson:"reason"`
}

// Rows returns the number of row tracks.
func (l Layout) Rows() int { return len(l.RowSizes) }

// Columns returns the number of column tracks.
func (l Layout) Columns() int { return len(l.ColumnSizes) }

// Covering returns the ids of items whose bounds include the cell, in
// placement order.
func (l Layout) Covering(row, column int) []string {
	var ids []string
	for _, it := range l.Items {
		b := it.Bounds
		if row >= b.Top && row <= b.Bottom && column >= b.Left && column <= b.Right {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

// FromResult converts a layout pass result into its serialized form.
func FromResult(res layout.Result) Layout {
	out := Layout{
		Width:       res.Width,
		Height:      res.Height,
		RowSizes:    res.RowSizes,
		ColumnSizes: res.ColumnSizes,
		Cells:       res.Cells,
		Items:       make([]PlacedItem, len(res.Items)),
	}
	for i, it := range res.Items {
		out.Items[i] = PlacedItem{
			ID:     itemID(it.Payload, it.Index),
			Index:  it.Index,
			Bounds: it.Bounds,
			Span:   it.Span,
			Frame:  it.Frame,
		}
	}
	for _, s := range res.Skipped {
		out.Skipped = append(out.Skipped, Skip{
			ID:         itemID(s.Payload, s.Index),
			Index:      s.Index,
			Row:        s.Row,
			Column:     s.Column,
			RowSpan:    s.RowSpan,
			ColumnSpan: s.ColumnSpan,
			Reason:     string(s.Reason),
		})
	}
	return out
}

func itemID(payload any, index int) string {
	switch p := payload.(type) {
	case Element:
		return p.ID
	case string:
		return p
	case fmt.Stringer:
		return p.String()
	default:
		return fmt.Sprintf("item-%d", index)
	}
}

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout serializes a Layout to indented JSON.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout.
// The cell table must match the track counts.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}
	if err := l.validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

func (l Layout) validate() error {
	if len(l.Cells) != len(l.RowSizes) {
		return errs.New(errs.ErrCodeInvalidInput, "layout has %d cell rows for %d row tracks", len(l.Cells), len(l.RowSizes))
	}
	for r, row := range l.Cells {
		if len(row) != len(l.ColumnSizes) {
			return errs.New(errs.ErrCodeInvalidInput, "layout row %d has %d cells for %d column tracks", r, len(row), len(l.ColumnSizes))
		}
	}
	return nil
}

// WriteLayout writes a Layout as indented JSON to w.
func WriteLayout(l Layout, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}
