package grid

import (
	"fmt"

	errs "github.com/matzehuels/gridpad/pkg/errors"
)

// Request asks for an item to be placed. A nil Row or Column is resolved by
// auto-flow. Spans must be >= 1; use [Item] to start from a unit span.
type Request struct {
	Row        *int
	Column     *int
	RowSpan    int
	ColumnSpan int
	Payload    any
}

// Item returns an auto-placed request for a single cell.
func Item(payload any) Request {
	return Request{RowSpan: 1, ColumnSpan: 1, Payload: payload}
}

// At pins both coordinates.
func (r Request) At(row, column int) Request {
	r.Row, r.Column = &row, &column
	return r
}

// InRow pins the row and leaves the column to auto-flow.
func (r Request) InRow(row int) Request {
	r.Row = &row
	return r
}

// InColumn pins the column and leaves the row to auto-flow.
func (r Request) InColumn(column int) Request {
	r.Column = &column
	return r
}

// Span sets the number of rows and columns the item covers.
func (r Request) Span(rows, columns int) Request {
	r.RowSpan, r.ColumnSpan = rows, columns
	return r
}

// PlacedItem is an item that passed validation.
type PlacedItem struct {
	Bounds
	// Index is the item's position in declaration order, counting skipped
	// requests too.
	Index   int
	Payload any
}

// SkipReason says why a request was dropped.
type SkipReason string

const (
	SkipRowOutOfRange    SkipReason = "row out of range"
	SkipColumnOutOfRange SkipReason = "column out of range"
	SkipOutOfBounds      SkipReason = "span exceeds grid"
)

// SkipEvent describes a dropped request. Row and Column are the anchored
// coordinates that failed; a coordinate left to auto-flow that was never
// resolved is reported as -1.
type SkipEvent struct {
	Index      int
	Row        int
	Column     int
	RowSpan    int
	ColumnSpan int
	Rows       int
	Columns    int
	Reason     SkipReason
	Payload    any
}

func (e SkipEvent) String() string {
	return fmt.Sprintf("skipping item %d at row=%d column=%d span=%dx%d in %dx%d grid: %s",
		e.Index, e.Row, e.Column, e.RowSpan, e.ColumnSpan, e.Rows, e.Columns, e.Reason)
}

// SkipSink receives skip diagnostics. It must not panic; the layout pass
// carries on after every skip.
type SkipSink func(SkipEvent)

// Registry records the items of one declaration pass in declaration order.
// The last recorded item drives auto-flow for the next request. A Registry
// is not safe for concurrent use; build a fresh one for every pass.
type Registry struct {
	rows, columns int
	flow          Flow
	anchor        Anchor
	items         []PlacedItem
	requests      int
	sink          SkipSink
}

// NewRegistry returns an empty registry for spec. sink may be nil.
func NewRegistry(spec Spec, policy Policy, sink SkipSink) *Registry {
	return &Registry{
		rows:    spec.RowCount(),
		columns: spec.ColumnCount(),
		flow:    Flow{Policy: policy, Rows: spec.RowCount(), Columns: spec.ColumnCount()},
		anchor:  policy.Anchor(),
		sink:    sink,
	}
}

// Place validates req and records it. It returns false when the item was
// skipped because it does not fit; the skip is reported to the sink and the
// registry is left unchanged. A span below one is a declaration error.
func (r *Registry) Place(req Request) (bool, error) {
	index := r.requests
	r.requests++

	if req.RowSpan < 1 {
		return false, errs.New(errs.ErrCodeInvalidSpan, "item %d: row span must be >= 1, got %d", index, req.RowSpan)
	}
	if req.ColumnSpan < 1 {
		return false, errs.New(errs.ErrCodeInvalidSpan, "item %d: column span must be >= 1, got %d", index, req.ColumnSpan)
	}
	span := Span{Rows: req.RowSpan, Columns: req.ColumnSpan}

	if req.Row != nil && (*req.Row < 0 || *req.Row >= r.rows) {
		r.skip(index, *req.Row, derefOr(req.Column, -1), span, req.Payload, SkipRowOutOfRange)
		return false, nil
	}
	if req.Column != nil && (*req.Column < 0 || *req.Column >= r.columns) {
		r.skip(index, derefOr(req.Row, -1), *req.Column, span, req.Payload, SkipColumnOutOfRange)
		return false, nil
	}

	pos := r.resolve(req, span)
	b := r.anchor.Resolve(pos.Row, pos.Column, span)
	if !b.Within(r.rows, r.columns) {
		r.skip(index, pos.Row, pos.Column, span, req.Payload, SkipOutOfBounds)
		return false, nil
	}

	r.items = append(r.items, PlacedItem{Bounds: b, Index: index, Payload: req.Payload})
	return true, nil
}

func (r *Registry) resolve(req Request, span Span) Position {
	last := r.lastBounds()
	switch {
	case req.Row != nil && req.Column != nil:
		return Position{Row: *req.Row, Column: *req.Column}
	case req.Row != nil:
		return r.flow.NextInRow(last, *req.Row)
	case req.Column != nil:
		return r.flow.NextInColumn(last, *req.Column)
	default:
		return r.flow.Next(last, span)
	}
}

func (r *Registry) lastBounds() *Bounds {
	if len(r.items) == 0 {
		return nil
	}
	b := r.items[len(r.items)-1].Bounds
	return &b
}

func (r *Registry) skip(index, row, column int, span Span, payload any, reason SkipReason) {
	if r.sink == nil {
		return
	}
	r.sink(SkipEvent{
		Index:      index,
		Row:        row,
		Column:     column,
		RowSpan:    span.Rows,
		ColumnSpan: span.Columns,
		Rows:       r.rows,
		Columns:    r.columns,
		Reason:     reason,
		Payload:    payload,
	})
}

// Len returns the number of placed items.
func (r *Registry) Len() int { return len(r.items) }

// Items returns the placed items in declaration order.
func (r *Registry) Items() []PlacedItem {
	out := make([]PlacedItem, len(r.items))
	copy(out, r.items)
	return out
}

// Last returns the most recently placed item.
func (r *Registry) Last() (PlacedItem, bool) {
	if len(r.items) == 0 {
		return PlacedItem{}, false
	}
	return r.items[len(r.items)-1], true
}

func derefOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

// PlaceAll places every request in order and stops at the first
// declaration error.
func (r *Registry) PlaceAll(reqs []Request) error {
	for _, req := range reqs {
		if _, err := r.Place(req); err != nil {
			return err
		}
	}
	return nil
}
