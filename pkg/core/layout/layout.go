package layout

import (
	"github.com/matzehuels/gridpad/pkg/core/grid"
	errs "github.com/matzehuels/gridpad/pkg/errors"
)

// Item is a placed request after measurement.
type Item struct {
	grid.PlacedItem

	// Span is the rectangle covered by every track the item spans.
	Span grid.CellRect
	// Frame is where the item is drawn: the top-left of its span with the
	// measured size.
	Frame grid.CellRect
}

// Result is the output of one layout pass.
type Result struct {
	RowSizes    []int
	ColumnSizes []int
	Cells       [][]grid.CellRect
	Items       []Item
	Skipped     []grid.SkipEvent
	Width       int
	Height      int
}

// ItemBounds returns the frame of every placed item in declaration order.
func (r Result) ItemBounds() []grid.CellRect {
	out := make([]grid.CellRect, len(r.Items))
	for i, it := range r.Items {
		out[i] = it.Frame
	}
	return out
}

// mirror flips every x coordinate across the layout width.
func (r *Result) mirror() {
	flip := func(c grid.CellRect) grid.CellRect {
		c.X = r.Width - c.X - c.Width
		return c
	}
	for _, row := range r.Cells {
		for i := range row {
			row[i] = flip(row[i])
		}
	}
	for i := range r.Items {
		r.Items[i].Span = flip(r.Items[i].Span)
		r.Items[i].Frame = flip(r.Items[i].Frame)
	}
}

// Option configures Compute.
type Option func(*config)

type config struct {
	sink      grid.SkipSink
	minWidth  int
	minHeight int
	rtl       bool
}

// WithSkipSink forwards skip diagnostics to sink as they happen.
func WithSkipSink(sink grid.SkipSink) Option {
	return func(c *config) { c.sink = sink }
}

// WithMinSize passes the container's own minimum down to every item. Each
// item is measured with min = min(parent minimum, span size) on both axes.
func WithMinSize(width, height int) Option {
	return func(c *config) {
		c.minWidth, c.minHeight = max(width, 0), max(height, 0)
	}
}

// WithTightConstraints measures every item with min = max = its span size.
func WithTightConstraints() Option {
	return WithMinSize(Infinity, Infinity)
}

// WithRightToLeft mirrors the result horizontally: column 0 is drawn at the
// right edge of the layout.
func WithRightToLeft() Option {
	return func(c *config) { c.rtl = true }
}

// Compute lays out reqs on spec inside a width x height container.
func Compute(spec grid.Spec, policy grid.Policy, reqs []grid.Request, width, height int, opts ...Option) (Result, error) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := errs.ValidateDimension("container width", width, Infinity); err != nil {
		return Result{}, err
	}
	if err := errs.ValidateDimension("container height", height, Infinity); err != nil {
		return Result{}, err
	}
	if spec.RowCount() == 0 || spec.ColumnCount() == 0 {
		return Result{}, errs.New(errs.ErrCodeInvalidDeclaration, "grid spec has no tracks")
	}

	res := Result{
		ColumnSizes: grid.SizeTracks(width, spec.Columns),
		RowSizes:    grid.SizeTracks(height, spec.Rows),
		Width:       width,
		Height:      height,
	}
	res.Cells = grid.BuildCellRects(res.RowSizes, res.ColumnSizes)

	// An all-fixed axis shrinks to its tracks but never outgrows the container.
	if spec.Columns.TotalWeight() == 0 {
		res.Width = min(width, grid.Sum(res.ColumnSizes))
	}
	if spec.Rows.TotalWeight() == 0 {
		res.Height = min(height, grid.Sum(res.RowSizes))
	}

	registry := grid.NewRegistry(spec, policy, func(e grid.SkipEvent) {
		res.Skipped = append(res.Skipped, e)
		if cfg.sink != nil {
			cfg.sink(e)
		}
	})
	if err := registry.PlaceAll(reqs); err != nil {
		return Result{}, err
	}

	placed := registry.Items()
	res.Items = make([]Item, len(placed))
	for i, p := range placed {
		span := grid.SpanRect(res.RowSizes, res.ColumnSizes, p.Bounds)
		res.Items[i] = Item{
			PlacedItem: p,
			Span:       span,
			Frame:      measure(p.Payload, span, cfg),
		}
	}
	if cfg.rtl {
		res.mirror()
	}
	return res, nil
}

func measure(payload any, span grid.CellRect, cfg config) grid.CellRect {
	frame := span
	m, ok := payload.(Measurer)
	if !ok {
		return frame
	}
	c := Constraints{
		MinWidth:  min(cfg.minWidth, span.Width),
		MaxWidth:  span.Width,
		MinHeight: min(cfg.minHeight, span.Height),
		MaxHeight: span.Height,
	}
	size := c.Constrain(m.Measure(c))
	frame.Width, frame.Height = size.Width, size.Height
	return frame
}
