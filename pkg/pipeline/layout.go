package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridpad/pkg/core/grid"
	"github.com/matzehuels/gridpad/pkg/core/layout"
	"github.com/matzehuels/gridpad/pkg/document"
	"github.com/matzehuels/gridpad/pkg/observability"
)

// =============================================================================
// Layout Computation
// =============================================================================

// ComputeLayout compiles doc and runs one uncached layout pass. Skipped
// items are logged at warn level and reported to the pipeline hooks; they
// never fail the pass.
func ComputeLayout(ctx context.Context, doc document.Document, opts Options) (document.Layout, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return document.Layout{}, err
	}

	compiled, err := doc.Compile()
	if err != nil {
		return document.Layout{}, err
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, compiled.Spec.RowCount(), compiled.Spec.ColumnCount(), len(compiled.Requests))
	start := time.Now()

	layoutOpts := append(opts.LayoutOptions(), layout.WithSkipSink(skipSink(ctx, opts.Logger)))
	res, err := layout.Compute(compiled.Spec, compiled.Policy, compiled.Requests, opts.Width, opts.Height, layoutOpts...)
	hooks.OnLayoutComplete(ctx, len(res.Items), len(res.Skipped), time.Since(start), err)
	if err != nil {
		return document.Layout{}, err
	}
	return document.FromResult(res), nil
}

// skipSink logs each dropped request with its coordinates and the grid
// extent it was checked against.
func skipSink(ctx context.Context, logger *log.Logger) grid.SkipSink {
	return func(e grid.SkipEvent) {
		logger.Warn("skipping item",
			"item", itemName(e),
			"row", e.Row,
			"column", e.Column,
			"row_span", e.RowSpan,
			"column_span", e.ColumnSpan,
			"rows", e.Rows,
			"columns", e.Columns,
			"reason", e.Reason)
		observability.Pipeline().OnItemSkipped(ctx, e.Index, string(e.Reason))
	}
}

func itemName(e grid.SkipEvent) string {
	if el, ok := e.Payload.(document.Element); ok {
		return el.ID
	}
	return fmt.Sprintf("#%d", e.Index)
}
