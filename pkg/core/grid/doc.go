// Package grid implements the placement core of the gridpad layout engine.
//
// # Overview
//
// A grid is declared as two axes of tracks. Each track is either a [Fixed]
// pixel size or a relative [Weight]. Items claim a rectangular block of
// cells, either at explicit coordinates or through auto-flow, and the
// registry keeps every item whose block fits inside the grid.
//
// The package is split along the stages of a layout pass:
//
//   - [CellSize], [Model], [Spec] and [Builder] describe the grid.
//   - [SizeTracks] turns an axis into integer pixel sizes that add up exactly.
//   - [BuildCellRects] and [SpanRect] turn track sizes into cell rectangles.
//   - [Policy] and [Anchor] describe flow direction and span anchoring.
//   - [NextPosition] computes the next auto-flow coordinate.
//   - [Registry] validates and records placements.
//
// # Track Sizing
//
// Fixed tracks receive round(pixels). The pixels left over are split among
// weighted tracks in proportion to weight / totalWeight. Rounding error is
// carried from one weighted track into the next so that, whenever at least
// one weighted track exists and the fixed tracks fit, the track sizes sum to
// the available size exactly:
//
//	m, _ := grid.NewModel(grid.MustWeight(1), grid.MustWeight(1), grid.MustWeight(1))
//	grid.SizeTracks(100, m) // [33 34 33]
//
// When the fixed tracks alone exceed the available size, weighted tracks
// are clamped to zero rather than going negative.
//
// # Anchoring
//
// A caller-supplied coordinate refers to the start (left/top) edge of the
// item's block when flow runs forward, and to the end (right/bottom) edge
// when it runs in reverse. The span then extends away from the flow.
//
// # Skips
//
// Items that do not fit are not errors. The registry drops them and reports
// a [SkipEvent] to its [SkipSink]. Only declarations that can never be laid
// out (non-positive sizes or spans) produce errors.
package grid
