// Package layout runs a complete gridpad layout pass.
//
// # Overview
//
// [Compute] takes a grid spec, a placement policy, the item requests in
// declaration order and the container size, and returns everything the
// rendering side needs:
//
//   - Track sizes for both axes (see [grid.SizeTracks])
//   - The table of cell rectangles
//   - One [Item] per placed request with its span rectangle, its anchor
//     point and its measured size
//   - The overall layout size
//   - The requests that were skipped because they did not fit
//
// A pass is a pure function of its inputs. Nothing is cached between calls,
// so Compute can run once per frame or once per resize:
//
//	res, err := layout.Compute(spec, grid.DefaultPolicy(), reqs, 800, 600)
//	if err != nil {
//	    return err // declaration error; nothing can be drawn
//	}
//	for _, it := range res.Items {
//	    draw(it.Payload, it.Frame)
//	}
//
// # Measurement
//
// When an item's payload implements [Measurer], it is asked for its size
// under constraints bounded by its span rectangle. Other items fill their
// span. Use [WithTightConstraints] to force every item to its span size.
//
// # Layout Size
//
// An axis with at least one weighted track takes the full container size.
// An axis made only of fixed tracks is as long as those tracks, which can be
// shorter (or longer) than the container.
//
// # Errors
//
// A negative or [Infinity] container dimension, a non-positive span and a
// malformed spec abort the pass with a configuration error (see
// [errors.IsConfiguration]). Items that do not fit are never errors; they
// are listed in [Result.Skipped] and passed to the sink set with
// [WithSkipSink].
//
// [errors.IsConfiguration]: github.com/matzehuels/gridpad/pkg/errors
package layout
