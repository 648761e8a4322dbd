// Package document reads grid declarations and writes computed layouts.
//
// A declaration is a small TOML or JSON file naming the row and column
// tracks, the placement policy and the items to place:
//
//	[grid]
//	rows    = ["60px", "1w"]
//	columns = ["200px", "1w", "1w"]
//
//	[policy]
//	main_axis  = "horizontal"
//	horizontal = "start-to-end"
//	vertical   = "top-to-bottom"
//
//	[[items]]
//	id          = "header"
//	row         = 0
//	column      = 0
//	column_span = 3
//
//	[[items]]
//	id = "nav"
//
// [Document.Compile] turns a declaration into the [grid.Spec], [grid.Policy]
// and [grid.Request] values consumed by [layout.Compute]. [FromResult]
// converts the output back into the serializable [Layout].
//
// [grid.Spec]: github.com/matzehuels/gridpad/pkg/core/grid.Spec
// [grid.Policy]: github.com/matzehuels/gridpad/pkg/core/grid.Policy
// [grid.Request]: github.com/matzehuels/gridpad/pkg/core/grid.Request
// [layout.Compute]: github.com/matzehuels/gridpad/pkg/core/layout.Compute
package document
