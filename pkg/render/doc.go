// Package render turns a computed [document.Layout] into output artifacts.
//
// # Formats
//
//   - json: the serialized layout ([JSON])
//   - svg: tracks, cell outlines and item frames ([SVG])
//   - text: a terminal table listing the items covering each cell ([Text])
//   - dot: Graphviz source with every item pinned at its frame ([DOT])
//   - png: the DOT source rasterized by Graphviz ([PNG])
//
// [Artifact] dispatches on a format name and [ContentType] maps it to a
// MIME type for HTTP responses.
//
//	svg := render.SVG(l, render.WithLabels())
//	png, err := render.PNG(ctx, l)
//
// [document.Layout]: github.com/matzehuels/gridpad/pkg/document.Layout
package render
