// Package pkg provides the libraries behind gridpad, a constraint-based grid
// layout engine.
//
// # Overview
//
// A grid is declared as rows and columns of tracks. Each track is either a
// fixed number of pixels or a weight that shares the space the fixed tracks
// leave over. Items ask for a cell and a span; the ones that leave a
// coordinate open are placed by auto-flow. The libraries are organized into
// four areas:
//
//  1. [core] - Layout algorithms (track sizing, geometry, placement)
//  2. [document] - Declarations and computed layouts on disk and on the wire
//  3. [render] - Artifacts drawn from a layout (JSON, SVG, text, DOT, PNG)
//  4. [pipeline] - Orchestration (load → layout → render) with caching
//
// # Architecture
//
// The typical data flow through gridpad:
//
//	TOML / JSON declaration
//	         ↓
//	    [document] package (decode + compile into a grid spec)
//	         ↓
//	    [core/layout] package (size tracks, resolve positions, measure items)
//	         ↓
//	    [render] package (artifacts)
//	         ↓
//	    JSON/SVG/text/DOT/PNG output
//
// # Quick Start
//
// Lay out a declaration and render it to SVG:
//
//	import (
//	    "github.com/matzehuels/gridpad/pkg/document"
//	    "github.com/matzehuels/gridpad/pkg/core/layout"
//	    "github.com/matzehuels/gridpad/pkg/render"
//	)
//
//	// 1. Read and compile the declaration
//	doc, _ := document.ReadFile("dashboard.toml")
//	compiled, _ := doc.Compile()
//
//	// 2. Compute the layout for an 800x600 container
//	res, _ := layout.Compute(compiled.Spec, compiled.Policy, compiled.Requests, 800, 600)
//
//	// 3. Render to SVG
//	svg := render.SVG(document.FromResult(res), render.WithLabels())
//
// # Main Packages
//
// [core/grid] - Cell sizes, track models, the track sizer, geometry, span
// anchoring, placement policy, auto-flow and the item registry.
//
// [core/layout] - The layout pass that ties the grid primitives together and
// measures every placed item against its cell rectangle.
//
// [document] - Declaration files and the serialized layout format.
//
// [render] - Renderers for computed layouts. PNG goes through Graphviz.
//
// [pipeline] - The load → layout → render pipeline shared by the CLI and the
// HTTP server. [pipeline.Runner] adds caching.
//
// [cache] - Cache backends for layouts and artifacts: file (CLI), Redis and
// MongoDB (shared deployments) and a null cache.
//
// [observability] - Hooks for layout, render, cache and HTTP events.
//
// [errors] - Structured error codes. Configuration errors abort a layout
// pass; items outside the grid are skipped, not failed.
//
// # Testing
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/core/grid/... # Specific package
//	go test -run Example        # Examples only
//
// [core]: https://pkg.go.dev/github.com/matzehuels/gridpad/pkg/core
// [core/grid]: https://pkg.go.dev/github.com/matzehuels/gridpad/pkg/core/grid
// [core/layout]: https://pkg.go.dev/github.com/matzehuels/gridpad/pkg/core/layout
// [document]: https://pkg.go.dev/github.com/matzehuels/gridpad/pkg/document
// [render]: https://pkg.go.dev/github.com/matzehuels/gridpad/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/gridpad/pkg/pipeline
// [pipeline.Runner]: https://pkg.go.dev/github.com/matzehuels/gridpad/pkg/pipeline#Runner
// [cache]: https://pkg.go.dev/github.com/matzehuels/gridpad/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/gridpad/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/gridpad/pkg/errors
package pkg
