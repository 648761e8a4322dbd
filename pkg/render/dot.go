package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/gridpad/pkg/document"
)

// pointsPerInch converts pixel frames to the inch sizes Graphviz expects.
// One pixel is drawn as one point.
const pointsPerInch = 72.0

// DOT returns Graphviz source for an undirected graph with one box per item,
// pinned at its frame center. Graphviz puts the origin at the bottom-left,
// so y is flipped against the layout height.
func DOT(l document.Layout, opts ...Option) string {
	r := newRenderer(opts...)

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  notranslate=true;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  bb=\"0,0,%d,%d\";\n", l.Width, l.Height)
	buf.WriteString("  node [shape=box, style=filled, fixedsize=true, fontsize=12, fontname=\"sans-serif\"];\n")
	buf.WriteString("\n")

	if r.cells {
		for row, cells := range l.Cells {
			for col, c := range cells {
				fmt.Fprintf(&buf, "  \"cell-%d-%d\" [label=\"\", style=dashed, color=grey, %s];\n",
					row, col, geometry(c.X, c.Y, c.Width, c.Height, l.Height))
			}
		}
		buf.WriteString("\n")
	}

	for _, it := range l.Items {
		f := it.Frame
		label := ""
		if r.labels {
			label = it.ID
		}
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%q, %s];\n",
			it.ID, label, r.fill(it.Index), geometry(f.X, f.Y, f.Width, f.Height, l.Height))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func geometry(x, y, w, h, height int) string {
	cx := float64(x) + float64(w)/2
	cy := float64(height) - (float64(y) + float64(h)/2)
	return fmt.Sprintf("pos=\"%.1f,%.1f!\", width=%.4f, height=%.4f",
		cx, cy, float64(w)/pointsPerInch, float64(h)/pointsPerInch)
}

// PNG rasterizes the DOT rendering of l with Graphviz.
func PNG(ctx context.Context, l document.Layout, opts ...Option) ([]byte, error) {
	return renderDOT(ctx, DOT(l, opts...), graphviz.PNG)
}

// DOTToSVG renders DOT source to SVG with Graphviz's neato engine.
func DOTToSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.SVG)
}

func renderDOT(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
