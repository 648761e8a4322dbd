package render

import (
	"bytes"
	"fmt"
	"html"

	"github.com/matzehuels/gridpad/pkg/document"
)

// SVG draws the cell grid and every item frame. Item frames are drawn in
// placement order, so later items paint over earlier overlapping ones.
func SVG(l document.Layout, opts ...Option) []byte {
	r := newRenderer(opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		l.Width, l.Height, l.Width, l.Height)

	if r.cells {
		buf.WriteString(`  <g class="cells" fill="none" stroke="#adb5bd" stroke-dasharray="4 2">` + "\n")
		for _, row := range l.Cells {
			for _, c := range row {
				fmt.Fprintf(&buf, `    <rect x="%d" y="%d" width="%d" height="%d"/>`+"\n", c.X, c.Y, c.Width, c.Height)
			}
		}
		buf.WriteString("  </g>\n")
	}

	buf.WriteString(`  <g class="items" stroke="#343a40">` + "\n")
	for _, it := range l.Items {
		f := it.Frame
		fmt.Fprintf(&buf, `    <rect id="item-%s" x="%d" y="%d" width="%d" height="%d" fill="%s" fill-opacity="0.8"/>`+"\n",
			html.EscapeString(it.ID), f.X, f.Y, f.Width, f.Height, r.fill(it.Index))
	}
	buf.WriteString("  </g>\n")

	if r.labels {
		buf.WriteString(`  <g class="labels" font-family="sans-serif" font-size="12" text-anchor="middle" dominant-baseline="middle">` + "\n")
		for _, it := range l.Items {
			f := it.Frame
			fmt.Fprintf(&buf, `    <text x="%d" y="%d">%s</text>`+"\n",
				f.X+f.Width/2, f.Y+f.Height/2, html.EscapeString(it.ID))
		}
		buf.WriteString("  </g>\n")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
