package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/gridpad/pkg/document"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	emptyStyle  = cellStyle.Foreground(lipgloss.Color("8"))
)

// Text renders the grid as a table with one row per track. Each cell lists
// the ids of the items covering it; uncovered cells show a dot. The first
// column and the header carry the track sizes in pixels.
func Text(l document.Layout, opts ...Option) string {
	r := newRenderer(opts...)

	headers := make([]string, 0, l.Columns()+1)
	headers = append(headers, "")
	for _, w := range l.ColumnSizes {
		headers = append(headers, fmt.Sprintf("%dpx", w))
	}

	rows := make([][]string, l.Rows())
	for row, h := range l.RowSizes {
		cells := make([]string, 0, l.Columns()+1)
		cells = append(cells, fmt.Sprintf("%dpx", h))
		for col := range l.ColumnSizes {
			ids := l.Covering(row, col)
			if len(ids) == 0 {
				cells = append(cells, ".")
				continue
			}
			cells = append(cells, strings.Join(ids, ","))
		}
		rows[row] = cells
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if !r.color {
				return cellStyle
			}
			if row == table.HeaderRow || col == 0 {
				return headerStyle
			}
			if row >= 0 && row < len(rows) && rows[row][col] == "." {
				return emptyStyle
			}
			return cellStyle
		})

	var b strings.Builder
	b.WriteString(t.Render())
	b.WriteString("\n")
	fmt.Fprintf(&b, "%dx%d px, %d placed, %d skipped\n", l.Width, l.Height, len(l.Items), len(l.Skipped))
	for _, s := range l.Skipped {
		fmt.Fprintf(&b, "  skipped %s: %s\n", s.ID, s.Reason)
	}
	return b.String()
}
