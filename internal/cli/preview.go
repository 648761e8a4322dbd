package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridpad/pkg/document"
	"github.com/matzehuels/gridpad/pkg/pipeline"
	"github.com/matzehuels/gridpad/pkg/render"
)

const (
	defaultPreviewStep = 20
	minPreviewSize     = 1
)

var (
	previewHelpStyle  = lipgloss.NewStyle().Foreground(colorDim)
	previewErrorStyle = lipgloss.NewStyle().Foreground(colorRed)
)

// previewCommand creates the preview command, an interactive view that
// recomputes the layout while the container is resized.
func (c *CLI) previewCommand() *cobra.Command {
	var step int
	opts := pipeline.Options{}
	opts.SetLayoutDefaults()

	cmd := &cobra.Command{
		Use:   "preview [grid.toml]",
		Short: "Resize the container interactively and watch the layout change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			opts.Path = args[0]
			doc, err := pipeline.Load(ctx, opts)
			if err != nil {
				return fmt.Errorf("load declaration %s: %w", args[0], err)
			}

			m := newPreviewModel(ctx, doc, opts, step)
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			return err
		},
	}

	addLayoutFlags(cmd, &opts)
	cmd.Flags().IntVar(&step, "step", defaultPreviewStep, "pixels added or removed per key press")

	return cmd
}

// =============================================================================
// previewModel - Interactive layout preview
// =============================================================================

// previewModel holds one declaration and the container it is laid out in.
// Every resize runs an uncached layout pass.
type previewModel struct {
	ctx    context.Context
	doc    document.Document
	opts   pipeline.Options
	step   int
	layout document.Layout
	err    error
}

func newPreviewModel(ctx context.Context, doc document.Document, opts pipeline.Options, step int) previewModel {
	if step < 1 {
		step = defaultPreviewStep
	}
	m := previewModel{ctx: ctx, doc: doc, opts: opts, step: step}
	m.recompute()
	return m
}

func (m *previewModel) recompute() {
	m.layout, m.err = pipeline.ComputeLayout(m.ctx, m.doc, m.opts)
}

// resize changes the container by dw, dh and never shrinks an axis below
// one pixel, since zero would select the default size.
func (m *previewModel) resize(dw, dh int) {
	m.opts.Width = max(minPreviewSize, m.opts.Width+dw)
	m.opts.Height = max(minPreviewSize, m.opts.Height+dh)
	m.recompute()
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		m.resize(-m.step, 0)
	case "right", "l":
		m.resize(m.step, 0)
	case "up", "k":
		m.resize(0, -m.step)
	case "down", "j":
		m.resize(0, m.step)
	case "t":
		m.opts.Tight = !m.opts.Tight
		m.recompute()
	}
	return m, nil
}

func (m previewModel) View() string {
	var b strings.Builder

	title := m.doc.Name
	if title == "" {
		title = "Preview"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("  ")
	b.WriteString(StyleNumber.Render(fmt.Sprintf("%dx%d px", m.opts.Width, m.opts.Height)))
	if m.opts.Tight {
		b.WriteString(StyleDim.Render("  tight"))
	}
	b.WriteString("\n")
	b.WriteString(previewHelpStyle.Render("←/→ width  ↑/↓ height  t tight  q quit"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(previewErrorStyle.Render(iconError + " " + m.err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(render.Text(m.layout))
	b.WriteString("\n")
	return b.String()
}
