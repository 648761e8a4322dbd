package cli

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/gridpad/pkg/document"
	"github.com/matzehuels/gridpad/pkg/pipeline"
)

func sidebarDocument() document.Document {
	return document.Document{
		Name: "sidebar",
		Grid: document.Grid{Rows: []string{"1w"}, Columns: []string{"100px", "1w"}},
		Items: []document.Item{
			{ID: "side"},
			{ID: "main"},
		},
	}
}

func press(m previewModel, key tea.KeyMsg) (previewModel, tea.Cmd) {
	next, cmd := m.Update(key)
	return next.(previewModel), cmd
}

func TestPreviewResize(t *testing.T) {
	m := newPreviewModel(context.Background(), sidebarDocument(), pipeline.Options{Width: 400, Height: 200}, 50)
	if m.err != nil {
		t.Fatalf("initial layout error: %v", m.err)
	}
	if got := m.layout.ColumnSizes[1]; got != 300 {
		t.Fatalf("weighted column = %d, want 300", got)
	}

	tests := []struct {
		name       string
		key        tea.KeyMsg
		wantWidth  int
		wantHeight int
	}{
		{"right widens", tea.KeyMsg{Type: tea.KeyRight}, 450, 200},
		{"l widens", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}}, 500, 200},
		{"left narrows", tea.KeyMsg{Type: tea.KeyLeft}, 450, 200},
		{"down grows", tea.KeyMsg{Type: tea.KeyDown}, 450, 250},
		{"up shrinks", tea.KeyMsg{Type: tea.KeyUp}, 450, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ = press(m, tt.key)
			if m.opts.Width != tt.wantWidth || m.opts.Height != tt.wantHeight {
				t.Fatalf("container = %dx%d, want %dx%d", m.opts.Width, m.opts.Height, tt.wantWidth, tt.wantHeight)
			}
			if m.layout.Width != tt.wantWidth || m.layout.Height != tt.wantHeight {
				t.Errorf("layout = %dx%d, want %dx%d", m.layout.Width, m.layout.Height, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestPreviewShrinkClamps(t *testing.T) {
	m := newPreviewModel(context.Background(), sidebarDocument(), pipeline.Options{Width: 30, Height: 30}, 20)
	for range 5 {
		m, _ = press(m, tea.KeyMsg{Type: tea.KeyLeft})
		m, _ = press(m, tea.KeyMsg{Type: tea.KeyUp})
	}
	if m.opts.Width != minPreviewSize || m.opts.Height != minPreviewSize {
		t.Errorf("container = %dx%d, want %dx%d", m.opts.Width, m.opts.Height, minPreviewSize, minPreviewSize)
	}
	if m.err != nil {
		t.Errorf("layout error at minimum size: %v", m.err)
	}
}

func TestPreviewToggleTight(t *testing.T) {
	m := newPreviewModel(context.Background(), sidebarDocument(), pipeline.Options{Width: 400, Height: 200}, 0)
	if m.step != defaultPreviewStep {
		t.Errorf("step = %d, want default %d", m.step, defaultPreviewStep)
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	if !m.opts.Tight {
		t.Fatal("t did not enable tight constraints")
	}
	if !strings.Contains(m.View(), "tight") {
		t.Error("view does not show tight mode")
	}
}

func TestPreviewQuit(t *testing.T) {
	m := newPreviewModel(context.Background(), sidebarDocument(), pipeline.Options{Width: 400, Height: 200}, 10)

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		if _, cmd := press(m, key); cmd == nil {
			t.Errorf("%s did not quit", key.String())
		}
	}

	if _, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24}); cmd != nil {
		t.Error("window resize should not produce a command")
	}
}

func TestPreviewView(t *testing.T) {
	m := newPreviewModel(context.Background(), sidebarDocument(), pipeline.Options{Width: 400, Height: 200}, 10)
	view := m.View()

	for _, want := range []string{"sidebar", "400x200 px", "100px", "main", "side"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestPreviewError(t *testing.T) {
	doc := sidebarDocument()
	doc.Grid.Columns = []string{"0px"}

	m := newPreviewModel(context.Background(), doc, pipeline.Options{Width: 400, Height: 200}, 10)
	if m.err == nil {
		t.Fatal("expected layout error for zero-size column")
	}
	if !strings.Contains(m.View(), iconError) {
		t.Errorf("view does not show the error:\n%s", m.View())
	}
}
