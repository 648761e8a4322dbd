package render

import (
	"context"
	"slices"

	"github.com/matzehuels/gridpad/pkg/document"
	errs "github.com/matzehuels/gridpad/pkg/errors"
)

// Format names.
const (
	FormatJSON = "json"
	FormatSVG  = "svg"
	FormatText = "text"
	FormatDOT  = "dot"
	FormatPNG  = "png"
)

var contentTypes = map[string]string{
	FormatJSON: "application/json",
	FormatSVG:  "image/svg+xml",
	FormatText: "text/plain; charset=utf-8",
	FormatDOT:  "text/vnd.graphviz",
	FormatPNG:  "image/png",
}

// Formats lists every supported format in a stable order.
func Formats() []string {
	return []string{FormatJSON, FormatSVG, FormatText, FormatDOT, FormatPNG}
}

// IsFormat reports whether name is a supported format.
func IsFormat(name string) bool {
	return slices.Contains(Formats(), name)
}

// ContentType returns the MIME type for format, or
// application/octet-stream for unknown formats.
func ContentType(format string) string {
	if ct, ok := contentTypes[format]; ok {
		return ct
	}
	return "application/octet-stream"
}

// Extension returns the file extension for format, without the dot.
func Extension(format string) string {
	if format == FormatText {
		return "txt"
	}
	return format
}

// Artifact renders l in the given format.
func Artifact(ctx context.Context, l document.Layout, format string, opts ...Option) ([]byte, error) {
	switch format {
	case FormatJSON:
		return JSON(l)
	case FormatSVG:
		return SVG(l, opts...), nil
	case FormatText:
		return []byte(Text(l, opts...)), nil
	case FormatDOT:
		return []byte(DOT(l, opts...)), nil
	case FormatPNG:
		return PNG(ctx, l, opts...)
	default:
		return nil, errs.New(errs.ErrCodeInvalidFormat, "unsupported format %q (must be one of: json, svg, text, dot, png)", format)
	}
}

// JSON returns the indented serialized layout.
func JSON(l document.Layout) ([]byte, error) {
	return document.MarshalLayout(l)
}

// Option configures the visual renderers.
type Option func(*renderer)

type renderer struct {
	labels  bool
	cells   bool
	palette []string
	color   bool
}

// WithLabels draws item ids inside their frames.
func WithLabels() Option { return func(r *renderer) { r.labels = true } }

// WithoutCells hides the cell grid and draws only item frames.
func WithoutCells() Option { return func(r *renderer) { r.cells = false } }

// WithPalette overrides the fill colors cycled through by item index.
func WithPalette(colors ...string) Option {
	return func(r *renderer) {
		if len(colors) > 0 {
			r.palette = colors
		}
	}
}

// WithColor enables ANSI styling in the text table.
func WithColor() Option { return func(r *renderer) { r.color = true } }

var defaultPalette = []string{"#8ecae6", "#ffb703", "#90be6d", "#f28482", "#cdb4db", "#f4a261"}

func newRenderer(opts ...Option) renderer {
	r := renderer{cells: true, palette: defaultPalette}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r renderer) fill(index int) string {
	return r.palette[index%len(r.palette)]
}
