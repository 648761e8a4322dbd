package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/gridpad/pkg/core/grid"
	"github.com/matzehuels/gridpad/pkg/core/layout"
	errs "github.com/matzehuels/gridpad/pkg/errors"
)

// Format identifies the encoding of a declaration document.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Declaration limits. A grid allocates one cell per row and column pair,
// so both axes are capped.
const (
	MaxTracks = 256
	MaxItems  = 4096
)

// FormatFromPath picks the declaration format from a file extension.
// Anything that is not .json is read as TOML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatTOML
}

// =============================================================================
// Declaration Types
// =============================================================================

// Document is a grid declaration.
type Document struct {
	Name   string      `json:"name,omitempty" toml:"name,omitempty" bson:"name,omitempty"`
	Grid   Grid        `json:"grid" toml:"grid" bson:"grid"`
	Policy grid.Policy `json:"policy" toml:"policy" bson:"policy"`
	Items  []Item      `json:"items" toml:"items" bson:"items"`
}

// Grid lists the track sizes in [grid.ParseCellSize] notation.
type Grid struct {
	Rows    []string `json:"rows" toml:"rows" bson:"rows"`
	Columns []string `json:"columns" toml:"columns" bson:"columns"`
}

// Item declares one placement request. Row and Column are optional; an
// omitted span defaults to 1. Width and Height, when set, are the item's
// intrinsic size and are clamped to the span it lands in.
type Item struct {
	ID         string `json:"id,omitempty" toml:"id,omitempty" bson:"id,omitempty"`
	Row        *int   `json:"row,omitempty" toml:"row,omitempty" bson:"row,omitempty"`
	Column     *int   `json:"column,omitempty" toml:"column,omitempty" bson:"column,omitempty"`
	RowSpan    int    `json:"row_span,omitempty" toml:"row_span,omitzero" bson:"row_span,omitempty"`
	ColumnSpan int    `json:"column_span,omitempty" toml:"column_span,omitzero" bson:"column_span,omitempty"`
	Width      int    `json:"width,omitempty" toml:"width,omitzero" bson:"width,omitempty"`
	Height     int    `json:"height,omitempty" toml:"height,omitzero" bson:"height,omitempty"`
}

// Element is the payload attached to every compiled request.
type Element struct {
	ID     string
	Width  int
	Height int
}

// Measure reports the declared intrinsic size, falling back to the largest
// size the constraints allow on axes without one.
func (e Element) Measure(c layout.Constraints) layout.Size {
	s := layout.Size{Width: e.Width, Height: e.Height}
	if s.Width <= 0 {
		s.Width = c.MaxWidth
	}
	if s.Height <= 0 {
		s.Height = c.MaxHeight
	}
	return s
}

// Compiled is a declaration ready for [layout.Compute].
type Compiled struct {
	Spec     grid.Spec
	Policy   grid.Policy
	Requests []grid.Request
}

// =============================================================================
// Compilation
// =============================================================================

// Compile parses the track sizes and builds one request per item.
// Items without an id are named item-<n> after their declaration index.
func (d Document) Compile() (Compiled, error) {
	if len(d.Items) > MaxItems {
		return Compiled{}, errs.New(errs.ErrCodeInvalidDeclaration, "grid declares %d items, limit is %d", len(d.Items), MaxItems)
	}
	rows, err := parseTrack("row", d.Grid.Rows)
	if err != nil {
		return Compiled{}, err
	}
	columns, err := parseTrack("column", d.Grid.Columns)
	if err != nil {
		return Compiled{}, err
	}
	spec, err := grid.NewSpec(rows, columns)
	if err != nil {
		return Compiled{}, err
	}

	seen := make(map[string]bool, len(d.Items))
	reqs := make([]grid.Request, len(d.Items))
	for i, it := range d.Items {
		id := it.ID
		if id == "" {
			id = fmt.Sprintf("item-%d", i)
		}
		if seen[id] {
			return Compiled{}, errs.New(errs.ErrCodeInvalidDeclaration, "duplicate item id %q", id)
		}
		seen[id] = true

		reqs[i] = grid.Request{
			Row:        it.Row,
			Column:     it.Column,
			RowSpan:    spanOrOne(it.RowSpan),
			ColumnSpan: spanOrOne(it.ColumnSpan),
			Payload:    Element{ID: id, Width: it.Width, Height: it.Height},
		}
	}

	return Compiled{Spec: spec, Policy: d.Policy, Requests: reqs}, nil
}

func parseTrack(axis string, values []string) (grid.Model, error) {
	if len(values) == 0 {
		return grid.Model{}, errs.New(errs.ErrCodeInvalidDeclaration, "grid declares no %ss", axis)
	}
	if len(values) > MaxTracks {
		return grid.Model{}, errs.New(errs.ErrCodeInvalidDeclaration, "grid declares %d %ss, limit is %d", len(values), axis, MaxTracks)
	}
	sizes := make([]grid.CellSize, len(values))
	for i, v := range values {
		s, err := grid.ParseCellSize(v)
		if err != nil {
			return grid.Model{}, fmt.Errorf("%s %d: %w", axis, i, err)
		}
		sizes[i] = s
	}
	return grid.NewModel(sizes...)
}

// spanOrOne maps an omitted (zero) span to 1. Negative spans pass through
// so the registry reports them.
func spanOrOne(n int) int {
	if n == 0 {
		return 1
	}
	return n
}

// =============================================================================
// Reading
// =============================================================================

// ReadFile reads a declaration, choosing the format from the extension.
func ReadFile(path string) (Document, error) {
	if err := errs.ValidatePath(path); err != nil {
		return Document{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, errs.Wrap(errs.ErrCodeFileNotFound, err, "declaration %s not found", path)
		}
		return Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Decode(f, FormatFromPath(path))
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes an in-memory declaration.
func Parse(data []byte, format Format) (Document, error) {
	return Decode(bytes.NewReader(data), format)
}

// Decode reads a declaration from r. Unknown TOML keys are rejected so a
// misspelled field does not silently fall back to its default.
func Decode(r io.Reader, format Format) (Document, error) {
	var doc Document
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return Document{}, errs.Wrap(errs.ErrCodeInvalidDeclaration, err, "decode json declaration")
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return Document{}, errs.Wrap(errs.ErrCodeInvalidDeclaration, err, "decode toml declaration")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			slices.Sort(keys)
			return Document{}, errs.New(errs.ErrCodeInvalidDeclaration, "unknown keys: %s", strings.Join(keys, ", "))
		}
	default:
		return Document{}, errs.New(errs.ErrCodeInvalidFormat, "unsupported declaration format %q", format)
	}
	return doc, nil
}

// Marshal encodes a declaration as indented JSON. The pipeline hashes this
// form for cache keys, so it must stay deterministic.
func Marshal(d Document) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// EncodeTOML writes a declaration as TOML.
func EncodeTOML(d Document, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(d); err != nil {
		return fmt.Errorf("encode toml: %w", err)
	}
	return nil
}
