package grid

import (
	"strings"

	errs "github.com/matzehuels/gridpad/pkg/errors"
)

// Axis is the direction auto-flow advances in before wrapping.
type Axis uint8

const (
	// Horizontal fills a row before moving to the next one.
	Horizontal Axis = iota
	// Vertical fills a column before moving to the next one.
	Vertical
)

// HorizontalDirection is the order columns are filled in.
type HorizontalDirection uint8

const (
	// StartToEnd fills columns from the first to the last.
	StartToEnd HorizontalDirection = iota
	// EndToStart fills columns from the last to the first.
	EndToStart
)

// VerticalDirection is the order rows are filled in.
type VerticalDirection uint8

const (
	// TopToBottom fills rows from the first to the last.
	TopToBottom VerticalDirection = iota
	// BottomToTop fills rows from the last to the first.
	BottomToTop
)

// Policy configures auto-flow. The zero value flows horizontally, left to
// right and top to bottom.
type Policy struct {
	MainAxis   Axis                `json:"main_axis" toml:"main_axis" bson:"main_axis"`
	Horizontal HorizontalDirection `json:"horizontal" toml:"horizontal" bson:"horizontal"`
	Vertical   VerticalDirection   `json:"vertical" toml:"vertical" bson:"vertical"`
}

// DefaultPolicy returns the horizontal, start-to-end, top-to-bottom policy.
func DefaultPolicy() Policy { return Policy{} }

// Anchor derives the span anchor: reverse flow anchors on the far edge so
// spans grow away from the direction of travel.
func (p Policy) Anchor() Anchor {
	a := Anchor{}
	if p.Horizontal == EndToStart {
		a.Horizontal = AnchorEnd
	}
	if p.Vertical == BottomToTop {
		a.Vertical = AnchorBottom
	}
	return a
}

// FirstRow returns the row auto-flow starts in.
func (p Policy) FirstRow(rows int) int {
	if p.Vertical == BottomToTop {
		return rows - 1
	}
	return 0
}

// FirstColumn returns the column auto-flow starts in.
func (p Policy) FirstColumn(columns int) int {
	if p.Horizontal == EndToStart {
		return columns - 1
	}
	return 0
}

func (p Policy) rowStep() int {
	if p.Vertical == BottomToTop {
		return -1
	}
	return 1
}

func (p Policy) columnStep() int {
	if p.Horizontal == EndToStart {
		return -1
	}
	return 1
}

func (p Policy) String() string {
	return p.MainAxis.String() + "/" + p.Horizontal.String() + "/" + p.Vertical.String()
}

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

func (d HorizontalDirection) String() string {
	if d == EndToStart {
		return "end-to-start"
	}
	return "start-to-end"
}

func (d VerticalDirection) String() string {
	if d == BottomToTop {
		return "bottom-to-top"
	}
	return "top-to-bottom"
}

// ParseAxis reads "horizontal" or "vertical". Empty means horizontal.
func ParseAxis(s string) (Axis, error) {
	switch normalizeName(s) {
	case "", "horizontal", "row", "rows":
		return Horizontal, nil
	case "vertical", "column", "columns":
		return Vertical, nil
	}
	return 0, errs.New(errs.ErrCodeInvalidPolicy, "unknown main axis %q (want horizontal or vertical)", s)
}

// ParseHorizontalDirection reads "start-to-end" or "end-to-start".
func ParseHorizontalDirection(s string) (HorizontalDirection, error) {
	switch normalizeName(s) {
	case "", "start-to-end", "ltr":
		return StartToEnd, nil
	case "end-to-start", "rtl":
		return EndToStart, nil
	}
	return 0, errs.New(errs.ErrCodeInvalidPolicy, "unknown horizontal direction %q (want start-to-end or end-to-start)", s)
}

// ParseVerticalDirection reads "top-to-bottom" or "bottom-to-top".
func ParseVerticalDirection(s string) (VerticalDirection, error) {
	switch normalizeName(s) {
	case "", "top-to-bottom", "ttb":
		return TopToBottom, nil
	case "bottom-to-top", "btt":
		return BottomToTop, nil
	}
	return 0, errs.New(errs.ErrCodeInvalidPolicy, "unknown vertical direction %q (want top-to-bottom or bottom-to-top)", s)
}

func normalizeName(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
}

// MarshalText implements encoding.TextMarshaler.
func (a Axis) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Axis) UnmarshalText(text []byte) (err error) {
	*a, err = ParseAxis(string(text))
	return err
}

// MarshalText implements encoding.TextMarshaler.
func (d HorizontalDirection) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *HorizontalDirection) UnmarshalText(text []byte) (err error) {
	*d, err = ParseHorizontalDirection(string(text))
	return err
}

// MarshalText implements encoding.TextMarshaler.
func (d VerticalDirection) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *VerticalDirection) UnmarshalText(text []byte) (err error) {
	*d, err = ParseVerticalDirection(string(text))
	return err
}
