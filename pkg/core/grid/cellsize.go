package grid

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	errs "github.com/matzehuels/gridpad/pkg/errors"
)

// Kind tags the variant held by a CellSize.
type Kind uint8

const (
	// KindWeight is a share of the space left after fixed tracks.
	KindWeight Kind = iota
	// KindFixed is an absolute pixel size.
	KindFixed
)

func (k Kind) String() string {
	switch k {
	case KindFixed:
		return "fixed"
	case KindWeight:
		return "weight"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// CellSize is the size of one track: either Fixed pixels or a relative Weight.
// The zero value is invalid; build values with the constructors.
type CellSize struct {
	kind  Kind
	value float64
}

// MaxFixed is the largest pixel count a fixed track may declare. Rounded
// track sizes must stay representable as int on every platform.
const MaxFixed = math.MaxInt32

// NewFixed returns a track of px pixels. px must be finite, > 0 and at most
// MaxFixed.
func NewFixed(px float64) (CellSize, error) {
	if err := errs.ValidatePositive(errs.ErrCodeInvalidCellSize, "fixed size", px); err != nil {
		return CellSize{}, err
	}
	if px > MaxFixed {
		return CellSize{}, errs.New(errs.ErrCodeInvalidCellSize, "fixed size must be <= %d, got %v", MaxFixed, px)
	}
	return CellSize{kind: KindFixed, value: px}, nil
}

// NewWeight returns a track that takes factor shares of the remaining space.
// factor must be finite and > 0.
func NewWeight(factor float64) (CellSize, error) {
	if err := errs.ValidatePositive(errs.ErrCodeInvalidCellSize, "weight", factor); err != nil {
		return CellSize{}, err
	}
	return CellSize{kind: KindWeight, value: factor}, nil
}

// MustFixed is like NewFixed but panics on an invalid size.
func MustFixed(px float64) CellSize {
	s, err := NewFixed(px)
	if err != nil {
		panic(err)
	}
	return s
}

// MustWeight is like NewWeight but panics on an invalid factor.
func MustWeight(factor float64) CellSize {
	s, err := NewWeight(factor)
	if err != nil {
		panic(err)
	}
	return s
}

// FixedN returns n fixed tracks of px pixels each.
func FixedN(n int, px float64) ([]CellSize, error) {
	s, err := NewFixed(px)
	if err != nil {
		return nil, err
	}
	return repeat(n, s)
}

// WeightN returns n weighted tracks sharing factor.
func WeightN(n int, factor float64) ([]CellSize, error) {
	s, err := NewWeight(factor)
	if err != nil {
		return nil, err
	}
	return repeat(n, s)
}

// Fixeds returns one fixed track per pixel count, in order.
func Fixeds(px ...float64) ([]CellSize, error) {
	return each(px, NewFixed)
}

// Weights returns one weighted track per factor, in order.
func Weights(factors ...float64) ([]CellSize, error) {
	return each(factors, NewWeight)
}

func repeat(n int, s CellSize) ([]CellSize, error) {
	if n < 0 {
		return nil, errs.New(errs.ErrCodeInvalidDeclaration, "track count must be >= 0, got %d", n)
	}
	out := make([]CellSize, n)
	for i := range out {
		out[i] = s
	}
	return out, nil
}

func each(values []float64, build func(float64) (CellSize, error)) ([]CellSize, error) {
	out := make([]CellSize, len(values))
	for i, v := range values {
		s, err := build(v)
		if err != nil {
			return nil, fmt.Errorf("track %d: %w", i, err)
		}
		out[i] = s
	}
	return out, nil
}

// unitWeight is the default size for tracks nobody configured.
var unitWeight = CellSize{kind: KindWeight, value: 1}

// Kind reports which variant s holds.
func (s CellSize) Kind() Kind { return s.kind }

// Value returns the pixel count for fixed sizes and the factor for weights.
func (s CellSize) Value() float64 { return s.value }

// IsFixed reports whether s is a fixed pixel size.
func (s CellSize) IsFixed() bool { return s.kind == KindFixed }

// IsWeight reports whether s is a relative weight.
func (s CellSize) IsWeight() bool { return s.kind == KindWeight }

// String formats s the way ParseCellSize reads it ("40px", "2w").
func (s CellSize) String() string {
	v := strconv.FormatFloat(s.value, 'f', -1, 64)
	if s.kind == KindFixed {
		return v + "px"
	}
	return v + "w"
}

// MarshalText implements encoding.TextMarshaler.
func (s CellSize) MarshalText() ([]byte, error) {
	if s.value <= 0 {
		return nil, errs.New(errs.ErrCodeInvalidCellSize, "cannot marshal zero cell size")
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *CellSize) UnmarshalText(text []byte) error {
	parsed, err := ParseCellSize(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseCellSize reads a track size. "40px" is fixed, "2w" or a bare "2" is
// a weight. Surrounding whitespace is ignored.
func ParseCellSize(text string) (CellSize, error) {
	t := strings.ToLower(strings.TrimSpace(text))
	switch {
	case t == "":
		return CellSize{}, errs.New(errs.ErrCodeInvalidCellSize, "empty cell size")
	case strings.HasSuffix(t, "px"):
		v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(t, "px")), 64)
		if err != nil {
			return CellSize{}, errs.Wrap(errs.ErrCodeInvalidCellSize, err, "parse fixed size %q", text)
		}
		return NewFixed(v)
	case strings.HasSuffix(t, "w"):
		t = strings.TrimSuffix(t, "w")
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
	if err != nil {
		return CellSize{}, errs.Wrap(errs.ErrCodeInvalidCellSize, err, "parse weight %q", text)
	}
	return NewWeight(v)
}
