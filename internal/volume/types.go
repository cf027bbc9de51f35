package volume

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPrecondition marks contract violations. They are raised with panic, never
// returned, so callers can tell them apart from ordinary errors after recover.
var ErrPrecondition = errors.New("volume: precondition violated")

func precondition(format string, args ...any) {
	panic(fmt.Errorf("%w: "+format, append([]any{ErrPrecondition}, args...)...))
}

// Sample is one signed density value. The sign bit decides which side of the
// surface the lattice point is on; extracted faces point from negative samples
// toward non-negative ones.
type Sample int8

const (
	// Outside is the value of boundary samples and of every lookup that falls
	// outside the stored volume.
	Outside Sample = 0
	// Inside is the byte 0xFF, the value the reference initializer writes into
	// chunk interiors.
	Inside Sample = -1
)

func (s Sample) Negative() bool { return s < 0 }

// SignBit is 1 when the high bit of the sample is set.
func (s Sample) SignBit() uint8 { return uint8(s) >> 7 }

type Coord struct {
	X, Y, Z int
}

func (c Coord) Add(o Coord) Coord { return Coord{c.X + o.X, c.Y + o.Y, c.Z + o.Z} }
func (c Coord) Sub(o Coord) Coord { return Coord{c.X - o.X, c.Y - o.Y, c.Z - o.Z} }
func (c Coord) Scale(k int) Coord { return Coord{c.X * k, c.Y * k, c.Z * k} }

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Division selects how a global lattice coordinate is split into a chunk
// coordinate and a local offset.
type Division int

const (
	// FloorDivision rounds toward negative infinity and checks each chunk
	// component against the grid, so every coordinate outside the stored
	// region resolves to Outside.
	FloorDivision Division = iota
	// TruncDivision reproduces the legacy lookup: Go's truncating division,
	// a range check on the linear chunk index, then a range check on the linear
	// local offset. Negative coordinates can alias into real samples of chunk (0,0,0).
	TruncDivision
)

func (d Division) String() string {
	switch d {
	case FloorDivision:
		return "floor"
	case TruncDivision:
		return "truncate"
	default:
		return fmt.Sprintf("division(%d)", int(d))
	}
}

func ParseDivision(s string) (Division, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "floor":
		return FloorDivision, nil
	case "trunc", "truncate":
		return TruncDivision, nil
	default:
		return 0, fmt.Errorf("unknown chunk division %q", s)
	}
}

// Field is a point density lookup. Implementations must be total: every
// coordinate yields a sample.
type Field interface {
	SampleAt(x, y, z int) Sample
}

// FieldFunc adapts a function to Field.
type FieldFunc func(x, y, z int) Sample

func (f FieldFunc) SampleAt(x, y, z int) Sample { return f(x, y, z) }
