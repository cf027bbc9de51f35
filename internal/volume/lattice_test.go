package volume

import (
	"errors"
	"testing"
)

func TestLatticeRoundTrip(t *testing.T) {
	for _, edge := range []int{1, 2, 7, 32} {
		l := NewLattice(edge)
		if l.Cubed() != edge*edge*edge {
			t.Fatalf("edge %d: cubed got %d", edge, l.Cubed())
		}
		for off := 0; off < l.Cubed(); off++ {
			p := l.Position(off)
			if !l.Contains(p) {
				t.Fatalf("edge %d: position %v of offset %d out of range", edge, p, off)
			}
			if got := l.OffsetOf(p); got != off {
				t.Fatalf("edge %d: offset %d -> %v -> %d", edge, off, p, got)
			}
		}
	}
}

func TestLatticeRowMajor(t *testing.T) {
	l := NewLattice(8)
	if l.Offset(1, 0, 0) != 1 || l.Offset(0, 1, 0) != 8 || l.Offset(0, 0, 1) != 64 {
		t.Fatalf("expected x fastest, then y, then z")
	}
	if got := l.Position(8*8*3 + 8*2 + 5); got != (Coord{5, 2, 3}) {
		t.Fatalf("position: got %v", got)
	}
}

func TestLatticeRejectsNonPositiveEdge(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrPrecondition) {
			t.Fatalf("expected precondition panic, got %v", r)
		}
	}()
	NewLattice(0)
}
