package surface

import (
	"math/bits"
	"testing"
)

func TestVertexDataMatchesClassCounts(t *testing.T) {
	for c := 0; c < 256; c++ {
		code := uint8(c)
		want := VertexCount(code)
		got := 0
		seen := map[uint16]bool{}
		for i, loc := range regularVertexData[code] {
			if loc == 0 {
				continue
			}
			if i >= want {
				t.Fatalf("case %d: vertex %d beyond class vertex count %d", c, i, want)
			}
			got++
			edge := loc & 0xFF
			if seen[edge] {
				t.Fatalf("case %d: edge %#x listed twice", c, edge)
			}
			seen[edge] = true

			v0, v1 := EdgeCorners(code, i)
			if v0 >= v1 || bits.OnesCount(uint(v0^v1)) != 1 {
				t.Fatalf("case %d: vertex %d on %d-%d is not a cube edge", c, i, v0, v1)
			}
			if (code>>v0)&1 == (code>>v1)&1 {
				t.Fatalf("case %d: vertex %d on edge %d-%d without a sign change", c, i, v0, v1)
			}
		}
		if got != want {
			t.Fatalf("case %d: %d vertices listed, class %d declares %d", c, got, CellClass(code), want)
		}
	}
}

func TestEverySignChangeHasAVertex(t *testing.T) {
	for c := 1; c < 255; c++ {
		code := uint8(c)
		changes := 0
		for a := 0; a < 8; a++ {
			for k := 0; k < 3; k++ {
				b := a | 1<<k
				if b != a && (code>>a)&1 != (code>>b)&1 {
					changes++
				}
			}
		}
		if changes != VertexCount(code) {
			t.Fatalf("case %d: %d sign changes, %d vertices", c, changes, VertexCount(code))
		}
	}
}

func TestClassTriangleIndicesInRange(t *testing.T) {
	for cls, data := range regularCellData {
		n := data.triangleCount() * 3
		for i := 0; i < n; i++ {
			if int(data.vertexIndex[i]) >= data.vertexCount() {
				t.Fatalf("class %d: index %d references vertex %d of %d", cls, i, data.vertexIndex[i], data.vertexCount())
			}
		}
		for i := n; i < len(data.vertexIndex); i++ {
			if data.vertexIndex[i] != 0 {
				t.Fatalf("class %d: trailing index %d is set", cls, i)
			}
		}
	}
	if CellClass(0) != 0 || CellClass(255) != 0 {
		t.Fatalf("uniform cases must map to the empty class")
	}
	for c := 1; c < 255; c++ {
		if CellClass(uint8(c)) == 0 {
			t.Fatalf("case %d maps to the empty class", c)
		}
	}
}

// Complements cut the same edges, but ambiguous faces are resolved toward
// connecting non-negative corners, so complements need not share a class.
func TestComplementSharesVertexCount(t *testing.T) {
	for c := 0; c < 256; c++ {
		if VertexCount(uint8(c)) != VertexCount(^uint8(c)) {
			t.Fatalf("case %d and its complement disagree on vertex count", c)
		}
	}
	if CellClass(6) == CellClass(^uint8(6)) {
		t.Fatalf("case 6 and 249 should resolve their ambiguous face differently")
	}
}
