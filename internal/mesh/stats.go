package mesh

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Bounds returns the axis-aligned box of all vertex positions. ok is false for a
// mesh without vertices.
func (m *Mesh) Bounds() (lo, hi mgl32.Vec3, ok bool) {
	if len(m.Vertices) == 0 {
		return lo, hi, false
	}
	lo = m.Vertices[0].Position
	hi = lo
	for _, v := range m.Vertices[1:] {
		for k := 0; k < 3; k++ {
			lo[k] = math32.Min(lo[k], v.Position[k])
			hi[k] = math32.Max(hi[k], v.Position[k])
		}
	}
	return lo, hi, true
}

// Validate reports the first index that does not reference a vertex, a partial
// triangle, or a non-finite position.
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			return fmt.Errorf("index %d references vertex %d of %d", i, idx, len(m.Vertices))
		}
	}
	for i, v := range m.Vertices {
		for k := 0; k < 3; k++ {
			if math32.IsNaN(v.Position[k]) || math32.IsInf(v.Position[k], 0) {
				return fmt.Errorf("vertex %d has non-finite position %v", i, v.Position)
			}
		}
	}
	return nil
}

type edgeKey struct{ a, b mgl32.Vec3 }

// OpenEdges counts directed triangle edges, keyed by vertex position, that have
// no opposite partner. A closed, consistently wound surface has none even though
// the extractor never shares vertices between cells.
func (m *Mesh) OpenEdges() int {
	count := make(map[edgeKey]int, len(m.Indices))
	for t := 0; t+2 < len(m.Indices); t += 3 {
		p := [3]mgl32.Vec3{
			m.Vertices[m.Indices[t]].Position,
			m.Vertices[m.Indices[t+1]].Position,
			m.Vertices[m.Indices[t+2]].Position,
		}
		for k := 0; k < 3; k++ {
			count[edgeKey{p[k], p[(k+1)%3]}]++
		}
	}
	open := 0
	for k, n := range count {
		if back := count[edgeKey{k.b, k.a}]; n > back {
			open += n - back
		}
	}
	return open
}

// FaceNormal is the right-handed normal of triangle t, not normalized.
func (m *Mesh) FaceNormal(t int) mgl32.Vec3 {
	a := m.Vertices[m.Indices[3*t]].Position
	b := m.Vertices[m.Indices[3*t+1]].Position
	c := m.Vertices[m.Indices[3*t+2]].Position
	return b.Sub(a).Cross(c.Sub(a))
}
