package surface

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"voxelsurface.ai/internal/mesh"
	"voxelsurface.ai/internal/volume"
)

// ErrDegenerateEdge is raised, wrapped in a panic, when a vertex edge joins two
// equal densities. Case codes make this unreachable for consistent input.
var ErrDegenerateEdge = fmt.Errorf("%w: degenerate edge", volume.ErrPrecondition)

// CellResult describes what one cell contributed to a mesh.
type CellResult struct {
	Code      uint8
	Class     uint8
	Vertices  int
	Triangles int
}

// PolygonizeCell appends the triangles of the unit cell whose minimal corner is
// origin to m. Corners and normals are read through f, so they may come from
// neighboring chunks or from the store's outside value.
func PolygonizeCell(f volume.Field, origin volume.Coord, m *mesh.Mesh) CellResult {
	var cell [8]volume.Sample
	for i, off := range cornerOffsets {
		p := origin.Add(off)
		cell[i] = f.SampleAt(p.X, p.Y, p.Z)
	}

	code := CaseCode(cell)
	res := CellResult{Code: code, Class: regularCellClass[code]}
	if Uniform(code, cell[7]) {
		return res
	}

	var normals [8]mgl32.Vec3
	for i, off := range cornerOffsets {
		normals[i] = cornerNormal(f, origin.Add(off))
	}

	data := regularCellData[res.Class]
	vertexCount := data.vertexCount()
	triangleCount := data.triangleCount()

	var added [12]uint32
	for i := 0; i < vertexCount; i++ {
		v0, v1 := EdgeCorners(code, i)
		t := edgeParameter(cell[v0], cell[v1])

		p0 := cornerPosition(origin, v0)
		p1 := cornerPosition(origin, v1)
		m.Vertices = append(m.Vertices, mesh.Vertex{
			Position: p0.Mul(t).Add(p1.Mul(1 - t)),
			Normal:   normals[v0].Mul(t).Add(normals[v1].Mul(1 - t)),
		})
		added[i] = uint32(len(m.Vertices) - 1)
	}

	// The table winds triangles for a right-handed y-up corner order; with y and
	// z swapped they face backwards, so the index list is emitted reversed.
	n := triangleCount * 3
	for i := 0; i < n; i++ {
		m.Indices = append(m.Indices, added[data.vertexIndex[n-1-i]])
	}

	res.Vertices = vertexCount
	res.Triangles = triangleCount
	return res
}

// edgeParameter weights the first corner of an edge: the vertex sits at
// p0*t + p1*(1-t).
func edgeParameter(d0, d1 volume.Sample) float32 {
	if d0 == d1 {
		panic(fmt.Errorf("%w: both corners are %d", ErrDegenerateEdge, d0))
	}
	return float32(d1) / float32(int(d1)-int(d0))
}

func cornerPosition(origin volume.Coord, corner int) mgl32.Vec3 {
	p := origin.Add(cornerOffsets[corner])
	return mgl32.Vec3{float32(p.X), float32(p.Y), float32(p.Z)}
}

// cornerNormal is the unit central difference of the field at p. A flat
// neighborhood yields the zero vector.
func cornerNormal(f volume.Field, p volume.Coord) mgl32.Vec3 {
	diff := func(a, b volume.Sample) float32 { return float32(int(a)-int(b)) * 0.5 }
	n := mgl32.Vec3{
		diff(f.SampleAt(p.X+1, p.Y, p.Z), f.SampleAt(p.X-1, p.Y, p.Z)),
		diff(f.SampleAt(p.X, p.Y+1, p.Z), f.SampleAt(p.X, p.Y-1, p.Z)),
		diff(f.SampleAt(p.X, p.Y, p.Z+1), f.SampleAt(p.X, p.Y, p.Z-1)),
	}
	l := n.Len()
	if l == 0 {
		return mgl32.Vec3{}
	}
	return n.Mul(1 / l)
}

// IsDegenerateEdge reports whether a recovered panic value came from a
// degenerate edge.
func IsDegenerateEdge(r any) bool {
	err, ok := r.(error)
	return ok && errors.Is(err, ErrDegenerateEdge)
}
