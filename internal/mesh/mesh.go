package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

// VertexStride is the number of float32 values per vertex in Interleaved.
const VertexStride = 8

type Vertex struct {
	Position mgl32.Vec3
	TexCoord mgl32.Vec2 // unused by the extractor, always zero
	Normal   mgl32.Vec3
}

// Mesh is an indexed triangle list. Its buffers are replaced wholesale on every
// extraction pass; nothing updates them incrementally.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

func New(vertices []Vertex, indices []uint32) *Mesh {
	return &Mesh{Vertices: vertices, Indices: indices}
}

func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

func (m *Mesh) Empty() bool {
	return len(m.Indices) == 0
}

// Reset truncates both buffers, keeping their capacity.
func (m *Mesh) Reset() {
	m.Vertices = m.Vertices[:0]
	m.Indices = m.Indices[:0]
}

func (m *Mesh) Replace(vertices []Vertex, indices []uint32) {
	m.Vertices = vertices
	m.Indices = indices
}

// Clone returns a deep copy that shares no buffers with m.
func (m *Mesh) Clone() *Mesh {
	out := &Mesh{
		Vertices: make([]Vertex, len(m.Vertices)),
		Indices:  make([]uint32, len(m.Indices)),
	}
	copy(out.Vertices, m.Vertices)
	copy(out.Indices, m.Indices)
	return out
}

// Interleaved flattens the vertices as position, texcoord, normal, which is the
// attribute layout renderers upload.
func (m *Mesh) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Vertices)*VertexStride)
	for _, v := range m.Vertices {
		out = append(out,
			v.Position[0], v.Position[1], v.Position[2],
			v.TexCoord[0], v.TexCoord[1],
			v.Normal[0], v.Normal[1], v.Normal[2],
		)
	}
	return out
}

// FromInterleaved is the inverse of Interleaved. A trailing partial vertex is dropped.
func FromInterleaved(data []float32, indices []uint32) *Mesh {
	n := len(data) / VertexStride
	vs := make([]Vertex, n)
	for i := range vs {
		d := data[i*VertexStride : (i+1)*VertexStride]
		vs[i] = Vertex{
			Position: mgl32.Vec3{d[0], d[1], d[2]},
			TexCoord: mgl32.Vec2{d[3], d[4]},
			Normal:   mgl32.Vec3{d[5], d[6], d[7]},
		}
	}
	idx := make([]uint32, len(indices))
	copy(idx, indices)
	return &Mesh{Vertices: vs, Indices: idx}
}
