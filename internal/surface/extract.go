// Package surface polygonizes the zero crossing of a volume's density field
// with the regular-cell tables of the Transvoxel algorithm.
//
// Every cell is triangulated on its own: vertices on an edge shared by two
// cells are emitted twice, once per cell, and nothing is welded across chunks.
package surface

import (
	"log"
	"time"

	"voxelsurface.ai/internal/mesh"
	"voxelsurface.ai/internal/volume"
)

// Renderer is told whenever a chunk's mesh has been replaced. ExtractAll calls
// it from several goroutines when run with more than one worker.
type Renderer interface {
	MeshUpdated(pos volume.Coord, m *mesh.Mesh)
}

// Stats summarizes one chunk extraction.
type Stats struct {
	Chunk       volume.Coord
	Cells       int
	ActiveCells int
	Vertices    int
	Triangles   int
	Elapsed     time.Duration
}

type Extractor struct {
	Renderer Renderer    // optional
	Logger   *log.Logger // optional
}

// Extract rebuilds ch.Mesh from the cells of ch, reading corners and normals
// through f (normally the store that owns ch). Output only depends on the
// density values, so re-running it on an unchanged field gives identical buffers.
func (e *Extractor) Extract(f volume.Field, ch *volume.Chunk) Stats {
	start := time.Now()
	n := ch.Lattice().Edge()
	origin := ch.Origin()

	var vertexHint, indexHint int
	if ch.Mesh != nil {
		vertexHint, indexHint = len(ch.Mesh.Vertices), len(ch.Mesh.Indices)
	}
	out := mesh.New(make([]mesh.Vertex, 0, vertexHint), make([]uint32, 0, indexHint))

	st := Stats{Chunk: ch.Pos}
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				res := PolygonizeCell(f, origin.Add(volume.Coord{X: x, Y: y, Z: z}), out)
				st.Cells++
				if res.Triangles > 0 {
					st.ActiveCells++
				}
			}
		}
	}

	if ch.Mesh == nil {
		ch.Mesh = out
	} else {
		ch.Mesh.Replace(out.Vertices, out.Indices)
	}
	st.Vertices = len(ch.Mesh.Vertices)
	st.Triangles = ch.Mesh.TriangleCount()
	st.Elapsed = time.Since(start)

	if e.Logger != nil {
		e.Logger.Printf("chunk %s: computed a mesh with %d vertices and %d indices", ch.Pos, len(ch.Mesh.Vertices), len(ch.Mesh.Indices))
	}
	if e.Renderer != nil {
		e.Renderer.MeshUpdated(ch.Pos, ch.Mesh)
	}
	return st
}

// Extract runs a fresh Extractor without renderer or logger.
func Extract(f volume.Field, ch *volume.Chunk) Stats {
	var e Extractor
	return e.Extract(f, ch)
}
