package volume

import "voxelsurface.ai/internal/mathx"

// SampleAt resolves a global lattice coordinate. It never fails: coordinates
// that do not map to a stored sample yield Outside.
func (s *Store) SampleAt(x, y, z int) Sample {
	ch, off, ok := s.locate(x, y, z)
	if !ok {
		return Outside
	}
	return ch.samples[off]
}

func (s *Store) SampleAtCoord(c Coord) Sample { return s.SampleAt(c.X, c.Y, c.Z) }

// Set writes a stored sample. Coordinates that SampleAt would resolve to
// Outside are rejected and nothing is written.
func (s *Store) Set(x, y, z int, v Sample) bool {
	ch, off, ok := s.locate(x, y, z)
	if !ok {
		return false
	}
	ch.SetAt(off, v)
	return true
}

// Chunk returns the chunk at a chunk-grid coordinate and panics with
// ErrPrecondition when c lies outside the grid.
func (s *Store) Chunk(c Coord) *Chunk {
	if !s.gridLat.Contains(c) {
		precondition("chunk %s outside grid of edge %d", c, s.gridLat.Edge())
	}
	return s.chunks[s.gridLat.OffsetOf(c)]
}

func (s *Store) ChunkAt(x, y, z int) *Chunk { return s.Chunk(Coord{x, y, z}) }

// ChunkOf reports which chunk a global coordinate resolves to under the store's
// division policy.
func (s *Store) ChunkOf(x, y, z int) (*Chunk, bool) {
	ch, _, ok := s.locate(x, y, z)
	return ch, ok
}

func (s *Store) locate(x, y, z int) (*Chunk, int, bool) {
	if s.division == TruncDivision {
		return s.locateTrunc(x, y, z)
	}
	return s.locateFloor(x, y, z)
}

func (s *Store) locateFloor(x, y, z int) (*Chunk, int, bool) {
	n := s.chunkLat.Edge()
	c := Coord{mathx.FloorDiv(x, n), mathx.FloorDiv(y, n), mathx.FloorDiv(z, n)}
	if !s.gridLat.Contains(c) {
		return nil, 0, false
	}
	off := s.chunkLat.Offset(mathx.Mod(x, n), mathx.Mod(y, n), mathx.Mod(z, n))
	if off < 0 || off >= s.chunkLat.Cubed() {
		return nil, 0, false
	}
	return s.chunks[s.gridLat.OffsetOf(c)], off, true
}

func (s *Store) locateTrunc(x, y, z int) (*Chunk, int, bool) {
	n := s.chunkLat.Edge()
	idx := s.gridLat.Offset(x/n, y/n, z/n)
	if idx < 0 || idx >= len(s.chunks) {
		return nil, 0, false
	}
	ch := s.chunks[idx]
	o := ch.Origin()
	off := s.chunkLat.Offset(x-o.X, y-o.Y, z-o.Z)
	if off < 0 || off >= s.chunkLat.Cubed() {
		return nil, 0, false
	}
	return ch, off, true
}
