package volume

// Lattice converts between 3D coordinates and linear offsets inside a cube of a
// fixed edge length, x fastest, then y, then z. Offsets are not range-checked.
type Lattice struct {
	edge    int
	squared int
	cubed   int
}

func NewLattice(edge int) Lattice {
	if edge <= 0 {
		precondition("lattice edge must be positive, got %d", edge)
	}
	return Lattice{edge: edge, squared: edge * edge, cubed: edge * edge * edge}
}

func (l Lattice) Edge() int    { return l.edge }
func (l Lattice) Squared() int { return l.squared }
func (l Lattice) Cubed() int   { return l.cubed }

func (l Lattice) Offset(x, y, z int) int {
	return x + y*l.edge + z*l.squared
}

func (l Lattice) OffsetOf(c Coord) int {
	return l.Offset(c.X, c.Y, c.Z)
}

func (l Lattice) Position(offset int) Coord {
	z := offset / l.squared
	y := (offset - z*l.squared) / l.edge
	x := offset - z*l.squared - y*l.edge
	return Coord{X: x, Y: y, Z: z}
}

// Contains reports whether every component of c is in [0, edge).
func (l Lattice) Contains(c Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.Z >= 0 && c.X < l.edge && c.Y < l.edge && c.Z < l.edge
}
