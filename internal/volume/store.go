package volume

// Config sizes a store: GridEdge chunks per axis, each ChunkEdge samples per axis.
type Config struct {
	ChunkEdge int
	GridEdge  int
	Division  Division
}

const (
	DefaultChunkEdge = 32
	DefaultGridEdge  = 4
)

// Store owns a cube of chunks in one contiguous slice, indexed by the grid
// lattice. It is not safe for concurrent mutation; extraction only reads.
type Store struct {
	chunkLat Lattice
	gridLat  Lattice
	division Division
	chunks   []*Chunk
}

func NewStore(cfg Config) *Store {
	if cfg.Division != FloorDivision && cfg.Division != TruncDivision {
		precondition("unknown chunk division %d", int(cfg.Division))
	}
	s := &Store{
		chunkLat: NewLattice(cfg.ChunkEdge),
		gridLat:  NewLattice(cfg.GridEdge),
		division: cfg.Division,
	}
	s.chunks = make([]*Chunk, s.gridLat.Cubed())
	for i := range s.chunks {
		s.chunks[i] = NewChunk(s.chunkLat, s.gridLat.Position(i))
	}
	return s
}

func (s *Store) ChunkLattice() Lattice { return s.chunkLat }
func (s *Store) GridLattice() Lattice  { return s.gridLat }
func (s *Store) Division() Division    { return s.division }

// Extent is the number of lattice points per axis, GridEdge*ChunkEdge.
func (s *Store) Extent() int { return s.gridLat.Edge() * s.chunkLat.Edge() }

// Chunks returns every chunk in linear grid order.
func (s *Store) Chunks() []*Chunk { return s.chunks }

func (s *Store) Len() int { return len(s.chunks) }

// Populate overwrites every stored sample with fn evaluated at its global coordinate.
func (s *Store) Populate(fn func(x, y, z int) Sample) {
	n := s.chunkLat.Edge()
	for _, ch := range s.chunks {
		o := ch.Origin()
		for z := 0; z < n; z++ {
			for y := 0; y < n; y++ {
				for x := 0; x < n; x++ {
					ch.Set(x, y, z, fn(o.X+x, o.Y+y, o.Z+z))
				}
			}
		}
	}
}
