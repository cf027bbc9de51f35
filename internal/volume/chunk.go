package volume

import (
	"crypto/sha256"

	"voxelsurface.ai/internal/mesh"
)

// Chunk is a cube of samples positioned in chunk-grid coordinates. Accessors do
// not bound-check local coordinates.
type Chunk struct {
	Pos     Coord
	lat     Lattice
	samples []Sample

	// Mesh is nil until the first extraction and is replaced wholesale after.
	Mesh *mesh.Mesh

	dirty bool
	hash  [32]byte
}

// NewChunk allocates a chunk and applies the reference content: samples on any
// face of the cube are Outside, strictly interior samples are Inside.
func NewChunk(lat Lattice, pos Coord) *Chunk {
	ch := &Chunk{
		Pos:     pos,
		lat:     lat,
		samples: make([]Sample, lat.Cubed()),
		dirty:   true,
	}
	ch.InitShell()
	return ch
}

// InitShell (re)applies the reference border-outside, interior-inside content.
func (c *Chunk) InitShell() {
	last := c.lat.Edge() - 1
	for x := 0; x <= last; x++ {
		for y := 0; y <= last; y++ {
			for z := 0; z <= last; z++ {
				v := Inside
				if x == 0 || y == 0 || z == 0 || x == last || y == last || z == last {
					v = Outside
				}
				c.samples[c.lat.Offset(x, y, z)] = v
			}
		}
	}
	c.dirty = true
}

func (c *Chunk) Lattice() Lattice { return c.lat }

// Origin is the global lattice coordinate of local sample (0,0,0).
func (c *Chunk) Origin() Coord { return c.Pos.Scale(c.lat.Edge()) }

func (c *Chunk) At(offset int) Sample { return c.samples[offset] }

func (c *Chunk) Get(x, y, z int) Sample { return c.samples[c.lat.Offset(x, y, z)] }

func (c *Chunk) SetAt(offset int, v Sample) {
	if c.samples[offset] == v {
		return
	}
	c.samples[offset] = v
	c.dirty = true
}

func (c *Chunk) Set(x, y, z int, v Sample) { c.SetAt(c.lat.Offset(x, y, z), v) }

func (c *Chunk) Fill(v Sample) {
	for i := range c.samples {
		c.samples[i] = v
	}
	c.dirty = true
}

// Samples exposes the backing array in offset order. Writes through it bypass
// digest invalidation.
func (c *Chunk) Samples() []Sample { return c.samples }

func (c *Chunk) Digest() [32]byte {
	if c.dirty || c.hash == ([32]byte{}) {
		h := sha256.New()
		buf := make([]byte, len(c.samples))
		for i, s := range c.samples {
			buf[i] = byte(s)
		}
		h.Write(buf)
		copy(c.hash[:], h.Sum(nil))
		c.dirty = false
	}
	return c.hash
}
