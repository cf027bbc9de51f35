package mesh

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"
)

// Digest hashes the little-endian byte image of both buffers. Two meshes with the
// same digest have byte-identical vertex and index buffers.
func (m *Mesh) Digest() [32]byte {
	h := sha256.New()
	var tmp [4]byte
	putU32 := func(v uint32) {
		binary.LittleEndian.PutUint32(tmp[:], v)
		h.Write(tmp[:])
	}
	putU32(uint32(len(m.Vertices)))
	for _, v := range m.Vertices {
		for _, f := range [...]float32{
			v.Position[0], v.Position[1], v.Position[2],
			v.TexCoord[0], v.TexCoord[1],
			v.Normal[0], v.Normal[1], v.Normal[2],
		} {
			putU32(math.Float32bits(f))
		}
	}
	putU32(uint32(len(m.Indices)))
	for _, i := range m.Indices {
		putU32(i)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

func (m *Mesh) DigestHex() string {
	d := m.Digest()
	return hex.EncodeToString(d[:])
}
