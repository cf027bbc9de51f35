package surface

import (
	"voxelsurface.ai/internal/volume"
)

// cornerOffsets places the eight cell corners relative to the cell origin. The
// order is the table order with table y and z swapped.
var cornerOffsets = [8]volume.Coord{
	{X: 0, Y: 0, Z: 0},
	{X: 1, Y: 0, Z: 0},
	{X: 0, Y: 0, Z: 1},
	{X: 1, Y: 0, Z: 1},
	{X: 0, Y: 1, Z: 0},
	{X: 1, Y: 1, Z: 0},
	{X: 0, Y: 1, Z: 1},
	{X: 1, Y: 1, Z: 1},
}

// CornerOffset returns the position of corner i relative to its cell origin.
func CornerOffset(i int) volume.Coord { return cornerOffsets[i] }

// CaseCode packs the sign bits of the eight corners, corner i into bit i.
func CaseCode(corners [8]volume.Sample) uint8 {
	var code uint8
	for i, s := range corners {
		code |= s.SignBit() << uint(i)
	}
	return code
}

// Uniform reports whether a cell has every corner on the same side of the
// surface. The corner 7 sign is smeared to a full byte and compared to the code.
func Uniform(code uint8, corner7 volume.Sample) bool {
	return code^uint8(int8(corner7)>>7) == 0
}

// CellClass returns the equivalence class of a case code.
func CellClass(code uint8) uint8 { return regularCellClass[code] }

// VertexCount is the number of vertices the table generates for a case code.
func VertexCount(code uint8) int { return regularCellData[regularCellClass[code]].vertexCount() }

// TriangleCount is the number of triangles the table generates for a case code.
func TriangleCount(code uint8) int { return regularCellData[regularCellClass[code]].triangleCount() }

// EdgeCorners decodes the corner pair of vertex i of a case code.
func EdgeCorners(code uint8, i int) (v0, v1 int) {
	loc := regularVertexData[code][i]
	return int(loc>>4) & 0x0F, int(loc) & 0x0F
}
