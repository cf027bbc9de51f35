package surface

// Regular-cell tables of the Transvoxel algorithm (Eric Lengyel, 2010).
// Corner i of a cell sits at (i&1, i>>1&1, i>>2&1) in table space; the
// extractor maps table y to lattice z and table z to lattice y.

// regularCellClass maps a case code to its equivalence class.
var regularCellClass = [256]uint8{
	0x00, 0x01, 0x01, 0x03, 0x01, 0x03, 0x02, 0x04, 0x01, 0x02, 0x03, 0x04, 0x03, 0x04, 0x04, 0x03,
	0x01, 0x03, 0x02, 0x04, 0x02, 0x04, 0x06, 0x0C, 0x02, 0x05, 0x05, 0x0B, 0x05, 0x0A, 0x07, 0x04,
	0x01, 0x02, 0x03, 0x04, 0x02, 0x05, 0x05, 0x0A, 0x02, 0x06, 0x04, 0x0C, 0x05, 0x07, 0x0B, 0x04,
	0x03, 0x04, 0x04, 0x03, 0x05, 0x0B, 0x07, 0x04, 0x05, 0x07, 0x0A, 0x04, 0x08, 0x0E, 0x0E, 0x03,
	0x01, 0x02, 0x02, 0x05, 0x03, 0x04, 0x05, 0x0B, 0x02, 0x06, 0x05, 0x07, 0x04, 0x0C, 0x0A, 0x04,
	0x03, 0x04, 0x05, 0x0A, 0x04, 0x03, 0x07, 0x04, 0x05, 0x07, 0x08, 0x0E, 0x0B, 0x04, 0x0E, 0x03,
	0x02, 0x06, 0x05, 0x07, 0x05, 0x07, 0x08, 0x0E, 0x06, 0x09, 0x07, 0x0F, 0x07, 0x0F, 0x0E, 0x0D,
	0x04, 0x0C, 0x0B, 0x04, 0x0A, 0x04, 0x0E, 0x03, 0x07, 0x0F, 0x0E, 0x0D, 0x0E, 0x0D, 0x02, 0x01,
	0x01, 0x02, 0x02, 0x05, 0x02, 0x05, 0x06, 0x07, 0x03, 0x05, 0x04, 0x0A, 0x04, 0x0B, 0x0C, 0x04,
	0x02, 0x05, 0x06, 0x07, 0x06, 0x07, 0x09, 0x0F, 0x05, 0x08, 0x07, 0x0E, 0x07, 0x0E, 0x0F, 0x0D,
	0x03, 0x05, 0x04, 0x0B, 0x05, 0x08, 0x07, 0x0E, 0x04, 0x07, 0x03, 0x04, 0x0A, 0x0E, 0x04, 0x03,
	0x04, 0x0A, 0x0C, 0x04, 0x07, 0x0E, 0x0F, 0x0D, 0x0B, 0x0E, 0x04, 0x03, 0x0E, 0x02, 0x0D, 0x01,
	0x03, 0x05, 0x05, 0x08, 0x04, 0x0A, 0x07, 0x0E, 0x04, 0x07, 0x0B, 0x0E, 0x03, 0x04, 0x04, 0x03,
	0x04, 0x0B, 0x07, 0x0E, 0x0C, 0x04, 0x0F, 0x0D, 0x0A, 0x0E, 0x0E, 0x02, 0x04, 0x03, 0x0D, 0x01,
	0x04, 0x07, 0x0A, 0x0E, 0x0B, 0x0E, 0x0E, 0x02, 0x0C, 0x0F, 0x04, 0x0D, 0x04, 0x0D, 0x03, 0x01,
	0x03, 0x04, 0x04, 0x03, 0x04, 0x03, 0x0D, 0x01, 0x04, 0x0D, 0x03, 0x01, 0x03, 0x01, 0x01, 0x00,
}

// regularCell holds the triangulation shared by every case of one class.
type regularCell struct {
	geometryCounts uint8 // high nibble: vertex count, low nibble: triangle count
	vertexIndex    [15]uint8
}

func (c regularCell) vertexCount() int   { return int(c.geometryCounts >> 4) }
func (c regularCell) triangleCount() int { return int(c.geometryCounts & 0x0F) }

var regularCellData = [16]regularCell{
	{0x00, [15]uint8{}},
	{0x31, [15]uint8{0, 1, 2}},
	{0x62, [15]uint8{0, 1, 2, 3, 4, 5}},
	{0x42, [15]uint8{0, 1, 2, 0, 2, 3}},
	{0x53, [15]uint8{0, 1, 4, 1, 3, 4, 1, 2, 3}},
	{0x73, [15]uint8{0, 1, 2, 0, 2, 3, 4, 5, 6}},
	{0x93, [15]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8}},
	{0x84, [15]uint8{0, 1, 4, 1, 3, 4, 1, 2, 3, 5, 6, 7}},
	{0x84, [15]uint8{0, 1, 2, 0, 2, 3, 4, 5, 6, 4, 6, 7}},
	{0xC4, [15]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}},
	{0x64, [15]uint8{0, 4, 5, 0, 1, 4, 1, 3, 4, 1, 2, 3}},
	{0x64, [15]uint8{0, 5, 4, 0, 4, 1, 1, 4, 3, 1, 3, 2}},
	{0x64, [15]uint8{0, 4, 5, 0, 3, 4, 0, 1, 3, 1, 2, 3}},
	{0x64, [15]uint8{0, 1, 2, 0, 2, 3, 0, 3, 4, 0, 4, 5}},
	{0x75, [15]uint8{0, 1, 2, 0, 2, 3, 0, 3, 4, 0, 4, 5, 0, 5, 6}},
	{0x95, [15]uint8{0, 4, 5, 0, 3, 4, 0, 1, 3, 1, 2, 3, 6, 7, 8}},
}

// regularVertexData lists, per case code, where each vertex of the class
// triangulation is placed. The low byte holds the two corner indices of the
// edge (first corner in the high nibble); the high byte holds the reuse
// direction and index, which this extractor does not use.
var regularVertexData = [256][12]uint16{
	{},
	{0x6201, 0x5102, 0x3304},
	{0x6201, 0x2315, 0x4113},
	{0x5102, 0x3304, 0x2315, 0x4113},
	{0x5102, 0x4223, 0x1326},
	{0x3304, 0x6201, 0x4223, 0x1326},
	{0x6201, 0x2315, 0x4113, 0x5102, 0x4223, 0x1326},
	{0x4223, 0x1326, 0x3304, 0x2315, 0x4113},
	{0x4113, 0x8337, 0x4223},
	{0x6201, 0x5102, 0x3304, 0x4223, 0x4113, 0x8337},
	{0x6201, 0x2315, 0x8337, 0x4223},
	{0x5102, 0x3304, 0x2315, 0x8337, 0x4223},
	{0x5102, 0x4113, 0x8337, 0x1326},
	{0x4113, 0x8337, 0x1326, 0x3304, 0x6201},
	{0x6201, 0x2315, 0x8337, 0x1326, 0x5102},
	{0x3304, 0x2315, 0x8337, 0x1326},
	{0x3304, 0x1146, 0x2245},
	{0x6201, 0x5102, 0x1146, 0x2245},
	{0x6201, 0x2315, 0x4113, 0x3304, 0x1146, 0x2245},
	{0x5102, 0x1146, 0x2245, 0x2315, 0x4113},
	{0x5102, 0x4223, 0x1326, 0x3304, 0x1146, 0x2245},
	{0x6201, 0x4223, 0x1326, 0x1146, 0x2245},
	{0x6201, 0x2315, 0x4113, 0x5102, 0x4223, 0x1326, 0x3304, 0x1146, 0x2245},
	{0x4113, 0x4223, 0x1326, 0x1146, 0x2245, 0x2315},
	{0x3304, 0x1146, 0x2245, 0x4113, 0x8337, 0x4223},
	{0x6201, 0x5102, 0x1146, 0x2245, 0x4113, 0x8337, 0x4223},
	{0x6201, 0x2315, 0x8337, 0x4223, 0x3304, 0x1146, 0x2245},
	{0x5102, 0x4223, 0x8337, 0x2315, 0x2245, 0x1146},
	{0x5102, 0x4113, 0x8337, 0x1326, 0x3304, 0x1146, 0x2245},
	{0x6201, 0x4113, 0x8337, 0x1326, 0x1146, 0x2245},
	{0x6201, 0x2315, 0x8337, 0x1326, 0x5102, 0x3304, 0x1146, 0x2245},
	{0x2315, 0x8337, 0x1326, 0x1146, 0x2245},
	{0x2315, 0x2245, 0x8157},
	{0x6201, 0x5102, 0x3304, 0x2315, 0x2245, 0x8157},
	{0x6201, 0x2245, 0x8157, 0x4113},
	{0x5102, 0x3304, 0x2245, 0x8157, 0x4113},
	{0x5102, 0x4223, 0x1326, 0x2315, 0x2245, 0x8157},
	{0x6201, 0x4223, 0x1326, 0x3304, 0x2315, 0x2245, 0x8157},
	{0x6201, 0x2245, 0x8157, 0x4113, 0x5102, 0x4223, 0x1326},
	{0x3304, 0x2245, 0x8157, 0x4113, 0x4223, 0x1326},
	{0x4113, 0x8337, 0x4223, 0x2315, 0x2245, 0x8157},
	{0x6201, 0x5102, 0x3304, 0x4113, 0x8337, 0x4223, 0x2315, 0x2245, 0x8157},
	{0x6201, 0x2245, 0x8157, 0x8337, 0x4223},
	{0x5102, 0x3304, 0x2245, 0x8157, 0x8337, 0x4223},
	{0x5102, 0x4113, 0x8337, 0x1326, 0x2315, 0x2245, 0x8157},
	{0x6201, 0x4113, 0x8337, 0x1326, 0x3304, 0x2315, 0x2245, 0x8157},
	{0x6201, 0x5102, 0x1326, 0x8337, 0x8157, 0x2245},
	{0x3304, 0x2245, 0x8157, 0x8337, 0x1326},
	{0x3304, 0x1146, 0x8157, 0x2315},
	{0x6201, 0x5102, 0x1146, 0x8157, 0x2315},
	{0x6201, 0x3304, 0x1146, 0x8157, 0x4113},
	{0x5102, 0x1146, 0x8157, 0x4113},
	{0x3304, 0x1146, 0x8157, 0x2315, 0x5102, 0x4223, 0x1326},
	{0x6201, 0x2315, 0x8157, 0x1146, 0x1326, 0x4223},
	{0x6201, 0x3304, 0x1146, 0x8157, 0x4113, 0x5102, 0x4223, 0x1326},
	{0x4113, 0x4223, 0x1326, 0x1146, 0x8157},
	{0x3304, 0x1146, 0x8157, 0x2315, 0x4113, 0x8337, 0x4223},
	{0x6201, 0x5102, 0x1146, 0x8157, 0x2315, 0x4113, 0x8337, 0x4223},
	{0x6201, 0x3304, 0x1146, 0x8157, 0x8337, 0x4223},
	{0x5102, 0x1146, 0x8157, 0x8337, 0x4223},
	{0x5102, 0x4113, 0x8337, 0x1326, 0x3304, 0x1146, 0x8157, 0x2315},
	{0x6201, 0x4113, 0x8337, 0x1326, 0x1146, 0x8157, 0x2315},
	{0x6201, 0x3304, 0x1146, 0x8157, 0x8337, 0x1326, 0x5102},
	{0x1326, 0x1146, 0x8157, 0x8337},
	{0x1326, 0x8267, 0x1146},
	{0x6201, 0x5102, 0x3304, 0x1326, 0x8267, 0x1146},
	{0x6201, 0x2315, 0x4113, 0x1326, 0x8267, 0x1146},
	{0x5102, 0x3304, 0x2315, 0x4113, 0x1326, 0x8267, 0x1146},
	{0x5102, 0x4223, 0x8267, 0x1146},
	{0x6201, 0x4223, 0x8267, 0x1146, 0x3304},
	{0x5102, 0x4223, 0x8267, 0x1146, 0x6201, 0x2315, 0x4113},
	{0x3304, 0x1146, 0x8267, 0x4223, 0x4113, 0x2315},
	{0x4113, 0x8337, 0x4223, 0x1326, 0x8267, 0x1146},
	{0x6201, 0x5102, 0x3304, 0x4113, 0x8337, 0x4223, 0x1326, 0x8267, 0x1146},
	{0x6201, 0x2315, 0x8337, 0x4223, 0x1326, 0x8267, 0x1146},
	{0x5102, 0x3304, 0x2315, 0x8337, 0x4223, 0x1326, 0x8267, 0x1146},
	{0x5102, 0x4113, 0x8337, 0x8267, 0x1146},
	{0x6201, 0x4113, 0x8337, 0x8267, 0x1146, 0x3304},
	{0x6201, 0x2315, 0x8337, 0x8267, 0x1146, 0x5102},
	{0x3304, 0x2315, 0x8337, 0x8267, 0x1146},
	{0x3304, 0x1326, 0x8267, 0x2245},
	{0x6201, 0x5102, 0x1326, 0x8267, 0x2245},
	{0x3304, 0x1326, 0x8267, 0x2245, 0x6201, 0x2315, 0x4113},
	{0x5102, 0x1326, 0x8267, 0x2245, 0x2315, 0x4113},
	{0x5102, 0x4223, 0x8267, 0x2245, 0x3304},
	{0x6201, 0x4223, 0x8267, 0x2245},
	{0x5102, 0x4223, 0x8267, 0x2245, 0x3304, 0x6201, 0x2315, 0x4113},
	{0x4113, 0x4223, 0x8267, 0x2245, 0x2315},
	{0x3304, 0x1326, 0x8267, 0x2245, 0x4113, 0x8337, 0x4223},
	{0x6201, 0x5102, 0x1326, 0x8267, 0x2245, 0x4113, 0x8337, 0x4223},
	{0x6201, 0x2315, 0x8337, 0x4223, 0x3304, 0x1326, 0x8267, 0x2245},
	{0x5102, 0x1326, 0x8267, 0x2245, 0x2315, 0x8337, 0x4223},
	{0x5102, 0x3304, 0x2245, 0x8267, 0x8337, 0x4113},
	{0x6201, 0x4113, 0x8337, 0x8267, 0x2245},
	{0x6201, 0x2315, 0x8337, 0x8267, 0x2245, 0x3304, 0x5102},
	{0x2315, 0x8337, 0x8267, 0x2245},
	{0x2315, 0x2245, 0x8157, 0x1326, 0x8267, 0x1146},
	{0x6201, 0x5102, 0x3304, 0x2315, 0x2245, 0x8157, 0x1326, 0x8267, 0x1146},
	{0x6201, 0x2245, 0x8157, 0x4113, 0x1326, 0x8267, 0x1146},
	{0x5102, 0x3304, 0x2245, 0x8157, 0x4113, 0x1326, 0x8267, 0x1146},
	{0x5102, 0x4223, 0x8267, 0x1146, 0x2315, 0x2245, 0x8157},
	{0x6201, 0x4223, 0x8267, 0x1146, 0x3304, 0x2315, 0x2245, 0x8157},
	{0x6201, 0x2245, 0x8157, 0x4113, 0x5102, 0x4223, 0x8267, 0x1146},
	{0x3304, 0x2245, 0x8157, 0x4113, 0x4223, 0x8267, 0x1146},
	{0x4113, 0x8337, 0x4223, 0x2315, 0x2245, 0x8157, 0x1326, 0x8267, 0x1146},
	{0x6201, 0x5102, 0x3304, 0x4113, 0x8337, 0x4223, 0x2315, 0x2245, 0x8157, 0x1326, 0x8267, 0x1146},
	{0x6201, 0x2245, 0x8157, 0x8337, 0x4223, 0x1326, 0x8267, 0x1146},
	{0x5102, 0x3304, 0x2245, 0x8157, 0x8337, 0x4223, 0x1326, 0x8267, 0x1146},
	{0x5102, 0x4113, 0x8337, 0x8267, 0x1146, 0x2315, 0x2245, 0x8157},
	{0x6201, 0x4113, 0x8337, 0x8267, 0x1146, 0x3304, 0x2315, 0x2245, 0x8157},
	{0x6201, 0x2245, 0x8157, 0x8337, 0x8267, 0x1146, 0x5102},
	{0x3304, 0x2245, 0x8157, 0x8337, 0x8267, 0x1146},
	{0x3304, 0x1326, 0x8267, 0x8157, 0x2315},
	{0x6201, 0x5102, 0x1326, 0x8267, 0x8157, 0x2315},
	{0x6201, 0x4113, 0x8157, 0x8267, 0x1326, 0x3304},
	{0x5102, 0x1326, 0x8267, 0x8157, 0x4113},
	{0x5102, 0x4223, 0x8267, 0x8157, 0x2315, 0x3304},
	{0x6201, 0x4223, 0x8267, 0x8157, 0x2315},
	{0x6201, 0x3304, 0x5102, 0x4223, 0x8267, 0x8157, 0x4113},
	{0x4113, 0x4223, 0x8267, 0x8157},
	{0x3304, 0x1326, 0x8267, 0x8157, 0x2315, 0x4113, 0x8337, 0x4223},
	{0x6201, 0x5102, 0x1326, 0x8267, 0x8157, 0x2315, 0x4113, 0x8337, 0x4223},
	{0x6201, 0x3304, 0x1326, 0x8267, 0x8157, 0x8337, 0x4223},
	{0x5102, 0x1326, 0x8267, 0x8157, 0x8337, 0x4223},
	{0x5102, 0x4113, 0x8337, 0x8267, 0x8157, 0x2315, 0x3304},
	{0x6201, 0x4113, 0x8337, 0x8267, 0x8157, 0x2315},
	{0x6201, 0x3304, 0x5102, 0x8337, 0x8267, 0x8157},
	{0x8337, 0x8267, 0x8157},
	{0x8337, 0x8157, 0x8267},
	{0x6201, 0x5102, 0x3304, 0x8337, 0x8157, 0x8267},
	{0x6201, 0x2315, 0x4113, 0x8337, 0x8157, 0x8267},
	{0x5102, 0x3304, 0x2315, 0x4113, 0x8337, 0x8157, 0x8267},
	{0x5102, 0x4223, 0x1326, 0x8337, 0x8157, 0x8267},
	{0x6201, 0x4223, 0x1326, 0x3304, 0x8337, 0x8157, 0x8267},
	{0x6201, 0x2315, 0x4113, 0x5102, 0x4223, 0x1326, 0x8337, 0x8157, 0x8267},
	{0x3304, 0x2315, 0x4113, 0x4223, 0x1326, 0x8337, 0x8157, 0x8267},
	{0x4113, 0x8157, 0x8267, 0x4223},
	{0x4113, 0x8157, 0x8267, 0x4223, 0x6201, 0x5102, 0x3304},
	{0x6201, 0x2315, 0x8157, 0x8267, 0x4223},
	{0x5102, 0x3304, 0x2315, 0x8157, 0x8267, 0x4223},
	{0x5102, 0x4113, 0x8157, 0x8267, 0x1326},
	{0x6201, 0x3304, 0x1326, 0x8267, 0x8157, 0x4113},
	{0x6201, 0x2315, 0x8157, 0x8267, 0x1326, 0x5102},
	{0x3304, 0x2315, 0x8157, 0x8267, 0x1326},
	{0x3304, 0x1146, 0x2245, 0x8337, 0x8157, 0x8267},
	{0x6201, 0x5102, 0x1146, 0x2245, 0x8337, 0x8157, 0x8267},
	{0x6201, 0x2315, 0x4113, 0x3304, 0x1146, 0x2245, 0x8337, 0x8157, 0x8267},
	{0x5102, 0x1146, 0x2245, 0x2315, 0x4113, 0x8337, 0x8157, 0x8267},
	{0x5102, 0x4223, 0x1326, 0x3304, 0x1146, 0x2245, 0x8337, 0x8157, 0x8267},
	{0x6201, 0x4223, 0x1326, 0x1146, 0x2245, 0x8337, 0x8157, 0x8267},
	{0x6201, 0x2315, 0x4113, 0x5102, 0x4223, 0x1326, 0x3304, 0x1146, 0x2245, 0x8337, 0x8157, 0x8267},
	{0x4113, 0x4223, 0x1326, 0x1146, 0x2245, 0x2315, 0x8337, 0x8157, 0x8267},
	{0x4113, 0x8157, 0x8267, 0x4223, 0x3304, 0x1146, 0x2245},
	{0x6201, 0x5102, 0x1146, 0x2245, 0x4113, 0x8157, 0x8267, 0x4223},
	{0x6201, 0x2315, 0x8157, 0x8267, 0x4223, 0x3304, 0x1146, 0x2245},
	{0x5102, 0x1146, 0x2245, 0x2315, 0x8157, 0x8267, 0x4223},
	{0x5102, 0x4113, 0x8157, 0x8267, 0x1326, 0x3304, 0x1146, 0x2245},
	{0x6201, 0x4113, 0x8157, 0x8267, 0x1326, 0x1146, 0x2245},
	{0x6201, 0x2315, 0x8157, 0x8267, 0x1326, 0x5102, 0x3304, 0x1146, 0x2245},
	{0x2315, 0x8157, 0x8267, 0x1326, 0x1146, 0x2245},
	{0x2315, 0x2245, 0x8267, 0x8337},
	{0x2315, 0x2245, 0x8267, 0x8337, 0x6201, 0x5102, 0x3304},
	{0x6201, 0x2245, 0x8267, 0x8337, 0x4113},
	{0x5102, 0x4113, 0x8337, 0x8267, 0x2245, 0x3304},
	{0x2315, 0x2245, 0x8267, 0x8337, 0x5102, 0x4223, 0x1326},
	{0x6201, 0x4223, 0x1326, 0x3304, 0x2315, 0x2245, 0x8267, 0x8337},
	{0x6201, 0x2245, 0x8267, 0x8337, 0x4113, 0x5102, 0x4223, 0x1326},
	{0x3304, 0x2245, 0x8267, 0x8337, 0x4113, 0x4223, 0x1326},
	{0x4113, 0x2315, 0x2245, 0x8267, 0x4223},
	{0x4113, 0x2315, 0x2245, 0x8267, 0x4223, 0x6201, 0x5102, 0x3304},
	{0x6201, 0x2245, 0x8267, 0x4223},
	{0x5102, 0x3304, 0x2245, 0x8267, 0x4223},
	{0x5102, 0x4113, 0x2315, 0x2245, 0x8267, 0x1326},
	{0x6201, 0x4113, 0x2315, 0x2245, 0x8267, 0x1326, 0x3304},
	{0x6201, 0x2245, 0x8267, 0x1326, 0x5102},
	{0x3304, 0x2245, 0x8267, 0x1326},
	{0x3304, 0x1146, 0x8267, 0x8337, 0x2315},
	{0x6201, 0x5102, 0x1146, 0x8267, 0x8337, 0x2315},
	{0x6201, 0x3304, 0x1146, 0x8267, 0x8337, 0x4113},
	{0x5102, 0x1146, 0x8267, 0x8337, 0x4113},
	{0x3304, 0x1146, 0x8267, 0x8337, 0x2315, 0x5102, 0x4223, 0x1326},
	{0x6201, 0x4223, 0x1326, 0x1146, 0x8267, 0x8337, 0x2315},
	{0x6201, 0x3304, 0x1146, 0x8267, 0x8337, 0x4113, 0x5102, 0x4223, 0x1326},
	{0x4113, 0x4223, 0x1326, 0x1146, 0x8267, 0x8337},
	{0x3304, 0x2315, 0x4113, 0x4223, 0x8267, 0x1146},
	{0x6201, 0x5102, 0x1146, 0x8267, 0x4223, 0x4113, 0x2315},
	{0x6201, 0x3304, 0x1146, 0x8267, 0x4223},
	{0x5102, 0x1146, 0x8267, 0x4223},
	{0x5102, 0x4113, 0x2315, 0x3304, 0x1146, 0x8267, 0x1326},
	{0x6201, 0x4113, 0x2315, 0x1326, 0x1146, 0x8267},
	{0x6201, 0x3304, 0x1146, 0x8267, 0x1326, 0x5102},
	{0x1326, 0x1146, 0x8267},
	{0x1326, 0x8337, 0x8157, 0x1146},
	{0x1326, 0x8337, 0x8157, 0x1146, 0x6201, 0x5102, 0x3304},
	{0x1326, 0x8337, 0x8157, 0x1146, 0x6201, 0x2315, 0x4113},
	{0x5102, 0x3304, 0x2315, 0x4113, 0x1326, 0x8337, 0x8157, 0x1146},
	{0x5102, 0x4223, 0x8337, 0x8157, 0x1146},
	{0x6201, 0x4223, 0x8337, 0x8157, 0x1146, 0x3304},
	{0x5102, 0x4223, 0x8337, 0x8157, 0x1146, 0x6201, 0x2315, 0x4113},
	{0x3304, 0x2315, 0x4113, 0x4223, 0x8337, 0x8157, 0x1146},
	{0x4113, 0x8157, 0x1146, 0x1326, 0x4223},
	{0x4113, 0x8157, 0x1146, 0x1326, 0x4223, 0x6201, 0x5102, 0x3304},
	{0x6201, 0x4223, 0x1326, 0x1146, 0x8157, 0x2315},
	{0x5102, 0x3304, 0x2315, 0x8157, 0x1146, 0x1326, 0x4223},
	{0x5102, 0x4113, 0x8157, 0x1146},
	{0x6201, 0x4113, 0x8157, 0x1146, 0x3304},
	{0x6201, 0x2315, 0x8157, 0x1146, 0x5102},
	{0x3304, 0x2315, 0x8157, 0x1146},
	{0x3304, 0x1326, 0x8337, 0x8157, 0x2245},
	{0x6201, 0x2245, 0x8157, 0x8337, 0x1326, 0x5102},
	{0x3304, 0x1326, 0x8337, 0x8157, 0x2245, 0x6201, 0x2315, 0x4113},
	{0x5102, 0x1326, 0x8337, 0x8157, 0x2245, 0x2315, 0x4113},
	{0x5102, 0x4223, 0x8337, 0x8157, 0x2245, 0x3304},
	{0x6201, 0x4223, 0x8337, 0x8157, 0x2245},
	{0x5102, 0x4223, 0x8337, 0x8157, 0x2245, 0x3304, 0x6201, 0x2315, 0x4113},
	{0x4113, 0x4223, 0x8337, 0x8157, 0x2245, 0x2315},
	{0x3304, 0x1326, 0x4223, 0x4113, 0x8157, 0x2245},
	{0x6201, 0x5102, 0x1326, 0x4223, 0x4113, 0x8157, 0x2245},
	{0x6201, 0x2315, 0x8157, 0x2245, 0x3304, 0x1326, 0x4223},
	{0x5102, 0x1326, 0x4223, 0x2315, 0x8157, 0x2245},
	{0x5102, 0x4113, 0x8157, 0x2245, 0x3304},
	{0x6201, 0x4113, 0x8157, 0x2245},
	{0x6201, 0x2315, 0x8157, 0x2245, 0x3304, 0x5102},
	{0x2315, 0x8157, 0x2245},
	{0x2315, 0x2245, 0x1146, 0x1326, 0x8337},
	{0x2315, 0x2245, 0x1146, 0x1326, 0x8337, 0x6201, 0x5102, 0x3304},
	{0x6201, 0x2245, 0x1146, 0x1326, 0x8337, 0x4113},
	{0x5102, 0x3304, 0x2245, 0x1146, 0x1326, 0x8337, 0x4113},
	{0x5102, 0x1146, 0x2245, 0x2315, 0x8337, 0x4223},
	{0x6201, 0x4223, 0x8337, 0x2315, 0x2245, 0x1146, 0x3304},
	{0x6201, 0x2245, 0x1146, 0x5102, 0x4223, 0x8337, 0x4113},
	{0x3304, 0x2245, 0x1146, 0x4113, 0x4223, 0x8337},
	{0x4113, 0x2315, 0x2245, 0x1146, 0x1326, 0x4223},
	{0x4113, 0x2315, 0x2245, 0x1146, 0x1326, 0x4223, 0x6201, 0x5102, 0x3304},
	{0x6201, 0x2245, 0x1146, 0x1326, 0x4223},
	{0x5102, 0x3304, 0x2245, 0x1146, 0x1326, 0x4223},
	{0x5102, 0x4113, 0x2315, 0x2245, 0x1146},
	{0x6201, 0x4113, 0x2315, 0x2245, 0x1146, 0x3304},
	{0x6201, 0x2245, 0x1146, 0x5102},
	{0x3304, 0x2245, 0x1146},
	{0x3304, 0x1326, 0x8337, 0x2315},
	{0x6201, 0x5102, 0x1326, 0x8337, 0x2315},
	{0x6201, 0x3304, 0x1326, 0x8337, 0x4113},
	{0x5102, 0x1326, 0x8337, 0x4113},
	{0x5102, 0x4223, 0x8337, 0x2315, 0x3304},
	{0x6201, 0x4223, 0x8337, 0x2315},
	{0x6201, 0x3304, 0x5102, 0x4223, 0x8337, 0x4113},
	{0x4113, 0x4223, 0x8337},
	{0x3304, 0x1326, 0x4223, 0x4113, 0x2315},
	{0x6201, 0x5102, 0x1326, 0x4223, 0x4113, 0x2315},
	{0x6201, 0x3304, 0x1326, 0x4223},
	{0x5102, 0x1326, 0x4223},
	{0x5102, 0x4113, 0x2315, 0x3304},
	{0x6201, 0x4113, 0x2315},
	{0x6201, 0x3304, 0x5102},
	{},
}
