package surface

import (
	"testing"

	"voxelsurface.ai/internal/mesh"
	"voxelsurface.ai/internal/volume"
)

// cornerField holds explicit values for the unit cell at the origin and zero
// everywhere else.
func cornerField(values [8]volume.Sample) volume.Field {
	return volume.FieldFunc(func(x, y, z int) volume.Sample {
		for i, off := range cornerOffsets {
			if off == (volume.Coord{X: x, Y: y, Z: z}) {
				return values[i]
			}
		}
		return volume.Outside
	})
}

func valuesForCode(code uint8) [8]volume.Sample {
	var v [8]volume.Sample
	for i := range v {
		if code&(1<<uint(i)) != 0 {
			v[i] = -40
		} else {
			v[i] = 25
		}
	}
	return v
}

func TestCaseCodeBitOrder(t *testing.T) {
	for i := 0; i < 8; i++ {
		var v [8]volume.Sample
		v[i] = volume.Inside
		if got := CaseCode(v); got != 1<<uint(i) {
			t.Fatalf("corner %d: got code %#x want %#x", i, got, 1<<uint(i))
		}
	}
	if got := CaseCode(valuesForCode(0xA5)); got != 0xA5 {
		t.Fatalf("got %#x want 0xa5", got)
	}
}

func TestUniformCellsEmitNothing(t *testing.T) {
	for _, v := range []volume.Sample{volume.Outside, 1, 127, volume.Inside, -128} {
		var corners [8]volume.Sample
		for i := range corners {
			corners[i] = v
		}
		m := mesh.New(nil, nil)
		res := PolygonizeCell(cornerField(corners), volume.Coord{}, m)
		if res.Vertices != 0 || res.Triangles != 0 || len(m.Vertices) != 0 || len(m.Indices) != 0 {
			t.Fatalf("uniform %d: emitted %+v", v, res)
		}
		if !Uniform(res.Code, v) {
			t.Fatalf("uniform %d: code %#x not rejected", v, res.Code)
		}
	}
}

func TestEveryCaseEmitsDeclaredCounts(t *testing.T) {
	for c := 0; c < 256; c++ {
		code := uint8(c)
		m := mesh.New(nil, nil)
		res := PolygonizeCell(cornerField(valuesForCode(code)), volume.Coord{}, m)
		if res.Code != code {
			t.Fatalf("case %d: classified as %d", c, res.Code)
		}
		wantV, wantT := VertexCount(code), TriangleCount(code)
		if res.Vertices != wantV || len(m.Vertices) != wantV {
			t.Fatalf("case %d: vertices got %d/%d want %d", c, res.Vertices, len(m.Vertices), wantV)
		}
		if res.Triangles != wantT || m.TriangleCount() != wantT {
			t.Fatalf("case %d: triangles got %d/%d want %d", c, res.Triangles, m.TriangleCount(), wantT)
		}
		if err := m.Validate(); err != nil {
			t.Fatalf("case %d: %v", c, err)
		}
	}
}

func TestSingleCornerFlip(t *testing.T) {
	for i := 0; i < 8; i++ {
		for _, flip := range []struct{ rest, odd volume.Sample }{
			{volume.Outside, volume.Inside},
			{volume.Inside, volume.Outside},
		} {
			var v [8]volume.Sample
			for k := range v {
				v[k] = flip.rest
			}
			v[i] = flip.odd
			m := mesh.New(nil, nil)
			res := PolygonizeCell(cornerField(v), volume.Coord{}, m)
			if res.Class != 1 {
				t.Fatalf("corner %d flipped to %d: class got %d want 1", i, flip.odd, res.Class)
			}
			if res.Vertices != 3 || res.Triangles != 1 || len(m.Indices) != 3 {
				t.Fatalf("corner %d flipped to %d: got %+v", i, flip.odd, res)
			}
		}
	}
}

func TestEdgeParameterBounded(t *testing.T) {
	for a := -128; a < 128; a++ {
		for b := -128; b < 128; b++ {
			d0, d1 := volume.Sample(a), volume.Sample(b)
			if d0.SignBit() == d1.SignBit() {
				continue
			}
			tt := edgeParameter(d0, d1)
			if tt < 0 || tt > 1 {
				t.Fatalf("edgeParameter(%d,%d) = %v outside [0,1]", a, b, tt)
			}
		}
	}
	// A zero corner is on the surface: the vertex lands exactly on it.
	if edgeParameter(0, -1) != 1 || edgeParameter(-1, 0) != 0 {
		t.Fatalf("zero-valued corner should receive the vertex")
	}
}

func TestDegenerateEdgePanics(t *testing.T) {
	defer func() {
		r := recover()
		if !IsDegenerateEdge(r) {
			t.Fatalf("expected degenerate edge panic, got %v", r)
		}
	}()
	edgeParameter(7, 7)
}

func TestVerticesLieOnCellEdges(t *testing.T) {
	m := mesh.New(nil, nil)
	v := valuesForCode(0x5A)
	res := PolygonizeCell(cornerField(v), volume.Coord{}, m)
	for i, vert := range m.Vertices {
		v0, v1 := EdgeCorners(res.Code, i)
		p0, p1 := cornerPosition(volume.Coord{}, v0), cornerPosition(volume.Coord{}, v1)
		for k := 0; k < 3; k++ {
			lo, hi := p0[k], p1[k]
			if lo > hi {
				lo, hi = hi, lo
			}
			if vert.Position[k] < lo || vert.Position[k] > hi {
				t.Fatalf("vertex %d at %v leaves segment %v-%v", i, vert.Position, p0, p1)
			}
		}
		if vert.TexCoord[0] != 0 || vert.TexCoord[1] != 0 {
			t.Fatalf("texcoords must stay zero")
		}
	}
}
