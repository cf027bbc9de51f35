// Package density authors sample values for a volume store. None of these
// generators are needed by the extractor; they exist so tools and tests have
// something other than the reference shell to polygonize.
package density

import (
	"fmt"
	"math"
	"strings"

	"voxelsurface.ai/internal/mathx"
	"voxelsurface.ai/internal/volume"
)

// Func maps a global lattice coordinate to a sample.
type Func func(x, y, z int) volume.Sample

// Constant fills everything with v.
func Constant(v volume.Sample) Func {
	return func(int, int, int) volume.Sample { return v }
}

// Shell reproduces the per-chunk reference content for a store whose chunks
// have the given edge: every chunk face is Outside, the rest Inside.
func Shell(chunkEdge int) Func {
	last := chunkEdge - 1
	return func(x, y, z int) volume.Sample {
		lx, ly, lz := mathx.Mod(x, chunkEdge), mathx.Mod(y, chunkEdge), mathx.Mod(z, chunkEdge)
		if lx == 0 || ly == 0 || lz == 0 || lx == last || ly == last || lz == last {
			return volume.Outside
		}
		return volume.Inside
	}
}

// Sphere is a signed distance field, negative inside, scaled by scale samples
// per lattice unit and clamped to the int8 range.
func Sphere(cx, cy, cz, radius, scale float64) Func {
	return func(x, y, z int) volume.Sample {
		dx, dy, dz := float64(x)-cx, float64(y)-cy, float64(z)-cz
		d := math.Sqrt(dx*dx+dy*dy+dz*dz) - radius
		return quantize(d * scale)
	}
}

// Noise is trilinear value noise on a lattice of the given cell size, shifted by
// threshold so that roughly threshold of the volume ends up negative.
func Noise(seed int64, cell int, threshold float64) Func {
	if cell <= 0 {
		cell = 1
	}
	corner := func(x, y, z int) float64 { return mathx.Unit(mathx.Hash3(seed, x, y, z)) }
	return func(x, y, z int) volume.Sample {
		gx, gy, gz := mathx.FloorDiv(x, cell), mathx.FloorDiv(y, cell), mathx.FloorDiv(z, cell)
		fx := float64(mathx.Mod(x, cell)) / float64(cell)
		fy := float64(mathx.Mod(y, cell)) / float64(cell)
		fz := float64(mathx.Mod(z, cell)) / float64(cell)

		c00 := lerp(corner(gx, gy, gz), corner(gx+1, gy, gz), fx)
		c10 := lerp(corner(gx, gy+1, gz), corner(gx+1, gy+1, gz), fx)
		c01 := lerp(corner(gx, gy, gz+1), corner(gx+1, gy, gz+1), fx)
		c11 := lerp(corner(gx, gy+1, gz+1), corner(gx+1, gy+1, gz+1), fx)
		v := lerp(lerp(c00, c10, fy), lerp(c01, c11, fy), fz)
		return quantize((v - threshold) * 254)
	}
}

// Spec names a generator in configuration.
type Spec struct {
	Kind      string
	Seed      int64
	Center    [3]float64
	Radius    float64
	Scale     float64
	Cell      int
	Threshold float64
	Value     int
}

// Build turns a Spec into a Func. chunkEdge is used by the shell generator.
func Build(s Spec, chunkEdge int) (Func, error) {
	switch strings.ToLower(strings.TrimSpace(s.Kind)) {
	case "", "shell":
		return Shell(chunkEdge), nil
	case "constant":
		if s.Value < math.MinInt8 || s.Value > math.MaxInt8 {
			return nil, fmt.Errorf("constant value %d outside int8 range", s.Value)
		}
		return Constant(volume.Sample(s.Value)), nil
	case "sphere":
		if s.Radius <= 0 {
			return nil, fmt.Errorf("sphere radius must be positive, got %v", s.Radius)
		}
		scale := s.Scale
		if scale == 0 {
			scale = 16
		}
		return Sphere(s.Center[0], s.Center[1], s.Center[2], s.Radius, scale), nil
	case "noise":
		return Noise(s.Seed, s.Cell, s.Threshold), nil
	default:
		return nil, fmt.Errorf("unknown density kind %q", s.Kind)
	}
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

func quantize(v float64) volume.Sample {
	r := int(math.Round(v))
	return volume.Sample(mathx.ClampInt(r, math.MinInt8, math.MaxInt8))
}
