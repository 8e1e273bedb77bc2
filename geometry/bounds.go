package geometry

import (
	"github.com/wiless/vlib"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// AxisStats holds the mean and extrema of one coordinate axis.
type AxisStats struct {
	Center, Min, Max float64
}

// Bounds summarises a geometry per axis, for plot framing.
type Bounds struct {
	X, Y, Z AxisStats
}

// Bounds recomputes the per-axis statistics of the current positions.
func (g Geometry) Bounds() Bounds {
	xs, ys, zs := g.Coords()
	return Bounds{X: axisStats(xs), Y: axisStats(ys), Z: axisStats(zs)}
}

// Center returns the mean element position.
func (g Geometry) Center() vlib.Location3D {
	b := g.Bounds()
	return vlib.Location3D{X: b.X.Center, Y: b.Y.Center, Z: b.Z.Center}
}

// Coords splits the positions into per-axis coordinate vectors.
func (g Geometry) Coords() (xs, ys, zs vlib.VectorF) {
	n := len(g.Positions)
	xs, ys, zs = vlib.NewVectorF(n), vlib.NewVectorF(n), vlib.NewVectorF(n)
	for i, p := range g.Positions {
		xs[i], ys[i], zs[i] = p.X, p.Y, p.Z
	}
	return xs, ys, zs
}

// PlotLimits widens the bounds by margin on every side. The geometry scatter
// plot frames the elements with a margin of 1.
func (b Bounds) PlotLimits(margin float64) (min, max vlib.Location3D) {
	min = vlib.Location3D{X: b.X.Min - margin, Y: b.Y.Min - margin, Z: b.Z.Min - margin}
	max = vlib.Location3D{X: b.X.Max + margin, Y: b.Y.Max + margin, Z: b.Z.Max + margin}
	return min, max
}

func axisStats(v vlib.VectorF) AxisStats {
	if len(v) == 0 {
		return AxisStats{}
	}
	return AxisStats{
		Center: stat.Mean(v, nil),
		Min:    floats.Min(v),
		Max:    floats.Max(v),
	}
}
