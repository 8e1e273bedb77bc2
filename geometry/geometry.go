// Package geometry lays out the element positions of an antenna array.
//
// Positions are in element-index units: neighbouring elements of a linear array sit at
// x = 0, 1, 2, ... The physical spacing in wavelengths is carried alongside as Spacing and
// applied by the phase model.
package geometry

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/wiless/phasedarray/arrayerr"
	"github.com/wiless/vlib"
)

// DefaultSpacing is half a wavelength between neighbouring elements.
const DefaultSpacing = 0.5

// RandomSource draws uniform values on [0,1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// Geometry is an ordered set of element positions; element k sits at Positions[k].
type Geometry struct {
	Layout    LayoutType
	Spacing   float64
	Positions []vlib.Location3D
}

// Len returns the number of elements.
func (g Geometry) Len() int { return len(g.Positions) }

// Scaled returns the positions in wavelengths.
func (g Geometry) Scaled() []vlib.Location3D {
	result := make([]vlib.Location3D, len(g.Positions))
	for i, p := range g.Positions {
		result[i] = vlib.Location3D{X: p.X * g.Spacing, Y: p.Y * g.Spacing, Z: p.Z * g.Spacing}
	}
	return result
}

// Build lays out n elements. src is only read by the Random layout.
func Build(layout LayoutType, n int, spacing float64, src RandomSource) (Geometry, error) {
	if n < 1 {
		return Geometry{}, fmt.Errorf("geometry: %d elements: %w", n, arrayerr.ErrInvalidConfiguration)
	}
	if !(spacing > 0) {
		return Geometry{}, fmt.Errorf("geometry: wavelength spacing %v: %w", spacing, arrayerr.ErrInvalidConfiguration)
	}

	var positions []vlib.Location3D
	switch layout {
	case Linear:
		positions = LinearPoints(n)
	case Diagonal:
		positions = DiagonalPoints(n)
	case Random:
		if src == nil {
			return Geometry{}, fmt.Errorf("geometry: random layout without a random source: %w", arrayerr.ErrInvalidConfiguration)
		}
		positions = RandomPoints(n, src)
	case Y:
		if n < 4 || (n-4)%3 != 0 {
			return Geometry{}, fmt.Errorf("geometry: y layout needs 4+3k elements, got %d: %w", n, arrayerr.ErrInvalidConfiguration)
		}
		positions = YPoints(n / 3)
	case Circular, Arbitrary:
		return Geometry{}, fmt.Errorf("geometry: %s layout: %w", layout, arrayerr.ErrNotSupported)
	default:
		return Geometry{}, fmt.Errorf("geometry: layout %d: %w", int(layout), arrayerr.ErrInvalidConfiguration)
	}

	if len(positions) != n {
		log.WithFields(log.Fields{"layout": layout.String(), "want": n, "got": len(positions)}).Error("element count mismatch")
		return Geometry{}, fmt.Errorf("geometry: %s layout produced %d of %d elements: %w", layout, len(positions), n, arrayerr.ErrInternalInvariant)
	}
	log.WithFields(log.Fields{"layout": layout.String(), "elements": n, "spacing": spacing}).Debug("geometry built")
	return Geometry{Layout: layout, Spacing: spacing, Positions: positions}, nil
}

/// LinearPoints drops n points along x starting at the origin
func LinearPoints(n int) []vlib.Location3D {
	result := make([]vlib.Location3D, n)
	for i := 0; i < n; i++ {
		result[i].X = float64(i)
	}
	return result
}

/// DiagonalPoints drops n points along x=y starting at the origin
func DiagonalPoints(n int) []vlib.Location3D {
	result := make([]vlib.Location3D, n)
	for i := 0; i < n; i++ {
		result[i].X = float64(i)
		result[i].Y = float64(i)
	}
	return result
}

// RandomPoints draws n points uniformly from the unit cube [0,1)^3.
func RandomPoints(n int, src RandomSource) []vlib.Location3D {
	result := make([]vlib.Location3D, n)
	for i := 0; i < n; i++ {
		result[i].X = src.Float64()
		result[i].Y = src.Float64()
		result[i].Z = src.Float64()
	}
	return result
}

// YPoints builds the three-legged layout with k elements per diagonal leg: a linear leg of
// k+1 points from the origin, then mirrored diagonal legs of k points each that fork from
// the end of the linear leg. It returns 3k+1 points.
func YPoints(k int) []vlib.Location3D {
	stem := LinearPoints(k + 1)
	fork := stem[k]

	result := make([]vlib.Location3D, 0, 3*k+1)
	result = append(result, stem...)
	for _, sign := range []float64{-1, 1} {
		leg := DiagonalPoints(k + 1)[1:]
		for _, p := range leg {
			result = append(result, vlib.Location3D{X: fork.X + p.X, Y: fork.Y + sign*p.Y, Z: fork.Z + p.Z})
		}
	}
	return result
}
