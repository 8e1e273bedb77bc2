package antenna

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/wiless/phasedarray/arrayerr"
	"github.com/wiless/vlib"
)

// Gain evaluates the array gain |w^H resp(d)| for every direction in the batch.
//
// spacing must be positive. az may be a scalar or any N-dimensional grid whose Shape
// matches its Data; el, when given, must have the same shape
// as az, otherwise arrayerr.ErrShapeMismatch is returned. Without el every direction lies
// on the broadside plane. The result has the shape of az. Nothing is cached between calls.
func Gain(positions []vlib.Location3D, e Element, weights vlib.VectorC, spacing float64, az Grid, el *Grid) (Grid, error) {
	if len(weights) != len(positions) {
		return Grid{}, fmt.Errorf("antenna: %d weights for %d elements: %w", len(weights), len(positions), arrayerr.ErrInvalidConfiguration)
	}
	if e == nil {
		return Grid{}, fmt.Errorf("antenna: missing element model: %w", arrayerr.ErrInvalidConfiguration)
	}
	if !(spacing > 0) {
		return Grid{}, fmt.Errorf("antenna: spacing %v: %w", spacing, arrayerr.ErrInvalidConfiguration)
	}
	if err := az.valid(); err != nil {
		return Grid{}, fmt.Errorf("antenna: azimuth grid: %w", err)
	}
	if el != nil {
		if err := el.valid(); err != nil {
			return Grid{}, fmt.Errorf("antenna: elevation grid: %w", err)
		}
	}
	if el != nil && !el.SameShape(az) {
		return Grid{}, fmt.Errorf("antenna: elevation shape %v does not match azimuth shape %v: %w", el.Shape, az.Shape, arrayerr.ErrShapeMismatch)
	}
	if el != nil && len(el.Data) != len(az.Data) {
		return Grid{}, fmt.Errorf("antenna: elevation holds %d values, azimuth %d: %w", len(el.Data), len(az.Data), arrayerr.ErrShapeMismatch)
	}

	gains := vlib.NewVectorF(len(az.Data))
	for n, a := range az.Data {
		dir := NewDirection(a)
		if el != nil {
			dir.Elevation = el.Data[n]
		}
		resp := ResponseVector(positions, e, spacing, dir)
		gains[n] = cmplx.Abs(Inner(weights, resp))
	}
	return Grid{Shape: append([]int(nil), az.Shape...), Data: gains}, nil
}

// GainAt evaluates the array gain toward a single direction.
func GainAt(positions []vlib.Location3D, e Element, weights vlib.VectorC, spacing float64, dir Direction) (float64, error) {
	el := Scalar(dir.Elevation)
	g, err := Gain(positions, e, weights, spacing, Scalar(dir.Azimuth), &el)
	if err != nil {
		return 0, err
	}
	return g.Float64(), nil
}

// LogScale converts gains with 10*ln(g). This is the natural-log pseudo-dB scale used by
// existing gain plots; it is not decibels. See Db for 10*log10.
func LogScale(g Grid) Grid {
	return g.Map(func(v float64) float64 { return 10 * math.Log(v) })
}

// Db converts gains to decibels, 10*log10(g).
func Db(g Grid) Grid {
	return g.Map(func(v float64) float64 { return 10 * math.Log10(v) })
}
