package antenna

import (
	"math"
	"math/cmplx"

	"github.com/wiless/vlib"
)

// ResponseVector returns the per-element phase response toward dir,
//   resp[k] = a(dir) * exp(-2j*pi * (p[k] . prop(dir)) * spacing)
// where a is the element amplitude (1 for isotropic elements).
func ResponseVector(positions []vlib.Location3D, e Element, spacing float64, dir Direction) vlib.VectorC {
	prop := e.Propagation(dir)
	amp := complex(amplitude(e, dir), 0)
	result := vlib.NewVectorC(len(positions))
	for k, p := range positions {
		phase := 2.0 * math.Pi * dot(p, prop) * spacing
		result[k] = amp * cmplx.Exp(complex(0.0, -phase))
	}
	return result
}

// Inner returns the Hermitian inner product w^H r.
func Inner(w, r vlib.VectorC) complex128 {
	var sum complex128
	for k := range w {
		sum += cmplx.Conj(w[k]) * r[k]
	}
	return sum
}

// Norm returns the Hermitian norm sqrt(w^H w).
func Norm(w vlib.VectorC) float64 {
	return math.Sqrt(real(Inner(w, w)))
}
