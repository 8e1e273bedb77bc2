// Package phasedarray builds phased antenna arrays and evaluates their far-field gain.
//
// An Array combines three independent choices: the element layout (package geometry), the
// element model and the beamforming strategy (package antenna). Everything is fixed when the
// Array is built; a differently steered beam needs a new Array.
package phasedarray

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/wiless/phasedarray/antenna"
	"github.com/wiless/phasedarray/arrayerr"
	"github.com/wiless/phasedarray/geometry"
	"github.com/wiless/vlib"
	"gonum.org/v1/gonum/floats"
)

type Array struct {
	setting  Setting
	geom     geometry.Geometry
	element  antenna.Element
	strategy antenna.Strategy
	steer    *antenna.Direction
	weights  vlib.VectorC
}

// New builds the geometry, element model and beam weights described by s.
// It returns either a complete Array or an error, never a partial one.
func New(s Setting) (*Array, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	layout, _ := geometry.ParseLayout(s.Layout)
	etype, _ := antenna.ParseElementType(s.Element)
	strategy, _ := antenna.ParseStrategy(s.Beamforming)

	var seed int64
	if s.Seed != nil {
		seed = *s.Seed
	} else {
		seed = time.Now().UnixNano()
	}
	src := rand.New(rand.NewSource(seed))

	geom, err := geometry.Build(layout, s.N, s.WavelengthSpacing, src)
	if err != nil {
		return nil, err
	}
	element, err := antenna.NewElement(etype)
	if err != nil {
		return nil, err
	}
	steer := s.SteerDirection()
	weights, err := antenna.Synthesize(strategy, geom.Positions, element, s.WavelengthSpacing, steer)
	if err != nil {
		return nil, err
	}

	result := &Array{
		setting:  s,
		geom:     geom,
		element:  element,
		strategy: strategy,
		steer:    steer,
		weights:  weights,
	}
	log.WithFields(log.Fields{
		"layout":   layout.String(),
		"elements": s.N,
		"spacing":  s.WavelengthSpacing,
		"strategy": strategy.String(),
	}).Debug("array created")
	return result, nil
}

// Setting returns the configuration the array was built from.
func (a *Array) Setting() Setting { return a.setting }

func (a *Array) Spacing() float64 { return a.geom.Spacing }

func (a *Array) Len() int { return a.geom.Len() }

func (a *Array) Element() antenna.Element { return a.element }

func (a *Array) Strategy() antenna.Strategy { return a.strategy }

// Steer returns the steering direction of a classical beam.
func (a *Array) Steer() (antenna.Direction, bool) {
	if a.steer == nil {
		return antenna.Direction{}, false
	}
	return *a.steer, true
}

// Geometry returns a copy of the element layout.
func (a *Array) Geometry() geometry.Geometry {
	g := a.geom
	g.Positions = append([]vlib.Location3D(nil), a.geom.Positions...)
	return g
}

// Weights returns a copy of the beam weights.
func (a *Array) Weights() vlib.VectorC {
	w := vlib.NewVectorC(len(a.weights))
	copy(w, a.weights)
	return w
}

// Gain evaluates the array gain over a batch of azimuths, and optionally elevations of
// the same shape. The result has the shape of az.
func (a *Array) Gain(az antenna.Grid, el *antenna.Grid) (antenna.Grid, error) {
	return antenna.Gain(a.geom.Positions, a.element, a.weights, a.geom.Spacing, az, el)
}

// GainAt evaluates the array gain toward one direction.
func (a *Array) GainAt(dir antenna.Direction) (float64, error) {
	return antenna.GainAt(a.geom.Positions, a.element, a.weights, a.geom.Spacing, dir)
}

// NormalizedGain scales Gain by 1/(|w| sqrt(N)). For isotropic elements the result lies
// in [0,1] and reaches 1 at the steering direction of a classical beam.
func (a *Array) NormalizedGain(az antenna.Grid, el *antenna.Grid) (antenna.Grid, error) {
	g, err := a.Gain(az, el)
	if err != nil {
		return antenna.Grid{}, err
	}
	scale := 1.0 / (antenna.Norm(a.weights) * math.Sqrt(float64(a.Len())))
	return g.Map(func(v float64) float64 { return v * scale }), nil
}

// AzimuthCut samples the gain at nPts azimuths evenly spaced over the closed range
// [minAz, maxAz] on the broadside plane. Both endpoints are included and the angles are not
// wrapped, so the default [-pi, pi] cut evaluates the same direction first and last.
// With logScale the gains are converted by antenna.LogScale.
func (a *Array) AzimuthCut(nPts int, minAz, maxAz float64, logScale bool) (az, gain vlib.VectorF, err error) {
	if nPts < 2 {
		return nil, nil, fmt.Errorf("phasedarray: azimuth cut needs at least 2 points, got %d: %w", nPts, arrayerr.ErrInvalidConfiguration)
	}
	az = vlib.NewVectorF(nPts)
	floats.Span(az, minAz, maxAz)
	g, err := a.Gain(antenna.Vector(az...), nil)
	if err != nil {
		return nil, nil, err
	}
	if logScale {
		g = antenna.LogScale(g)
	}
	return az, g.Data, nil
}

// PolarPattern is the gain over an (azimuth x radius) grid, the input of a filled polar
// contour plot. Far-field gain does not depend on the radius, so every row is constant.
type PolarPattern struct {
	Azimuth antenna.Grid // nAz x nRadii
	Radius  vlib.VectorF
	Gain    antenna.Grid // same shape as Azimuth
}

// PolarGrid evaluates the gain over nAz azimuths in [-pi, pi] and nRadii radii in
// [0, maxRadius].
func (a *Array) PolarGrid(nAz, nRadii int, maxRadius float64) (PolarPattern, error) {
	if nAz < 2 || nRadii < 2 || !(maxRadius > 0) {
		return PolarPattern{}, fmt.Errorf("phasedarray: polar grid %dx%d radius %v: %w", nAz, nRadii, maxRadius, arrayerr.ErrInvalidConfiguration)
	}
	angles := floats.Span(make([]float64, nAz), -math.Pi, math.Pi)
	radii := vlib.NewVectorF(nRadii)
	floats.Span(radii, 0, maxRadius)

	data := make([]float64, 0, nAz*nRadii)
	for _, theta := range angles {
		for range radii {
			data = append(data, theta)
		}
	}
	azGrid, err := antenna.NewGrid([]int{nAz, nRadii}, data)
	if err != nil {
		return PolarPattern{}, err
	}
	gain, err := a.Gain(azGrid, nil)
	if err != nil {
		return PolarPattern{}, err
	}
	return PolarPattern{Azimuth: azGrid, Radius: radii, Gain: gain}, nil
}
