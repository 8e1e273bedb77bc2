// Package antenna implements element responses, beam weights and the array gain pattern
// of a phased array under the far-field narrowband phase model.
package antenna

import (
	"fmt"
	"math"
	"strings"

	"github.com/wiless/phasedarray/arrayerr"
	"github.com/wiless/vlib"
)

// Element maps a look direction to the unit propagation vector used in the phase term.
type Element interface {
	Propagation(dir Direction) vlib.Location3D
}

// DirectionalElement is an Element whose amplitude depends on direction.
// Evaluators scale each element term by Response; plain Elements contribute amplitude 1.
type DirectionalElement interface {
	Element
	Response(dir Direction) float64
}

// Monopole is the isotropic element, uniform over azimuth.
type Monopole struct{}

func (Monopole) Propagation(dir Direction) vlib.Location3D {
	sinEl := math.Sin(dir.Elevation)
	return vlib.Location3D{
		X: math.Cos(dir.Azimuth) * sinEl,
		Y: math.Sin(dir.Azimuth) * sinEl,
		Z: math.Cos(dir.Elevation),
	}
}

type ElementType int

var ElementTypes = [...]string{
	"monopole",
}

const (
	MonopoleElement ElementType = iota
)

func (e ElementType) String() string {
	if int(e) < 0 || int(e) >= len(ElementTypes) {
		return "Unknown-ElementType"
	}
	return ElementTypes[e]
}

// ParseElementType maps a case-insensitive name to its ElementType.
func ParseElementType(name string) (ElementType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, v := range ElementTypes {
		if v == name {
			return ElementType(i), nil
		}
	}
	return 0, fmt.Errorf("antenna: unknown element type %q: %w", name, arrayerr.ErrInvalidConfiguration)
}

// NewElement returns the element model of the given type.
func NewElement(e ElementType) (Element, error) {
	switch e {
	case MonopoleElement:
		return Monopole{}, nil
	default:
		return nil, fmt.Errorf("antenna: element type %d: %w", int(e), arrayerr.ErrInvalidConfiguration)
	}
}

// amplitude is the element response toward dir, 1 for non-directional elements.
func amplitude(e Element, dir Direction) float64 {
	if de, ok := e.(DirectionalElement); ok {
		return de.Response(dir)
	}
	return 1
}

func dot(a, b vlib.Location3D) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}
