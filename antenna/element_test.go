package antenna_test

import (
	"errors"
	"math"
	"testing"

	"github.com/wiless/phasedarray/antenna"
	"github.com/wiless/phasedarray/arrayerr"
	"github.com/wiless/vlib"
)

func TestMonopolePropagationIsUnit(t *testing.T) {
	var m antenna.Monopole
	for _, az := range []float64{-7, -math.Pi, -1, 0, 0.3, math.Pi / 4, math.Pi, 12} {
		for _, el := range []float64{0, 0.2, math.Pi / 2, 2.5, math.Pi} {
			p := m.Propagation(antenna.Direction{Azimuth: az, Elevation: el})
			norm := math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
			if math.Abs(norm-1) > 1e-12 {
				t.Fatalf("|prop(%v,%v)| = %v", az, el, norm)
			}
		}
	}
}

func TestMonopoleBroadside(t *testing.T) {
	p := antenna.Monopole{}.Propagation(antenna.NewDirection(math.Pi / 2))
	if math.Abs(p.X) > 1e-12 || math.Abs(p.Y-1) > 1e-12 || math.Abs(p.Z) > 1e-12 {
		t.Errorf("prop(pi/2) = %+v, want (0,1,0)", p)
	}
}

func TestParseElementType(t *testing.T) {
	e, err := antenna.ParseElementType(" Monopole ")
	if err != nil || e != antenna.MonopoleElement {
		t.Fatalf("ParseElementType = %v, %v", e, err)
	}
	if _, err := antenna.NewElement(e); err != nil {
		t.Fatal(err)
	}
	if _, err := antenna.ParseElementType("patch"); !errors.Is(err, arrayerr.ErrInvalidConfiguration) {
		t.Errorf("patch: got %v", err)
	}
}

// halfWave answers half amplitude in every direction.
type halfWave struct{ antenna.Monopole }

func (halfWave) Response(antenna.Direction) float64 { return 0.5 }

func TestDirectionalElementScalesGain(t *testing.T) {
	pos := []vlib.Location3D{{X: 0}, {X: 1}, {X: 2}}
	w := vlib.NewOnesC(len(pos))
	dir := antenna.NewDirection(0.7)

	iso, err := antenna.GainAt(pos, antenna.Monopole{}, w, 0.5, dir)
	if err != nil {
		t.Fatal(err)
	}
	half, err := antenna.GainAt(pos, halfWave{}, w, 0.5, dir)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(half-iso/2) > 1e-12 {
		t.Errorf("directional gain %v, want %v", half, iso/2)
	}
}

func TestWrapPi(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi, math.Pi},
		{-3 * math.Pi / 2, math.Pi / 2},
		{5 * math.Pi / 4, -3 * math.Pi / 4},
		{2 * math.Pi, 0},
	}
	for _, tc := range tests {
		if got := antenna.WrapPi(tc.in); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("WrapPi(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
	d := antenna.Direction{Azimuth: 7 * math.Pi / 4, Elevation: 1}.Canonical()
	if math.Abs(d.Azimuth+math.Pi/4) > 1e-12 || d.Elevation != 1 {
		t.Errorf("Canonical = %v", d)
	}
}
