package antenna_test

import (
	"errors"
	"math"
	"testing"

	"github.com/wiless/phasedarray/antenna"
	"github.com/wiless/phasedarray/arrayerr"
	"github.com/wiless/vlib"
)

func steered(t *testing.T, pos []vlib.Location3D, az float64) vlib.VectorC {
	t.Helper()
	steer := antenna.NewDirection(az)
	w, err := antenna.Synthesize(antenna.Classical, pos, antenna.Monopole{}, 0.5, &steer)
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func TestGainAtSteeringDirection(t *testing.T) {
	pos := linear(4)
	w := steered(t, pos, math.Pi/4)

	peak, err := antenna.GainAt(pos, antenna.Monopole{}, w, 0.5, antenna.NewDirection(math.Pi/4))
	if err != nil {
		t.Fatal(err)
	}
	// matched weights collect the full response norm sqrt(N)
	if math.Abs(peak-2) > 1e-9 {
		t.Errorf("gain at steer = %v, want 2", peak)
	}
	for _, az := range []float64{0, math.Pi / 2} {
		g, err := antenna.GainAt(pos, antenna.Monopole{}, w, 0.5, antenna.NewDirection(az))
		if err != nil {
			t.Fatal(err)
		}
		if g >= peak {
			t.Errorf("gain at %v = %v, not below peak %v", az, g, peak)
		}
	}
}

func TestMainLobeIsMaximum(t *testing.T) {
	for name, pos := range map[string][]vlib.Location3D{"linear": linear(6), "diagonal": diagonal(5), "pair": linear(2)} {
		for _, steerAz := range []float64{-2.2, -0.4, 0.9, 2.7} {
			w := steered(t, pos, steerAz)
			peak, _ := antenna.GainAt(pos, antenna.Monopole{}, w, 0.5, antenna.NewDirection(steerAz))
			sweep := make([]float64, 721)
			for i := range sweep {
				sweep[i] = -math.Pi + 2*math.Pi*float64(i)/720
			}
			gains, err := antenna.Gain(pos, antenna.Monopole{}, w, 0.5, antenna.Vector(sweep...), nil)
			if err != nil {
				t.Fatal(err)
			}
			for i, g := range gains.Data {
				if g > peak+1e-9 {
					t.Errorf("%s steer=%v: gain %v at %v above peak %v", name, steerAz, g, sweep[i], peak)
				}
			}
		}
	}
}

func TestUniformGainBroadside(t *testing.T) {
	pos := linear(4)
	// all elements in phase toward az=pi/2 on a line along x
	g, err := antenna.GainAt(pos, antenna.Monopole{}, vlib.NewOnesC(4), 0.5, antenna.NewDirection(math.Pi/2))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(g-4) > 1e-9 {
		t.Errorf("uniform broadside gain = %v, want 4", g)
	}
}

func TestGainShapePreserved(t *testing.T) {
	pos := diagonal(3)
	w := steered(t, pos, 0.3)

	az, err := antenna.NewGrid([]int{2, 3}, []float64{-1, -0.5, 0, 0.5, 1, 1.5})
	if err != nil {
		t.Fatal(err)
	}
	g, err := antenna.Gain(pos, antenna.Monopole{}, w, 0.5, az, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !g.SameShape(az) || g.Len() != 6 {
		t.Fatalf("shape %v, want %v", g.Shape, az.Shape)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			want, _ := antenna.GainAt(pos, antenna.Monopole{}, w, 0.5, antenna.NewDirection(az.At(i, j)))
			if got := g.At(i, j); math.Abs(got-want) > 1e-12 {
				t.Errorf("g[%d][%d] = %v, want %v", i, j, got, want)
			}
			if g.At(i, j) < 0 {
				t.Errorf("negative gain at %d,%d", i, j)
			}
		}
	}

	s, err := antenna.Gain(pos, antenna.Monopole{}, w, 0.5, antenna.Scalar(0.3), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !s.IsScalar() || s.Len() != 1 {
		t.Errorf("scalar in, shape %v out", s.Shape)
	}
}

func TestGainWithElevation(t *testing.T) {
	pos := linear(4)
	w := vlib.NewOnesC(4)
	az := antenna.Vector(0, 0)
	el := antenna.Vector(0, math.Pi/2)
	g, err := antenna.Gain(pos, antenna.Monopole{}, w, 0.5, az, &el)
	if err != nil {
		t.Fatal(err)
	}
	// looking straight up every element sits in the same phase plane
	if math.Abs(g.Data[0]-4) > 1e-9 {
		t.Errorf("zenith gain = %v, want 4", g.Data[0])
	}
	if math.Abs(g.Data[1]) > 1e-9 {
		t.Errorf("endfire gain = %v, want 0", g.Data[1])
	}
}

func TestGainShapeMismatch(t *testing.T) {
	pos := linear(3)
	w := vlib.NewOnesC(3)
	az, _ := antenna.NewGrid([]int{2, 2}, []float64{0, 1, 2, 3})
	el := antenna.Vector(1, 1, 1, 1)
	if _, err := antenna.Gain(pos, antenna.Monopole{}, w, 0.5, az, &el); !errors.Is(err, arrayerr.ErrShapeMismatch) {
		t.Errorf("got %v, want ErrShapeMismatch", err)
	}
	if _, err := antenna.Gain(pos, antenna.Monopole{}, vlib.NewOnesC(2), 0.5, az, nil); !errors.Is(err, arrayerr.ErrInvalidConfiguration) {
		t.Errorf("short weights: %v", err)
	}
}

func TestGainMalformedGrid(t *testing.T) {
	pos := linear(3)
	w := vlib.NewOnesC(3)
	good := antenna.Vector(0, 1)
	cases := []struct {
		name string
		grid antenna.Grid
	}{
		{"short data", antenna.Grid{Shape: []int{2, 2}, Data: vlib.VectorF{0, 1}}},
		{"zero grid", antenna.Grid{}},
		{"negative dim", antenna.Grid{Shape: []int{-1}, Data: vlib.VectorF{}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := antenna.Gain(pos, antenna.Monopole{}, w, 0.5, c.grid, nil); !errors.Is(err, arrayerr.ErrShapeMismatch) {
				t.Errorf("azimuth: got %v, want ErrShapeMismatch", err)
			}
			el := c.grid
			if _, err := antenna.Gain(pos, antenna.Monopole{}, w, 0.5, good, &el); !errors.Is(err, arrayerr.ErrShapeMismatch) {
				t.Errorf("elevation: got %v, want ErrShapeMismatch", err)
			}
		})
	}
}

func TestGainSpacing(t *testing.T) {
	pos := linear(3)
	w := vlib.NewOnesC(3)
	for _, spacing := range []float64{0, -0.5, math.NaN()} {
		if _, err := antenna.Gain(pos, antenna.Monopole{}, w, spacing, antenna.Scalar(0), nil); !errors.Is(err, arrayerr.ErrInvalidConfiguration) {
			t.Errorf("spacing %v: got %v, want ErrInvalidConfiguration", spacing, err)
		}
	}
}

func TestGridConstruction(t *testing.T) {
	if _, err := antenna.NewGrid([]int{2, 2}, []float64{1, 2, 3}); !errors.Is(err, arrayerr.ErrShapeMismatch) {
		t.Errorf("short data: %v", err)
	}
	m := vlib.NewMatrixF(2, 3)
	m[1][2] = 7
	g, err := antenna.FromMatrix(m)
	if err != nil {
		t.Fatal(err)
	}
	if g.At(1, 2) != 7 || g.Shape[0] != 2 || g.Shape[1] != 3 {
		t.Errorf("FromMatrix = %+v", g)
	}
	back, err := g.Matrix()
	if err != nil || back[1][2] != 7 {
		t.Errorf("Matrix = %v, %v", back, err)
	}
	if _, err := antenna.Vector(1, 2).Matrix(); !errors.Is(err, arrayerr.ErrShapeMismatch) {
		t.Errorf("1-D Matrix: %v", err)
	}
}

func TestLogScaleUsesNaturalLog(t *testing.T) {
	g := antenna.Vector(1, math.E, 10)
	ln := antenna.LogScale(g)
	db := antenna.Db(g)
	if ln.Data[0] != 0 || math.Abs(ln.Data[1]-10) > 1e-12 {
		t.Errorf("LogScale = %v", ln.Data)
	}
	if math.Abs(db.Data[2]-10) > 1e-12 {
		t.Errorf("Db = %v", db.Data)
	}
}
