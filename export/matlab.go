// Package export hands array geometry and gain patterns to external plotting tools,
// as MATLAB scripts or JSON records.
package export

import (
	"fmt"
	"io"
	"math"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/wiless/phasedarray"
	"github.com/wiless/phasedarray/arrayerr"
	"github.com/wiless/vlib"
)

// Options controls what WriteMatlab samples.
type Options struct {
	CutPoints   int     // azimuth samples of the gain line
	PolarAz     int     // azimuth samples of the polar grid, 0 skips it
	PolarRadii  int     // radius samples of the polar grid
	PolarRadius float64 // outer radius of the polar grid
	LogScale    bool    // gain line in 10*ln(g)
	HoldOn      bool    // draw into the current figures
}

func DefaultOptions() Options {
	return Options{
		CutPoints:   50,
		PolarAz:     50,
		PolarRadii:  10,
		PolarRadius: 1000,
		LogScale:    true,
	}
}

// WriteMatlab writes the element scatter, beam weights, gain-vs-azimuth line and the polar
// gain grid of arr as a MATLAB script to w.
func WriteMatlab(w io.Writer, arr *phasedarray.Array, opt Options) error {
	var matlab vlib.Matlab
	matlab.SetDefaults()
	matlab.SetWriter(w)
	return writeMatlab(&matlab, arr, opt)
}

// SaveMatlab is WriteMatlab into the file fname.
func SaveMatlab(fname string, arr *phasedarray.Array, opt Options) error {
	fd, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", fname, err)
	}
	defer fd.Close()
	log.Infof("writing %s", fname)
	return WriteMatlab(fd, arr, opt)
}

func writeMatlab(matlab *vlib.Matlab, arr *phasedarray.Array, opt Options) error {
	if arr == nil {
		return fmt.Errorf("export: nil array: %w", arrayerr.ErrInvalidConfiguration)
	}
	az, gain, err := arr.AzimuthCut(opt.CutPoints, -math.Pi, math.Pi, opt.LogScale)
	if err != nil {
		return err
	}
	var polar phasedarray.PolarPattern
	if opt.PolarAz > 0 {
		polar, err = arr.PolarGrid(opt.PolarAz, opt.PolarRadii, opt.PolarRadius)
		if err != nil {
			return err
		}
	}

	geom := arr.Geometry()
	xs, ys, _ := geom.Coords()
	lo, hi := geom.Bounds().PlotLimits(1)

	matlab.Silent = true
	matlab.Export("N", geom.Len())
	matlab.Export("X", xs)
	matlab.Export("Y", ys)
	matlab.Export("Weights", arr.Weights())
	matlab.Export("Azimuth", az)
	matlab.Export("Gain", gain)

	if !opt.HoldOn {
		matlab.Command("figure;")
	}
	matlab.Command("plot(X,Y,'o','Color',[0.27 0.51 0.71]);")
	matlab.Command(fmt.Sprintf("xlim([%g %g]); ylim([%g %g]);", lo.X, hi.X, lo.Y, hi.Y))
	matlab.Command("grid on;")

	if !opt.HoldOn {
		matlab.Command("figure;")
	}
	matlab.Command("plot(Azimuth,Gain,'Color',[0.27 0.51 0.71]);")

	if opt.PolarAz > 0 {
		matlab.Export("PolarAz", polar.Azimuth.Data)
		matlab.Export("PolarR", polar.Radius)
		matlab.Export("PolarGain", polar.Gain.Data)
		nAz, nR := polar.Gain.Shape[0], polar.Gain.Shape[1]
		matlab.Command(fmt.Sprintf("PolarAz=reshape(PolarAz,%d,%d)';", nR, nAz))
		matlab.Command(fmt.Sprintf("PolarGain=reshape(PolarGain,%d,%d)';", nR, nAz))
		matlab.Command("[XX,YY]=pol2cart(PolarAz,repmat(PolarR(:)',size(PolarAz,1),1));")
		if !opt.HoldOn {
			matlab.Command("figure;")
		}
		matlab.Command("contourf(XX,YY,PolarGain);")
		matlab.Command("hold on; plot(X,Y,'w*');")
	}
	if err := matlab.Close(); err != nil {
		return fmt.Errorf("export: close matlab script: %w", err)
	}
	return nil
}
