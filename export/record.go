package export

import (
	"fmt"
	"os"

	"github.com/wiless/phasedarray"
	"github.com/wiless/phasedarray/geometry"
	"github.com/wiless/vlib"
)

// Record is the JSON form of an array. Weights are split into real and imaginary parts.
type Record struct {
	Setting   phasedarray.Setting
	Layout    string
	Positions []vlib.Location3D
	Bounds    geometry.Bounds
	WeightsRe vlib.VectorF
	WeightsIm vlib.VectorF
}

func NewRecord(arr *phasedarray.Array) Record {
	geom := arr.Geometry()
	w := arr.Weights()
	result := Record{
		Setting:   arr.Setting(),
		Layout:    geom.Layout.String(),
		Positions: geom.Positions,
		Bounds:    geom.Bounds(),
		WeightsRe: vlib.NewVectorF(len(w)),
		WeightsIm: vlib.NewVectorF(len(w)),
	}
	for k, v := range w {
		result.WeightsRe[k], result.WeightsIm[k] = real(v), imag(v)
	}
	return result
}

// SaveJSON stores the record of arr in fname, replacing any existing file.
func SaveJSON(fname string, arr *phasedarray.Array) (err error) {
	if err := os.Remove(fname); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("export: replace %s: %w", fname, err)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("export: save %s: %v", fname, r)
		}
	}()
	vlib.SaveStructure(NewRecord(arr), fname, true)
	// vlib only prints when the file cannot be created
	if _, serr := os.Stat(fname); serr != nil {
		return fmt.Errorf("export: save %s: %w", fname, serr)
	}
	return nil
}

// LoadJSON reads a record saved by SaveJSON.
func LoadJSON(fname string) (result Record, err error) {
	if _, err := os.Stat(fname); err != nil {
		return Record{}, fmt.Errorf("export: load %s: %w", fname, err)
	}
	defer func() {
		if r := recover(); r != nil {
			result, err = Record{}, fmt.Errorf("export: load %s: %v", fname, r)
		}
	}()
	vlib.LoadStructure(fname, &result)
	if len(result.Positions) == 0 {
		return Record{}, fmt.Errorf("export: load %s: no array record", fname)
	}
	return result, nil
}

// Array rebuilds the array from the stored setting. Random layouts come back identical
// only when the setting carries a seed.
func (r Record) Array() (*phasedarray.Array, error) {
	return phasedarray.New(r.Setting)
}
