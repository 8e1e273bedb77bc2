package antenna

import (
	"fmt"

	"github.com/wiless/phasedarray/arrayerr"
	"github.com/wiless/vlib"
)

// Grid is an N-dimensional batch of angles or gains stored row-major.
// An empty Shape is a scalar holding exactly one value.
type Grid struct {
	Shape []int
	Data  vlib.VectorF
}

// Scalar returns a 0-dimensional grid.
func Scalar(v float64) Grid {
	return Grid{Data: vlib.VectorF{v}}
}

// Vector returns a 1-dimensional grid over a copy of values.
func Vector(values ...float64) Grid {
	data := vlib.NewVectorF(len(values))
	copy(data, values)
	return Grid{Shape: []int{len(values)}, Data: data}
}

// NewGrid returns a grid of the given shape over a copy of data.
func NewGrid(shape []int, data []float64) (Grid, error) {
	if err := checkShape(shape, len(data)); err != nil {
		return Grid{}, err
	}
	g := Grid{Shape: append([]int(nil), shape...), Data: vlib.NewVectorF(len(data))}
	copy(g.Data, data)
	return g, nil
}

// checkShape reports whether shape holds exactly n values.
func checkShape(shape []int, n int) error {
	size := 1
	for _, d := range shape {
		if d < 0 {
			return fmt.Errorf("antenna: negative dimension in shape %v: %w", shape, arrayerr.ErrShapeMismatch)
		}
		size *= d
	}
	if size != n {
		return fmt.Errorf("antenna: shape %v holds %d values, got %d: %w", shape, size, n, arrayerr.ErrShapeMismatch)
	}
	return nil
}

// valid catches grids built as literals instead of through NewGrid. The zero Grid is a
// scalar without a value and is rejected.
func (g Grid) valid() error {
	return checkShape(g.Shape, len(g.Data))
}

// FromMatrix returns a rows x cols grid; m must be rectangular.
func FromMatrix(m vlib.MatrixF) (Grid, error) {
	rows := len(m)
	cols := 0
	if rows > 0 {
		cols = len(m[0])
	}
	data := make([]float64, 0, rows*cols)
	for i := range m {
		if len(m[i]) != cols {
			return Grid{}, fmt.Errorf("antenna: row %d has %d columns, want %d: %w", i, len(m[i]), cols, arrayerr.ErrShapeMismatch)
		}
		for j := range m[i] {
			data = append(data, m[i][j])
		}
	}
	return NewGrid([]int{rows, cols}, data)
}

// Len returns the number of values in the grid.
func (g Grid) Len() int { return len(g.Data) }

func (g Grid) IsScalar() bool { return len(g.Shape) == 0 }

// SameShape reports whether g and o have identical dimensions.
func (g Grid) SameShape(o Grid) bool {
	if len(g.Shape) != len(o.Shape) {
		return false
	}
	for i := range g.Shape {
		if g.Shape[i] != o.Shape[i] {
			return false
		}
	}
	return true
}

// At returns the value at the given multi-index. It panics when idx is out of range.
func (g Grid) At(idx ...int) float64 {
	if len(idx) != len(g.Shape) {
		panic(fmt.Sprintf("antenna: index %v on grid of shape %v", idx, g.Shape))
	}
	offset := 0
	for i, v := range idx {
		if v < 0 || v >= g.Shape[i] {
			panic(fmt.Sprintf("antenna: index %v out of range for shape %v", idx, g.Shape))
		}
		offset = offset*g.Shape[i] + v
	}
	return g.Data[offset]
}

// Float64 returns the value of a scalar grid.
func (g Grid) Float64() float64 {
	return g.Data[0]
}

// Matrix returns a 2-dimensional grid as rows.
func (g Grid) Matrix() (vlib.MatrixF, error) {
	if len(g.Shape) != 2 {
		return nil, fmt.Errorf("antenna: grid of shape %v is not a matrix: %w", g.Shape, arrayerr.ErrShapeMismatch)
	}
	rows, cols := g.Shape[0], g.Shape[1]
	m := vlib.NewMatrixF(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m[i][j] = g.Data[i*cols+j]
		}
	}
	return m, nil
}

// Map returns a same-shape grid with fn applied to every value.
func (g Grid) Map(fn func(float64) float64) Grid {
	out := Grid{Shape: append([]int(nil), g.Shape...), Data: vlib.NewVectorF(len(g.Data))}
	for i, v := range g.Data {
		out.Data[i] = fn(v)
	}
	return out
}
