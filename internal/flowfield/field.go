// Package flowfield defines the motion-field data model consumed by the
// visualization packages. A field is a dense 2-D grid of displacement
// vectors; callers may supply it as separate x/y component planes, as
// per-pixel (x, y) pairs, or directly as complex values with x in the real
// part and y in the imaginary part. All three forms resolve to one internal
// complex representation at construction time.
package flowfield

import (
	"errors"
	"fmt"
)

// ErrInvalidFieldShape reports a motion field that is neither a pair of
// equally shaped component planes nor a rectangular complex grid.
var ErrInvalidFieldShape = errors.New("flowfield: input must be a real RxCx2 vector grid or a complex RxC grid")

// Field is a motion field in its resolved complex form. Rows*Cols samples
// are stored row-major; sample (r, c) has x motion in the real part and y
// motion in the imaginary part.
type Field struct {
	Rows, Cols int
	w          []complex128
}

// FromComplex builds a field from a rectangular grid of complex samples.
func FromComplex(w [][]complex128) (*Field, error) {
	rows, cols, err := gridDims(len(w), func(r int) int { return len(w[r]) })
	if err != nil {
		return nil, err
	}
	f := &Field{Rows: rows, Cols: cols, w: make([]complex128, rows*cols)}
	for r := 0; r < rows; r++ {
		copy(f.w[r*cols:(r+1)*cols], w[r])
	}
	return f, nil
}

// FromComponents builds a field from separate x and y component planes.
// Both planes must be rectangular and identically shaped.
func FromComponents(x, y [][]float64) (*Field, error) {
	rows, cols, err := gridDims(len(x), func(r int) int { return len(x[r]) })
	if err != nil {
		return nil, err
	}
	if len(y) != rows {
		return nil, fmt.Errorf("x is %dx%d but y has %d rows: %w", rows, cols, len(y), ErrInvalidFieldShape)
	}
	f := &Field{Rows: rows, Cols: cols, w: make([]complex128, rows*cols)}
	for r := 0; r < rows; r++ {
		if len(y[r]) != cols {
			return nil, fmt.Errorf("x is %dx%d but y row %d has %d columns: %w", rows, cols, r, len(y[r]), ErrInvalidFieldShape)
		}
		for c := 0; c < cols; c++ {
			f.w[r*cols+c] = complex(x[r][c], y[r][c])
		}
	}
	return f, nil
}

// FromVectors builds a field from a grid of (x, y) pairs.
func FromVectors(v [][][2]float64) (*Field, error) {
	rows, cols, err := gridDims(len(v), func(r int) int { return len(v[r]) })
	if err != nil {
		return nil, err
	}
	f := &Field{Rows: rows, Cols: cols, w: make([]complex128, rows*cols)}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			f.w[r*cols+c] = complex(v[r][c][0], v[r][c][1])
		}
	}
	return f, nil
}

// At returns the complex sample at row r, column c.
func (f *Field) At(r, c int) complex128 {
	return f.w[r*f.Cols+c]
}

// Values returns a fresh copy of the samples in row-major order. Mutating
// the returned slice does not affect the field.
func (f *Field) Values() []complex128 {
	out := make([]complex128, len(f.w))
	copy(out, f.w)
	return out
}

func gridDims(rows int, colsAt func(int) int) (int, int, error) {
	if rows == 0 {
		return 0, 0, fmt.Errorf("empty grid: %w", ErrInvalidFieldShape)
	}
	cols := colsAt(0)
	if cols == 0 {
		return 0, 0, fmt.Errorf("empty grid row: %w", ErrInvalidFieldShape)
	}
	for r := 1; r < rows; r++ {
		if colsAt(r) != cols {
			return 0, 0, fmt.Errorf("ragged grid: row %d has %d columns, row 0 has %d: %w", r, colsAt(r), cols, ErrInvalidFieldShape)
		}
	}
	return rows, cols, nil
}
