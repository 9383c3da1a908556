package flowfield

import (
	"errors"
	"testing"
)

func TestFromComponents(t *testing.T) {
	tests := []struct {
		name    string
		x, y    [][]float64
		wantErr bool
	}{
		{
			name: "2x2",
			x:    [][]float64{{1, 2}, {3, 4}},
			y:    [][]float64{{5, 6}, {7, 8}},
		},
		{
			name: "single sample",
			x:    [][]float64{{1}},
			y:    [][]float64{{2}},
		},
		{
			name:    "row count mismatch",
			x:       [][]float64{{1, 2}},
			y:       [][]float64{{1, 2}, {3, 4}},
			wantErr: true,
		},
		{
			name:    "column count mismatch",
			x:       [][]float64{{1, 2}, {3, 4}},
			y:       [][]float64{{1, 2}, {3}},
			wantErr: true,
		},
		{
			name:    "ragged x",
			x:       [][]float64{{1, 2}, {3}},
			y:       [][]float64{{1, 2}, {3, 4}},
			wantErr: true,
		},
		{
			name:    "empty",
			x:       [][]float64{},
			y:       [][]float64{},
			wantErr: true,
		},
		{
			name:    "empty rows",
			x:       [][]float64{{}},
			y:       [][]float64{{}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := FromComponents(tt.x, tt.y)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFieldShape) {
					t.Fatalf("FromComponents error = %v, want ErrInvalidFieldShape", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromComponents: %v", err)
			}
			if f.Rows != len(tt.x) || f.Cols != len(tt.x[0]) {
				t.Errorf("dims = %dx%d, want %dx%d", f.Rows, f.Cols, len(tt.x), len(tt.x[0]))
			}
			for r := 0; r < f.Rows; r++ {
				for c := 0; c < f.Cols; c++ {
					want := complex(tt.x[r][c], tt.y[r][c])
					if got := f.At(r, c); got != want {
						t.Errorf("At(%d,%d) = %v, want %v", r, c, got, want)
					}
				}
			}
		})
	}
}

func TestFromComplex(t *testing.T) {
	f, err := FromComplex([][]complex128{{1 + 2i, 3 + 4i}, {5 + 6i, 7 + 8i}})
	if err != nil {
		t.Fatalf("FromComplex: %v", err)
	}
	if f.Rows != 2 || f.Cols != 2 {
		t.Fatalf("dims = %dx%d, want 2x2", f.Rows, f.Cols)
	}
	if got := f.At(1, 0); got != 5+6i {
		t.Errorf("At(1,0) = %v, want 5+6i", got)
	}

	if _, err := FromComplex([][]complex128{{1}, {1, 2}}); !errors.Is(err, ErrInvalidFieldShape) {
		t.Errorf("ragged grid error = %v, want ErrInvalidFieldShape", err)
	}
	if _, err := FromComplex(nil); !errors.Is(err, ErrInvalidFieldShape) {
		t.Errorf("nil grid error = %v, want ErrInvalidFieldShape", err)
	}
}

func TestFromVectors(t *testing.T) {
	f, err := FromVectors([][][2]float64{
		{{1, 0}, {0, 1}},
		{{-1, 0}, {0, -1}},
	})
	if err != nil {
		t.Fatalf("FromVectors: %v", err)
	}
	want := []complex128{1, 1i, -1, -1i}
	for i, w := range want {
		if got := f.At(i/2, i%2); got != w {
			t.Errorf("sample %d = %v, want %v", i, got, w)
		}
	}
}

func TestValuesIsACopy(t *testing.T) {
	f, err := FromComplex([][]complex128{{1, 2}})
	if err != nil {
		t.Fatalf("FromComplex: %v", err)
	}
	v := f.Values()
	v[0] = 99
	if got := f.At(0, 0); got != 1 {
		t.Errorf("field mutated through Values(): At(0,0) = %v, want 1", got)
	}
}
