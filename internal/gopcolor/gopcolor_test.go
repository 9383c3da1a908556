package gopcolor

import (
	"errors"
	"math"
	"testing"

	"github.com/Parskatt/tsbb15-labs/internal/flowfield"
)

const tol = 1e-12

func mustField(t *testing.T, w [][]complex128) *flowfield.Field {
	t.Helper()
	f, err := flowfield.FromComplex(w)
	if err != nil {
		t.Fatalf("FromComplex: %v", err)
	}
	return f
}

func TestEncodeShapeAndRange(t *testing.T) {
	f := mustField(t, [][]complex128{
		{0.3 + 0.1i, -2 + 5i, 1i},
		{-0.25i, 4, -3 - 3i},
	})
	im, err := Encode(f, 1)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if im.Rows != 2 || im.Cols != 3 {
		t.Fatalf("dims = %dx%d, want 2x3", im.Rows, im.Cols)
	}
	if len(im.Pix) != 2*3*3 {
		t.Fatalf("len(Pix) = %d, want 18", len(im.Pix))
	}
	for i, v := range im.Pix {
		if v < 0 || v > 1 {
			t.Errorf("Pix[%d] = %v outside [0,1]", i, v)
		}
	}
}

func TestEncodeZeroField(t *testing.T) {
	f := mustField(t, [][]complex128{{0, 0}, {0, 0}, {0, 0}})
	im, err := Encode(f, 1)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	for i, v := range im.Pix {
		if v != 0 {
			t.Fatalf("Pix[%d] = %v, want all-black image for zero field", i, v)
		}
	}
}

func TestEncodeZeroScale(t *testing.T) {
	f := mustField(t, [][]complex128{{1 + 2i, -3}, {5i, 7 - 7i}})
	im, err := Encode(f, 0)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	for i, v := range im.Pix {
		if v != 0 {
			t.Fatalf("Pix[%d] = %v, want black image for scale 0", i, v)
		}
	}
}

func TestEncodeInvalidScale(t *testing.T) {
	f := mustField(t, [][]complex128{{1}})
	for _, scale := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := Encode(f, scale); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("Encode(scale=%v) error = %v, want ErrInvalidParameter", scale, err)
		}
	}
}

func TestEncodeUniformField(t *testing.T) {
	// Every vector shares angle and magnitude, so after peak normalization
	// every sample has magnitude 1 and all pixels get the identical color.
	w := 3 + 4i
	f := mustField(t, [][]complex128{{w, w}, {w, w}})
	im, err := Encode(f, 1)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	norm := w / complex(math.Hypot(3, 4), 0)
	theta := math.Pi + math.Atan2(imag(-norm), real(-norm))
	want := wheelAt(theta)

	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			got := im.At(r, c)
			for ch := range got {
				if math.Abs(got[ch]-want[ch]) > tol {
					t.Fatalf("pixel (%d,%d) channel %d = %v, want %v", r, c, ch, got[ch], want[ch])
				}
			}
		}
	}
}

func TestEncodeSaturationInvariance(t *testing.T) {
	f := mustField(t, [][]complex128{{2 + 1i, 0.1}})
	base, err := Encode(f, 1)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	boosted, err := Encode(f, 50)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	// The peak-magnitude sample clips to intensity 1 at scale >= 1; raising
	// the scale further must not change it.
	got, want := boosted.At(0, 0), base.At(0, 0)
	for ch := range got {
		if math.Abs(got[ch]-want[ch]) > tol {
			t.Errorf("peak sample channel %d changed with scale: %v vs %v", ch, got[ch], want[ch])
		}
	}
}

func TestEncodeQuarterTurns(t *testing.T) {
	// Four unit vectors a quarter turn apart hit table entries 0, 64, 128
	// and 192 under the pi + angle(-w) convention, all at full intensity.
	f, err := flowfield.FromVectors([][][2]float64{
		{{1, 0}, {0, 1}},
		{{-1, 0}, {0, -1}},
	})
	if err != nil {
		t.Fatalf("FromVectors: %v", err)
	}
	im, err := Encode(f, 1)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	wantEntries := map[[2]int]int{
		{0, 0}: 0,   // (1,0): angle(-1) = pi, theta = 2*pi, wraps to entry 0
		{0, 1}: 64,  // (0,1): theta = pi/2
		{1, 0}: 128, // (-1,0): theta = pi
		{1, 1}: 192, // (0,-1): theta = 3*pi/2
	}
	for pos, entry := range wantEntries {
		got := im.At(pos[0], pos[1])
		want := wheelTable[entry]
		for ch := range got {
			if math.Abs(got[ch]-want[ch]) > tol {
				t.Errorf("pixel %v channel %d = %v, want table[%d][%d] = %v",
					pos, ch, got[ch], entry, ch, want[ch])
			}
		}
	}

	colors := make(map[[3]float64]bool)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			colors[im.At(r, c)] = true
		}
	}
	if len(colors) != 4 {
		t.Errorf("quarter-turn vectors produced %d distinct colors, want 4", len(colors))
	}
}

func TestEncodeDoesNotMutateInput(t *testing.T) {
	f := mustField(t, [][]complex128{{3 + 4i, 1}})
	if _, err := Encode(f, 2); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got := f.At(0, 0); got != 3+4i {
		t.Errorf("input field mutated: At(0,0) = %v, want 3+4i", got)
	}
}

func TestToRGBA(t *testing.T) {
	im := &Image{Rows: 1, Cols: 2, Pix: []float64{1, 0, 0.5, 0, 1, 0}}
	rgba := im.ToRGBA()
	if got := rgba.Bounds(); got.Dx() != 2 || got.Dy() != 1 {
		t.Fatalf("bounds = %v, want 2x1", got)
	}
	px := rgba.RGBAAt(0, 0)
	if px.R != 255 || px.G != 0 || px.B != 128 || px.A != 255 {
		t.Errorf("pixel (0,0) = %+v, want {255 0 128 255}", px)
	}
}
