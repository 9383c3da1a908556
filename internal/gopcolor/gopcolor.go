// Package gopcolor renders dense motion fields as color images. Direction is
// encoded as hue on a fixed 256-entry cyclic color wheel and magnitude as
// intensity, so a flow field becomes a single displayable RGB raster. The
// angle convention matches Gunnar Farneback's original gopimage colormap:
// the wheel is sampled at clip(pi + angle(-w), 0, 2*pi), which rotates the
// zero-angle reference so the rendering stays comparable with existing
// course material.
package gopcolor

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/floats"

	"github.com/Parskatt/tsbb15-labs/internal/flowfield"
)

// ErrInvalidParameter reports an out-of-domain encoding parameter.
var ErrInvalidParameter = errors.New("gopcolor: invalid parameter")

// Image is an RGB raster with float64 channels in [0,1]. Pixels are stored
// row-major with the three channels of a pixel adjacent.
type Image struct {
	Rows, Cols int
	Pix        []float64
}

// At returns the (r, g, b) triple of the pixel at row r, column c.
func (im *Image) At(r, c int) [3]float64 {
	i := 3 * (r*im.Cols + c)
	return [3]float64{im.Pix[i], im.Pix[i+1], im.Pix[i+2]}
}

// ToRGBA converts the image to an 8-bit image.RGBA for display or encoding.
func (im *Image) ToRGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, im.Cols, im.Rows))
	for r := 0; r < im.Rows; r++ {
		for c := 0; c < im.Cols; c++ {
			px := im.At(r, c)
			out.SetRGBA(c, r, color.RGBA{
				R: uint8(math.Round(px[0] * 255)),
				G: uint8(math.Round(px[1] * 255)),
				B: uint8(math.Round(px[2] * 255)),
				A: 255,
			})
		}
	}
	return out
}

// Encode maps a motion field to a color image. The field's peak magnitude is
// normalized to 1, then each sample's intensity is min(1, scale*|w|) and its
// hue is the wheel color at the sample's direction. A scale above 1 saturates
// strong motion sooner; scale 0 renders black. The input field is not
// modified.
//
// Encode is a pure function of its inputs and the fixed wheel table; it is
// safe to call concurrently.
func Encode(f *flowfield.Field, scale float64) (*Image, error) {
	if scale < 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("scale must be finite and non-negative, got %v: %w", scale, ErrInvalidParameter)
	}

	w := f.Values()
	mags := make([]float64, len(w))
	for i, v := range w {
		mags[i] = cmplx.Abs(v)
	}

	// Normalize so the peak magnitude is 1. An all-zero field is left as is
	// and renders black.
	if maxMag := floats.Max(mags); maxMag != 0 {
		cmplxs.Scale(complex(1/maxMag, 0), w)
		floats.Scale(1/maxMag, mags)
	}

	im := &Image{Rows: f.Rows, Cols: f.Cols, Pix: make([]float64, 3*len(w))}
	for i, v := range w {
		intensity := math.Min(1, scale*mags[i])
		theta := clamp(math.Pi+cmplx.Phase(-v), 0, 2*math.Pi)
		rgb := wheelAt(theta)
		im.Pix[3*i] = intensity * rgb[0]
		im.Pix[3*i+1] = intensity * rgb[1]
		im.Pix[3*i+2] = intensity * rgb[2]
	}
	return im, nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
