package gopcolor

import (
	"math"

	"gonum.org/v1/gonum/interp"
)

// wheelAnchors is the number of interpolation anchors: the 256 table entries
// plus a copy of entry 0 at 2*pi, making the wheel cyclic.
const wheelAnchors = 257

// hueWheel interpolates the wheel table continuously over [0, 2*pi], one
// piecewise-linear predictor per channel. Fitted once at package
// initialization and read-only afterwards.
var hueWheel = fitWheel()

type wheelInterp struct {
	r, g, b interp.PiecewiseLinear
}

func fitWheel() *wheelInterp {
	angles := make([]float64, wheelAnchors)
	channels := make([][]float64, 3)
	for ch := range channels {
		channels[ch] = make([]float64, wheelAnchors)
	}
	for i := 0; i < wheelAnchors; i++ {
		angles[i] = 2 * math.Pi * float64(i) / 256
		entry := wheelTable[i%256]
		for ch := range channels {
			channels[ch][i] = entry[ch]
		}
	}

	w := &wheelInterp{}
	for ch, pl := range []*interp.PiecewiseLinear{&w.r, &w.g, &w.b} {
		if err := pl.Fit(angles, channels[ch]); err != nil {
			// The axis is fixed and strictly increasing; Fit cannot fail.
			panic(err)
		}
	}
	return w
}

// wheelAt returns the interpolated RGB triple for an angle in [0, 2*pi].
func wheelAt(theta float64) [3]float64 {
	return [3]float64{
		hueWheel.r.Predict(theta),
		hueWheel.g.Predict(theta),
		hueWheel.b.Predict(theta),
	}
}
