package resampler

import "math"

// WindowFunction selects the shape used to taper a sinc kernel.
type WindowFunction int

const (
	// Blackman: intermediate rolloff, intermediate attenuation.
	Blackman WindowFunction = iota
	// BlackmanSquared: slower rolloff, better attenuation than Blackman.
	BlackmanSquared
	// BlackmanHarris: slow rolloff, good attenuation.
	BlackmanHarris
	// BlackmanHarrisSquared: slower rolloff, better attenuation than BlackmanHarris.
	BlackmanHarrisSquared
	// Hann: fast rolloff, modest attenuation.
	Hann
	// HannSquared: slower rolloff, higher attenuation than Hann.
	HannSquared
)

func blackmanCoeffs(npoints int) []float64 {
	w := make([]float64, npoints)
	n := float64(npoints)
	const a, b, c = 0.42, 0.5, 0.08
	for x := range w {
		xf := float64(x)
		w[x] = a - b*math.Cos(2*math.Pi*xf/n) + c*math.Cos(4*math.Pi*xf/n)
	}
	return w
}

func blackmanHarrisCoeffs(npoints int) []float64 {
	w := make([]float64, npoints)
	n := float64(npoints)
	const a, b, c, d = 0.35875, 0.48829, 0.14128, 0.01168
	for x := range w {
		xf := float64(x)
		w[x] = a - b*math.Cos(2*math.Pi*xf/n) + c*math.Cos(4*math.Pi*xf/n) - d*math.Cos(6*math.Pi*xf/n)
	}
	return w
}

func hannCoeffs(npoints int) []float64 {
	w := make([]float64, npoints)
	n := float64(npoints)
	const a = 0.5
	for x := range w {
		xf := float64(x)
		w[x] = a - a*math.Cos(2*math.Pi*xf/n)
	}
	return w
}

// makeWindow generates npoints samples of the given window function,
// coerced to T.
func makeWindow[T Sample](npoints int, fn WindowFunction) []T {
	var w []float64
	switch fn {
	case BlackmanHarris, BlackmanHarrisSquared:
		w = blackmanHarrisCoeffs(npoints)
	case Blackman, BlackmanSquared:
		w = blackmanCoeffs(npoints)
	case Hann, HannSquared:
		w = hannCoeffs(npoints)
	default:
		w = blackmanCoeffs(npoints)
	}
	switch fn {
	case BlackmanSquared, BlackmanHarrisSquared, HannSquared:
		for i, v := range w {
			w[i] = v * v
		}
	}
	out := make([]T, npoints)
	for i, v := range w {
		out[i] = fromF64[T](v)
	}
	return out
}

// cutoffCoeffs holds the (k1, k2, k3) approximation coefficients used by
// CalculateCutoff, valid for sinc lengths from roughly 32 to 2048.
var cutoffCoeffs = map[WindowFunction][3]float64{
	BlackmanHarris:        {8.035953378672037, 57.03078027502588, 867.9402989951352},
	BlackmanHarrisSquared: {13.75199169984904, 121.68057131936176, 5957.651558218036},
	Blackman:              {6.187398036770492, 16.109602892482037, 715.9711791020756},
	BlackmanSquared:       {9.542238688779452, 75.81202588432767, 1572.1620695552645},
	Hann:                  {3.3520600262878313, 10.446229596405484, 64.84675682879767},
	HannSquared:           {5.403705704263967, 28.227298602817687, 215.34865018641966},
}

// CalculateCutoff returns a suggested normalized cutoff frequency for a
// sinc kernel of the given length and window, via
// 1 / (k1/N + k2/N^2 + k3/N^3 + 1).
func CalculateCutoff[T Sample](npoints int, fn WindowFunction) T {
	c, ok := cutoffCoeffs[fn]
	if !ok {
		c = cutoffCoeffs[Blackman]
	}
	n := float64(npoints)
	cutoff := 1.0 / (c[0]/n + c[1]/(n*n) + c[2]/(n*n*n) + 1.0)
	return fromF64[T](cutoff)
}
