package resampler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestInterpolator(kind InterpolationType) (*interpolator[float64], []float64) {
	sincLen := 16
	of := 32
	table := newSincTable[float64](sincLen, of, 0.9, Blackman)
	interp := newInterpolator(table, kind, scalarDot[float64])

	hist := make([]float64, 4*sincLen)
	for i := range hist {
		hist[i] = float64(i%7) - 3
	}
	return interp, hist
}

func TestInterpolate_NearestMatchesRowDot(t *testing.T) {
	t.Parallel()

	interp, hist := newTestInterpolator(Nearest)
	n := 40
	// phi = 0 selects row 0 exactly, with no rounding ambiguity.
	got := interp.interpolate(hist, n, 0.0)
	want := interp.rowDot(0, hist, n)
	assert.Equal(t, want, got)
}

func TestInterpolate_LinearAtIntegerPhaseMatchesRowDot(t *testing.T) {
	t.Parallel()

	interp, hist := newTestInterpolator(Linear)
	n := 40
	got := interp.interpolate(hist, n, 0.0)
	want := interp.rowDot(0, hist, n)
	assert.InDelta(t, want, got, 1e-12)
}

func TestInterpolate_AllPoliciesDeterministic(t *testing.T) {
	t.Parallel()

	for _, kind := range []InterpolationType{Nearest, Linear, Quadratic, Cubic} {
		interp, hist := newTestInterpolator(kind)
		n := 50
		a := interp.interpolate(hist, n, 0.37)
		b := interp.interpolate(hist, n, 0.37)
		assert.Equal(t, a, b)
	}
}

func TestInterpolate_QuadraticAndCubicStayBounded(t *testing.T) {
	t.Parallel()

	// With a bounded history, Lagrange interpolation across nearby
	// windowed-sinc rows should not blow up to wildly different
	// magnitudes; regression guard against an indexing bug rather than a
	// tight numerical bound.
	for _, kind := range []InterpolationType{Quadratic, Cubic} {
		interp, hist := newTestInterpolator(kind)
		n := 50
		for _, phi := range []float64{0.0, 0.1, 0.5, 0.9, 0.999} {
			v := interp.interpolate(hist, n, phi)
			assert.Less(t, v, 100.0)
			assert.Greater(t, v, -100.0)
		}
	}
}

func TestRowDot_WrapsPhaseOutOfRange(t *testing.T) {
	t.Parallel()

	interp, hist := newTestInterpolator(Cubic)
	n := 50
	of := interp.table.oversamplingFactor

	// k = of+1 should wrap to row 1 with the history center shifted
	// forward by one phase period, not panic or read out of range.
	assert.NotPanics(t, func() {
		interp.rowDot(of+1, hist, n)
	})
}
