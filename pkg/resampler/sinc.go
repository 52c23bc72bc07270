package resampler

// sincTable holds a two-dimensional table of windowed sinc values indexed
// by (sub-sample phase, tap). Logically shaped
// [oversamplingFactor+1][sincLen], stored row-major and immutable after
// construction. Rows 0..oversamplingFactor are each computed directly from
// the windowed-sinc formula at their own phase; storing the phase-1 row
// explicitly (rather than only 0..oversamplingFactor-1) lets the
// interpolation kernel read k and k+1 without a range check for the
// common case, while the rarer offsets beyond that (Quadratic/Cubic's
// k-1 and k+2) still need the wraparound handled in rowDot.
type sincTable[T Sample] struct {
	sincLen            int
	oversamplingFactor int
	rows               []T // len == (oversamplingFactor+1) * sincLen
}

// row returns the k-th phase row (0 <= k <= oversamplingFactor).
func (s *sincTable[T]) row(k int) []T {
	off := k * s.sincLen
	return s.rows[off : off+s.sincLen]
}

// newSincTable builds the table for the given length, oversampling factor,
// cutoff and window. sincLen must be even and a multiple of laneWidth
// (the accelerated kernel's alignment contract); the caller is expected to
// have validated this already and report InvalidSincLength otherwise.
//
// Row k holds cutoff*sinc(cutoff*(i - sincLen/2 - k/oversamplingFactor))*w[i],
// so row k+oversamplingFactor is row k moved one tap later: reading it is
// the same as reading row k against history advanced by one sample.
func newSincTable[T Sample](sincLen, oversamplingFactor int, cutoff float64, window WindowFunction) *sincTable[T] {
	w := makeWindow[T](sincLen, window)
	rows := make([]T, (oversamplingFactor+1)*sincLen)
	half := float64(sincLen) / 2.0
	for k := 0; k <= oversamplingFactor; k++ {
		phase := float64(k) / float64(oversamplingFactor)
		rowOff := k * sincLen
		for i := 0; i < sincLen; i++ {
			x := cutoff * (float64(i) - half - phase)
			v := cutoff * sinc(x) * toF64(w[i])
			rows[rowOff+i] = fromF64[T](v)
		}
	}
	return &sincTable[T]{
		sincLen:            sincLen,
		oversamplingFactor: oversamplingFactor,
		rows:               rows,
	}
}

// laneWidth is the alignment contract sinc_len must satisfy: even, and a
// multiple of this lane count. The accelerated dot-product kernel never
// actually requires SIMD lanes in this implementation (spec.md §1 places
// SIMD codegen out of scope), but the alignment contract itself is part of
// the construction validation spec.md §4.2 requires.
const laneWidth = 8

func validSincLength(n int) bool {
	return n > 0 && n%2 == 0 && n%laneWidth == 0
}
