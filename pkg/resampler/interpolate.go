package resampler

// InterpolationType selects the policy used to interpolate between the
// oversampled sinc table's phase rows.
type InterpolationType int

const (
	// Nearest rounds to the closest phase row.
	Nearest InterpolationType = iota
	// Linear blends the two neighboring phase rows.
	Linear
	// Quadratic fits a Lagrange quadratic across three neighboring rows.
	Quadratic
	// Cubic fits a Lagrange cubic across four neighboring rows.
	Cubic
)

// interpolator computes one output sample given a sinc table, a history
// window reader and a sub-sample fraction.
type interpolator[T Sample] struct {
	table *sincTable[T]
	kind  InterpolationType
	dot   dotFunc[T]
}

// newInterpolator builds an interpolator bound to the given table, policy
// and inner-product kernel.
func newInterpolator[T Sample](table *sincTable[T], kind InterpolationType, dot dotFunc[T]) *interpolator[T] {
	return &interpolator[T]{table: table, kind: kind, dot: dot}
}

// rowDot returns the dot product of phase row k with the sincLen-sample
// history segment ending (inclusive) at hist position n, i.e.
// hist[n-sincLen+1 : n+1]. Positions before the start of hist read as
// zero, implemented by the caller zero-padding the front of the buffer
// (spec.md §4.5) rather than by branching here.
//
// k may fall outside [0, oversamplingFactor] when called from the
// Quadratic/Cubic paths with an offset; spec.md §4.3 step 3 defines this
// as equivalent to the in-range row reached by wrapping k and shifting
// the history position by the same number of whole phase periods.
func (ip *interpolator[T]) rowDot(k int, hist []T, n int) T {
	of := ip.table.oversamplingFactor
	shift := 0
	for k < 0 {
		k += of
		shift--
	}
	for k > of {
		k -= of
		shift++
	}
	sincLen := ip.table.sincLen
	lo := n + shift - sincLen + 1
	return ip.dot(ip.table.row(k), hist[lo:lo+sincLen])
}

// interpolate computes one output sample. n is the history index such
// that the window [n-sincLen+1, n] holds the samples around the desired
// input position, and phi in [0,1) is the sub-sample fraction.
func (ip *interpolator[T]) interpolate(hist []T, n int, phi float64) T {
	of := float64(ip.table.oversamplingFactor)
	y := phi * of
	k := int(y)
	alpha := y - float64(k)

	switch ip.kind {
	case Nearest:
		kn := k
		if alpha >= 0.5 {
			kn++
		}
		return ip.rowDot(kn, hist, n)

	case Linear:
		v0 := toF64(ip.rowDot(k, hist, n))
		v1 := toF64(ip.rowDot(k+1, hist, n))
		return fromF64[T](v0 + alpha*(v1-v0))

	case Quadratic:
		return ip.lagrange3(hist, n, k, alpha)

	case Cubic:
		return ip.lagrange4(hist, n, k, alpha)

	default:
		return ip.rowDot(k, hist, n)
	}
}

// lagrange3 fits a Lagrange quadratic across rows k-1, k, k+1 and
// evaluates it at alpha. Fixed-size arithmetic, no allocation, so it can
// run on the processing path.
func (ip *interpolator[T]) lagrange3(hist []T, n, k int, alpha float64) T {
	xs := [3]float64{-1, 0, 1}
	ys := [3]float64{
		toF64(ip.rowDot(k-1, hist, n)),
		toF64(ip.rowDot(k, hist, n)),
		toF64(ip.rowDot(k+1, hist, n)),
	}
	return fromF64[T](lagrangeEval(xs[:], ys[:], alpha))
}

// lagrange4 fits a Lagrange cubic across rows k-1, k, k+1, k+2 and
// evaluates it at alpha.
func (ip *interpolator[T]) lagrange4(hist []T, n, k int, alpha float64) T {
	xs := [4]float64{-1, 0, 1, 2}
	ys := [4]float64{
		toF64(ip.rowDot(k-1, hist, n)),
		toF64(ip.rowDot(k, hist, n)),
		toF64(ip.rowDot(k+1, hist, n)),
		toF64(ip.rowDot(k+2, hist, n)),
	}
	return fromF64[T](lagrangeEval(xs[:], ys[:], alpha))
}

// lagrangeEval evaluates the Lagrange interpolating polynomial through
// (xs[i], ys[i]) at x. xs/ys must have equal, small, fixed length; callers
// pass array-backed slices so this never allocates.
func lagrangeEval(xs, ys []float64, x float64) float64 {
	var result float64
	for i := range ys {
		term := ys[i]
		for j := range xs {
			if j == i {
				continue
			}
			term *= (x - xs[j]) / (xs[i] - xs[j])
		}
		result += term
	}
	return result
}
