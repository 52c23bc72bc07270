package resampler

import (
	"golang.org/x/sys/cpu"
	"gonum.org/v1/gonum/floats"
)

// dotFunc is the inner-product kernel: given a sinc row and a matching
// history segment of the same length, it returns their dot product. It
// must be deterministic; the reference scalar variant sums left-to-right
// and accelerated variants may reorder summation but must agree to within
// the tolerance of spec.md §4.4 (1e-7 for float32, 1e-14 for float64).
type dotFunc[T Sample] func(row, hist []T) T

// scalarDot is the reference inner-product kernel: a plain left-to-right
// sum, matching spec.md §4.4 exactly.
func scalarDot[T Sample](row, hist []T) T {
	var sum float64
	for i := range row {
		sum += toF64(row[i]) * toF64(hist[i])
	}
	return fromF64[T](sum)
}

// gonumDot routes the inner product through gonum's assembly-backed
// floats.Dot, for float64 operands only: reinterpreting row/hist as
// []float64 is a zero-allocation type assertion. float32 has no
// allocation-free path to floats.Dot (it would need to widen every tap on
// every call), so it falls back to the scalar kernel instead of violating
// the no-allocation-on-the-processing-path rule (spec.md §5).
func gonumDot[T Sample](row, hist []T) T {
	var zero T
	if _, ok := any(zero).(float64); ok {
		r := any(row).([]float64)
		h := any(hist).([]float64)
		return T(floats.Dot(r, h))
	}
	return scalarDot(row, hist)
}

// selectDotKernel picks the inner-product strategy once at construction,
// based on runtime CPU feature detection (spec.md §9: "Model it as a
// strategy selected once at construction based on runtime CPU feature
// detection"). The scalar kernel is always a correct fallback; detecting
// no accelerated feature never prevents construction from succeeding.
func selectDotKernel[T Sample]() dotFunc[T] {
	if cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD {
		return gonumDot[T]
	}
	return scalarDot[T]
}
