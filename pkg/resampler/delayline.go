package resampler

// delayLine is the per-channel history buffer described in spec.md §4.5.
// It is allocated once, to a fixed capacity, and never reallocated: the
// only mutation during processing is copying samples within the slice.
//
// At any time buf[0:valid] holds the samples available for interpolation.
// The first sincLen entries are, at construction and after Reset, zero
// (the cold-start pre-roll); this gives the interpolation kernel enough
// look-back to center its first output sample without any branch for
// "before time zero" — it just reads the zeros that are already there.
type delayLine[T Sample] struct {
	buf     []T
	valid   int
	sincLen int
}

// newDelayLine allocates a history buffer sized to always hold the
// previous sincLen samples plus up to maxAppend freshly appended samples,
// per chunk, without reallocating.
func newDelayLine[T Sample](sincLen, maxAppend int) *delayLine[T] {
	bufCap := 2*sincLen + maxAppend
	dl := &delayLine[T]{
		buf:     make([]T, bufCap),
		sincLen: sincLen,
	}
	dl.Reset()
	return dl
}

// Reset clears the buffer back to its post-construction state: all zero,
// with exactly sincLen samples of cold-start pre-roll considered valid.
func (dl *delayLine[T]) Reset() {
	var zero T
	for i := range dl.buf {
		dl.buf[i] = zero
	}
	dl.valid = dl.sincLen
}

// Append copies input onto the tail of the retained history. The caller
// is responsible for ensuring dl.valid+len(input) never exceeds cap(buf);
// the drivers size chunks and call Drop so that this always holds.
func (dl *delayLine[T]) Append(input []T) {
	n := copy(dl.buf[dl.valid:], input)
	dl.valid += n
}

// Drop shifts the retained history left by k samples, discarding the k
// oldest ones. This is the chunk-boundary compaction of spec.md §4.5/I2.
func (dl *delayLine[T]) Drop(k int) {
	if k <= 0 {
		return
	}
	if k > dl.valid {
		k = dl.valid
	}
	remaining := dl.valid - k
	copy(dl.buf[:remaining], dl.buf[k:dl.valid])
	dl.valid = remaining
}

// Hist returns the backing slice an interpolator reads from directly; the
// valid data occupies hist[:dl.valid], with the unused tail left over
// from a previous Drop beyond that.
func (dl *delayLine[T]) Hist() []T {
	return dl.buf
}

// Capacity reports how many more samples can be appended before the next
// Drop is required.
func (dl *delayLine[T]) Capacity() int {
	return len(dl.buf) - dl.valid
}
