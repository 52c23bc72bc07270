package resampler

// SincInterpolationParameters bundles the construction-time tuning knobs
// for the sinc table and interpolation policy (spec.md §6).
type SincInterpolationParameters struct {
	SincLen            int
	FCutoff            float64
	Interpolation      InterpolationType
	OversamplingFactor int
	Window             WindowFunction
}

// Resampler is the shared surface implemented by SincFixedIn and
// SincFixedOut (spec.md §6). Non-interleaved, per-channel slices: the
// outer dimension is channel, the inner is frame.
type Resampler[T Sample] interface {
	// Process is a convenience wrapper around ProcessIntoBuffer that
	// allocates the output buffer on every call. Real-time callers should
	// use ProcessIntoBuffer with a buffer from OutputBufferAllocate
	// instead.
	Process(waveIn [][]T, activeChannelsMask []bool) ([][]T, error)

	// ProcessIntoBuffer resamples waveIn into waveOut and reports how many
	// input frames were consumed and output frames written, per channel.
	// Both buffers may be longer than required; neither is reallocated.
	ProcessIntoBuffer(waveIn, waveOut [][]T, activeChannelsMask []bool) (inputFrames, outputFrames int, err error)

	// ProcessPartialIntoBuffer drives one final chunk from a short tail
	// input, zero-padding it up to InputFramesNext() first. waveIn == nil
	// drives entirely with zeros, flushing remaining tail latency. The
	// zero-padded input is a newly allocated buffer.
	ProcessPartialIntoBuffer(waveIn, waveOut [][]T, activeChannelsMask []bool) (inputFrames, outputFrames int, err error)

	// ProcessPartial is the allocating convenience form of
	// ProcessPartialIntoBuffer.
	ProcessPartial(waveIn [][]T, activeChannelsMask []bool) ([][]T, error)

	// InputBufferAllocate returns a zero-filled buffer shaped
	// (NbrChannels(), InputFramesMax()).
	InputBufferAllocate() [][]T

	// InputFramesMax returns the maximum number of input frames per
	// channel any call to ProcessIntoBuffer could require.
	InputFramesMax() int

	// InputFramesNext returns the number of input frames per channel
	// needed for the next call to ProcessIntoBuffer.
	InputFramesNext() int

	// NbrChannels returns the channel count this resampler is configured for.
	NbrChannels() int

	// OutputBufferAllocate returns a zero-filled buffer shaped
	// (NbrChannels(), OutputFramesMax()).
	OutputBufferAllocate() [][]T

	// OutputFramesMax returns the maximum number of output frames per
	// channel any call to ProcessIntoBuffer could produce.
	OutputFramesMax() int

	// OutputFramesNext returns the number of output frames per channel
	// the next call to ProcessIntoBuffer will produce.
	OutputFramesNext() int

	// SetResampleRatio updates the resample ratio. If ramp is true, the
	// change is interpolated smoothly over the next chunk; otherwise it
	// takes effect at the start of the next call.
	SetResampleRatio(newRatio float64, ramp bool) error

	// SetResampleRatioRelative updates the ratio as a factor of the
	// original ratio given at construction.
	SetResampleRatioRelative(relRatio float64, ramp bool) error

	// Reset returns the resampler to its post-construction state: zeroed
	// history, zeroed accumulator, no active ramp, current ratio equal to
	// the original ratio.
	Reset()
}

// allocateBuffer returns a zero-filled (channels, frames) buffer. This,
// Process, ProcessPartial and ProcessPartialIntoBuffer are the only
// operations that allocate; ProcessIntoBuffer never does.
func allocateBuffer[T Sample](channels, frames int) [][]T {
	buf := make([][]T, channels)
	for ch := range buf {
		buf[ch] = make([]T, frames)
	}
	return buf
}

// processViaBuffer implements the allocating Process convenience method in
// terms of ProcessIntoBuffer, shared by both driver types.
func processViaBuffer[T Sample](r Resampler[T], waveIn [][]T, mask []bool) ([][]T, error) {
	waveOut := allocateBuffer[T](r.NbrChannels(), r.OutputFramesNext())
	if _, _, err := r.ProcessIntoBuffer(waveIn, waveOut, mask); err != nil {
		return nil, err
	}
	return waveOut, nil
}

// processPartialViaBuffer implements the allocating ProcessPartial
// convenience method in terms of ProcessPartialIntoBuffer.
func processPartialViaBuffer[T Sample](r Resampler[T], waveIn [][]T, mask []bool) ([][]T, error) {
	waveOut := allocateBuffer[T](r.NbrChannels(), r.OutputFramesNext())
	if _, _, err := r.ProcessPartialIntoBuffer(waveIn, waveOut, mask); err != nil {
		return nil, err
	}
	return waveOut, nil
}

// zeroPaddedInput builds a (channels, frames) buffer with src copied into
// the front of each channel and the remainder left zero. Used by
// ProcessPartialIntoBuffer, which therefore allocates a temporary input
// buffer on every call.
func zeroPaddedInput[T Sample](src [][]T, channels, frames int) [][]T {
	buf := allocateBuffer[T](channels, frames)
	if src == nil {
		return buf
	}
	for ch := range buf {
		if ch < len(src) {
			copy(buf[ch], src[ch])
		}
	}
	return buf
}
