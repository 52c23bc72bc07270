package resampler

import "math"

var (
	_ Resampler[float64] = (*SincFixedIn[float64])(nil)
	_ Resampler[float32] = (*SincFixedIn[float32])(nil)
)

// SincFixedIn resamples with a fixed number of input frames per call and a
// variable number of output frames (spec.md §4.7).
type SincFixedIn[T Sample] struct {
	channels  int
	chunkSize int

	table  *sincTable[T]
	interp *interpolator[T]
	ratio  ratioState
	t      float64

	history     []*delayLine[T]
	allTrueMask []bool

	outputFramesMax int
	logger          Logger
}

// NewSincFixedIn constructs a fixed-input-chunk-size resampler.
// resampleRatio is output rate / input rate; maxRelativeRatio bounds how
// far SetResampleRatio*/SetResampleRatioRelative may move the ratio,
// relative to resampleRatio.
func NewSincFixedIn[T Sample](resampleRatio, maxRelativeRatio float64, params SincInterpolationParameters, chunkSize, channels int) (*SincFixedIn[T], error) {
	if resampleRatio <= 0 {
		return nil, &ConstructionError{Kind: InvalidRatio, Got: resampleRatio}
	}
	if maxRelativeRatio < 1.0 {
		return nil, &ConstructionError{Kind: InvalidRelativeRatio, Got: maxRelativeRatio}
	}
	if params.OversamplingFactor <= 0 {
		return nil, &ConstructionError{Kind: InvalidOversamplingFactor, Got: float64(params.OversamplingFactor)}
	}
	if !validSincLength(params.SincLen) {
		return nil, &ConstructionError{Kind: InvalidSincLength, Got: float64(params.SincLen), RequiredMultiple: laneWidth}
	}

	table := newSincTable[T](params.SincLen, params.OversamplingFactor, params.FCutoff, params.Window)
	interp := newInterpolator(table, params.Interpolation, selectDotKernel[T]())

	history := make([]*delayLine[T], channels)
	for ch := range history {
		history[ch] = newDelayLine[T](params.SincLen, chunkSize)
	}

	allTrue := make([]bool, channels)
	for i := range allTrue {
		allTrue[i] = true
	}

	outMax := int(math.Ceil(float64(chunkSize)*resampleRatio*maxRelativeRatio)) + 1

	return &SincFixedIn[T]{
		channels:        channels,
		chunkSize:       chunkSize,
		table:           table,
		interp:          interp,
		ratio:           newRatioState(resampleRatio, maxRelativeRatio),
		history:         history,
		allTrueMask:     allTrue,
		outputFramesMax: outMax,
		logger:          noopLogger{},
	}, nil
}

// SetLogger installs l as the destination for diagnostic tracing. The
// default is a no-op logger.
func (s *SincFixedIn[T]) SetLogger(l Logger) {
	if l == nil {
		l = noopLogger{}
	}
	s.logger = l
}

func (s *SincFixedIn[T]) NbrChannels() int    { return s.channels }
func (s *SincFixedIn[T]) InputFramesMax() int { return s.chunkSize }
func (s *SincFixedIn[T]) InputFramesNext() int {
	return s.chunkSize
}
func (s *SincFixedIn[T]) OutputFramesMax() int { return s.outputFramesMax }

// OutputFramesNext returns ceil((chunkSize - t) * current_ratio), the
// deterministic output length for the next call given the accumulator and
// ratio observed right now (spec.md §4.7).
func (s *SincFixedIn[T]) OutputFramesNext() int {
	n := math.Ceil((float64(s.chunkSize) - s.t) * s.ratio.current)
	if n < 0 {
		n = 0
	}
	return int(n)
}

func (s *SincFixedIn[T]) SetResampleRatio(newRatio float64, ramp bool) error {
	return s.ratio.setAbsolute(newRatio, ramp, s.OutputFramesNext())
}

func (s *SincFixedIn[T]) SetResampleRatioRelative(relRatio float64, ramp bool) error {
	return s.ratio.setRelative(relRatio, ramp, s.OutputFramesNext())
}

// Reset returns the resampler to its post-construction state.
func (s *SincFixedIn[T]) Reset() {
	s.ratio.reset()
	s.t = 0
	for _, h := range s.history {
		h.Reset()
	}
}

func (s *SincFixedIn[T]) InputBufferAllocate() [][]T {
	return allocateBuffer[T](s.channels, s.InputFramesMax())
}

func (s *SincFixedIn[T]) OutputBufferAllocate() [][]T {
	return allocateBuffer[T](s.channels, s.OutputFramesMax())
}

func (s *SincFixedIn[T]) Process(waveIn [][]T, mask []bool) ([][]T, error) {
	return processViaBuffer[T](s, waveIn, mask)
}

func (s *SincFixedIn[T]) ProcessPartial(waveIn [][]T, mask []bool) ([][]T, error) {
	return processPartialViaBuffer[T](s, waveIn, mask)
}

func (s *SincFixedIn[T]) ProcessPartialIntoBuffer(waveIn, waveOut [][]T, mask []bool) (int, int, error) {
	padded := zeroPaddedInput[T](waveIn, s.channels, s.InputFramesNext())
	return s.ProcessIntoBuffer(padded, waveOut, mask)
}

// ProcessIntoBuffer resamples chunkSize input frames per channel into
// OutputFramesNext() output frames per channel, without allocating.
func (s *SincFixedIn[T]) ProcessIntoBuffer(waveIn, waveOut [][]T, mask []bool) (int, int, error) {
	nIn := s.InputFramesNext()
	nOut := s.OutputFramesNext()

	if err := validateBuffers[T](waveIn, waveOut, mask, s.channels, nIn, nOut); err != nil {
		return 0, 0, err
	}
	if mask == nil {
		mask = s.allTrueMask
	}

	for ch := 0; ch < s.channels; ch++ {
		s.history[ch].Append(waveIn[ch][:nIn])
	}

	if s.logger.Enabled() {
		s.logger.Debug("SincFixedIn.ProcessIntoBuffer", "input_frames", nIn, "output_frames", nOut)
	}

	// The kernel window ends at input frame n, so only appended samples are
	// read; output lags input by about sincLen/2 frames.
	pos := s.t
	preroll := s.table.sincLen
	for i := 0; i < nOut; i++ {
		r := s.ratio.advance()
		n := int(math.Floor(pos))
		phi := pos - float64(n)
		center := n + preroll
		for ch := 0; ch < s.channels; ch++ {
			if !mask[ch] {
				continue
			}
			waveOut[ch][i] = s.interp.interpolate(s.history[ch].Hist(), center, phi)
		}
		pos += 1.0 / r
	}

	consumed := int(math.Floor(pos))
	if consumed > nIn {
		consumed = nIn
	}
	for _, h := range s.history {
		h.Drop(consumed)
	}
	s.t = pos - float64(consumed)

	return nIn, nOut, nil
}
