package resampler

import "math"

var (
	_ Resampler[float64] = (*SincFixedOut[float64])(nil)
	_ Resampler[float32] = (*SincFixedOut[float32])(nil)
)

// SincFixedOut resamples with a fixed number of output frames per call and
// a variable number of input frames consumed (spec.md §4.8).
type SincFixedOut[T Sample] struct {
	channels  int
	chunkSize int // fixed output frames per call

	table  *sincTable[T]
	interp *interpolator[T]
	ratio  ratioState
	t      float64

	history     []*delayLine[T]
	allTrueMask []bool

	inputFramesMax int
	logger         Logger
}

// NewSincFixedOut constructs a fixed-output-chunk-size resampler.
func NewSincFixedOut[T Sample](resampleRatio, maxRelativeRatio float64, params SincInterpolationParameters, chunkSize, channels int) (*SincFixedOut[T], error) {
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

	minRatio := resampleRatio / maxRelativeRatio
	inMax := inputFramesNeeded(chunkSize, minRatio, params.SincLen) + 1

	history := make([]*delayLine[T], channels)
	for ch := range history {
		history[ch] = newDelayLine[T](params.SincLen, inMax)
	}

	allTrue := make([]bool, channels)
	for i := range allTrue {
		allTrue[i] = true
	}

	return &SincFixedOut[T]{
		channels:       channels,
		chunkSize:      chunkSize,
		table:          table,
		interp:         interp,
		ratio:          newRatioState(resampleRatio, maxRelativeRatio),
		history:        history,
		allTrueMask:    allTrue,
		inputFramesMax: inMax,
		logger:         noopLogger{},
	}, nil
}

// inputFramesNeeded returns ceil(chunkSize/ratio + safety_margin), per
// spec.md §4.8. The margin (one full sinc length) covers both the
// half-kernel-width look-ahead and the per-frame drift a ramp in progress
// can introduce over the chunk.
func inputFramesNeeded(chunkSize int, ratio float64, sincLen int) int {
	n := int(math.Ceil(float64(chunkSize)/ratio)) + sincLen
	if n < 1 {
		n = 1
	}
	return n
}

// SetLogger installs l as the destination for diagnostic tracing.
func (s *SincFixedOut[T]) SetLogger(l Logger) {
	if l == nil {
		l = noopLogger{}
	}
	s.logger = l
}

func (s *SincFixedOut[T]) NbrChannels() int     { return s.channels }
func (s *SincFixedOut[T]) OutputFramesMax() int { return s.chunkSize }
func (s *SincFixedOut[T]) OutputFramesNext() int {
	return s.chunkSize
}
func (s *SincFixedOut[T]) InputFramesMax() int { return s.inputFramesMax }

// InputFramesNext returns the input frame count needed to produce a full
// chunk of output at the ratio observed right now (spec.md §4.8): the
// inputFramesNeeded margin, less the frames still buffered from earlier
// calls that have not yet been consumed.
func (s *SincFixedOut[T]) InputFramesNext() int {
	needed := inputFramesNeeded(s.chunkSize, s.ratio.current, s.table.sincLen)
	if len(s.history) > 0 {
		needed -= s.history[0].valid - s.table.sincLen
	}
	if needed < 0 {
		needed = 0
	}
	if needed > s.inputFramesMax {
		needed = s.inputFramesMax
	}
	return needed
}

func (s *SincFixedOut[T]) SetResampleRatio(newRatio float64, ramp bool) error {
	return s.ratio.setAbsolute(newRatio, ramp, s.OutputFramesNext())
}

func (s *SincFixedOut[T]) SetResampleRatioRelative(relRatio float64, ramp bool) error {
	return s.ratio.setRelative(relRatio, ramp, s.OutputFramesNext())
}

// Reset returns the resampler to its post-construction state.
func (s *SincFixedOut[T]) Reset() {
	s.ratio.reset()
	s.t = 0
	for _, h := range s.history {
		h.Reset()
	}
}

func (s *SincFixedOut[T]) InputBufferAllocate() [][]T {
	return allocateBuffer[T](s.channels, s.InputFramesMax())
}

func (s *SincFixedOut[T]) OutputBufferAllocate() [][]T {
	return allocateBuffer[T](s.channels, s.OutputFramesMax())
}

func (s *SincFixedOut[T]) Process(waveIn [][]T, mask []bool) ([][]T, error) {
	return processViaBuffer[T](s, waveIn, mask)
}

func (s *SincFixedOut[T]) ProcessPartial(waveIn [][]T, mask []bool) ([][]T, error) {
	return processPartialViaBuffer[T](s, waveIn, mask)
}

func (s *SincFixedOut[T]) ProcessPartialIntoBuffer(waveIn, waveOut [][]T, mask []bool) (int, int, error) {
	padded := zeroPaddedInput[T](waveIn, s.channels, s.InputFramesNext())
	return s.ProcessIntoBuffer(padded, waveOut, mask)
}

// ProcessIntoBuffer consumes InputFramesNext() input frames per channel
// and writes exactly chunkSize output frames per channel, without
// allocating.
func (s *SincFixedOut[T]) ProcessIntoBuffer(waveIn, waveOut [][]T, mask []bool) (int, int, error) {
	nIn := s.InputFramesNext()
	nOut := s.chunkSize

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
		s.logger.Debug("SincFixedOut.ProcessIntoBuffer", "input_frames", nIn, "output_frames", nOut)
	}

	pos := s.t
	half := s.table.sincLen / 2
	preroll := s.table.sincLen
	for i := 0; i < nOut; i++ {
		r := s.ratio.advance()
		n := int(math.Floor(pos))
		phi := pos - float64(n)
		center := n + half + preroll
		for ch := 0; ch < s.channels; ch++ {
			if !mask[ch] {
				continue
			}
			waveOut[ch][i] = s.interp.interpolate(s.history[ch].Hist(), center, phi)
		}
		pos += 1.0 / r
	}

	consumed := int(math.Floor(pos))
	avail := nIn
	if len(s.history) > 0 {
		avail = s.history[0].valid - s.table.sincLen
	}
	if consumed > avail {
		consumed = avail
	}
	for _, h := range s.history {
		h.Drop(consumed)
	}
	s.t = pos - float64(consumed)

	return nIn, nOut, nil
}
