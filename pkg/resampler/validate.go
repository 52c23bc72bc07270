package resampler

// validateBuffers performs the five checks spec.md §4.10/§6 require before
// any process call, reporting the first failure. mask may be nil, meaning
// all channels active (no length check is then required).
func validateBuffers[T Sample](in, out [][]T, mask []bool, channels, minInputLen, minOutputLen int) error {
	if len(in) != channels {
		return &ProcessError{Kind: WrongNumberOfInputChannels, Expected: channels, Actual: len(in)}
	}
	if mask != nil && len(mask) != channels {
		return &ProcessError{Kind: WrongNumberOfMaskChannels, Expected: channels, Actual: len(mask)}
	}
	for _, ch := range in {
		if len(ch) < minInputLen {
			return &ProcessError{Kind: InsufficientInputBufferSize, Expected: minInputLen, Actual: len(ch)}
		}
	}
	if len(out) != channels {
		return &ProcessError{Kind: WrongNumberOfOutputChannels, Expected: channels, Actual: len(out)}
	}
	for _, ch := range out {
		if len(ch) < minOutputLen {
			return &ProcessError{Kind: InsufficientOutputBufferSize, Expected: minOutputLen, Actual: len(ch)}
		}
	}
	return nil
}
