package resampler

// ramp describes an in-progress linear ratio transition, advanced once per
// emitted output frame (spec.md §4.6).
type ramp struct {
	active    bool
	remaining int
	step      float64
}

// ratioState tracks the resampler's ratio bookkeeping: the ratio it was
// constructed with, the most recently requested target, the value
// actually in effect for the next output frame, the allowed relative
// range, and an optional in-progress ramp.
type ratioState struct {
	original    float64
	target      float64
	current     float64
	maxRelative float64
	ramp        ramp
}

func newRatioState(original, maxRelative float64) ratioState {
	return ratioState{
		original:    original,
		target:      original,
		current:     original,
		maxRelative: maxRelative,
	}
}

// relativeInBounds reports whether ratio/original lies within
// [1/maxRelative, maxRelative].
func (r *ratioState) relativeInBounds(ratio float64) bool {
	rel := ratio / r.original
	return rel >= 1.0/r.maxRelative && rel <= r.maxRelative
}

// setAbsolute implements SetResampleRatio: if ramp is false, current takes
// the new value immediately (applied as of the next process call, never
// mid-chunk); if ramp is true, a ramp is armed to reach newRatio over the
// next chunk's nbrFrames output frames. Setting a new ratio while a ramp
// is already active cancels it and starts a fresh ramp from the
// instantaneous current value (spec.md §9's resolved open question).
func (r *ratioState) setAbsolute(newRatio float64, doRamp bool, nbrFrames int) error {
	if !r.relativeInBounds(newRatio) {
		return &ProcessError{
			Kind: RatioOutOfBounds,
			Got:  newRatio,
			Min:  r.original / r.maxRelative,
			Max:  r.original * r.maxRelative,
		}
	}
	r.target = newRatio
	if !doRamp || nbrFrames <= 0 {
		r.current = newRatio
		r.ramp = ramp{}
		return nil
	}
	r.ramp = ramp{
		active:    true,
		remaining: nbrFrames,
		step:      (newRatio - r.current) / float64(nbrFrames),
	}
	return nil
}

// setRelative implements SetResampleRatioRelative: rel is a factor applied
// to the original ratio.
func (r *ratioState) setRelative(rel float64, doRamp bool, nbrFrames int) error {
	return r.setAbsolute(r.original*rel, doRamp, nbrFrames)
}

// advance moves the ramp forward by one emitted output frame, returning
// the ratio to use for that frame. Call this once per output frame and
// compute the frame's input step from the returned value; r.current has
// already moved on to the next frame's ratio.
func (r *ratioState) advance() float64 {
	used := r.current
	if r.ramp.active {
		r.current += r.ramp.step
		r.ramp.remaining--
		if r.ramp.remaining <= 0 {
			r.current = r.target
			r.ramp = ramp{}
		}
	}
	return used
}

// reset returns the ratio state to its post-construction form.
func (r *ratioState) reset() {
	r.target = r.original
	r.current = r.original
	r.ramp = ramp{}
}
