package resampler

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// P1 (shape), property form: for randomly chosen ratios and chunk sizes,
// ProcessIntoBuffer's returned counts always equal the frames_next values
// observed immediately before the call.
func TestProperty_ShapeMatchesFramesNext(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ratio := rapid.Float64Range(0.3, 3.0).Draw(rt, "ratio")
		chunk := rapid.IntRange(32, 512).Draw(rt, "chunk")

		r, err := NewSincFixedIn[float64](ratio, 1.5, testParams(), chunk, 1)
		require.NoError(rt, err)

		in := r.InputBufferAllocate()
		out := r.OutputBufferAllocate()

		wantIn := r.InputFramesNext()
		wantOut := r.OutputFramesNext()
		gotIn, gotOut, err := r.ProcessIntoBuffer(in, out, nil)
		require.NoError(rt, err)
		require.Equal(rt, wantIn, gotIn)
		require.Equal(rt, wantOut, gotOut)
	})
}

// P3 (channel independence): for any input drawn the same way on every
// channel, every channel's output is identical.
func TestProperty_ChannelIndependence(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 4).Draw(rt, "channels")
		chunk := rapid.IntRange(32, 256).Draw(rt, "chunk")

		r, err := NewSincFixedIn[float64](1.3, 1.2, testParams(), chunk, n)
		require.NoError(rt, err)

		in := r.InputBufferAllocate()
		for i := range in[0] {
			v := rapid.Float64Range(-10, 10).Draw(rt, "sample")
			for ch := range in {
				in[ch][i] = v
			}
		}
		out := r.OutputBufferAllocate()
		_, nOut, err := r.ProcessIntoBuffer(in, out, nil)
		require.NoError(rt, err)

		for ch := 1; ch < n; ch++ {
			require.Equal(rt, out[0][:nOut], out[ch][:nOut])
		}
	})
}

// P6 (ratio bounds): a relative ratio request outside [1/max, max] is
// always rejected and never mutates the current ratio.
func TestProperty_RatioBoundsRejected(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		maxRel := rapid.Float64Range(1.01, 4.0).Draw(rt, "maxRel")
		r, err := NewSincFixedIn[float64](1.0, maxRel, testParams(), 64, 1)
		require.NoError(rt, err)

		// Draw something guaranteed outside [1/maxRel, maxRel].
		outside := maxRel * rapid.Float64Range(1.5, 10.0).Draw(rt, "factor")

		before := r.ratio.current
		err = r.SetResampleRatioRelative(outside, false)
		require.Error(rt, err)
		require.Equal(rt, before, r.ratio.current)
	})
}

// P4 (mask), property form: whatever sentinel value pre-fills an inactive
// channel's output region, it survives the call untouched.
func TestProperty_MaskPreservesSentinel(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		sentinel := rapid.Float64Range(-1e6, 1e6).Draw(rt, "sentinel")
		chunk := rapid.IntRange(32, 256).Draw(rt, "chunk")

		r, err := NewSincFixedIn[float64](1.1, 1.2, testParams(), chunk, 2)
		require.NoError(rt, err)

		in := r.InputBufferAllocate()
		for i := range in[0] {
			in[0][i], in[1][i] = 1, 1
		}
		out := r.OutputBufferAllocate()
		for i := range out[1] {
			out[1][i] = sentinel
		}

		_, nOut, err := r.ProcessIntoBuffer(in, out, []bool{true, false})
		require.NoError(rt, err)
		for _, v := range out[1][:nOut] {
			require.Equal(rt, sentinel, v)
		}
	})
}
