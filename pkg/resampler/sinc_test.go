package resampler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidSincLength(t *testing.T) {
	t.Parallel()

	assert.True(t, validSincLength(8))
	assert.True(t, validSincLength(256))
	assert.False(t, validSincLength(0))
	assert.False(t, validSincLength(-8))
	assert.False(t, validSincLength(7))  // odd
	assert.False(t, validSincLength(10)) // even but not a multiple of laneWidth
}

func TestNewSincTable_RowShapeAndPeak(t *testing.T) {
	t.Parallel()

	sincLen := 32
	of := 16
	table := newSincTable[float64](sincLen, of, 0.9, Blackman)

	assert.Equal(t, (of+1)*sincLen, len(table.rows))

	row0 := table.row(0)
	assert.Len(t, row0, sincLen)

	// Row 0's sinc kernel is centered at tap sincLen/2, where the
	// argument to sinc() is zero and the window is near its peak; that
	// tap should be the largest-magnitude value in the row.
	peak := row0[sincLen/2]
	for i, v := range row0 {
		assert.LessOrEqualf(t, v, peak+1e-9, "tap %d exceeds center tap", i)
	}
}

func TestNewSincTable_RowsAreDistinctPhases(t *testing.T) {
	t.Parallel()

	// Row oversamplingFactor (phase 1) is a distinct kernel shift from
	// row 0 (phase 0), not a copy of it: the sinc argument differs by a
	// full input sample.
	sincLen := 16
	of := 8
	table := newSincTable[float64](sincLen, of, 0.9, Hann)
	r0 := table.row(0)
	rLast := table.row(of)

	differs := false
	for i := range r0 {
		if r0[i] != rLast[i] {
			differs = true
			break
		}
	}
	assert.True(t, differs)
}
