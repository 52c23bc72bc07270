package resampler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructionError_Error(t *testing.T) {
	t.Parallel()

	err := &ConstructionError{Kind: InvalidSincLength, Got: 63, RequiredMultiple: 8}
	assert.Contains(t, err.Error(), "63")
	assert.Contains(t, err.Error(), "8")
}

func TestProcessError_Error(t *testing.T) {
	t.Parallel()

	err := &ProcessError{Kind: RatioOutOfBounds, Got: 9.0, Min: 1.0, Max: 4.0}
	msg := err.Error()
	assert.Contains(t, msg, "9")
	assert.Contains(t, msg, "1")
	assert.Contains(t, msg, "4")
}

func TestErrorKinds_StringersCoverAllValues(t *testing.T) {
	t.Parallel()

	kinds := []ConstructionErrorKind{InvalidSincLength, InvalidRatio, InvalidRelativeRatio, InvalidOversamplingFactor}
	for _, k := range kinds {
		assert.NotEqual(t, "unknown", k.String())
	}

	pKinds := []ProcessErrorKind{
		WrongNumberOfInputChannels, WrongNumberOfOutputChannels, WrongNumberOfMaskChannels,
		InsufficientInputBufferSize, InsufficientOutputBufferSize, RatioOutOfBounds, SyncNotAdjustable,
	}
	for _, k := range pKinds {
		assert.NotEqual(t, "unknown", k.String())
	}
}
