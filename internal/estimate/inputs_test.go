package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputsSet(t *testing.T) {
	var in Inputs

	in, ok := in.Set(CallsPerDay, "5")
	require.True(t, ok)
	in, ok = in.Set(CallDuration, "2")
	require.True(t, ok)

	assert.Equal(t, "5", in.Get(CallsPerDay))
	assert.Equal(t, "2", in.Get(CallDuration))

	rejected, ok := in.Set(CallsPerDay, "5x")
	assert.False(t, ok)
	assert.Equal(t, in, rejected)

	est := in.Estimate(DefaultRates)
	assert.Equal(t, 300.0, est.TotalMinutes)
}

func TestInputsSet_KeystrokeSequence(t *testing.T) {
	var in Inputs
	typed := ""
	for _, r := range "1a2.-3.4" {
		typed = in.Get(CallDuration) + string(r)
		in, _ = in.Set(CallDuration, typed)
		assert.True(t, Accept(in.Get(CallDuration)))
	}
	assert.Equal(t, "12.34", in.Get(CallDuration))
	assert.Equal(t, "", in.Get(CallsPerDay))
}

func TestFieldNavigation(t *testing.T) {
	assert.Equal(t, CallDuration, CallsPerDay.Next())
	assert.Equal(t, CallsPerDay, CallDuration.Next())
	assert.Equal(t, CallDuration, CallsPerDay.Prev())
	assert.Equal(t, CallsPerDay, CallDuration.Prev())
	assert.Equal(t, "Daily Call Volume", CallsPerDay.String())
	assert.Equal(t, "Average Call Duration", CallDuration.String())
}
