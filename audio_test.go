package main

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFrames(t *testing.T, s *clickStream, frames int) []int16 {
	t.Helper()
	buf := make([]byte, frames*4)
	n, err := s.Read(buf)
	require.NoError(t, err)
	require.Equal(t, frames*4, n)

	out := make([]int16, frames)
	for i := range out {
		l := int16(binary.LittleEndian.Uint16(buf[i*4:]))
		r := int16(binary.LittleEndian.Uint16(buf[i*4+2:]))
		require.Equal(t, l, r, "stereo channels carry the same sample")
		out[i] = l
	}
	return out
}

func TestClickStreamSilentByDefault(t *testing.T) {
	s := &clickStream{}
	for _, v := range readFrames(t, s, 64) {
		require.Zero(t, v)
	}
}

// TestClickStreamWholeFrames verifies Read never writes a torn sample: a
// buffer that is not a multiple of the frame size is filled only up to the
// last whole frame.
func TestClickStreamWholeFrames(t *testing.T) {
	s := &clickStream{}

	n, err := s.Read(make([]byte, 10))
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	n, err = s.Read(make([]byte, 3))
	require.NoError(t, err)
	assert.Zero(t, n)
}

// TestClickStreamEnvelope verifies the transient starts at full gain,
// decays, alternates sign at the square-wave period, and goes silent once
// its samples run out.
func TestClickStreamEnvelope(t *testing.T) {
	s := &clickStream{}
	s.trigger()

	samples := readFrames(t, s, clickSamples)

	fullGain := clickGain * float64(pcm16MaxValue)
	assert.Equal(t, int16(fullGain), samples[0], "first sample plays at full gain")

	assert.Positive(t, samples[1])
	assert.Less(t, samples[1], samples[0], "envelope decays")

	assert.Negative(t, samples[clickHalfPeriod], "square wave flips after a half period")

	for _, v := range readFrames(t, s, 32) {
		assert.Zero(t, v, "stream is silent after the transient ends")
	}
}

func TestClickStreamRetrigger(t *testing.T) {
	s := &clickStream{}
	s.trigger()
	readFrames(t, s, clickSamples/2)

	s.trigger()
	samples := readFrames(t, s, 1)
	fullGain := clickGain * float64(pcm16MaxValue)
	assert.Equal(t, int16(fullGain), samples[0], "retrigger restarts at full gain")
}
