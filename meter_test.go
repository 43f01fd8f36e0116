package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestRateMeterHoldsUntilFullSecond verifies that the published value does
// not move while the measurement window is still open.
func TestRateMeterHoldsUntilFullSecond(t *testing.T) {
	base := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	m := newRateMeter(base)

	for i := 1; i <= 99; i++ {
		m.tickAt(base.Add(time.Duration(i) * 10 * time.Millisecond))
	}
	require.Zero(t, m.value, "value must stay zero before a full second elapses")
}

// TestRateMeterPublishesAverage verifies that the window folds into
// count/elapsed once a second has passed, then starts a fresh window.
func TestRateMeterPublishesAverage(t *testing.T) {
	base := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	m := newRateMeter(base)

	for i := 1; i <= 99; i++ {
		m.tickAt(base.Add(time.Duration(i) * 10 * time.Millisecond))
	}
	m.tickAt(base.Add(time.Second))
	require.InDelta(t, 100.0, m.value, 1e-9)

	// Mid-window ticks leave the published value alone.
	m.tickAt(base.Add(1500 * time.Millisecond))
	require.InDelta(t, 100.0, m.value, 1e-9)

	// The second window folds relative to the first fold, not to creation.
	m.tickAt(base.Add(2 * time.Second))
	require.InDelta(t, 2.0, m.value, 1e-9)
}

// TestRateMeterSlowRate verifies that a sparse tick stream divides by the
// real elapsed window, not an assumed one second.
func TestRateMeterSlowRate(t *testing.T) {
	base := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	m := newRateMeter(base)

	m.tickAt(base.Add(4 * time.Second))
	require.InDelta(t, 0.25, m.value, 1e-9)
}
