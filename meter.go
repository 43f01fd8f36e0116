package main

import "time"

// rateMeter measures how often an event fires. Ticks accumulate into a
// window and the published value refreshes once per elapsed second, so the
// readout is a measured average rather than a per-frame estimate.
type rateMeter struct {
	windowStart time.Time
	count       int
	value       float64
}

func newRateMeter(now time.Time) *rateMeter {
	return &rateMeter{windowStart: now}
}

// tickAt records one occurrence at now, folding the window into value once a
// full second has elapsed since the window opened.
func (m *rateMeter) tickAt(now time.Time) {
	m.count++
	dt := now.Sub(m.windowStart).Seconds()
	if dt >= 1 {
		m.value = float64(m.count) / dt
		m.count = 0
		m.windowStart = now
	}
}
