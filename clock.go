package main

import "time"

// loopClock owns the fixed-step accumulator and the render cadence for the
// main loop. Every method takes an explicit time so the loop logic stays
// deterministic under test; only the caller reads the wall clock.
type loopClock struct {
	lastTime    time.Time
	lastRender  time.Time
	accumulator float64
}

// beginFrame advances the clock to now and returns the frame delta credited
// to the accumulator. Deltas are capped at maxFrameDelta so a long stall
// cannot queue an unbounded burst of catch-up ticks.
func (c *loopClock) beginFrame(now time.Time) float64 {
	if c.lastTime.IsZero() {
		c.lastTime = now
		return 0
	}
	frameDt := now.Sub(c.lastTime).Seconds()
	c.lastTime = now
	if frameDt > maxFrameDelta {
		frameDt = maxFrameDelta
	}
	c.accumulator += frameDt
	return frameDt
}

// drain runs step once per whole engineDt currently in the accumulator and
// returns how many steps ran. Zero steps on a fast frame is normal.
func (c *loopClock) drain(engineDt float64, step func(tick int)) int {
	if engineDt <= 0 {
		return 0
	}
	n := 0
	for c.accumulator >= engineDt {
		step(n)
		c.accumulator -= engineDt
		n++
	}
	return n
}

// renderAlpha reports how far the current moment sits between the last tick
// and the next, in [0, 1].
func (c *loopClock) renderAlpha(engineDt float64) float64 {
	if engineDt <= 0 {
		return 0
	}
	return clamp(c.accumulator/engineDt, 0, 1)
}

// renderDue applies the visual-rate gate. A rate of 0 is uncapped and
// renders every frame.
func (c *loopClock) renderDue(now time.Time, visualFPS int) bool {
	if visualFPS <= 0 {
		return true
	}
	return now.Sub(c.lastRender).Seconds() >= 1.0/float64(visualFPS)
}

func (c *loopClock) markRender(now time.Time) {
	c.lastRender = now
}

// paceSleep returns how long the loop may sleep before the next deadline:
// a fraction of the shorter wait among the next engine tick and the next
// render. Uncapped rendering is due immediately, so the sleep is zero and
// the loop spins. Waits at or under paceSleepFloor are not worth a sleep.
func (c *loopClock) paceSleep(now time.Time, engineDt float64, visualFPS int) time.Duration {
	nextEngine := engineDt - c.accumulator
	if nextEngine < 0 {
		nextEngine = 0
	}
	nextRender := 0.0
	if visualFPS > 0 {
		nextRender = 1.0/float64(visualFPS) - now.Sub(c.lastRender).Seconds()
		if nextRender < 0 {
			nextRender = 0
		}
	}
	wait := nextEngine
	if nextRender < wait {
		wait = nextRender
	}
	if wait <= paceSleepFloor {
		return 0
	}
	return time.Duration(wait * paceSleepFrac * float64(time.Second))
}
