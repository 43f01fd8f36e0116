package main

import (
	"image/color"
	"math"
)

// clamp constrains v to the inclusive [lo, hi] range.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampInt constrains v to the inclusive [lo, hi] range.
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// lerp interpolates linearly from a to b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// lerpColor blends two colors channel by channel, clamping t to [0, 1].
// The result is always fully opaque.
func lerpColor(c0, c1 color.RGBA, t float64) color.RGBA {
	t = clamp(t, 0, 1)
	return color.RGBA{
		R: uint8(math.Round(lerp(float64(c0.R), float64(c1.R), t))),
		G: uint8(math.Round(lerp(float64(c0.G), float64(c1.G), t))),
		B: uint8(math.Round(lerp(float64(c0.B), float64(c1.B), t))),
		A: 255,
	}
}

// easeOutCubic maps t in [0, 1] onto a fast-start, slow-finish curve.
func easeOutCubic(t float64) float64 {
	t = clamp(t, 0, 1)
	u := 1 - t
	return 1 - u*u*u
}

// applyDeadzone zeroes axis values inside the deadzone and rescales the
// remainder so the output still spans the full [-1, 1] range.
func applyDeadzone(v, deadzone float64) float64 {
	if math.Abs(v) <= deadzone {
		return 0
	}
	if deadzone >= 1 {
		return 0
	}
	s := 1.0
	if v < 0 {
		s = -1
	}
	n := (math.Abs(v) - deadzone) / (1 - deadzone)
	return s * clamp(n, 0, 1)
}

// distanceSq returns the squared distance between two points.
func distanceSq(x0, y0, x1, y1 float64) float64 {
	dx := x1 - x0
	dy := y1 - y0
	return dx*dx + dy*dy
}

// nearestSnap pulls value onto the closest snap stop within window, leaving
// it untouched when no stop is near enough.
func nearestSnap(value int, snaps []int, window int) int {
	best := value
	bestDist := window + 1
	for _, s := range snaps {
		d := value - s
		if d < 0 {
			d = -d
		}
		if d <= window && d < bestDist {
			best = s
			bestDist = d
		}
	}
	return best
}
