package main

import (
	"image/color"
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"inside", 5, 0, 10, 5},
		{"below", -3, 0, 10, 0},
		{"above", 42, 0, 10, 10},
		{"at_low_bound", 0, 0, 10, 0},
		{"at_high_bound", 10, 0, 10, 10},
		{"negative_range", -7, -10, -5, -7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestClampInt(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi int
		want      int
	}{
		{"inside", 60, 10, 360, 60},
		{"below", 3, 10, 360, 10},
		{"above", 9999, 10, 360, 360},
		{"at_bounds", 360, 10, 360, 360},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampInt(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("clampInt(%d, %d, %d) = %d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		name    string
		a, b, t float64
		want    float64
	}{
		{"start", 0, 10, 0, 0},
		{"end", 0, 10, 1, 10},
		{"middle", 0, 10, 0.5, 5},
		{"descending", 10, 0, 0.25, 7.5},
		{"extrapolates", 0, 10, 2, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lerp(tt.a, tt.b, tt.t); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
			}
		})
	}
}

// TestLerpColor verifies per-channel rounding, t clamping, and that the
// result is always opaque.
func TestLerpColor(t *testing.T) {
	black := color.RGBA{0, 0, 0, 255}
	white := color.RGBA{255, 255, 255, 255}

	tests := []struct {
		name   string
		c0, c1 color.RGBA
		t      float64
		want   color.RGBA
	}{
		{"at_zero", black, white, 0, black},
		{"at_one", black, white, 1, white},
		{"midpoint_rounds_up", black, white, 0.5, color.RGBA{128, 128, 128, 255}},
		{"t_below_clamps", black, white, -3, black},
		{"t_above_clamps", black, white, 7, white},
		{"translucent_input_opaque_output", color.RGBA{10, 20, 30, 0}, color.RGBA{10, 20, 30, 0}, 0.5, color.RGBA{10, 20, 30, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lerpColor(tt.c0, tt.c1, tt.t); got != tt.want {
				t.Errorf("lerpColor(%v, %v, %v) = %v, want %v", tt.c0, tt.c1, tt.t, got, tt.want)
			}
		})
	}
}

func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want float64
	}{
		{"zero", 0, 0},
		{"one", 1, 1},
		{"half", 0.5, 0.875},
		{"clamps_below", -1, 0},
		{"clamps_above", 2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := easeOutCubic(tt.t); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("easeOutCubic(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

// TestApplyDeadzone verifies the zero region, the rescale back to the full
// [-1, 1] span, and the degenerate full-deadzone case.
func TestApplyDeadzone(t *testing.T) {
	tests := []struct {
		name        string
		v, deadzone float64
		want        float64
	}{
		{"centered", 0, 0.16, 0},
		{"inside_deadzone", 0.1, 0.16, 0},
		{"on_deadzone_edge", 0.16, 0.16, 0},
		{"negative_inside", -0.15, 0.16, 0},
		{"rescaled_midpoint", 0.58, 0.16, 0.5},
		{"rescaled_negative", -0.58, 0.16, -0.5},
		{"full_deflection", 1, 0.16, 1},
		{"full_negative", -1, 0.16, -1},
		{"overdrive_clamps", 1.5, 0.16, 1},
		{"zero_deadzone_passthrough", 0.37, 0, 0.37},
		{"deadzone_one_always_zero", 0.5, 1, 0},
		{"deadzone_over_one_always_zero", 2, 1.5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := applyDeadzone(tt.v, tt.deadzone); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("applyDeadzone(%v, %v) = %v, want %v", tt.v, tt.deadzone, got, tt.want)
			}
		})
	}
}

func TestDistanceSq(t *testing.T) {
	if got := distanceSq(0, 0, 3, 4); got != 25 {
		t.Errorf("distanceSq(0,0,3,4) = %v, want 25", got)
	}
	if got := distanceSq(5, 5, 5, 5); got != 0 {
		t.Errorf("distanceSq of identical points = %v, want 0", got)
	}
	if got := distanceSq(3, 4, 0, 0); got != 25 {
		t.Errorf("distanceSq is not symmetric: got %v, want 25", got)
	}
}

// TestNearestSnap verifies the soft-snap window and that ties keep the
// earlier stop.
func TestNearestSnap(t *testing.T) {
	tests := []struct {
		name   string
		value  int
		snaps  []int
		window int
		want   int
	}{
		{"snaps_within_window", 58, []int{24, 30, 40, 60, 120}, 5, 60},
		{"stays_outside_window", 50, []int{24, 30, 40, 60, 120}, 5, 50},
		{"exact_stop", 120, []int{24, 30, 40, 60, 120}, 5, 120},
		{"tie_keeps_first", 15, []int{10, 20}, 5, 10},
		{"zero_window_exact_only", 60, []int{60}, 0, 60},
		{"zero_window_near_miss", 61, []int{60}, 0, 61},
		{"empty_snaps", 77, nil, 5, 77},
		{"negative_value", -3, []int{0}, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nearestSnap(tt.value, tt.snaps, tt.window); got != tt.want {
				t.Errorf("nearestSnap(%d, %v, %d) = %d, want %d", tt.value, tt.snaps, tt.window, got, tt.want)
			}
		})
	}
}
