package main

import (
	"image/color"
	"testing"
)

// TestButtonColor verifies the fixed assignments, the palette wraparound for
// high indices, and the negative-index fix.
func TestButtonColor(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  color.RGBA
	}{
		{"mapped_zero", 0, color.RGBA{80, 160, 255, 255}},
		{"mapped_top", 17, color.RGBA{120, 190, 255, 255}},
		{"palette_wrap", 18, buttonPalette[18%len(buttonPalette)]},
		{"palette_second_cycle", 16 + 18, buttonPalette[(16+18)%len(buttonPalette)]},
		{"negative_wraps_positive", -1, buttonPalette[len(buttonPalette)-1]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buttonColor(tt.index); got != tt.want {
				t.Errorf("buttonColor(%d) = %v, want %v", tt.index, got, tt.want)
			}
		})
	}
}

func TestButtonLabel(t *testing.T) {
	if got := buttonLabel(7); got != "button 7" {
		t.Errorf("buttonLabel(7) = %q, want %q", got, "button 7")
	}
}
