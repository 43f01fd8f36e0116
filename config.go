package main

import (
	"fmt"
	"image/color"
	"time"
)

// Tuning constants for the testbed: canvas geometry, entity motion, effect
// durations, rate bounds, and the fixed visual style. These are the startup
// defaults; flags, the optional config file, and the HUD adjust live values.
const (
	appTitle   = "reXact-fps"
	appVersion = "0.4"

	projectURL          = "https://github.com/Retzilience/reXact-fps"
	releasesURL         = "https://github.com/Retzilience/reXact-fps/releases"
	updateDescriptorURL = "https://raw.githubusercontent.com/Retzilience/reXact-fps/main/version.upd"

	defaultWindowW = 1280
	defaultWindowH = 720
	minWindowW     = 800
	minWindowH     = 600

	canvasMargin = 12

	ballRadius   = 14.0
	ballSpeedPxS = 700.0
	glowDuration = 0.5

	targetSizePctDefault = 165
	targetSizePctMin     = 120
	targetSizePctMax     = 500

	targetSpeedDefault = 170
	targetSpeedMin     = 60
	targetSpeedMax     = 420

	flashDuration = 0.35

	engineFPSMin     = 10
	engineFPSMax     = 360
	engineFPSDefault = 120

	// A visual rate of 0 means uncapped presentation.
	visualFPSMin     = 0
	visualFPSMax     = 360
	visualFPSDefault = 60

	relaxedDeadzone   = 0.16
	unrelaxedDeadzone = 0.0

	// Frame deltas are capped so a stall produces one burst of catch-up
	// ticks instead of unbounded debt.
	maxFrameDelta  = 0.25
	paceSleepFloor = 0.002
	paceSleepFrac  = 0.75

	startupNoticeDuration = 3.0

	updateCheckDelay  = 2 * time.Second
	updateHTTPTimeout = 6 * time.Second

	audioSampleRate    = 48000
	audioBufferLatency = 40 * time.Millisecond

	frameStatsWindow   = 240
	statsRefreshPeriod = time.Second
)

// snapPoints are the soft-snap stops shared by the rate sliders.
var snapPoints = []int{24, 30, 40, 60, 120, 144, 210, 300}

var (
	targetSizeSnaps  = []int{140, 165, 200, 240, 300, 400, 500}
	targetSpeedSnaps = []int{120, 170, 220, 280, 340}
)

var (
	colorBackground    = color.RGBA{14, 16, 20, 255}
	colorCanvasBorder  = color.RGBA{40, 46, 60, 255}
	colorBallBase      = color.RGBA{235, 235, 235, 255}
	colorTargetOutline = color.RGBA{200, 200, 200, 255}
	colorTargetHit     = color.RGBA{255, 220, 80, 255}
	colorReticle       = color.RGBA{220, 220, 220, 255}

	colorHUDBg         = color.NRGBA{0, 0, 0, 150}
	colorHUDBorder     = color.RGBA{90, 100, 120, 255}
	colorHUDText       = color.RGBA{210, 210, 210, 255}
	colorHUDTextBright = color.RGBA{235, 235, 235, 255}
	colorMiniPanelBg   = color.NRGBA{0, 0, 0, 165}
)

// buttonColors maps controller button indices to their blink colors. Indices
// beyond the map cycle through buttonPalette.
var buttonColors = map[int]color.RGBA{
	0:  {80, 160, 255, 255},
	1:  {255, 90, 90, 255},
	2:  {255, 110, 255, 255},
	3:  {120, 255, 130, 255},
	4:  {180, 200, 255, 255},
	5:  {90, 255, 255, 255},
	6:  {255, 210, 90, 255},
	7:  {185, 135, 255, 255},
	8:  {125, 255, 225, 255},
	9:  {255, 150, 80, 255},
	10: {220, 255, 90, 255},
	11: {130, 175, 255, 255},
	12: {255, 130, 175, 255},
	13: {175, 255, 130, 255},
	14: {255, 175, 130, 255},
	15: {200, 190, 255, 255},
	16: {255, 120, 190, 255},
	17: {120, 190, 255, 255},
}

var buttonPalette = []color.RGBA{
	{80, 160, 255, 255},
	{255, 90, 90, 255},
	{255, 110, 255, 255},
	{120, 255, 130, 255},
	{255, 210, 90, 255},
	{90, 255, 255, 255},
	{255, 150, 80, 255},
	{220, 255, 90, 255},
	{185, 135, 255, 255},
	{125, 255, 225, 255},
	{180, 200, 255, 255},
	{200, 190, 255, 255},
	{255, 130, 175, 255},
	{130, 175, 255, 255},
	{175, 255, 130, 255},
	{255, 175, 130, 255},
}

// buttonColor resolves the blink color for a button index.
func buttonColor(index int) color.RGBA {
	if c, ok := buttonColors[index]; ok {
		return c
	}
	if len(buttonPalette) > 0 {
		i := index % len(buttonPalette)
		if i < 0 {
			i += len(buttonPalette)
		}
		return buttonPalette[i]
	}
	return colorBallBase
}

// buttonLabel names a button for the HUD.
func buttonLabel(index int) string {
	return fmt.Sprintf("button %d", index)
}
