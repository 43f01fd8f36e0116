package main

import (
	"image"
	"strings"
)

// helpText is the in-app manual. Paragraphs are wrapped to the dialog width
// at draw time; blank lines separate sections.
const helpText = `reXact-fps v` + appVersion + `

WHAT THIS IS

A timing and feel testbed. You steer a dot with a controller stick or the
mouse while choosing, independently, how often the simulation advances
(Engine FPS) and how often the screen shows a new picture (Visual FPS).
The point is to feel, not just read about, what simulation rate and
presentation rate each contribute to perceived responsiveness.

ENGINE FPS VS VISUAL FPS

Engine FPS is the fixed-step simulation rate. Input is applied and the dot
moves only on engine ticks, so a low engine rate feels sluggish no matter
how smooth the screen looks. Visual FPS caps how often a new frame is
drawn. Set it to 0 to render every loop iteration, uncapped.

Both rates run from the same wall clock through an accumulator: each loop
iteration banks the elapsed time and the engine drains it in whole fixed
steps. A slow frame triggers several engine ticks at once; a fast frame may
trigger none.

THE RETICLE AND THE DOT

The thin crosshair is a real-time estimate of where your input is pointing
right now, updated every loop iteration. The filled dot is the simulated
state, which only moves on engine ticks. At low engine rates the reticle
runs ahead of the dot; the gap between them is the lag you are feeling.
When the stick is centered the reticle snaps back onto the dot.

INTERPOLATION

With interpolation on, frames drawn between engine ticks blend the dot from
its previous position toward its latest one, trading up to one tick of
extra latency for smoothness. With it off you see raw steps. Try engine 60
with visual 120 and toggle it. Then try the reverse, engine 120 with
visual 60: interpolation changes almost nothing because every drawn frame
has fresh engine data.

BUTTONS AND THE TARGET

Any controller button (or mouse click in mouse mode) blinks the dot in that
button's color. Enable the bouncing target and press while the dot sits
fully inside it to trigger a hit flash. Target size and speed have their
own sliders.

MOUSE MODE

Press Ctrl to toggle mouse mode. The cursor position replaces stick
integration: each engine tick teleports the dot to the pointer, so the dot
tracks the mouse at whatever engine rate you set while the crosshair stays
glued to the pointer itself.

MEASURED RATES

The meters show measured averages over one-second windows, not the dial
settings. On a busy machine the measured rates can sit below the requested
ones; that gap is itself useful data.

CONTROLS

  Esc     quit (or close an open dialog)
  I       toggle interpolation
  Shift   show or hide the control panel
  Ctrl    toggle mouse mode
  Sliders snap to common rates; type an exact value in the box

Visual FPS = 0 means uncapped.

PROJECT

` + projectURL

const (
	helpScrollStep = 3
	helpCorner     = "Help"
)

// wrapText folds s to at most width runes per line, breaking on spaces and
// hard-splitting words longer than a whole line. Blank lines survive.
func wrapText(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	var out []string
	for _, raw := range strings.Split(s, "\n") {
		if strings.TrimSpace(raw) == "" {
			out = append(out, "")
			continue
		}
		line := ""
		lineLen := 0
		for _, word := range strings.Fields(raw) {
			runes := []rune(word)
			for len(runes) > width {
				if line != "" {
					out = append(out, line)
					line, lineLen = "", 0
				}
				out = append(out, string(runes[:width]))
				runes = runes[width:]
			}
			n := len(runes)
			switch {
			case line == "":
				line, lineLen = string(runes), n
			case lineLen+1+n <= width:
				line += " " + string(runes)
				lineLen += 1 + n
			default:
				out = append(out, line)
				line, lineLen = string(runes), n
			}
		}
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// helpManager owns the help dialog and its corner button.
type helpManager struct {
	open      bool
	lines     []string
	wrapWidth int
	scroll    int
	pageLines int

	cornerRect image.Rectangle
	rect       image.Rectangle
	textRect   image.Rectangle
	btnProject image.Rectangle
	btnClose   image.Rectangle
	scrollbar  image.Rectangle

	dragging   bool
	dragOffset int
}

func newHelpManager() *helpManager {
	return &helpManager{}
}

func (h *helpManager) toggle() {
	h.open = !h.open
}

func (h *helpManager) close() {
	h.open = false
}

// rewrap refolds the text when the dialog width changes.
func (h *helpManager) rewrap(width int) {
	if width == h.wrapWidth && h.lines != nil {
		return
	}
	h.wrapWidth = width
	h.lines = wrapText(helpText, width)
	h.clampScroll()
}

func (h *helpManager) maxScroll() int {
	m := len(h.lines) - h.pageLines
	if m < 0 {
		return 0
	}
	return m
}

func (h *helpManager) clampScroll() {
	h.scroll = clampInt(h.scroll, 0, h.maxScroll())
}

func (h *helpManager) scrollBy(lines int) {
	h.scroll += lines
	h.clampScroll()
}

func (h *helpManager) pageBy(pages int) {
	h.scroll += pages * h.pageLines
	h.clampScroll()
}

// handleCornerPress toggles the dialog from its corner button.
func (h *helpManager) handleCornerPress(x, y int) bool {
	if !pointIn(h.cornerRect, x, y) {
		return false
	}
	h.toggle()
	return true
}

// handlePress routes a click while the dialog is open. Like every modal
// here it swallows the click regardless of where it lands.
func (h *helpManager) handlePress(x, y int) bool {
	if !h.open {
		return false
	}
	switch {
	case pointIn(h.btnProject, x, y):
		openURL(projectURL)
	case pointIn(h.btnClose, x, y):
		h.close()
	case pointIn(h.scrollbar, x, y):
		h.dragging = true
		h.dragOffset = y - h.thumbRect().Min.Y
	}
	return true
}

func (h *helpManager) handleRelease() {
	h.dragging = false
}

// handleMove drags the scrollbar thumb.
func (h *helpManager) handleMove(y int) {
	if !h.dragging || h.maxScroll() == 0 {
		return
	}
	track := h.scrollbar
	thumbH := h.thumbRect().Dy()
	span := track.Dy() - thumbH
	if span <= 0 {
		return
	}
	rel := y - h.dragOffset - track.Min.Y
	frac := float64(rel) / float64(span)
	h.scroll = int(clamp(frac, 0, 1) * float64(h.maxScroll()))
}

// thumbRect places the scrollbar thumb for the current scroll position.
func (h *helpManager) thumbRect() image.Rectangle {
	track := h.scrollbar
	if len(h.lines) == 0 || h.pageLines <= 0 {
		return track
	}
	frac := float64(h.pageLines) / float64(len(h.lines))
	thumbH := int(clamp(frac, 0.1, 1) * float64(track.Dy()))
	span := track.Dy() - thumbH
	top := track.Min.Y
	if m := h.maxScroll(); m > 0 {
		top += int(float64(span) * float64(h.scroll) / float64(m))
	}
	return image.Rect(track.Min.X, top, track.Max.X, top+thumbH)
}
