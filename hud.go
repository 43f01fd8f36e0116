package main

import (
	"image"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Debug-text cell metrics. Every HUD measurement derives from these.
const (
	charW = 6
	lineH = 16

	rowH      = 26
	rowGap    = 4
	panelPad  = 10
	labelW    = 170
	valueBoxW = 54
	checkBox  = 16

	dropdownMaxVisible = 8
)

// widget is one interactive HUD row. Handlers report whether they consumed
// the event so the panel can stop routing.
type widget interface {
	handlePress(x, y int) bool
	handleRelease(x, y int)
	handleMove(x, y int)
	handleKeys() bool
	draw(dst *ebiten.Image)
	drawOverlay(dst *ebiten.Image)
}

// rowTooltip remembers a truncated string so the overlay pass can show the
// full text while the pointer rests on it.
type rowTooltip struct {
	text string
	rect image.Rectangle
}

func (tp *rowTooltip) set(text string, r image.Rectangle) {
	tp.text = text
	tp.rect = r
}

func (tp *rowTooltip) clear() {
	tp.text = ""
}

func (tp *rowTooltip) drawOverlay(dst *ebiten.Image) {
	if tp.text == "" {
		return
	}
	mx, my := ebiten.CursorPosition()
	if !pointIn(tp.rect, mx, my) {
		return
	}
	drawTooltip(dst, tp.text, mx, my)
}

// checkboxRow toggles a bool through get/set closures.
type checkboxRow struct {
	rect  image.Rectangle
	label string
	get   func() bool
	set   func(bool)

	tip rowTooltip
}

func (c *checkboxRow) handlePress(x, y int) bool {
	if !pointIn(c.rect, x, y) {
		return false
	}
	c.set(!c.get())
	return true
}

func (c *checkboxRow) handleRelease(int, int) {}
func (c *checkboxRow) handleMove(int, int)    {}
func (c *checkboxRow) handleKeys() bool       { return false }

func (c *checkboxRow) draw(dst *ebiten.Image) {
	boxY := c.rect.Min.Y + (c.rect.Dy()-checkBox)/2
	box := image.Rect(c.rect.Min.X, boxY, c.rect.Min.X+checkBox, boxY+checkBox)
	strokeRect(dst, box, 1, colorHUDBorder)
	if c.get() {
		fillRect(dst, box.Inset(4), colorHUDTextBright)
	}
	labelX := box.Max.X + 8
	shown := truncateText(c.label, (c.rect.Max.X-labelX)/charW)
	textAt(dst, shown, labelX, c.rect.Min.Y+(c.rect.Dy()-lineH)/2)
	if shown != c.label {
		c.tip.set(c.label, image.Rect(labelX, c.rect.Min.Y, c.rect.Max.X, c.rect.Max.Y))
	} else {
		c.tip.clear()
	}
}

func (c *checkboxRow) drawOverlay(dst *ebiten.Image) {
	c.tip.drawOverlay(dst)
}

// dropdownRow shows the current item and opens a floating pick list. The
// item list is re-read on every open so device and resolution lists stay
// fresh without explicit invalidation.
type dropdownRow struct {
	rect   image.Rectangle
	label  string
	items  func() []string
	currnt func() int
	onPick func(int)

	open     bool
	itemsNow []string
	scroll   int

	tip rowTooltip
}

func (d *dropdownRow) valueRect() image.Rectangle {
	return image.Rect(d.rect.Min.X+labelW, d.rect.Min.Y+2, d.rect.Max.X, d.rect.Max.Y-2)
}

// overlayRect is the floating list, anchored under the value box.
func (d *dropdownRow) overlayRect() image.Rectangle {
	v := d.valueRect()
	n := len(d.itemsNow)
	if n > dropdownMaxVisible {
		n = dropdownMaxVisible
	}
	return image.Rect(v.Min.X, v.Max.Y, v.Max.X, v.Max.Y+n*(lineH+4))
}

func (d *dropdownRow) handlePress(x, y int) bool {
	if !pointIn(d.valueRect(), x, y) {
		return false
	}
	d.open = !d.open
	if d.open {
		d.itemsNow = d.items()
		d.scroll = 0
	}
	return true
}

// pressWhileOpen routes a click anywhere on screen while the list floats.
// A pick closes the list; any other click just closes it.
func (d *dropdownRow) pressWhileOpen(x, y int) bool {
	ov := d.overlayRect()
	if pointIn(ov, x, y) {
		idx := d.scroll + (y-ov.Min.Y)/(lineH+4)
		if idx >= 0 && idx < len(d.itemsNow) {
			d.onPick(idx)
		}
	}
	d.open = false
	return true
}

func (d *dropdownRow) handleWheel(dy float64) {
	if !d.open {
		return
	}
	if dy > 0 {
		d.scroll--
	} else if dy < 0 {
		d.scroll++
	}
	maxScroll := len(d.itemsNow) - dropdownMaxVisible
	if maxScroll < 0 {
		maxScroll = 0
	}
	d.scroll = clampInt(d.scroll, 0, maxScroll)
}

func (d *dropdownRow) handleRelease(int, int) {}
func (d *dropdownRow) handleMove(int, int)    {}
func (d *dropdownRow) handleKeys() bool       { return false }

func (d *dropdownRow) draw(dst *ebiten.Image) {
	shownLabel := truncateText(d.label, labelW/charW-1)
	textAt(dst, shownLabel, d.rect.Min.X, d.rect.Min.Y+(d.rect.Dy()-lineH)/2)
	v := d.valueRect()
	fillRect(dst, v, colorMiniPanelBg)
	strokeRect(dst, v, 1, colorHUDBorder)

	items := d.items()
	cur := d.currnt()
	label := ""
	if cur >= 0 && cur < len(items) {
		label = items[cur]
	}
	shown := truncateText(label, (v.Dx()-20)/charW)
	textAt(dst, shown, v.Min.X+6, v.Min.Y+(v.Dy()-lineH)/2)
	textAt(dst, "v", v.Max.X-12, v.Min.Y+(v.Dy()-lineH)/2)

	// The value wins the tooltip when both it and the label truncate.
	switch {
	case shown != label:
		d.tip.set(label, v)
	case shownLabel != d.label:
		d.tip.set(d.label, image.Rect(d.rect.Min.X, d.rect.Min.Y, d.rect.Min.X+labelW, d.rect.Max.Y))
	default:
		d.tip.clear()
	}
}

func (d *dropdownRow) drawOverlay(dst *ebiten.Image) {
	if !d.open {
		d.tip.drawOverlay(dst)
		return
	}
	ov := d.overlayRect()
	fillRect(dst, ov, colorBackground)
	strokeRect(dst, ov, 1, colorHUDBorder)
	y := ov.Min.Y
	for i := d.scroll; i < len(d.itemsNow) && i < d.scroll+dropdownMaxVisible; i++ {
		if i == d.currnt() {
			fillRect(dst, image.Rect(ov.Min.X+1, y+1, ov.Max.X-1, y+lineH+3), colorHUDBorder)
		}
		textAt(dst, truncateText(d.itemsNow[i], (ov.Dx()-12)/charW), ov.Min.X+6, y+2)
		y += lineH + 4
	}
}

// truncateText shortens s to max runes with a trailing tilde marker.
func truncateText(s string, max int) string {
	if max < 1 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max == 1 {
		return "~"
	}
	return string(r[:max-1]) + "~"
}

// sliderValueFromX maps a track click onto a value, soft-snapping to the
// row's snap stops.
func sliderValueFromX(x, trackMinX, trackW, min, max int, snaps []int, window int) int {
	if trackW < 1 {
		return min
	}
	frac := clamp(float64(x-trackMinX)/float64(trackW), 0, 1)
	v := min + int(frac*float64(max-min)+0.5)
	v = nearestSnap(v, snaps, window)
	return clampInt(v, min, max)
}

// sliderRow is a draggable track with a type-in value box. Dragging snaps
// to the stops; the box commits exact values on Enter. When allowEmpty is
// set, committing an empty box applies emptyValue.
type sliderRow struct {
	rect     image.Rectangle
	label    string
	min, max int
	get      func() int
	set      func(int)

	snaps      []int
	snapWindow int
	allowEmpty bool
	emptyValue int

	dragging bool
	editing  bool
	text     string

	tip rowTooltip
}

func (s *sliderRow) trackRect() image.Rectangle {
	return image.Rect(
		s.rect.Min.X+labelW,
		s.rect.Min.Y,
		s.rect.Max.X-valueBoxW-8,
		s.rect.Max.Y,
	)
}

func (s *sliderRow) boxRect() image.Rectangle {
	return image.Rect(s.rect.Max.X-valueBoxW, s.rect.Min.Y+2, s.rect.Max.X, s.rect.Max.Y-2)
}

func (s *sliderRow) handlePress(x, y int) bool {
	if pointIn(s.boxRect(), x, y) {
		s.editing = true
		s.text = strconv.Itoa(s.get())
		return true
	}
	if pointIn(s.trackRect(), x, y) {
		s.dragging = true
		s.applyFromX(x)
		return true
	}
	return false
}

func (s *sliderRow) handleMove(x, _ int) {
	if s.dragging {
		s.applyFromX(x)
	}
}

func (s *sliderRow) handleRelease(int, int) {
	s.dragging = false
}

func (s *sliderRow) applyFromX(x int) {
	t := s.trackRect()
	s.set(sliderValueFromX(x, t.Min.X, t.Dx(), s.min, s.max, s.snaps, s.snapWindow))
}

// handleKeys edits the value box while it holds focus. Reports whether the
// box consumed this frame's keyboard input.
func (s *sliderRow) handleKeys() bool {
	if !s.editing {
		return false
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		if r >= '0' && r <= '9' && len(s.text) < 4 {
			s.text += string(r)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(s.text) > 0 {
		s.text = s.text[:len(s.text)-1]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		s.commit()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.editing = false
		s.text = ""
	}
	return true
}

// commit parses the typed value. Typed values land exactly where typed,
// clamped but never snapped.
func (s *sliderRow) commit() {
	defer func() {
		s.editing = false
		s.text = ""
	}()
	if s.text == "" {
		if s.allowEmpty {
			s.set(s.emptyValue)
		}
		return
	}
	n, err := strconv.Atoi(s.text)
	if err != nil {
		return
	}
	s.set(clampInt(n, s.min, s.max))
}

func (s *sliderRow) draw(dst *ebiten.Image) {
	shown := truncateText(s.label, labelW/charW-1)
	textAt(dst, shown, s.rect.Min.X, s.rect.Min.Y+(s.rect.Dy()-lineH)/2)
	if shown != s.label {
		s.tip.set(s.label, image.Rect(s.rect.Min.X, s.rect.Min.Y, s.rect.Min.X+labelW, s.rect.Max.Y))
	} else {
		s.tip.clear()
	}

	t := s.trackRect()
	midY := t.Min.Y + t.Dy()/2
	fillRect(dst, image.Rect(t.Min.X, midY-1, t.Max.X, midY+1), colorHUDBorder)

	frac := 0.0
	if s.max > s.min {
		frac = float64(s.get()-s.min) / float64(s.max-s.min)
	}
	knobX := t.Min.X + int(frac*float64(t.Dx()))
	fillRect(dst, image.Rect(t.Min.X, midY-1, knobX, midY+1), colorHUDText)
	fillRect(dst, image.Rect(knobX-3, midY-7, knobX+3, midY+7), colorHUDTextBright)

	box := s.boxRect()
	fillRect(dst, box, colorMiniPanelBg)
	border := colorHUDBorder
	if s.editing {
		border = colorHUDTextBright
	}
	strokeRect(dst, box, 1, border)
	val := strconv.Itoa(s.get())
	if s.editing {
		val = s.text + "_"
	}
	textAt(dst, val, box.Min.X+5, box.Min.Y+(box.Dy()-lineH)/2)
}

func (s *sliderRow) drawOverlay(dst *ebiten.Image) {
	s.tip.drawOverlay(dst)
}

// hudPanel stacks the control rows and routes pointer and key events among
// them. An open dropdown overlay claims clicks before anything else.
type hudPanel struct {
	rect image.Rectangle
	rows []widget
}

func newHUDPanel(x, y, w int, rows []widget) *hudPanel {
	p := &hudPanel{rows: rows}
	innerY := y + panelPad
	for _, row := range rows {
		switch r := row.(type) {
		case *checkboxRow:
			r.rect = image.Rect(x+panelPad, innerY, x+w-panelPad, innerY+rowH)
		case *dropdownRow:
			r.rect = image.Rect(x+panelPad, innerY, x+w-panelPad, innerY+rowH)
		case *sliderRow:
			r.rect = image.Rect(x+panelPad, innerY, x+w-panelPad, innerY+rowH)
		}
		innerY += rowH + rowGap
	}
	p.rect = image.Rect(x, y, x+w, innerY-rowGap+panelPad)
	return p
}

func (p *hudPanel) openDropdown() *dropdownRow {
	for _, row := range p.rows {
		if d, ok := row.(*dropdownRow); ok && d.open {
			return d
		}
	}
	return nil
}

func (p *hudPanel) handlePress(x, y int) bool {
	if d := p.openDropdown(); d != nil {
		return d.pressWhileOpen(x, y)
	}
	for _, row := range p.rows {
		if row.handlePress(x, y) {
			return true
		}
	}
	return pointIn(p.rect, x, y)
}

func (p *hudPanel) handleRelease(x, y int) {
	for _, row := range p.rows {
		row.handleRelease(x, y)
	}
}

func (p *hudPanel) handleMove(x, y int) {
	for _, row := range p.rows {
		row.handleMove(x, y)
	}
}

func (p *hudPanel) handleWheel(dy float64) {
	if d := p.openDropdown(); d != nil {
		d.handleWheel(dy)
	}
}

// handleKeys gives focused widgets the keyboard. Reports whether any widget
// holds text focus this frame.
func (p *hudPanel) handleKeys() bool {
	focused := false
	for _, row := range p.rows {
		if row.handleKeys() {
			focused = true
		}
	}
	return focused
}

func (p *hudPanel) draw(dst *ebiten.Image) {
	fillRect(dst, p.rect, colorHUDBg)
	strokeRect(dst, p.rect, 1, colorHUDBorder)
	for _, row := range p.rows {
		row.draw(dst)
	}
}

func (p *hudPanel) drawOverlays(dst *ebiten.Image) {
	for _, row := range p.rows {
		row.drawOverlay(dst)
	}
}

// miniPanel is the always-visible corner strip: UI and mouse-mode toggles
// plus the one-line rates summary. It stays on screen even when the main
// panel is hidden so the HUD can always be brought back.
type miniPanel struct {
	rect    image.Rectangle
	cbUI    image.Rectangle
	cbMouse image.Rectangle

	getUI       func() bool
	toggleUI    func()
	getMouse    func() bool
	toggleMouse func()
	ratesLine   func() string
}

// layout anchors the strip to the bottom-left corner.
func (m *miniPanel) layout(w, h int) {
	line := m.ratesLine()
	width := len(line)*charW + 2*panelPad
	if min := 2*(checkBox+8+5*charW) + 30 + 2*panelPad; width < min {
		width = min
	}
	height := checkBox + lineH + 3*8
	m.rect = image.Rect(canvasMargin, h-canvasMargin-height, canvasMargin+width, h-canvasMargin)

	cy := m.rect.Min.Y + 8
	m.cbUI = image.Rect(m.rect.Min.X+panelPad, cy, m.rect.Min.X+panelPad+checkBox, cy+checkBox)
	mx := m.cbUI.Max.X + 8 + 2*charW + 30
	m.cbMouse = image.Rect(mx, cy, mx+checkBox, cy+checkBox)
}

func (m *miniPanel) handlePress(x, y int) bool {
	if !pointIn(m.rect, x, y) {
		return false
	}
	grow := func(r image.Rectangle) image.Rectangle {
		return image.Rect(r.Min.X, r.Min.Y, r.Max.X+8+7*charW, r.Max.Y)
	}
	if pointIn(grow(m.cbUI), x, y) {
		m.toggleUI()
	} else if pointIn(grow(m.cbMouse), x, y) {
		m.toggleMouse()
	}
	return true
}

func (m *miniPanel) draw(dst *ebiten.Image) {
	fillRect(dst, m.rect, colorMiniPanelBg)
	strokeRect(dst, m.rect, 1, colorHUDBorder)

	drawCheck := func(box image.Rectangle, on bool, label string) {
		strokeRect(dst, box, 1, colorHUDBorder)
		if on {
			fillRect(dst, box.Inset(4), colorHUDTextBright)
		}
		textAt(dst, label, box.Max.X+8, box.Min.Y+(checkBox-lineH)/2+1)
	}
	drawCheck(m.cbUI, m.getUI(), "UI")
	drawCheck(m.cbMouse, m.getMouse(), "Mouse")

	textAt(dst, m.ratesLine(), m.rect.Min.X+panelPad, m.cbUI.Max.Y+8)
}
