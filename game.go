package main

import (
	"fmt"
	"image"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game drives the whole testbed: the fixed-step simulation, the wall-clock
// frame loop, input routing, the HUD, and the passive update checker. One
// host frame equals one Update call; engine ticks happen zero or more times
// inside each Update as the accumulator allows.
type Game struct {
	width, height    int
	layoutW, layoutH int
	windowW, windowH int
	fullscreen       bool

	state *engineState
	clock loopClock
	rng   *rand.Rand

	engineFPS     int
	visualFPS     int
	interpolation bool
	relaxDeadzone bool
	mouseMode     bool
	uiVisible     bool
	targetEnabled bool
	targetSizePct int
	targetSpeed   int

	pads         *padManager
	estimator    cursorEstimator
	pendingEdges []int

	engineMeter *rateMeter
	visualMeter *rateMeter
	stats       *frameStats

	panel   *hudPanel
	mini    *miniPanel
	help    *helpManager
	updates *updateManager
	click   *clickPlayer

	lastInputAxis   string
	lastInputButton string

	scene         *ebiten.Image
	renderPending bool
	frameNow      time.Time

	startupNotice   string
	startupNoticeAt time.Time
	noticeImg       *ebiten.Image
}

// newGame constructs a fully initialized Game from the startup
// configuration.
func newGame(cfg appConfig) *Game {
	g := &Game{
		width:         cfg.WindowW,
		height:        cfg.WindowH,
		windowW:       cfg.WindowW,
		windowH:       cfg.WindowH,
		fullscreen:    cfg.Fullscreen,
		engineFPS:     cfg.EngineFPS,
		visualFPS:     cfg.VisualFPS,
		interpolation: cfg.Interpolation,
		relaxDeadzone: cfg.RelaxDeadzone,
		uiVisible:     true,
		targetSizePct: cfg.TargetSizePct,
		targetSpeed:   cfg.TargetSpeed,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	now := time.Now()
	g.engineMeter = newRateMeter(now)
	g.visualMeter = newRateMeter(now)
	g.stats = newFrameStats()

	g.state = makeInitialState(g.width, g.height, canvasMargin, g.rng)
	g.state.target.setParams(g.state.ballRadius, cfg.TargetSizePct, cfg.TargetSpeed)
	if cfg.TargetEnabled {
		g.setTargetEnabled(true)
	}
	g.estimator.snapTo(g.state.pos)

	g.pads = newPadManager()
	g.help = newHelpManager()
	g.updates = newUpdateManager()
	g.buildPanel()
	g.mini = &miniPanel{
		getUI:       func() bool { return g.uiVisible },
		toggleUI:    func() { g.uiVisible = !g.uiVisible },
		getMouse:    func() bool { return g.mouseMode },
		toggleMouse: func() { g.setMouseMode(!g.mouseMode) },
		ratesLine:   g.ratesLine,
	}

	if cfg.MouseMode {
		g.setMouseMode(true)
	}
	if cfg.ClickAudio {
		click, err := newClickPlayer()
		if err != nil {
			log.Warn("click audio disabled", "err", err)
		} else {
			g.click = click
		}
	}
	if !cfg.SkipUpdateCheck {
		g.updates.checkAsync(updateCheckDelay, false)
	}

	if g.pads.hasActive() {
		g.startupNotice = "Controller: " + g.pads.activeName()
	} else {
		g.startupNotice = "No controller detected. Press Ctrl to enable mouse mode."
	}
	g.startupNoticeAt = now
	return g
}

// buildPanel (re)creates the control rows for the current canvas size. The
// rows read and write Game state through closures, so rebuilding never
// loses a setting.
func (g *Game) buildPanel() {
	visualSnaps := append([]int{0}, snapPoints...)
	rows := []widget{
		&dropdownRow{
			label:  "Resolution",
			items:  g.resolutionItems,
			currnt: g.resolutionIndex,
			onPick: g.pickResolution,
		},
		&checkboxRow{
			label: "Fullscreen",
			get:   func() bool { return g.fullscreen },
			set:   g.setFullscreen,
		},
		&dropdownRow{
			label:  "Controller",
			items:  g.pads.deviceItems,
			currnt: g.pads.listIndex,
			onPick: g.pickController,
		},
		&checkboxRow{
			label: "Deadzone relaxation",
			get:   func() bool { return g.relaxDeadzone },
			set:   func(on bool) { g.relaxDeadzone = on },
		},
		&checkboxRow{
			label: "Enable target",
			get:   func() bool { return g.targetEnabled },
			set:   g.setTargetEnabled,
		},
		&sliderRow{
			label: "Engine FPS",
			min:   engineFPSMin, max: engineFPSMax,
			get:   func() int { return g.engineFPS },
			set:   g.setEngineFPS,
			snaps: snapPoints, snapWindow: 5,
		},
		&sliderRow{
			label: "Visual FPS (0 = uncapped)",
			min:   visualFPSMin, max: visualFPSMax,
			get:   func() int { return g.visualFPS },
			set:   g.setVisualFPS,
			snaps: visualSnaps, snapWindow: 5,
			allowEmpty: true, emptyValue: 0,
		},
		&checkboxRow{
			label: "Interpolation (I)",
			get:   func() bool { return g.interpolation },
			set:   func(on bool) { g.interpolation = on },
		},
		&sliderRow{
			label: "Target size %",
			min:   targetSizePctMin, max: targetSizePctMax,
			get:   func() int { return g.targetSizePct },
			set:   g.setTargetSize,
			snaps: targetSizeSnaps, snapWindow: 6,
		},
		&sliderRow{
			label: "Target speed",
			min:   targetSpeedMin, max: targetSpeedMax,
			get:   func() int { return g.targetSpeed },
			set:   g.setTargetSpeed,
			snaps: targetSpeedSnaps, snapWindow: 6,
		},
	}
	g.panel = newHUDPanel(canvasMargin+8, canvasMargin+8, 380, rows)
}

func (g *Game) engineDt() float64 {
	fps := g.engineFPS
	if fps < 1 {
		fps = 1
	}
	return 1.0 / float64(fps)
}

func (g *Game) currentDeadzone() float64 {
	if g.relaxDeadzone {
		return relaxedDeadzone
	}
	return unrelaxedDeadzone
}

func (g *Game) ratesLine() string {
	mode := "controller"
	if g.mouseMode {
		mode = "mouse"
	}
	win := "window"
	if g.fullscreen {
		win = "fullscreen"
	}
	return fmt.Sprintf("E %5.1f Hz   V %5.1f FPS   Mode: %s   %dx%d %s   v%s",
		g.engineMeter.value, g.visualMeter.value, mode, g.width, g.height, win, appVersion)
}

// The rate setters accept a wider range than the sliders expose so config
// files and future bindings are not boxed in by the HUD.
func (g *Game) setEngineFPS(v int) {
	g.engineFPS = clampInt(v, 1, 2000)
}

func (g *Game) setVisualFPS(v int) {
	g.visualFPS = clampInt(v, 0, 2000)
}

func (g *Game) setTargetEnabled(on bool) {
	g.targetEnabled = on
	setTargetEnabled(g.state, on, g.width, g.height, canvasMargin, g.rng)
}

// setTargetSize resizes the target in place. A grown target may poke past
// the canvas, so enabled targets are clamped back in.
func (g *Game) setTargetSize(pct int) {
	g.targetSizePct = clampInt(pct, targetSizePctMin, targetSizePctMax)
	g.state.target.setParams(g.state.ballRadius, g.targetSizePct, g.targetSpeed)
	if g.state.target.enabled {
		clampStateToBounds(g.state, g.width, g.height, canvasMargin)
	}
}

func (g *Game) setTargetSpeed(v int) {
	g.targetSpeed = clampInt(v, targetSpeedMin, targetSpeedMax)
	g.state.target.setParams(g.state.ballRadius, g.targetSizePct, g.targetSpeed)
}

// setMouseMode switches who drives the ball. The system cursor hides in
// mouse mode because the crosshair takes its place; on the way back to
// controller mode the estimator re-anchors to the simulated position.
func (g *Game) setMouseMode(on bool) {
	if g.mouseMode == on {
		return
	}
	g.mouseMode = on
	g.pendingEdges = g.pendingEdges[:0]
	if on {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		g.estimator.snapTo(g.state.pos)
	}
	log.Debug("mouse mode", "on", on)
}

func (g *Game) setFullscreen(on bool) {
	g.fullscreen = on
	applyWindowMode(g.windowW, g.windowH, on)
}

func (g *Game) resolutionItems() []string {
	presets := availablePresets(g.fullscreen)
	items := make([]string, 0, len(presets)+1)
	for _, p := range presets {
		items = append(items, p.label())
	}
	if presetIndex(presets, g.windowW, g.windowH) < 0 {
		items = append(items, fmt.Sprintf("%d x %d", g.windowW, g.windowH))
	}
	return items
}

func (g *Game) resolutionIndex() int {
	presets := availablePresets(g.fullscreen)
	if i := presetIndex(presets, g.windowW, g.windowH); i >= 0 {
		return i
	}
	return len(presets)
}

func (g *Game) pickResolution(i int) {
	presets := availablePresets(g.fullscreen)
	if i < 0 || i >= len(presets) {
		return
	}
	g.windowW, g.windowH = presets[i].w, presets[i].h
	applyWindowMode(g.windowW, g.windowH, g.fullscreen)
}

func (g *Game) pickController(i int) {
	g.pads.selectByListIndex(i)
	g.estimator.snapTo(g.state.pos)
}

// applyCanvasSize reacts to the host window changing underneath us.
func (g *Game) applyCanvasSize(w, h int) {
	g.width, g.height = w, h
	if !g.fullscreen {
		g.windowW, g.windowH = w, h
	}
	clampStateToBounds(g.state, w, h, canvasMargin)
	g.estimator.snapTo(g.state.pos)
	g.buildPanel()
	g.renderPending = true
	log.Debug("canvas resized", "w", w, "h", h)
}

// layoutChrome places the fixed corner UI for the current canvas size.
func (g *Game) layoutChrome() {
	bw := len("Updates")*charW + 24
	const bh = 24
	g.updates.cornerRect = image.Rect(
		g.width-canvasMargin-bw, g.height-canvasMargin-bh,
		g.width-canvasMargin, g.height-canvasMargin)
	hw := len(helpCorner)*charW + 24
	g.help.cornerRect = image.Rect(
		g.updates.cornerRect.Min.X-8-hw, g.updates.cornerRect.Min.Y,
		g.updates.cornerRect.Min.X-8, g.updates.cornerRect.Max.Y)
	g.mini.layout(g.width, g.height)
}

// Update runs one host frame: bank elapsed time, route input, drain whole
// engine ticks from the accumulator, decide whether this frame renders, and
// finally pace the loop toward the next deadline.
func (g *Game) Update() error {
	now := time.Now()
	g.frameNow = now
	frameDt := g.clock.beginFrame(now)
	g.stats.record(frameDt, now)

	if g.layoutW != 0 && (g.layoutW != g.width || g.layoutH != g.height) {
		g.applyCanvasSize(g.layoutW, g.layoutH)
	}

	hadPad := g.pads.hasActive()
	g.pads.refresh()
	if hadPad && !g.pads.hasActive() {
		g.estimator.snapTo(g.state.pos)
	}

	g.updates.pump(now)
	if g.updates.quitRequested {
		return ebiten.Termination
	}
	g.layoutChrome()

	// The reticle estimate advances every frame, ahead of whatever ticks
	// this frame will run.
	lx, ly := 0.0, 0.0
	if !g.mouseMode {
		lx, ly = g.pads.peekAxes(g.currentDeadzone())
		g.estimator.advance(lx, ly, g.state.pos, g.state.ballSpeed, frameDt,
			g.width, g.height, canvasMargin, g.state.ballRadius)
	}

	if g.handleInput() {
		return ebiten.Termination
	}

	// Press edges buffer until an engine tick consumes them, so a press on
	// a frame with no tick still lands on the next tick.
	if g.mouseMode {
		for _, b := range mouseEdges() {
			g.pendingEdges = append(g.pendingEdges, b)
			g.lastInputButton = buttonLabel(b)
		}
	} else {
		g.pendingEdges = append(g.pendingEdges, g.pads.frameEdges...)
		g.lastInputAxis = g.pads.lastAxisDebug
		if g.pads.lastButtonDebug != "" {
			g.lastInputButton = g.pads.lastButtonDebug
		}
	}

	engineDt := g.engineDt()
	var mousePos point
	if g.mouseMode {
		mx, my := ebiten.CursorPosition()
		mousePos = point{float64(mx), float64(my)}
		g.lastInputAxis = fmt.Sprintf("mouse=(%d,%d)", mx, my)
	}

	ticks := g.clock.drain(engineDt, func(tick int) {
		in := tickInput{lx: lx, ly: ly}
		if g.mouseMode {
			in = tickInput{override: mousePos, hasOverride: true}
		}
		if tick == 0 && len(g.pendingEdges) > 0 {
			in.buttonEdges = g.pendingEdges
			in.anyEdge = true
		}
		engineStep(g.state, engineDt, g.width, g.height, canvasMargin, in)
		if in.anyEdge && g.click != nil {
			g.click.trigger()
		}
		g.engineMeter.tickAt(now)
	})
	if ticks > 0 {
		g.pendingEdges = g.pendingEdges[:0]
	}

	if g.clock.renderDue(now, g.visualFPS) {
		g.clock.markRender(now)
		g.renderPending = true
	}

	if d := g.clock.paceSleep(time.Now(), engineDt, g.visualFPS); d > 0 {
		time.Sleep(d)
	}
	return nil
}

// handleInput routes this frame's pointer and keyboard input through the UI
// layers. Open dialogs are modal. Reports whether the app should quit.
func (g *Game) handleInput() bool {
	cx, cy := ebiten.CursorPosition()
	pressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	released := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	_, wheelY := ebiten.Wheel()

	switch {
	case g.updates.dialogActive():
		if pressed {
			g.updates.handleDialogPress(cx, cy)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.updates.dismissDialog()
		}
		return g.updates.quitRequested

	case g.help.open:
		if pressed {
			g.help.handlePress(cx, cy)
		}
		if released {
			g.help.handleRelease()
		}
		g.help.handleMove(cy)
		if wheelY != 0 {
			g.help.scrollBy(-int(wheelY) * helpScrollStep)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
			g.help.pageBy(-1)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
			g.help.pageBy(1)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.help.close()
		}

	default:
		textFocus := false
		if g.uiVisible {
			textFocus = g.panel.handleKeys()
		}
		if pressed {
			g.routePress(cx, cy)
		}
		if g.uiVisible {
			if released {
				g.panel.handleRelease(cx, cy)
			}
			g.panel.handleMove(cx, cy)
			if wheelY != 0 {
				g.panel.handleWheel(wheelY)
			}
		}
		if !textFocus {
			if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
				return true
			}
			if inpututil.IsKeyJustPressed(ebiten.KeyI) {
				g.interpolation = !g.interpolation
			}
			if inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft) || inpututil.IsKeyJustPressed(ebiten.KeyShiftRight) {
				g.uiVisible = !g.uiVisible
			}
			if inpututil.IsKeyJustPressed(ebiten.KeyControlLeft) || inpututil.IsKeyJustPressed(ebiten.KeyControlRight) {
				g.setMouseMode(!g.mouseMode)
			}
		}
	}
	return false
}

// routePress sends a fresh left click through the UI layers front to back.
func (g *Game) routePress(x, y int) {
	if g.uiVisible {
		if d := g.panel.openDropdown(); d != nil {
			d.pressWhileOpen(x, y)
			return
		}
	}
	if g.updates.handleCornerPress(x, y) {
		return
	}
	if g.help.handleCornerPress(x, y) {
		return
	}
	if g.mini.handlePress(x, y) {
		return
	}
	if g.uiVisible && g.panel.handlePress(x, y) {
		return
	}
}
