package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	axisLX = 0
	axisLY = 1

	// Pads report wildly different button counts; anything past this is
	// not worth scanning.
	maxPadButtons = 32
)

// padManager tracks connected gamepads, which one drives the simulation, and
// the press edges observed on the current host frame.
type padManager struct {
	ids    []ebiten.GamepadID
	active ebiten.GamepadID
	hasPad bool

	frameEdges []int

	lastAxisDebug   string
	lastButtonDebug string
}

func newPadManager() *padManager {
	m := &padManager{}
	m.ids = ebiten.AppendGamepadIDs(nil)
	if len(m.ids) > 0 {
		m.attach(m.ids[0])
	}
	return m
}

func (m *padManager) attach(id ebiten.GamepadID) {
	m.active = id
	m.hasPad = true
	log.Info("controller active", "id", id, "name", ebiten.GamepadName(id))
}

// detach releases the active pad without touching the connected list.
func (m *padManager) detach() {
	if !m.hasPad {
		return
	}
	m.hasPad = false
	m.lastAxisDebug = ""
	m.lastButtonDebug = ""
}

// refresh ingests hot-plug events and collects this frame's press edges.
// Call exactly once per host frame before sampling.
func (m *padManager) refresh() {
	m.ids = ebiten.AppendGamepadIDs(m.ids[:0])

	for _, id := range inpututil.AppendJustConnectedGamepadIDs(nil) {
		log.Info("controller connected", "id", id, "name", ebiten.GamepadName(id))
		if !m.hasPad {
			m.attach(id)
		}
	}
	if m.hasPad && inpututil.IsGamepadJustDisconnected(m.active) {
		log.Info("controller disconnected", "id", m.active)
		m.detach()
	}

	m.frameEdges = m.frameEdges[:0]
	if !m.hasPad {
		return
	}
	n := ebiten.GamepadButtonCount(m.active)
	if n > maxPadButtons {
		n = maxPadButtons
	}
	for b := 0; b < n; b++ {
		if inpututil.IsGamepadButtonJustPressed(m.active, ebiten.GamepadButton(b)) {
			m.frameEdges = append(m.frameEdges, b)
			m.lastButtonDebug = buttonLabel(b)
		}
	}
}

// peekAxes reads the deadzone-shaped stick axes without touching edge
// bookkeeping, for consumers that poll at frame rate.
func (m *padManager) peekAxes(deadzone float64) (float64, float64) {
	if !m.hasPad {
		m.lastAxisDebug = ""
		return 0, 0
	}
	var lx, ly float64
	if ebiten.GamepadAxisCount(m.active) > axisLY {
		lx = applyDeadzone(ebiten.GamepadAxisValue(m.active, axisLX), deadzone)
		ly = applyDeadzone(ebiten.GamepadAxisValue(m.active, axisLY), deadzone)
	}
	m.lastAxisDebug = fmt.Sprintf("lx=%+.3f ly=%+.3f", lx, ly)
	return lx, ly
}

// selectByListIndex activates the pad at position i of deviceItems, where
// slot 0 means none.
func (m *padManager) selectByListIndex(i int) {
	if i <= 0 || i > len(m.ids) {
		m.detach()
		return
	}
	m.attach(m.ids[i-1])
}

// listIndex reports the deviceItems position of the active pad.
func (m *padManager) listIndex() int {
	if !m.hasPad {
		return 0
	}
	for i, id := range m.ids {
		if id == m.active {
			return i + 1
		}
	}
	return 0
}

// deviceItems lists the selectable devices for the HUD dropdown.
func (m *padManager) deviceItems() []string {
	items := make([]string, 0, len(m.ids)+1)
	items = append(items, "None")
	for _, id := range m.ids {
		name := ebiten.GamepadName(id)
		if name == "" {
			name = "Controller"
		}
		items = append(items, fmt.Sprintf("%s (id %d)", name, id))
	}
	return items
}

// activeLabel names the driving device for the stats block.
func (m *padManager) activeLabel() string {
	if !m.hasPad {
		return "No controller"
	}
	name := ebiten.GamepadName(m.active)
	if name == "" {
		name = "Controller"
	}
	return fmt.Sprintf("%s (id %d)", name, m.active)
}

func (m *padManager) hasActive() bool {
	return m.hasPad
}

func (m *padManager) activeName() string {
	if !m.hasPad {
		return ""
	}
	return ebiten.GamepadName(m.active)
}

// mouseButtonOrder maps host mouse buttons onto engine button indices 0, 1
// and 2 in slice order.
var mouseButtonOrder = [...]ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// mouseEdges returns the engine button indices freshly pressed this frame.
func mouseEdges() []int {
	var edges []int
	for i, b := range mouseButtonOrder {
		if inpututil.IsMouseButtonJustPressed(b) {
			edges = append(edges, i)
		}
	}
	return edges
}
