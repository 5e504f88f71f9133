package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bullet-hell/component"
	"github.com/lixenwraith/bullet-hell/engine"
)

// holdWindow keeps a direction pressed after its last key event
// Terminals report presses only; auto-repeat refreshes the window while a key is held
const holdWindow = 180 * time.Millisecond

// Action is a driver command decoded from a key
type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionFocus
	ActionPause
	ActionRestart
	ActionQuit
	ActionCollect
)

type direction int

const (
	dirLeft direction = iota
	dirRight
	dirUp
	dirDown
	dirCount
)

// Controls turns key events into held engine input
type Controls struct {
	pressed [dirCount]time.Time
	focus   bool
	debug   bool // Number keys grant power-ups
}

// NewControls creates controls; debug enables the power-up keys
func NewControls(debug bool) *Controls {
	return &Controls{debug: debug}
}

// HandleKey records ev at now and returns the action it maps to
// For ActionCollect the power-up is the second result
func (c *Controls) HandleKey(ev *tcell.EventKey, now time.Time) (Action, component.PowerUp) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return c.press(dirLeft, now), 0
	case tcell.KeyRight:
		return c.press(dirRight, now), 0
	case tcell.KeyUp:
		return c.press(dirUp, now), 0
	case tcell.KeyDown:
		return c.press(dirDown, now), 0
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, 0
	case tcell.KeyRune:
	default:
		return ActionNone, 0
	}

	switch ev.Rune() {
	case 'a', 'h':
		return c.press(dirLeft, now), 0
	case 'd', 'l':
		return c.press(dirRight, now), 0
	case 'w', 'k':
		return c.press(dirUp, now), 0
	case 's', 'j':
		return c.press(dirDown, now), 0
	case ' ':
		c.focus = !c.focus
		return ActionFocus, 0
	case 'p':
		return ActionPause, 0
	case 'r':
		return ActionRestart, 0
	case 'q':
		return ActionQuit, 0
	}

	if c.debug && ev.Rune() >= '1' && ev.Rune() < '1'+rune(component.PowerUpCount) {
		return ActionCollect, component.PowerUp(ev.Rune() - '1')
	}
	return ActionNone, 0
}

// press marks d held and releases the opposite direction
func (c *Controls) press(d direction, now time.Time) Action {
	c.pressed[d] = now
	c.pressed[d^1] = time.Time{}
	return ActionMove
}

// Input returns the engine input as of now
func (c *Controls) Input(now time.Time) engine.Input {
	held := func(d direction) bool {
		t := c.pressed[d]
		return !t.IsZero() && now.Sub(t) < holdWindow
	}

	var in engine.Input
	if held(dirLeft) {
		in.DX--
	}
	if held(dirRight) {
		in.DX++
	}
	if held(dirUp) {
		in.DY--
	}
	if held(dirDown) {
		in.DY++
	}
	in.Focus = c.focus
	return in
}

// Reset releases every key and drops focus
func (c *Controls) Reset() {
	*c = Controls{debug: c.debug}
}
