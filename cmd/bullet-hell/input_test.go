package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/bullet-hell/component"
	"github.com/lixenwraith/bullet-hell/engine"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func specialKey(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func TestControls_DirectionHeldWithinWindow(t *testing.T) {
	c := NewControls(false)
	t0 := time.Unix(100, 0)

	action, _ := c.HandleKey(specialKey(tcell.KeyLeft), t0)
	assert.Equal(t, ActionMove, action)
	assert.Equal(t, engine.Input{DX: -1}, c.Input(t0.Add(50*time.Millisecond)))
	assert.Equal(t, engine.Input{}, c.Input(t0.Add(holdWindow)))
}

func TestControls_DiagonalAndOpposite(t *testing.T) {
	c := NewControls(false)
	t0 := time.Unix(100, 0)

	c.HandleKey(runeKey('d'), t0)
	c.HandleKey(runeKey('w'), t0)
	assert.Equal(t, engine.Input{DX: 1, DY: -1}, c.Input(t0))

	// Pressing the opposite direction releases the first
	c.HandleKey(runeKey('a'), t0)
	assert.Equal(t, engine.Input{DX: -1, DY: -1}, c.Input(t0))
}

func TestControls_FocusToggle(t *testing.T) {
	c := NewControls(false)
	now := time.Unix(100, 0)

	action, _ := c.HandleKey(runeKey(' '), now)
	assert.Equal(t, ActionFocus, action)
	assert.True(t, c.Input(now).Focus)

	c.HandleKey(runeKey(' '), now)
	assert.False(t, c.Input(now).Focus)
}

func TestControls_Commands(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"pause", runeKey('p'), ActionPause},
		{"restart", runeKey('r'), ActionRestart},
		{"quit rune", runeKey('q'), ActionQuit},
		{"escape", specialKey(tcell.KeyEscape), ActionQuit},
		{"ctrl-c", specialKey(tcell.KeyCtrlC), ActionQuit},
		{"unbound rune", runeKey('z'), ActionNone},
		{"unbound key", specialKey(tcell.KeyTab), ActionNone},
		{"power-up key without debug", runeKey('1'), ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewControls(false)
			got, _ := c.HandleKey(tt.ev, time.Now())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestControls_DebugPowerUps(t *testing.T) {
	c := NewControls(true)
	for i, want := range []component.PowerUp{
		component.PowerUpFreeze, component.PowerUpSlow, component.PowerUpRewind, component.PowerUpShield,
	} {
		action, p := c.HandleKey(runeKey(rune('1'+i)), time.Now())
		assert.Equal(t, ActionCollect, action)
		assert.Equal(t, want, p)
	}
	action, _ := c.HandleKey(runeKey('5'), time.Now())
	assert.Equal(t, ActionNone, action)
}

func TestControls_Reset(t *testing.T) {
	c := NewControls(true)
	now := time.Unix(100, 0)
	c.HandleKey(runeKey(' '), now)
	c.HandleKey(specialKey(tcell.KeyDown), now)

	c.Reset()
	assert.Equal(t, engine.Input{}, c.Input(now))
	action, _ := c.HandleKey(runeKey('2'), now)
	assert.Equal(t, ActionCollect, action, "debug survives reset")
}
