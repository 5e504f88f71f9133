package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/bullet-hell/component"
	"github.com/lixenwraith/bullet-hell/core"
	"github.com/lixenwraith/bullet-hell/engine"
	"github.com/lixenwraith/bullet-hell/event"
)

// 80×25 over an 800×600 field: 10 units per column, 25 per row, status on row 24
func newTestRenderer(t *testing.T) (*TerminalRenderer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 25)
	t.Cleanup(screen.Fini)
	return NewTerminalRenderer(screen), screen
}

func baseView() engine.View {
	return engine.View{
		Field: core.Rect{W: 800, H: 600},
		Player: engine.PlayerView{
			Hitbox: core.RectAt(core.Point{X: 400, Y: 536}, 16, 16),
			Lives:  3,
		},
		Score: 12,
	}
}

func runeAt(s tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func rowText(s tcell.SimulationScreen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		b.WriteRune(runeAt(s, x, y))
	}
	return b.String()
}

func TestRenderFrame_BoxEntity(t *testing.T) {
	r, s := newTestRenderer(t)
	v := baseView()
	v.Entities = []engine.EntityView{{
		ID:    1,
		Kind:  component.KindVertical,
		Shape: component.BoxShape(core.Rect{X: 100, Y: 100, W: 10, H: 10}),
	}}
	r.RenderFrame(v, false)

	assert.Equal(t, '|', runeAt(s, 10, 4))
	assert.Equal(t, '|', runeAt(s, 11, 4))
	assert.Equal(t, ' ', runeAt(s, 12, 4))
}

func TestRenderFrame_PolygonFillsInterior(t *testing.T) {
	r, s := newTestRenderer(t)
	v := baseView()
	hex := core.RegularPolygon(core.Point{X: 600, Y: 200}, 40, 6, 0)
	v.Entities = []engine.EntityView{{ID: 1, Kind: component.KindStar, Shape: component.PolyShape(hex)}}
	r.RenderFrame(v, false)

	assert.Equal(t, '*', runeAt(s, 60, 8), "center cell")
	assert.Equal(t, ' ', runeAt(s, 56, 6), "bounding box corner lies outside the hexagon")
}

func TestRenderFrame_TinyShapeStillVisible(t *testing.T) {
	r, s := newTestRenderer(t)
	v := baseView()
	tri := core.RegularPolygon(core.Point{X: 303, Y: 303}, 2, 3, 0)
	v.Entities = []engine.EntityView{{ID: 1, Kind: component.KindTriangle, Shape: component.PolyShape(tri)}}
	r.RenderFrame(v, false)

	assert.Equal(t, '^', runeAt(s, 30, 12))
}

func TestRenderFrame_OffFieldEntitySkipped(t *testing.T) {
	r, s := newTestRenderer(t)
	v := baseView()
	v.Entities = []engine.EntityView{{
		ID:    1,
		Kind:  component.KindFast,
		Shape: component.BoxShape(core.Rect{X: 100, Y: -50, W: 10, H: 10}),
	}}
	r.RenderFrame(v, false)

	assert.NotEqual(t, '!', runeAt(s, 10, 0))
}

func TestRenderFrame_PlayerAndPickup(t *testing.T) {
	r, s := newTestRenderer(t)
	v := baseView()
	v.PowerUps = []component.Pickup{{ID: 9, Kind: component.PowerUpFreeze, Box: core.Rect{X: 200, Y: 300, W: 18, H: 18}}}
	r.RenderFrame(v, false)

	assert.Equal(t, 'A', runeAt(s, 40, 21))
	assert.Equal(t, 'F', runeAt(s, 20, 12))

	v.Player.Shield = 1
	r.RenderFrame(v, false)
	assert.Equal(t, 'Ä', runeAt(s, 40, 21))
}

func TestRenderFrame_StatusBar(t *testing.T) {
	r, s := newTestRenderer(t)
	v := baseView()
	v.Survival = 12500 * time.Millisecond
	v.Effect = engine.EffectView{Kind: event.EffectSlowMotion, Remaining: 2 * time.Second}
	v.NextUnlock = engine.UnlockView{Kind: component.KindStar, Remaining: 3 * time.Second, OK: true}
	r.RenderFrame(v, false)

	status := rowText(s, 24)
	assert.True(t, strings.HasPrefix(status, " SCORE 12 "), status)
	assert.Contains(t, status, "LIVES 3")
	assert.Contains(t, status, "T 12.5s")
	assert.Contains(t, status, "SLOW 2.0s")
	assert.Contains(t, status, "NEXT star 3.0s")
	assert.NotContains(t, status, "SHIELD")
}

func TestRenderFrame_FrozenTint(t *testing.T) {
	r, s := newTestRenderer(t)
	v := baseView()
	r.RenderFrame(v, false)
	_, _, plain, _ := s.GetContent(0, 0)

	v.Effect = engine.EffectView{Kind: event.EffectFreeze, Remaining: time.Second, Tint: 1}
	r.RenderFrame(v, false)
	_, _, tinted, _ := s.GetContent(0, 0)

	_, plainBg, _ := plain.Decompose()
	_, tintedBg, _ := tinted.Decompose()
	assert.Equal(t, RgbBackground, plainBg)
	assert.Equal(t, RgbFrozenTint, tintedBg)
}

func TestRenderFrame_GameOverBanner(t *testing.T) {
	r, s := newTestRenderer(t)
	v := baseView()
	v.Over = true
	v.EndReason = "lives exhausted"
	r.RenderFrame(v, false)

	assert.Contains(t, rowText(s, 12), "GAME OVER: lives exhausted")
}

func TestRenderFrame_Paused(t *testing.T) {
	r, s := newTestRenderer(t)
	r.RenderFrame(baseView(), true)

	assert.Contains(t, rowText(s, 12), "PAUSED")
	assert.Contains(t, rowText(s, 24), "PAUSED")
}

func TestRenderFrame_Resize(t *testing.T) {
	r, s := newTestRenderer(t)
	s.SetSize(40, 13)
	r.Resize()
	r.RenderFrame(baseView(), false)

	// 20 units per column, 50 per row over 12 playfield rows
	assert.Equal(t, 'A', runeAt(s, 20, 10))
	assert.Contains(t, rowText(s, 12), "SCORE")
}

func TestBlend(t *testing.T) {
	a := tcell.NewRGBColor(0, 0, 0)
	b := tcell.NewRGBColor(200, 100, 50)
	assert.Equal(t, a, Blend(a, b, 0))
	assert.Equal(t, b, Blend(a, b, 1))
	assert.Equal(t, tcell.NewRGBColor(100, 50, 25), Blend(a, b, 0.5))
}
