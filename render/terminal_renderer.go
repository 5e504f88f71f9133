// Package render draws engine views onto a tcell screen
package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bullet-hell/component"
	"github.com/lixenwraith/bullet-hell/core"
	"github.com/lixenwraith/bullet-hell/engine"
	"github.com/lixenwraith/bullet-hell/event"
	"github.com/lixenwraith/bullet-hell/parameter"
)

// statusRows is the height reserved for the status bar under the playfield
const statusRows = 1

// TerminalRenderer maps the playfield onto the terminal grid
// Every frame is drawn from a View copy; the renderer holds no simulation state
type TerminalRenderer struct {
	screen     tcell.Screen
	width      int
	height     int
	gameHeight int
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen}
	r.Resize()
	return r
}

// Resize re-reads the screen size; call on tcell.EventResize
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
	r.gameHeight = r.height - statusRows
	if r.gameHeight < 1 {
		r.gameHeight = 1
	}
}

// viewport converts field coordinates to cells
type viewport struct {
	field core.Rect
	sx    float64 // field units per column
	sy    float64 // field units per row
	cols  int
	rows  int
}

func (r *TerminalRenderer) viewport(field core.Rect) viewport {
	cols := max(r.width, 1)
	return viewport{
		field: field,
		sx:    field.W / float64(cols),
		sy:    field.H / float64(r.gameHeight),
		cols:  cols,
		rows:  r.gameHeight,
	}
}

// cell returns the cell containing p, clamped to the grid
func (v viewport) cell(p core.Point) (int, int) {
	cx := int(math.Floor((p.X - v.field.X) / v.sx))
	cy := int(math.Floor((p.Y - v.field.Y) / v.sy))
	return min(max(cx, 0), v.cols-1), min(max(cy, 0), v.rows-1)
}

// cellCenter returns the field point at the middle of a cell
func (v viewport) cellCenter(cx, cy int) core.Point {
	return core.Point{
		X: v.field.X + (float64(cx)+0.5)*v.sx,
		Y: v.field.Y + (float64(cy)+0.5)*v.sy,
	}
}

// cellSpan returns the inclusive cell range covering rect, or ok=false if it lies outside the field
func (v viewport) cellSpan(rect core.Rect) (x0, y0, x1, y1 int, ok bool) {
	if rect.Right() <= v.field.Left() || rect.Left() >= v.field.Right() ||
		rect.Bottom() <= v.field.Top() || rect.Top() >= v.field.Bottom() {
		return 0, 0, 0, 0, false
	}
	x0, y0 = v.cell(core.Point{X: rect.Left(), Y: rect.Top()})
	x1, y1 = v.cell(core.Point{X: rect.Right(), Y: rect.Bottom()})
	return x0, y0, x1, y1, true
}

// RenderFrame draws one complete frame and shows it
func (r *TerminalRenderer) RenderFrame(v engine.View, paused bool) {
	vp := r.viewport(v.Field)

	bg := RgbBackground
	if v.Effect.Kind == event.EffectFreeze {
		bg = Blend(RgbBackground, RgbFrozenTint, v.Effect.Tint)
	}
	defaultStyle := tcell.StyleDefault.Background(bg)

	r.clear(defaultStyle)
	r.drawEntities(vp, v.Entities, defaultStyle)
	r.drawPowerUps(vp, v.PowerUps, defaultStyle)
	r.drawPlayer(vp, v.Player, v.Over, defaultStyle)
	r.drawStatusBar(v, paused)

	if v.Over {
		r.drawBanner(fmt.Sprintf(" GAME OVER: %s | score %d | r restart, q quit ", v.EndReason, v.Score))
	} else if paused {
		r.drawBanner(" PAUSED | p resume ")
	}

	r.screen.Show()
}

func (r *TerminalRenderer) clear(style tcell.Style) {
	for y := 0; y < r.gameHeight; y++ {
		for x := 0; x < r.width; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawEntities rasterizes each shape: boxes fill their span, polygons fill cells whose center is inside
// A shape smaller than a cell still shows as one glyph at its center
func (r *TerminalRenderer) drawEntities(vp viewport, entities []engine.EntityView, defaultStyle tcell.Style) {
	for _, e := range entities {
		ks := styleForKind(e.Kind)
		style := defaultStyle.Foreground(ks.color)

		x0, y0, x1, y1, ok := vp.cellSpan(e.Shape.Bounds())
		if !ok {
			continue
		}

		drawn := false
		for cy := y0; cy <= y1; cy++ {
			for cx := x0; cx <= x1; cx++ {
				if e.Shape.IsPolygon() && !e.Shape.Poly.ContainsPoint(vp.cellCenter(cx, cy)) {
					continue
				}
				r.screen.SetContent(cx, cy, ks.glyph, nil, style)
				drawn = true
			}
		}
		if !drawn {
			cx, cy := vp.cell(e.Shape.Center())
			r.screen.SetContent(cx, cy, ks.glyph, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawPowerUps(vp viewport, pickups []component.Pickup, defaultStyle tcell.Style) {
	for _, p := range pickups {
		if p.Kind >= component.PowerUpCount {
			continue
		}
		if _, _, _, _, ok := vp.cellSpan(p.Box); !ok {
			continue
		}
		cx, cy := vp.cell(p.Box.Center())
		style := defaultStyle.Foreground(RgbStatusText).Background(powerUpColors[p.Kind])
		r.screen.SetContent(cx, cy, powerUpGlyphs[p.Kind], nil, style)
	}
}

// drawPlayer draws the hitbox cell, with a dim ring sized to the pending pulse while focusing
func (r *TerminalRenderer) drawPlayer(vp viewport, p engine.PlayerView, over bool, defaultStyle tcell.Style) {
	center := p.Hitbox.Center()

	if p.Focusing && p.Charge > 0 {
		radius := parameter.PulseBaseRadius + parameter.PulseRadiusPerCharge*p.Charge
		ring := defaultStyle.Foreground(RgbFocusRing)
		steps := 32
		for i := 0; i < steps; i++ {
			pt := center.Add(core.FromAngle(2*math.Pi*float64(i)/float64(steps), radius))
			if pt.X < vp.field.Left() || pt.X >= vp.field.Right() || pt.Y < vp.field.Top() || pt.Y >= vp.field.Bottom() {
				continue
			}
			cx, cy := vp.cell(pt)
			r.screen.SetContent(cx, cy, '·', nil, ring)
		}
	}

	color := RgbPlayer
	if over {
		color = RgbPlayerHit
	}
	glyph := 'A'
	if p.Shield > 0 {
		glyph = 'Ä'
	}
	cx, cy := vp.cell(center)
	r.screen.SetContent(cx, cy, glyph, nil, defaultStyle.Foreground(color).Bold(true))
}

// drawStatusBar writes the HUD segments left to right, truncating at the screen edge
func (r *TerminalRenderer) drawStatusBar(v engine.View, paused bool) {
	y := r.height - statusRows
	if y < 0 {
		return
	}
	base := tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbStatusBg)
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, y, ' ', nil, base)
	}

	x := 0
	x = r.drawText(x, y, fmt.Sprintf(" SCORE %d ", v.Score), base.Background(RgbScoreBg))
	x = r.drawText(x, y, fmt.Sprintf(" LIVES %d ", v.Player.Lives), base)
	if v.Player.Shield > 0 {
		x = r.drawText(x, y, " SHIELD ", base.Background(RgbShieldBg))
	}
	x = r.drawText(x, y, fmt.Sprintf(" T %s ", formatSeconds(v.Survival)), base)
	x = r.drawChargeMeter(x, y, v.Player.Charge, base)

	if seg, bg, ok := effectSegment(v.Effect); ok {
		x = r.drawText(x, y, seg, base.Background(bg))
	}
	if v.Effect.RewindQueued {
		x = r.drawText(x, y, " REWIND QUEUED ", base.Background(RgbRewindBg))
	}
	if v.NextUnlock.OK {
		x = r.drawText(x, y, fmt.Sprintf(" NEXT %s %s ", v.NextUnlock.Kind, formatSeconds(v.NextUnlock.Remaining)), base)
	}
	if paused {
		r.drawText(x, y, " PAUSED ", base.Reverse(true))
	}
}

// drawChargeMeter renders the pulse charge as a short bar, bright once a release would fire
func (r *TerminalRenderer) drawChargeMeter(x, y int, charge float64, base tcell.Style) int {
	const cells = 10
	filled := int(math.Round(charge / parameter.PulseMaxCharge * cells))
	color := RgbChargeLow
	if charge >= parameter.PulseMinCharge {
		color = RgbChargeFull
	}
	x = r.drawText(x, y, " [", base)
	for i := 0; i < cells && x < r.width; i++ {
		ch := ' '
		if i < filled {
			ch = '█'
		}
		r.screen.SetContent(x, y, ch, nil, base.Foreground(color))
		x++
	}
	return r.drawText(x, y, "] ", base)
}

// drawBanner centers text on the middle row of the playfield
func (r *TerminalRenderer) drawBanner(text string) {
	style := tcell.StyleDefault.Foreground(RgbPlayer).Background(RgbGameOverBg).Bold(true)
	n := len([]rune(text))
	x := max((r.width-n)/2, 0)
	r.drawText(x, r.gameHeight/2, text, style)
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		if x >= r.width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

func effectSegment(e engine.EffectView) (string, tcell.Color, bool) {
	switch e.Kind {
	case event.EffectFreeze:
		return fmt.Sprintf(" FREEZE %s ", formatSeconds(e.Remaining)), RgbFreezeBg, true
	case event.EffectSlowMotion:
		return fmt.Sprintf(" SLOW %s ", formatSeconds(e.Remaining)), RgbSlowBg, true
	case event.EffectRewind:
		return fmt.Sprintf(" REWIND %s ", formatSeconds(e.Remaining)), RgbRewindBg, true
	default:
		return "", 0, false
	}
}

func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}
