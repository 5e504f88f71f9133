package pattern

import (
	"math"

	"github.com/lixenwraith/bullet-hell/component"
	"github.com/lixenwraith/bullet-hell/core"
	"github.com/lixenwraith/bullet-hell/parameter"
)

// straight falls from the top edge at constant velocity
// Vertical, fast, rectangle, egg and boss differ only in size and speed
type straight struct {
	kind component.Kind
	w, h float64
	vel  core.Point
}

func (s straight) Spawn(ctx *Context, rng *core.Rand) []component.Entity {
	return []component.Entity{{
		Kind:  s.kind,
		Shape: component.BoxShape(topSpawn(rng, ctx.Field, s.w, s.h)),
		State: &component.Linear{Velocity: s.vel},
	}}
}

func (straight) Advance(e *component.Entity, step float64, ctx *Context) Result {
	return advanceLinear(e, step, ctx, pastBottom)
}

// advanceLinear moves by the Linear velocity and despawns offscreen when gone reports true
func advanceLinear(e *component.Entity, step float64, ctx *Context, gone func(b, field core.Rect) bool) Result {
	st, ok := e.State.(*component.Linear)
	if !ok {
		return DespawnConsumed
	}
	e.Shape.Translate(st.Velocity.Scale(step))
	if gone(e.Bounds(), ctx.Field) {
		return DespawnOffscreen
	}
	return Continue
}

// horizontal enters from the left edge and crosses to the right
type horizontal struct{}

func (horizontal) Spawn(ctx *Context, rng *core.Rand) []component.Entity {
	const w, h = 20.0, 10.0
	y := rng.Range(ctx.Field.Top()+h, ctx.Field.Top()+ctx.Field.H*0.75)
	return []component.Entity{{
		Kind:  component.KindHorizontal,
		Shape: component.BoxShape(core.Rect{X: ctx.Field.Left(), Y: y, W: w, H: h}),
		State: &component.Linear{Velocity: core.Point{X: parameter.HorizontalSpeed}},
	}}
}

func (horizontal) Advance(e *component.Entity, step float64, ctx *Context) Result {
	return advanceLinear(e, step, ctx, pastRight)
}

// pastRight reports the box is entirely right of the field
func pastRight(b, field core.Rect) bool {
	return b.Left() > field.Right()
}

// exitedSidesOrBottom reports the box left through the left, right or bottom edge
func exitedSidesOrBottom(b, field core.Rect) bool {
	return b.Right() < field.Left() || b.Left() > field.Right() || b.Top() > field.Bottom()
}

// diagonal falls at a fixed slant chosen at spawn
type diagonal struct{}

func (diagonal) Spawn(ctx *Context, rng *core.Rand) []component.Entity {
	dir := rng.Sign()
	return []component.Entity{{
		Kind:  component.KindDiagonal,
		Shape: component.BoxShape(topSpawn(rng, ctx.Field, 12, 12)),
		State: &component.Linear{Velocity: core.Point{X: dir * parameter.DiagonalSpeedX, Y: parameter.DiagonalSpeedY}},
	}}
}

func (diagonal) Advance(e *component.Entity, step float64, ctx *Context) Result {
	return advanceLinear(e, step, ctx, exitedSidesOrBottom)
}

// triangle is a diagonal faller with a polygon shape
type triangle struct{}

func (triangle) Spawn(ctx *Context, rng *core.Rand) []component.Entity {
	r := parameter.TriangleRadius
	dir := rng.Sign()
	c := core.Point{X: rng.Range(ctx.Field.Left()+r, ctx.Field.Right()-r), Y: ctx.Field.Top() + r}
	return []component.Entity{{
		Kind:  component.KindTriangle,
		Shape: component.PolyShape(core.RegularPolygon(c, r, 3, math.Pi/2)),
		State: &component.Linear{Velocity: core.Point{X: dir * parameter.TriangleSpeedX, Y: parameter.TriangleSpeedY}},
	}}
}

func (triangle) Advance(e *component.Entity, step float64, ctx *Context) Result {
	return advanceLinear(e, step, ctx, exitedSidesOrBottom)
}

// quadCluster drops four small boxes in a 2×2 formation
type quadCluster struct{}

func (quadCluster) Spawn(ctx *Context, rng *core.Rand) []component.Entity {
	const size, gap = 10.0, 4.0
	span := 2*size + gap
	x := rng.Range(ctx.Field.Left(), ctx.Field.Right()-span)
	y := ctx.Field.Top()

	out := make([]component.Entity, 0, 4)
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			out = append(out, component.Entity{
				Kind: component.KindQuadCluster,
				Shape: component.BoxShape(core.Rect{
					X: x + float64(col)*(size+gap),
					Y: y + float64(row)*(size+gap),
					W: size, H: size,
				}),
				State: &component.Linear{Velocity: core.Point{Y: parameter.QuadSpeed}},
			})
		}
	}
	return out
}

func (quadCluster) Advance(e *component.Entity, step float64, ctx *Context) Result {
	return advanceLinear(e, step, ctx, pastBottom)
}
