package pattern

import (
	"math"

	"github.com/lixenwraith/bullet-hell/component"
	"github.com/lixenwraith/bullet-hell/core"
	"github.com/lixenwraith/bullet-hell/parameter"
)

// star falls like a vertical bullet and spins its vertices independent of fall speed
type star struct{}

func (star) Spawn(ctx *Context, rng *core.Rand) []component.Entity {
	r := parameter.StarOuterRadius
	c := core.Point{X: rng.Range(ctx.Field.Left()+r, ctx.Field.Right()-r), Y: ctx.Field.Top() + r}
	return []component.Entity{{
		Kind:  component.KindStar,
		Shape: component.PolyShape(core.StarPolygon(c, r, parameter.StarInnerRadius, parameter.StarPoints, -math.Pi/2)),
		State: &component.Star{Velocity: core.Point{Y: parameter.StarSpeed}, Spin: parameter.StarSpin},
	}}
}

func (star) Advance(e *component.Entity, step float64, ctx *Context) Result {
	st, ok := e.State.(*component.Star)
	if !ok {
		return DespawnConsumed
	}

	e.Shape.Translate(st.Velocity.Scale(step))
	if e.Shape.IsPolygon() {
		e.Shape.Poly.Rotate(e.Shape.Poly.Centroid(), st.Spin*step)
	}

	if pastBottom(e.Bounds(), ctx.Field) {
		return DespawnOffscreen
	}
	return Continue
}
