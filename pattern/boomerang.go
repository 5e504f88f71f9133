package pattern

import (
	"github.com/lixenwraith/bullet-hell/component"
	"github.com/lixenwraith/bullet-hell/core"
	"github.com/lixenwraith/bullet-hell/parameter"
)

// boomerang goes down for a fixed tick budget, then returns at reduced speed
// Only leaving the field despawns it; the turn does not
type boomerang struct{}

func (boomerang) Spawn(ctx *Context, rng *core.Rand) []component.Entity {
	return []component.Entity{{
		Kind:  component.KindBoomerang,
		Shape: component.BoxShape(topSpawn(rng, ctx.Field, 14, 14)),
		State: &component.Boomerang{Velocity: core.Point{Y: parameter.BoomerangSpeed}},
	}}
}

func (boomerang) Advance(e *component.Entity, step float64, ctx *Context) Result {
	st, ok := e.State.(*component.Boomerang)
	if !ok {
		return DespawnConsumed
	}

	if !st.Returning {
		st.Elapsed += step
		if st.Elapsed >= parameter.BoomerangOutboundTicks {
			st.Returning = true
			st.Velocity = st.Velocity.Scale(-parameter.BoomerangReturnFactor)
		}
	}
	e.Shape.Translate(st.Velocity.Scale(step))

	if outside(e.Bounds(), ctx.Field) {
		return DespawnOffscreen
	}
	return Continue
}
