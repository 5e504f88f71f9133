package pattern

import (
	"github.com/lixenwraith/bullet-hell/component"
	"github.com/lixenwraith/bullet-hell/core"
	"github.com/lixenwraith/bullet-hell/parameter"
)

type zigZag struct{}

func (zigZag) Spawn(ctx *Context, rng *core.Rand) []component.Entity {
	return []component.Entity{{
		Kind:  component.KindZigZag,
		Shape: component.BoxShape(topSpawn(rng, ctx.Field, 12, 12)),
		State: &component.ZigZag{Velocity: core.Point{
			X: rng.Sign() * parameter.ZigZagSpeedX,
			Y: parameter.ZigZagSpeedY,
		}},
	}}
}

func (zigZag) Advance(e *component.Entity, step float64, ctx *Context) Result {
	st, ok := e.State.(*component.ZigZag)
	if !ok {
		return DespawnConsumed
	}

	e.Shape.Translate(st.Velocity.Scale(step))

	st.Ticks += step
	for st.Ticks >= parameter.ZigZagFlipTicks {
		st.Ticks -= parameter.ZigZagFlipTicks
		st.Velocity.X = -st.Velocity.X
	}

	if outside(e.Bounds(), ctx.Field) {
		return DespawnOffscreen
	}
	return Continue
}
