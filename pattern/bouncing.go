package pattern

import (
	"math"

	"github.com/lixenwraith/bullet-hell/component"
	"github.com/lixenwraith/bullet-hell/core"
	"github.com/lixenwraith/bullet-hell/parameter"
	"github.com/lixenwraith/bullet-hell/physics"
)

// bouncing reflects off every edge; one budget unit per reflecting tick regardless of axes
type bouncing struct{}

func (bouncing) Spawn(ctx *Context, rng *core.Rand) []component.Entity {
	box := topSpawn(rng, ctx.Field, 14, 14)
	box.Y = rng.Range(ctx.Field.Top(), ctx.Field.Top()+ctx.Field.H/4)
	// Downward half-plane, away from horizontal so it reaches the player
	angle := rng.Range(math.Pi/6, 5*math.Pi/6)
	return []component.Entity{{
		Kind:  component.KindBouncing,
		Shape: component.BoxShape(box),
		State: &component.Bounce{
			Velocity:  core.FromAngle(angle, parameter.BounceSpeed),
			Remaining: parameter.BounceBudget,
		},
	}}
}

func (bouncing) Advance(e *component.Entity, step float64, ctx *Context) Result {
	st, ok := e.State.(*component.Bounce)
	if !ok {
		return DespawnConsumed
	}

	e.Shape.Translate(st.Velocity.Scale(step))

	crossed := physics.CrossedBounds(e.Shape.Box, ctx.Field, st.Velocity)
	if !crossed.Any() {
		return Continue
	}
	if st.Remaining <= 0 {
		return DespawnConsumed
	}
	physics.Reflect(&e.Shape.Box, &st.Velocity, ctx.Field)
	st.Remaining--
	return Continue
}
