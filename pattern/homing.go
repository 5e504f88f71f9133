package pattern

import (
	"github.com/lixenwraith/bullet-hell/component"
	"github.com/lixenwraith/bullet-hell/core"
	"github.com/lixenwraith/bullet-hell/parameter"
	"github.com/lixenwraith/bullet-hell/physics"
)

// homing blends its velocity toward the player every tick and expires on its own life counter
type homing struct{}

func (homing) Spawn(ctx *Context, rng *core.Rand) []component.Entity {
	box := topSpawn(rng, ctx.Field, 12, 12)
	vel := ctx.Player.Sub(box.Center()).Normalize().Scale(parameter.HomingSpeed)
	if vel.Len() == 0 {
		vel = core.Point{Y: parameter.HomingSpeed}
	}
	return []component.Entity{{
		Kind:  component.KindHoming,
		Shape: component.BoxShape(box),
		State: &component.Homing{Velocity: vel, Life: parameter.HomingLife},
	}}
}

func (homing) Advance(e *component.Entity, step float64, ctx *Context) Result {
	st, ok := e.State.(*component.Homing)
	if !ok {
		return DespawnConsumed
	}

	st.Velocity = physics.Steer(st.Velocity, e.Center(), ctx.Player,
		parameter.HomingSpeed, parameter.HomingTurnRate, step)
	e.Shape.Translate(st.Velocity.Scale(step))

	st.Life -= step
	if st.Life <= 0 {
		return DespawnConsumed
	}
	if outside(e.Bounds(), ctx.Field) {
		return DespawnOffscreen
	}
	return Continue
}
