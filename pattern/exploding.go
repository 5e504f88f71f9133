package pattern

import (
	"math"

	"github.com/lixenwraith/bullet-hell/component"
	"github.com/lixenwraith/bullet-hell/core"
	"github.com/lixenwraith/bullet-hell/parameter"
)

// exploding falls into the mid-screen band and bursts into four diagonal fragments
type exploding struct{}

func (exploding) Spawn(ctx *Context, rng *core.Rand) []component.Entity {
	return []component.Entity{{
		Kind:  component.KindExploding,
		Shape: component.BoxShape(topSpawn(rng, ctx.Field, 16, 16)),
		State: &component.Explode{Velocity: core.Point{Y: parameter.ExplodeSpeed}, Fragments: 4},
	}}
}

func (exploding) Advance(e *component.Entity, step float64, ctx *Context) Result {
	st, ok := e.State.(*component.Explode)
	if !ok {
		return DespawnConsumed
	}

	e.Shape.Translate(st.Velocity.Scale(step))

	mid := ctx.Field.Center().Y
	c := e.Center()
	if math.Abs(c.Y-mid) <= parameter.ExplodeBandTolerance {
		for i := 0; i < st.Fragments; i++ {
			angle := math.Pi/4 + float64(i)*math.Pi/2
			ctx.Emit(boxFragment(c, 8, core.FromAngle(angle, parameter.ExplodeFragmentSpeed)))
		}
		return DespawnConsumed
	}

	if pastBottom(e.Bounds(), ctx.Field) {
		return DespawnOffscreen
	}
	return Continue
}
