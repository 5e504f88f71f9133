package pattern

import (
	"github.com/lixenwraith/bullet-hell/component"
	"github.com/lixenwraith/bullet-hell/core"
	"github.com/lixenwraith/bullet-hell/parameter"
)

// trap sits still; the player coming near sets it off into a ring of fragments
// An untriggered trap disarms quietly when its life runs out
type trap struct{}

func (trap) Spawn(ctx *Context, rng *core.Rand) []component.Entity {
	const size = 20.0
	f := ctx.Field
	lo := core.Point{X: f.Left() + size, Y: f.Top() + size}
	hi := core.Point{X: f.Right() - size, Y: f.Top() + f.H*0.7}

	var c core.Point
	for try := 0; try < 8; try++ {
		c = core.Point{X: rng.Range(lo.X, hi.X), Y: rng.Range(lo.Y, hi.Y)}
		if c.Dist(ctx.Player) >= parameter.TrapPlayerClearance {
			break
		}
	}
	// Mirror across the field when every try landed on top of the player
	if c.Dist(ctx.Player) < parameter.TrapPlayerClearance {
		c.X = core.Clamp(f.Right()-(ctx.Player.X-f.Left()), lo.X, hi.X)
		c.Y = lo.Y
	}

	return []component.Entity{{
		Kind:  component.KindStaticTrap,
		Shape: component.BoxShape(core.RectAt(c, size, size)),
		State: &component.Trap{Life: parameter.TrapLife, Fragments: parameter.TrapFragments},
	}}
}

func (trap) Advance(e *component.Entity, step float64, ctx *Context) Result {
	st, ok := e.State.(*component.Trap)
	if !ok {
		return DespawnConsumed
	}

	c := e.Center()
	if c.Dist(ctx.Player) <= parameter.TrapTriggerRadius {
		// Aim the first ray at the player so the ring always threatens
		aim := ctx.Player.Sub(c)
		start := 0.0
		if aim.Len() > 0 {
			start = angleOf(aim)
		}
		for _, v := range ring(st.Fragments, start, parameter.TrapFragmentSpeed) {
			ctx.Emit(boxFragment(c, 8, v))
		}
		return DespawnConsumed
	}

	st.Life -= step
	if st.Life <= 0 {
		return DespawnConsumed
	}
	return Continue
}
