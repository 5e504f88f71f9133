package pattern

import (
	"math"

	"github.com/lixenwraith/bullet-hell/component"
	"github.com/lixenwraith/bullet-hell/core"
	"github.com/lixenwraith/bullet-hell/parameter"
)

// spiral orbits its spawn origin; angle and radius only grow
// Motion is applied as the change in polar offset, so a shape moved by rewind playback continues from there
type spiral struct{}

func (spiral) Spawn(ctx *Context, rng *core.Rand) []component.Entity {
	f := ctx.Field
	origin := core.Point{
		X: rng.Range(f.Left()+f.W*0.2, f.Left()+f.W*0.8),
		Y: rng.Range(f.Top()+f.H*0.1, f.Top()+f.H*0.35),
	}
	return []component.Entity{{
		Kind:  component.KindSpiral,
		Shape: component.BoxShape(core.RectAt(origin, 10, 10)),
		State: &component.Spiral{
			Origin:       origin,
			Angle:        rng.Angle(),
			AngularSpeed: parameter.SpiralAngularSpeed,
			RadialSpeed:  parameter.SpiralRadialSpeed,
		},
	}}
}

func (spiral) Advance(e *component.Entity, step float64, ctx *Context) Result {
	st, ok := e.State.(*component.Spiral)
	if !ok {
		return DespawnConsumed
	}

	before := core.FromAngle(st.Angle, st.Radius)
	st.Angle += st.AngularSpeed * step
	st.Radius += st.RadialSpeed * step
	e.Shape.Translate(core.FromAngle(st.Angle, st.Radius).Sub(before))

	if st.Radius > math.Hypot(ctx.Field.W, ctx.Field.H) || beyondMargin(e.Bounds(), ctx.Field) {
		return DespawnOffscreen
	}
	return Continue
}
