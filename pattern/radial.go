package pattern

import (
	"math"

	"github.com/lixenwraith/bullet-hell/component"
	"github.com/lixenwraith/bullet-hell/core"
	"github.com/lixenwraith/bullet-hell/parameter"
)

// radialBurst fires a ring of fragments from one origin at once
// Its Advance is the shared fragment behavior used by splitters, explosions and traps
type radialBurst struct{}

func (radialBurst) Spawn(ctx *Context, rng *core.Rand) []component.Entity {
	f := ctx.Field
	origin := core.Point{
		X: rng.Range(f.Left()+f.W*0.15, f.Left()+f.W*0.85),
		Y: rng.Range(f.Top()+f.H*0.1, f.Top()+f.H*0.4),
	}
	out := make([]component.Entity, 0, parameter.RadialCount)
	for i := 0; i < parameter.RadialCount; i++ {
		angle := 2*math.Pi*float64(i)/parameter.RadialCount +
			rng.Range(-parameter.RadialJitter, parameter.RadialJitter)
		out = append(out, boxFragment(origin, 8, core.FromAngle(angle, parameter.RadialSpeed)))
	}
	return out
}

func (radialBurst) Advance(e *component.Entity, step float64, ctx *Context) Result {
	st, ok := e.State.(*component.Fragment)
	if !ok {
		return DespawnConsumed
	}
	e.Shape.Translate(st.Velocity.Scale(step))
	if outside(e.Bounds(), ctx.Field) {
		return DespawnOffscreen
	}
	return Continue
}

// boxFragment returns a square fragment centered on origin
func boxFragment(origin core.Point, size float64, vel core.Point) component.Entity {
	return component.Entity{
		Kind:  component.KindRadialBurst,
		Shape: component.BoxShape(core.RectAt(origin, size, size)),
		State: &component.Fragment{Velocity: vel},
	}
}

// polyFragment returns a small triangle fragment centered on origin, pointing along vel
func polyFragment(origin core.Point, size float64, vel core.Point) component.Entity {
	heading := math.Atan2(vel.Y, vel.X)
	return component.Entity{
		Kind:  component.KindRadialBurst,
		Shape: component.PolyShape(core.RegularPolygon(origin, size, 3, heading)),
		State: &component.Fragment{Velocity: vel},
	}
}

// ring returns count evenly spaced directions starting at start
func ring(count int, start, speed float64) []core.Point {
	out := make([]core.Point, count)
	for i := range out {
		out[i] = core.FromAngle(start+2*math.Pi*float64(i)/float64(count), speed)
	}
	return out
}

func angleOf(v core.Point) float64 {
	return math.Atan2(v.Y, v.X)
}
