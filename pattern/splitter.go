package pattern

import (
	"math"

	"github.com/lixenwraith/bullet-hell/component"
	"github.com/lixenwraith/bullet-hell/core"
	"github.com/lixenwraith/bullet-hell/parameter"
)

// splitter falls until its timer runs out, then is replaced by a ring of triangle fragments
type splitter struct{}

func (splitter) Spawn(ctx *Context, rng *core.Rand) []component.Entity {
	return []component.Entity{{
		Kind:  component.KindSplitter,
		Shape: component.BoxShape(topSpawn(rng, ctx.Field, 18, 18)),
		State: &component.Splitter{
			Velocity:  core.Point{Y: parameter.SplitterSpeed},
			Timer:     parameter.SplitterTimer,
			Fragments: parameter.SplitterFragments,
		},
	}}
}

func (splitter) Advance(e *component.Entity, step float64, ctx *Context) Result {
	st, ok := e.State.(*component.Splitter)
	if !ok {
		return DespawnConsumed
	}

	st.Timer -= step
	if st.Timer <= 0 {
		origin := e.Center()
		for _, v := range ring(st.Fragments, math.Pi/2, parameter.SplitterFragmentSpeed) {
			ctx.Emit(polyFragment(origin, parameter.SplitterFragmentSize, v))
		}
		return DespawnConsumed
	}

	e.Shape.Translate(st.Velocity.Scale(step))
	if pastBottom(e.Bounds(), ctx.Field) {
		return DespawnOffscreen
	}
	return Continue
}
