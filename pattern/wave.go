package pattern

import (
	"math"

	"github.com/lixenwraith/bullet-hell/component"
	"github.com/lixenwraith/bullet-hell/core"
	"github.com/lixenwraith/bullet-hell/parameter"
)

// wave falls while swinging sinusoidally around the column it spawned in
// Only the change in sine offset is applied, so the swing follows wherever the shape currently is
type wave struct{}

func (wave) Spawn(ctx *Context, rng *core.Rand) []component.Entity {
	const size = 12.0
	f := ctx.Field
	a := parameter.WaveAmplitude
	baseX := rng.Range(f.Left()+a+size/2, f.Right()-a-size/2)
	phase := rng.Angle()
	c := core.Point{X: baseX + a*math.Sin(phase), Y: f.Top() + size/2}
	return []component.Entity{{
		Kind:  component.KindWave,
		Shape: component.BoxShape(core.RectAt(c, size, size)),
		State: &component.Wave{
			Phase:     phase,
			PhaseStep: parameter.WavePhaseStep,
			Amplitude: a,
			BaseX:     baseX,
			SpeedY:    parameter.WaveSpeed,
		},
	}}
}

func (wave) Advance(e *component.Entity, step float64, ctx *Context) Result {
	st, ok := e.State.(*component.Wave)
	if !ok {
		return DespawnConsumed
	}

	prev := st.Phase
	st.Phase += st.PhaseStep * step
	e.Shape.Translate(core.Point{
		X: st.Amplitude * (math.Sin(st.Phase) - math.Sin(prev)),
		Y: st.SpeedY * step,
	})

	if pastBottom(e.Bounds(), ctx.Field) {
		return DespawnOffscreen
	}
	return Continue
}
