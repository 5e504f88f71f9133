package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/bullet-hell/component"
	"github.com/lixenwraith/bullet-hell/core"
	"github.com/lixenwraith/bullet-hell/parameter"
)

var testField = core.Rect{W: parameter.PlayfieldWidth, H: parameter.PlayfieldHeight}

func testContext() *Context {
	return NewContext(testField, core.Point{X: testField.W / 2, Y: testField.H - 8})
}

func TestVerticalDespawnsAfterCrossingField(t *testing.T) {
	ctx := testContext()
	e := component.Entity{
		Kind:  component.KindVertical,
		Shape: component.BoxShape(core.Rect{X: 100, Y: 0, W: 10, H: 20}),
		State: &component.Linear{Velocity: core.Point{Y: parameter.VerticalSpeed}},
	}

	// 7*85 = 595 keeps the top edge on the field; 7*86 = 602 is past it
	for tick := 1; tick <= 85; tick++ {
		require.Equal(t, Continue, Advance(&e, 1, ctx), "tick %d", tick)
	}
	assert.Equal(t, DespawnOffscreen, Advance(&e, 1, ctx))
	assert.Equal(t, int64(1), Bonus(component.KindVertical))
}

func TestSplitterBreaksIntoFragments(t *testing.T) {
	ctx := testContext()
	e := component.Entity{
		Kind:  component.KindSplitter,
		Shape: component.BoxShape(core.Rect{X: 200, Y: 150, W: 18, H: 18}),
		State: &component.Splitter{Velocity: core.Point{Y: 4}, Timer: 1, Fragments: parameter.SplitterFragments},
	}
	origin := e.Center()

	assert.Equal(t, DespawnConsumed, Advance(&e, 1, ctx))

	frags := ctx.Drain()
	require.Len(t, frags, parameter.SplitterFragments)
	for _, f := range frags {
		assert.Equal(t, component.KindRadialBurst, f.Kind)
		assert.True(t, f.Shape.IsPolygon())
		c := f.Center()
		assert.InDelta(t, origin.X, c.X, 1e-9)
		assert.InDelta(t, origin.Y, c.Y, 1e-9)
		_, ok := f.State.(*component.Fragment)
		assert.True(t, ok)
	}
	assert.Empty(t, ctx.Drain())
}

func TestBouncingConservation(t *testing.T) {
	ctx := testContext()

	t.Run("single axis", func(t *testing.T) {
		st := &component.Bounce{Velocity: core.Point{X: 6, Y: 2}, Remaining: 3}
		e := component.Entity{
			Kind:  component.KindBouncing,
			Shape: component.BoxShape(core.Rect{X: testField.W - 16, Y: 300, W: 14, H: 14}),
			State: st,
		}
		assert.Equal(t, Continue, Advance(&e, 1, ctx))
		assert.Equal(t, 2, st.Remaining)
		assert.Equal(t, -6.0, st.Velocity.X)
		assert.Equal(t, 2.0, st.Velocity.Y)
		assert.True(t, testField.Contains(e.Bounds()))
	})

	t.Run("corner costs one unit", func(t *testing.T) {
		st := &component.Bounce{Velocity: core.Point{X: 6, Y: 6}, Remaining: 3}
		e := component.Entity{
			Kind:  component.KindBouncing,
			Shape: component.BoxShape(core.Rect{X: testField.W - 16, Y: testField.H - 16, W: 14, H: 14}),
			State: st,
		}
		assert.Equal(t, Continue, Advance(&e, 1, ctx))
		assert.Equal(t, 2, st.Remaining)
		assert.Equal(t, core.Point{X: -6, Y: -6}, st.Velocity)
	})

	t.Run("exhausted budget despawns", func(t *testing.T) {
		st := &component.Bounce{Velocity: core.Point{X: -6}, Remaining: 0}
		e := component.Entity{
			Kind:  component.KindBouncing,
			Shape: component.BoxShape(core.Rect{X: 2, Y: 300, W: 14, H: 14}),
			State: st,
		}
		assert.Equal(t, DespawnConsumed, Advance(&e, 1, ctx))
	})

	t.Run("no crossing keeps budget", func(t *testing.T) {
		st := &component.Bounce{Velocity: core.Point{X: 6, Y: 6}, Remaining: 1}
		e := component.Entity{
			Kind:  component.KindBouncing,
			Shape: component.BoxShape(core.Rect{X: 300, Y: 300, W: 14, H: 14}),
			State: st,
		}
		assert.Equal(t, Continue, Advance(&e, 1, ctx))
		assert.Equal(t, 1, st.Remaining)
	})
}

func TestExplodingBurstsInBand(t *testing.T) {
	ctx := testContext()
	mid := testField.H / 2
	e := component.Entity{
		Kind:  component.KindExploding,
		Shape: component.BoxShape(core.RectAt(core.Point{X: 300, Y: mid - 25}, 16, 16)),
		State: &component.Explode{Velocity: core.Point{Y: 5}, Fragments: 4},
	}

	assert.Equal(t, DespawnConsumed, Advance(&e, 1, ctx))
	frags := ctx.Drain()
	require.Len(t, frags, 4)
	for _, f := range frags {
		v := f.State.(*component.Fragment).Velocity
		assert.InDelta(t, parameter.ExplodeFragmentSpeed, v.Len(), 1e-9)
		assert.NotZero(t, v.X)
		assert.NotZero(t, v.Y)
	}
}

func TestHomingLifeExpires(t *testing.T) {
	ctx := testContext()
	e := component.Entity{
		Kind:  component.KindHoming,
		Shape: component.BoxShape(core.Rect{X: 300, Y: 100, W: 12, H: 12}),
		State: &component.Homing{Velocity: core.Point{Y: parameter.HomingSpeed}, Life: 2},
	}
	assert.Equal(t, Continue, Advance(&e, 1, ctx))
	assert.Equal(t, DespawnConsumed, Advance(&e, 1, ctx))
}

func TestBoomerangTurnsAround(t *testing.T) {
	ctx := testContext()
	st := &component.Boomerang{Velocity: core.Point{Y: parameter.BoomerangSpeed}, Elapsed: parameter.BoomerangOutboundTicks - 1}
	e := component.Entity{
		Kind:  component.KindBoomerang,
		Shape: component.BoxShape(core.Rect{X: 300, Y: 240, W: 14, H: 14}),
		State: st,
	}

	assert.Equal(t, Continue, Advance(&e, 1, ctx))
	assert.True(t, st.Returning)
	assert.InDelta(t, -parameter.BoomerangSpeed*parameter.BoomerangReturnFactor, st.Velocity.Y, 1e-9)
	assert.Less(t, e.Bounds().Y, 240.0)
}

func TestTrapTriggerAndDisarm(t *testing.T) {
	ctx := testContext()

	near := component.Entity{
		Kind:  component.KindStaticTrap,
		Shape: component.BoxShape(core.RectAt(ctx.Player.Add(core.Point{Y: -60}), 20, 20)),
		State: &component.Trap{Life: 50, Fragments: parameter.TrapFragments},
	}
	assert.Equal(t, DespawnConsumed, Advance(&near, 1, ctx))
	assert.Len(t, ctx.Drain(), parameter.TrapFragments)

	far := component.Entity{
		Kind:  component.KindStaticTrap,
		Shape: component.BoxShape(core.RectAt(core.Point{X: 100, Y: 100}, 20, 20)),
		State: &component.Trap{Life: 1, Fragments: parameter.TrapFragments},
	}
	assert.Equal(t, DespawnConsumed, Advance(&far, 1, ctx))
	assert.Empty(t, ctx.Drain())
}

func TestSlowStepScalesMotion(t *testing.T) {
	ctx := testContext()
	e := component.Entity{
		Kind:  component.KindVertical,
		Shape: component.BoxShape(core.Rect{X: 100, Y: 0, W: 10, H: 20}),
		State: &component.Linear{Velocity: core.Point{Y: parameter.VerticalSpeed}},
	}
	Advance(&e, 0.5, ctx)
	assert.InDelta(t, parameter.VerticalSpeed*0.5, e.Bounds().Y, 1e-9)
}

// Every kind, spawned and run to completion, stays inside the margin or is removed on that tick
func TestAllKindsStayInBoundsOrDespawn(t *testing.T) {
	const maxTicks = 3000
	allowed := testField.Inset(parameter.BoundsMargin)

	for _, kind := range component.AllKinds() {
		t.Run(kind.String(), func(t *testing.T) {
			for seed := uint64(1); seed <= 16; seed++ {
				ctx := testContext()
				live := For(kind).Spawn(ctx, core.NewRand(seed))
				require.NotEmpty(t, live)
				for _, e := range live {
					require.Equal(t, kind, e.Kind)
					require.True(t, allowed.Contains(e.Bounds()), "spawn out of bounds: %+v", e.Bounds())
				}

				for tick := 0; len(live) > 0; tick++ {
					require.Less(t, tick, maxTicks, "seed %d never cleared", seed)
					next := live[:0]
					for i := range live {
						e := live[i]
						if Advance(&e, 1, ctx) == Continue {
							require.True(t, allowed.Contains(e.Bounds()),
								"seed %d tick %d: %+v escaped", seed, tick, e.Bounds())
							next = append(next, e)
						}
					}
					live = append(next, ctx.Drain()...)
				}
			}
		})
	}
}

func TestSpawnDeterministicPerSeed(t *testing.T) {
	for _, kind := range component.AllKinds() {
		a := For(kind).Spawn(testContext(), core.NewRand(42))
		b := For(kind).Spawn(testContext(), core.NewRand(42))
		assert.Equal(t, a, b, kind.String())
	}
}

func TestBonusTable(t *testing.T) {
	assert.Equal(t, int64(10), Bonus(component.KindBoss))
	assert.Equal(t, int64(3), Bonus(component.KindEgg))
	assert.Equal(t, int64(0), Bonus(component.KindCount))
	for _, k := range component.AllKinds() {
		assert.Positive(t, Bonus(k), k.String())
		assert.NotNil(t, For(k), k.String())
	}
	assert.Nil(t, For(component.KindCount))
}
