// Package pattern holds one spawn/advance pair per bullet kind and the survival-time unlock scheduler
package pattern

import (
	"github.com/lixenwraith/bullet-hell/component"
	"github.com/lixenwraith/bullet-hell/core"
	"github.com/lixenwraith/bullet-hell/parameter"
)

// Result is the outcome of advancing one entity by one tick
type Result uint8

const (
	Continue Result = iota
	DespawnOffscreen
	DespawnConsumed
	Collided
)

func (r Result) String() string {
	switch r {
	case Continue:
		return "continue"
	case DespawnOffscreen:
		return "offscreen"
	case DespawnConsumed:
		return "consumed"
	case Collided:
		return "collided"
	default:
		return "unknown"
	}
}

// Context is the read-only view of the world a behavior may consult, plus an outbox for fragments
type Context struct {
	Field  core.Rect  // Playfield, origin at top-left
	Player core.Point // Player hitbox center

	emitted []component.Entity
}

// NewContext returns a context for the given playfield and player center
func NewContext(field core.Rect, player core.Point) *Context {
	return &Context{Field: field, Player: player}
}

// Emit queues entities created during Advance; the engine assigns their ids
func (c *Context) Emit(es ...component.Entity) {
	c.emitted = append(c.emitted, es...)
}

// Drain returns and clears the emitted entities
func (c *Context) Drain() []component.Entity {
	out := c.emitted
	c.emitted = nil
	return out
}

// Behavior is the state-transition contract of a bullet kind
type Behavior interface {
	// Spawn creates new entities without ids, fully or mostly on-screen
	// All randomness comes from rng, which is private to this spawn
	Spawn(ctx *Context, rng *core.Rand) []component.Entity

	// Advance moves e by step simulated ticks and decides whether it stays
	// Must not read wall-clock time; step already carries any slow-motion factor
	Advance(e *component.Entity, step float64, ctx *Context) Result
}

var behaviors = [component.KindCount]Behavior{
	component.KindVertical:    straight{kind: component.KindVertical, w: 10, h: 20, vel: core.Point{Y: parameter.VerticalSpeed}},
	component.KindHorizontal:  horizontal{},
	component.KindDiagonal:    diagonal{},
	component.KindTriangle:    triangle{},
	component.KindQuadCluster: quadCluster{},
	component.KindZigZag:      zigZag{},
	component.KindFast:        straight{kind: component.KindFast, w: 6, h: 16, vel: core.Point{Y: parameter.FastSpeed}},
	component.KindStar:        star{},
	component.KindRectangle:   straight{kind: component.KindRectangle, w: 40, h: 12, vel: core.Point{Y: parameter.RectangleSpeed}},
	component.KindEgg:         straight{kind: component.KindEgg, w: 16, h: 22, vel: core.Point{Y: parameter.EggSpeed}},
	component.KindBoss:        straight{kind: component.KindBoss, w: 60, h: 60, vel: core.Point{Y: parameter.BossSpeed}},
	component.KindBouncing:    bouncing{},
	component.KindExploding:   exploding{},
	component.KindHoming:      homing{},
	component.KindSpiral:      spiral{},
	component.KindRadialBurst: radialBurst{},
	component.KindWave:        wave{},
	component.KindBoomerang:   boomerang{},
	component.KindSplitter:    splitter{},
	component.KindStaticTrap:  trap{},
}

// For returns the behavior of kind
func For(kind component.Kind) Behavior {
	if kind >= component.KindCount {
		return nil
	}
	return behaviors[kind]
}

// Advance dispatches to the behavior of e's kind
func Advance(e *component.Entity, step float64, ctx *Context) Result {
	b := For(e.Kind)
	if b == nil {
		return DespawnConsumed
	}
	return b.Advance(e, step, ctx)
}

var bonus = [component.KindCount]int64{
	component.KindVertical:    1,
	component.KindHorizontal:  1,
	component.KindDiagonal:    1,
	component.KindTriangle:    2,
	component.KindQuadCluster: 1,
	component.KindZigZag:      2,
	component.KindFast:        2,
	component.KindStar:        2,
	component.KindRectangle:   2,
	component.KindEgg:         3,
	component.KindBoss:        10,
	component.KindBouncing:    3,
	component.KindExploding:   2,
	component.KindHoming:      3,
	component.KindSpiral:      2,
	component.KindRadialBurst: 1,
	component.KindWave:        2,
	component.KindBoomerang:   3,
	component.KindSplitter:    2,
	component.KindStaticTrap:  2,
}

// Bonus returns the score for a kind leaving the field or spending itself; collisions earn nothing
func Bonus(kind component.Kind) int64 {
	if kind >= component.KindCount {
		return 0
	}
	return bonus[kind]
}
