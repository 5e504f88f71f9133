package engine

import (
	"time"

	"github.com/lixenwraith/bullet-hell/component"
	"github.com/lixenwraith/bullet-hell/core"
	"github.com/lixenwraith/bullet-hell/event"
)

// EntityView is a read-only copy of one entity
type EntityView struct {
	ID    core.Entity
	Kind  component.Kind
	Shape component.Shape
}

// PlayerView is a read-only copy of the player
type PlayerView struct {
	Hitbox   core.Rect
	Lives    int
	Shield   int
	Charge   float64
	Focusing bool
}

// EffectView describes the active temporal effect
type EffectView struct {
	Kind         event.EffectKind
	Remaining    time.Duration
	Tint         float64 // Frozen overlay fade in [0, 1]
	RewindQueued bool
}

// UnlockView is the next kind to unlock; OK is false once everything is unlocked
type UnlockView struct {
	Kind      component.Kind
	Remaining time.Duration
	OK        bool
}

// View is a snapshot of everything presentation needs; it shares no memory with the engine
type View struct {
	Field      core.Rect
	Tick       int64
	Entities   []EntityView
	PowerUps   []component.Pickup
	Player     PlayerView
	Score      int64
	Effect     EffectView
	Survival   time.Duration
	NextUnlock UnlockView
	Over       bool
	EndReason  string
}

// View copies the current state for rendering
func (e *Engine) View() View {
	now := e.clock.Now()

	entities := make([]EntityView, 0, e.arena.Len())
	for _, ent := range e.arena.Entities() {
		entities = append(entities, EntityView{ID: ent.ID, Kind: ent.Kind, Shape: ent.Shape.Clone()})
	}

	next, remaining, ok := e.scheduler.NextUnlock(e.survival)

	return View{
		Field:    e.field,
		Tick:     e.clock.Ticks(),
		Entities: entities,
		PowerUps: append([]component.Pickup(nil), e.pickups...),
		Player: PlayerView{
			Hitbox:   e.player.Hitbox,
			Lives:    e.player.Lives,
			Shield:   e.player.Shield,
			Charge:   e.player.Charge,
			Focusing: e.player.Focusing,
		},
		Score: e.ledger.Total(),
		Effect: EffectView{
			Kind:         e.temporal.Effect(),
			Remaining:    e.temporal.Remaining(now),
			Tint:         e.temporal.TintProgress(now),
			RewindQueued: e.temporal.RewindQueued(),
		},
		Survival:   e.survival,
		NextUnlock: UnlockView{Kind: next, Remaining: remaining, OK: ok},
		Over:       e.over,
		EndReason:  e.endReason,
	}
}
