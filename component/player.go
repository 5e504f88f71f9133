package component

import (
	"github.com/lixenwraith/bullet-hell/core"
	"github.com/lixenwraith/bullet-hell/parameter"
)

// HitOutcome is the result of applying one collision to the player
type HitOutcome uint8

const (
	// HitAbsorbed means a shield charge took the hit
	HitAbsorbed HitOutcome = iota
	// HitLifeLost means a life was removed and the player survives
	HitLifeLost
	// HitFatal means the last life was removed
	HitFatal
)

// Player is the singleton avatar
type Player struct {
	Hitbox   core.Rect
	Lives    int
	Shield   int
	Charge   float64 // Focus charge for the pulse
	Focusing bool

	grazed map[core.Entity]struct{}
}

// NewPlayer places a fresh player at the bottom center of the field
func NewPlayer(field core.Rect) Player {
	box := core.RectAt(core.Point{
		X: field.Center().X,
		Y: field.Bottom() - 4*parameter.PlayerSize,
	}, parameter.PlayerSize, parameter.PlayerSize)

	return Player{
		Hitbox: field.Clamp(box),
		Lives:  parameter.PlayerStartLives,
		grazed: make(map[core.Entity]struct{}),
	}
}

// Center returns the hitbox center
func (p *Player) Center() core.Point {
	return p.Hitbox.Center()
}

// Alive reports whether the run can continue
func (p *Player) Alive() bool {
	return p.Lives > 0
}

// Move shifts the hitbox by d and clamps it to the field
func (p *Player) Move(d core.Point, field core.Rect) {
	p.Hitbox = field.Clamp(p.Hitbox.Translate(d))
}

// TakeHit applies one collision: a shield charge absorbs it, otherwise a life is lost
func (p *Player) TakeHit() HitOutcome {
	if p.Shield > 0 {
		p.Shield--
		return HitAbsorbed
	}
	if p.Lives > 0 {
		p.Lives--
	}
	if p.Lives == 0 {
		return HitFatal
	}
	return HitLifeLost
}

// AddShield grants a shield charge up to the cap; reports whether anything changed
func (p *Player) AddShield() bool {
	if p.Shield >= parameter.PlayerMaxShield {
		return false
	}
	p.Shield++
	return true
}

// HasGrazed reports whether id already earned its near-miss credit
func (p *Player) HasGrazed(id core.Entity) bool {
	_, ok := p.grazed[id]
	return ok
}

// MarkGrazed records the near-miss credit for id; false if already credited
func (p *Player) MarkGrazed(id core.Entity) bool {
	if p.grazed == nil {
		p.grazed = make(map[core.Entity]struct{})
	}
	if _, ok := p.grazed[id]; ok {
		return false
	}
	p.grazed[id] = struct{}{}
	return true
}

// PruneGrazed evicts ids that no longer resolve to a live entity, returns the eviction count
func (p *Player) PruneGrazed(alive func(core.Entity) bool) int {
	n := 0
	for id := range p.grazed {
		if !alive(id) {
			delete(p.grazed, id)
			n++
		}
	}
	return n
}

// GrazeCount returns the size of the graze set
func (p *Player) GrazeCount() int {
	return len(p.grazed)
}
