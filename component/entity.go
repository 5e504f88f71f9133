package component

import "github.com/lixenwraith/bullet-hell/core"

// Entity is a single projectile instance
type Entity struct {
	ID    core.Entity
	Kind  Kind
	Shape Shape
	State State
}

// Bounds returns the collision box of the entity
func (e *Entity) Bounds() core.Rect {
	return e.Shape.Bounds()
}

// Center returns the entity centroid
func (e *Entity) Center() core.Point {
	return e.Shape.Center()
}
