package physics

import (
	"github.com/lixenwraith/bullet-hell/component"
	"github.com/lixenwraith/bullet-hell/core"
	"github.com/lixenwraith/bullet-hell/parameter"
)

// Overlaps reports standard AABB overlap; touching edges do not overlap
func Overlaps(a, b core.Rect) bool {
	return a.Left() < b.Right() && a.Right() > b.Left() &&
		a.Top() < b.Bottom() && a.Bottom() > b.Top()
}

// CheckCollision reports whether the entity's bounding box overlaps the player hitbox
// Polygons collide through the min/max box of their vertices
func CheckCollision(e *component.Entity, hitbox core.Rect) bool {
	return Overlaps(e.Bounds(), hitbox)
}

// CheckGraze reports a near miss: the entity centroid is within grazeRadius+GrazeMargin of the
// player center while the two do not collide
func CheckGraze(e *component.Entity, hitbox core.Rect, grazeRadius float64) bool {
	if CheckCollision(e, hitbox) {
		return false
	}
	return e.Center().Dist(hitbox.Center()) < grazeRadius+parameter.GrazeMargin
}

// WithinRadius reports whether the entity centroid lies within r of c
func WithinRadius(e *component.Entity, c core.Point, r float64) bool {
	return e.Center().Dist(c) <= r
}
