package physics

import "github.com/lixenwraith/bullet-hell/core"

// Steer blends velocity toward a vector of the given speed pointing from pos to target
// rate is the per-tick blend factor; step scales it so slowed ticks turn proportionally less
// Returns the velocity unchanged when pos is on the target
func Steer(vel, pos, target core.Point, speed, rate, step float64) core.Point {
	dir := target.Sub(pos)
	if dir.Len() < 0.1 {
		return vel
	}
	desired := dir.Normalize().Scale(speed)
	t := rate * step
	if t > 1 {
		t = 1
	}
	return vel.Add(desired.Sub(vel).Scale(t))
}

// Reflection describes what a boundary check did to a box and its velocity
type Reflection struct {
	FlippedX bool
	FlippedY bool
}

// Any reports whether at least one axis reflected
func (r Reflection) Any() bool {
	return r.FlippedX || r.FlippedY
}

// CrossedBounds reports which axes of box lie partly outside field while moving further out
func CrossedBounds(box, field core.Rect, vel core.Point) Reflection {
	return Reflection{
		FlippedX: (box.Left() < field.Left() && vel.X < 0) || (box.Right() > field.Right() && vel.X > 0),
		FlippedY: (box.Top() < field.Top() && vel.Y < 0) || (box.Bottom() > field.Bottom() && vel.Y > 0),
	}
}

// Reflect flips each crossed velocity axis exactly once and clamps box back inside field
func Reflect(box *core.Rect, vel *core.Point, field core.Rect) Reflection {
	r := CrossedBounds(*box, field, *vel)
	if r.FlippedX {
		vel.X = -vel.X
	}
	if r.FlippedY {
		vel.Y = -vel.Y
	}
	if r.Any() {
		*box = field.Clamp(*box)
	}
	return r
}
