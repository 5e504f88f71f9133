package physics

import (
	"testing"

	"github.com/lixenwraith/bullet-hell/core"
	"github.com/stretchr/testify/assert"
)

func TestReflectSingleAxis(t *testing.T) {
	field := core.Rect{W: 100, H: 100}
	box := core.Rect{X: 95, Y: 50, W: 10, H: 10}
	vel := core.Point{X: 3, Y: 2}

	r := Reflect(&box, &vel, field)

	assert.True(t, r.FlippedX)
	assert.False(t, r.FlippedY)
	assert.Equal(t, core.Point{X: -3, Y: 2}, vel)
	assert.Equal(t, 90.0, box.X)
}

func TestReflectCorner(t *testing.T) {
	field := core.Rect{W: 100, H: 100}
	box := core.Rect{X: -2, Y: -3, W: 10, H: 10}
	vel := core.Point{X: -3, Y: -2}

	r := Reflect(&box, &vel, field)

	assert.True(t, r.FlippedX && r.FlippedY)
	assert.Equal(t, core.Point{X: 3, Y: 2}, vel)
	assert.True(t, field.Contains(box))
}

func TestReflectIgnoresInwardMotion(t *testing.T) {
	field := core.Rect{W: 100, H: 100}
	box := core.Rect{X: -2, Y: 50, W: 10, H: 10}
	vel := core.Point{X: 3, Y: 0}

	r := Reflect(&box, &vel, field)
	assert.False(t, r.Any())
	assert.Equal(t, -2.0, box.X)
}

func TestSteerBlendsTowardTarget(t *testing.T) {
	vel := core.Point{X: 0, Y: 4}
	pos := core.Point{X: 0, Y: 0}
	target := core.Point{X: 100, Y: 0}

	next := Steer(vel, pos, target, 4, 0.25, 1)
	assert.InDelta(t, 1.0, next.X, 1e-9)
	assert.InDelta(t, 3.0, next.Y, 1e-9)

	same := Steer(vel, pos, pos, 4, 0.25, 1)
	assert.Equal(t, vel, same)
}
