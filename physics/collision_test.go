package physics

import (
	"testing"

	"github.com/lixenwraith/bullet-hell/component"
	"github.com/lixenwraith/bullet-hell/core"
	"github.com/lixenwraith/bullet-hell/parameter"
	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	base := core.Rect{X: 10, Y: 10, W: 10, H: 10}

	tests := []struct {
		name string
		o    core.Rect
		want bool
	}{
		{"identical", base, true},
		{"inside", core.Rect{X: 12, Y: 12, W: 2, H: 2}, true},
		{"partial", core.Rect{X: 15, Y: 15, W: 10, H: 10}, true},
		{"touching right edge", core.Rect{X: 20, Y: 10, W: 5, H: 5}, false},
		{"touching bottom edge", core.Rect{X: 10, Y: 20, W: 5, H: 5}, false},
		{"apart", core.Rect{X: 40, Y: 40, W: 5, H: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(base, tt.o))
			assert.Equal(t, tt.want, Overlaps(tt.o, base))
		})
	}
}

func TestPolygonCollidesThroughBounds(t *testing.T) {
	// Right triangle whose hypotenuse misses the hitbox but whose bounding box overlaps it
	tri := &component.Entity{Shape: component.PolyShape(core.Polygon{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 0, Y: 20}})}
	hitbox := core.Rect{X: 15, Y: 15, W: 10, H: 10}

	assert.True(t, CheckCollision(tri, hitbox))
}

func TestCollisionAndGrazeExclusive(t *testing.T) {
	hitbox := core.Rect{X: 100, Y: 100, W: 16, H: 16}

	// Sweep a bullet across the player's neighborhood; graze and collision never both hold
	for dx := -60.0; dx <= 60; dx += 2 {
		for dy := -60.0; dy <= 60; dy += 2 {
			e := &component.Entity{Shape: component.BoxShape(core.Rect{X: 104 + dx, Y: 104 + dy, W: 8, H: 8})}
			c := CheckCollision(e, hitbox)
			g := CheckGraze(e, hitbox, parameter.GrazeRadius)
			if c && g {
				t.Fatalf("collision and graze both true at offset (%v,%v)", dx, dy)
			}
		}
	}
}

func TestGrazeRadius(t *testing.T) {
	hitbox := core.Rect{X: 100, Y: 100, W: 16, H: 16} // center (108,108)
	near := &component.Entity{Shape: component.BoxShape(core.RectAt(core.Point{X: 108 + 25, Y: 108}, 4, 4))}
	far := &component.Entity{Shape: component.BoxShape(core.RectAt(core.Point{X: 108 + 40, Y: 108}, 4, 4))}

	assert.True(t, CheckGraze(near, hitbox, parameter.GrazeRadius))
	assert.False(t, CheckGraze(far, hitbox, parameter.GrazeRadius))
}
