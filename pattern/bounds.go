package pattern

import (
	"github.com/lixenwraith/bullet-hell/core"
	"github.com/lixenwraith/bullet-hell/parameter"
)

// pastBottom reports the box is entirely below the field
func pastBottom(b, field core.Rect) bool {
	return b.Top() > field.Bottom()
}

// outside reports the box no longer touches the field on any side
func outside(b, field core.Rect) bool {
	return b.Right() < field.Left() || b.Left() > field.Right() ||
		b.Bottom() < field.Top() || b.Top() > field.Bottom()
}

// beyondMargin reports the box has left the field grown by BoundsMargin
func beyondMargin(b, field core.Rect) bool {
	return !field.Inset(parameter.BoundsMargin).Contains(b)
}

// topSpawn returns a w×h box on the top edge at a random x, fully on-screen
func topSpawn(rng *core.Rand, field core.Rect, w, h float64) core.Rect {
	return core.Rect{X: rng.Range(field.Left(), field.Right()-w), Y: field.Top(), W: w, H: h}
}
