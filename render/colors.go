package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bullet-hell/component"
)

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbFrozenTint = tcell.NewRGBColor(40, 70, 120)   // Cold blue overlay at full tint
	RgbPlayer     = tcell.NewRGBColor(255, 255, 255) // White
	RgbPlayerHit  = tcell.NewRGBColor(255, 60, 60)   // Red once the run is over
	RgbFocusRing  = tcell.NewRGBColor(90, 90, 110)   // Dim ring while charging
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)
	RgbStatusBg   = tcell.NewRGBColor(180, 180, 180)
	RgbScoreBg    = tcell.NewRGBColor(255, 255, 255)
	RgbChargeFull = tcell.NewRGBColor(0, 255, 255)
	RgbChargeLow  = tcell.NewRGBColor(0, 90, 90)
	RgbGameOverBg = tcell.NewRGBColor(200, 50, 50)

	RgbFreezeBg = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbSlowBg   = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbRewindBg = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbShieldBg = tcell.NewRGBColor(255, 192, 203) // Pink
)

// kindStyle is the glyph and color of one pattern kind
type kindStyle struct {
	glyph rune
	color tcell.Color
}

var kindStyles = [component.KindCount]kindStyle{
	component.KindVertical:    {'|', tcell.NewRGBColor(200, 200, 200)},
	component.KindHorizontal:  {'-', tcell.NewRGBColor(200, 200, 200)},
	component.KindDiagonal:    {'\\', tcell.NewRGBColor(180, 180, 255)},
	component.KindTriangle:    {'^', tcell.NewRGBColor(100, 150, 255)},
	component.KindQuadCluster: {'#', tcell.NewRGBColor(60, 100, 200)},
	component.KindZigZag:      {'z', tcell.NewRGBColor(0, 200, 0)},
	component.KindFast:        {'!', tcell.NewRGBColor(255, 255, 0)},
	component.KindStar:        {'*', tcell.NewRGBColor(255, 215, 0)},
	component.KindRectangle:   {'=', tcell.NewRGBColor(140, 190, 255)},
	component.KindEgg:         {'o', tcell.NewRGBColor(255, 240, 200)},
	component.KindBoss:        {'█', tcell.NewRGBColor(180, 50, 50)},
	component.KindBouncing:    {'b', tcell.NewRGBColor(50, 255, 50)},
	component.KindExploding:   {'x', tcell.NewRGBColor(255, 80, 80)},
	component.KindHoming:      {'h', tcell.NewRGBColor(255, 120, 120)},
	component.KindSpiral:      {'@', tcell.NewRGBColor(200, 100, 255)},
	component.KindRadialBurst: {'+', tcell.NewRGBColor(255, 165, 0)},
	component.KindWave:        {'~', tcell.NewRGBColor(0, 200, 200)},
	component.KindBoomerang:   {'<', tcell.NewRGBColor(255, 192, 203)},
	component.KindSplitter:    {'%', tcell.NewRGBColor(144, 238, 144)},
	component.KindStaticTrap:  {'x', tcell.NewRGBColor(101, 67, 33)},
}

// fragmentStyle covers kinds outside the table
var fragmentStyle = kindStyle{'.', tcell.NewRGBColor(255, 255, 200)}

func styleForKind(k component.Kind) kindStyle {
	if k >= component.KindCount {
		return fragmentStyle
	}
	return kindStyles[k]
}

var powerUpGlyphs = [component.PowerUpCount]rune{
	component.PowerUpFreeze: 'F',
	component.PowerUpSlow:   'S',
	component.PowerUpRewind: 'R',
	component.PowerUpShield: '+',
}

var powerUpColors = [component.PowerUpCount]tcell.Color{
	component.PowerUpFreeze: RgbFreezeBg,
	component.PowerUpSlow:   RgbSlowBg,
	component.PowerUpRewind: RgbRewindBg,
	component.PowerUpShield: RgbShieldBg,
}

// Blend mixes a toward b by t in [0, 1]
func Blend(a, b tcell.Color, t float64) tcell.Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	ar, ag, ab := a.RGB()
	br, bg, bb := b.RGB()
	mix := func(x, y int32) int32 {
		return x + int32(float64(y-x)*t)
	}
	return tcell.NewRGBColor(mix(ar, br), mix(ag, bg), mix(ab, bb))
}
