package component

import "github.com/lixenwraith/bullet-hell/core"

// PowerUp identifies a pickup's effect
type PowerUp uint8

const (
	PowerUpFreeze PowerUp = iota
	PowerUpSlow
	PowerUpRewind
	PowerUpShield

	PowerUpCount
)

func (p PowerUp) String() string {
	switch p {
	case PowerUpFreeze:
		return "freeze"
	case PowerUpSlow:
		return "slow"
	case PowerUpRewind:
		return "rewind"
	case PowerUpShield:
		return "shield"
	default:
		return "unknown"
	}
}

// Pickup is a falling power-up item
type Pickup struct {
	ID   core.Entity
	Kind PowerUp
	Box  core.Rect
}
