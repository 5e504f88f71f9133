package parameter

import "time"

// Audio cue shapes
const (
	GrazeCueDuration = 40 * time.Millisecond
	GrazeCueAttack   = 2 * time.Millisecond
	GrazeCueRelease  = 30 * time.Millisecond

	HitCueDuration = 220 * time.Millisecond
	HitCueAttack   = 5 * time.Millisecond
	HitCueRelease  = 150 * time.Millisecond

	ShieldCueDuration = 160 * time.Millisecond
	ShieldCueAttack   = 2 * time.Millisecond
	ShieldCueRelease  = 120 * time.Millisecond

	PulseCueDuration = 300 * time.Millisecond
	PulseCueAttack   = 10 * time.Millisecond
	PulseCueRelease  = 250 * time.Millisecond

	PickupCueNote1Duration = 70 * time.Millisecond
	PickupCueNote2Duration = 140 * time.Millisecond
	PickupCueAttack        = 3 * time.Millisecond
	PickupCueRelease       = 60 * time.Millisecond

	EffectCueDuration = 400 * time.Millisecond
	EffectCueAttack   = 20 * time.Millisecond
	EffectCueRelease  = 300 * time.Millisecond

	RunEndCueDuration = 900 * time.Millisecond
	RunEndCueAttack   = 10 * time.Millisecond
	RunEndCueRelease  = 700 * time.Millisecond

	// GrazeCueCooldown limits how often graze ticks can stack up
	GrazeCueCooldown = 60 * time.Millisecond
)
