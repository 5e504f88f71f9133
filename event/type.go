package event

import "github.com/lixenwraith/bullet-hell/component"

// EventType represents the type of engine event
type EventType int

const (
	// EventNone is the zero value, never emitted
	EventNone EventType = iota

	// === Entity Event ===

	// EventEntityDespawned signals an entity left the simulation
	// Trigger: Engine despawn bookkeeping | Payload: *DespawnPayload
	EventEntityDespawned

	// EventKindUnlocked signals a pattern kind became eligible to spawn
	// Trigger: Unlock scheduler crossing a threshold | Payload: *KindUnlockedPayload
	EventKindUnlocked

	// === Player Event ===

	// EventLifeLost signals a collision cost the player a life
	// Trigger: Collision response without shield | Payload: *LifeLostPayload
	EventLifeLost

	// EventShieldBroken signals a shield charge absorbed a collision
	// Trigger: Collision response with shield | Payload: *CollisionPayload
	EventShieldBroken

	// EventGrazed signals a near-miss credit
	// Trigger: Graze evaluator, once per entity | Payload: *GrazePayload
	EventGrazed

	// EventScored signals the ledger accepted a delta
	// Trigger: Score ledger | Payload: *ScorePayload
	EventScored

	// EventPulseReleased signals an area clear on focus release
	// Trigger: Focus release with enough charge | Payload: *PulsePayload
	EventPulseReleased

	// EventPowerUpCollected signals a pickup was collected
	// Trigger: Player overlap or driver Collect | Payload: *PowerUpPayload
	EventPowerUpCollected

	// === Temporal Event ===

	// EventEffectActivated signals a temporal effect started
	// Trigger: Temporal controller | Payload: *EffectPayload
	EventEffectActivated

	// EventEffectExpired signals a temporal effect ended
	// Trigger: Temporal controller deadline | Payload: *EffectPayload
	EventEffectExpired

	// EventEffectQueued signals a rewind request was held until freeze ends
	// Trigger: Rewind request during freeze | Payload: *EffectPayload
	EventEffectQueued

	// EventEffectRejected signals a request was refused because another effect is active
	// Trigger: Temporal controller | Payload: *EffectPayload
	EventEffectRejected

	// === Run Event ===

	// EventRunStarted signals a fresh run
	// Trigger: Engine construction and Reset | Payload: nil
	EventRunStarted

	// EventRunEnded signals the terminal transition
	// Trigger: Last life lost | Payload: *RunEndedPayload
	EventRunEnded
)

// GameEvent represents a single engine event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    int64
}

// DespawnReason tells why an entity left the simulation
type DespawnReason uint8

const (
	DespawnOffscreen DespawnReason = iota
	DespawnConsumed
	DespawnCollided
	DespawnPulse
)

func (r DespawnReason) String() string {
	switch r {
	case DespawnOffscreen:
		return "offscreen"
	case DespawnConsumed:
		return "consumed"
	case DespawnCollided:
		return "collided"
	case DespawnPulse:
		return "pulse"
	default:
		return "unknown"
	}
}

// EffectKind names a temporal effect
type EffectKind uint8

const (
	EffectNone EffectKind = iota
	EffectFreeze
	EffectSlowMotion
	EffectRewind
)

func (k EffectKind) String() string {
	switch k {
	case EffectFreeze:
		return "freeze"
	case EffectSlowMotion:
		return "slow"
	case EffectRewind:
		return "rewind"
	default:
		return "none"
	}
}

// Payloads

// DespawnPayload contains the kind and reason of a removed entity
type DespawnPayload struct {
	Kind   component.Kind
	Reason DespawnReason
}

// KindUnlockedPayload contains the newly eligible kind
type KindUnlockedPayload struct {
	Kind component.Kind
}

// LifeLostPayload contains the kind that hit the player and the lives left
type LifeLostPayload struct {
	Kind      component.Kind
	Remaining int
}

// CollisionPayload contains the kind that hit the player
type CollisionPayload struct {
	Kind component.Kind
}

// GrazePayload contains the grazing kind
type GrazePayload struct {
	Kind component.Kind
}

// ScorePayload contains an accepted delta and the resulting total
type ScorePayload struct {
	Delta int64
	Total int64
}

// PulsePayload contains the number of entities cleared by a pulse
type PulsePayload struct {
	Cleared int
	Radius  float64
}

// PowerUpPayload contains the collected power-up
type PowerUpPayload struct {
	PowerUp component.PowerUp
}

// EffectPayload contains the effect a temporal event refers to
type EffectPayload struct {
	Effect EffectKind
}

// RunEndedPayload contains why the run ended
type RunEndedPayload struct {
	Reason string
	Score  int64
}
