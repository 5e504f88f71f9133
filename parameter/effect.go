package parameter

import "time"

// Temporal effects
const (
	// FreezeDuration is how long bullets stand still
	FreezeDuration = 3 * time.Second

	// FreezeTintDuration is the time for the frozen tint to reach its target color
	FreezeTintDuration = 600 * time.Millisecond

	// SlowMotionDuration is how long the slow factor applies
	SlowMotionDuration = 5 * time.Second

	// SlowMotionFactor scales entity motion per tick while slowed
	SlowMotionFactor = 0.35

	// RewindDuration is how long history playback runs
	RewindDuration = 3 * time.Second

	// RewindStride is the number of snapshots the cursor steps back per tick
	RewindStride = 2

	// HistoryCapacity is the number of per-tick snapshots retained (10s at 50ms)
	HistoryCapacity = 200
)

// Power-ups
const (
	// PowerUpSpawnDenominator is the per-tick chance denominator for a power-up drop
	PowerUpSpawnDenominator = 400

	// PowerUpUnlockAfter is the survival time before power-ups drop
	PowerUpUnlockAfter = 10 * time.Second

	// PowerUpSize is the side of the square pickup box
	PowerUpSize = 18.0

	// PowerUpFallSpeed is the pickup fall speed in pixels per tick
	PowerUpFallSpeed = 2.0
)
