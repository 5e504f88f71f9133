package parameter

// Score deltas
const (
	// ScoreGraze is awarded once per entity for a near miss
	ScoreGraze = 5

	// ScoreRewindPerBullet multiplies the bullet count recorded when a rewind began
	ScoreRewindPerBullet = 2

	// ScorePulsePerBullet is awarded for each entity cleared by a pulse
	ScorePulsePerBullet = 1
)
