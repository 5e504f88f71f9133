package parameter

// Player
const (
	// PlayerSize is the side of the square player hitbox
	PlayerSize = 16.0

	// PlayerSpeed is the movement budget in pixels per tick
	PlayerSpeed = 6.0

	// PlayerFocusSpeedFactor scales movement while focus is held
	PlayerFocusSpeedFactor = 0.5

	// PlayerStartLives is the number of lives at run start
	PlayerStartLives = 3

	// PlayerMaxShield is the shield charge cap
	PlayerMaxShield = 1
)

// Graze
const (
	// GrazeRadius is the near-miss distance between player center and entity centroid
	GrazeRadius = 30.0

	// GrazeMargin is added to the radius passed to the graze check
	GrazeMargin = 4.0

	// GrazePruneInterval is the number of ticks between graze set sweeps
	GrazePruneInterval = 100
)

// Pulse (area clear on focus release)
const (
	// PulseChargePerTick is the charge gained per tick while focus is held
	PulseChargePerTick = 1.0

	// PulseMaxCharge caps the focus charge
	PulseMaxCharge = 60.0

	// PulseMinCharge is the charge needed for a release to fire
	PulseMinCharge = 20.0

	// PulseBaseRadius is the clear radius at zero charge
	PulseBaseRadius = 60.0

	// PulseRadiusPerCharge grows the clear radius per charge point
	PulseRadiusPerCharge = 3.0
)
