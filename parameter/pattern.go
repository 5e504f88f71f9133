package parameter

// Straight-line kinds (pixels per tick)
const (
	VerticalSpeed   = 7.0
	HorizontalSpeed = 6.0
	DiagonalSpeedX  = 4.0
	DiagonalSpeedY  = 5.0
	TriangleSpeedX  = 3.0
	TriangleSpeedY  = 4.0
	QuadSpeed       = 5.0
	FastSpeed       = 14.0
	RectangleSpeed  = 5.0
	EggSpeed        = 4.0
	BossSpeed       = 2.0
	StarSpeed       = 4.0
)

// Zig-zag
const (
	ZigZagSpeedX = 5.0
	ZigZagSpeedY = 4.0

	// ZigZagFlipTicks is the number of ticks between horizontal direction flips
	ZigZagFlipTicks = 10
)

// Star
const (
	// StarSpin is the rotation applied to star vertices per tick, in radians
	StarSpin = 0.15

	StarOuterRadius = 11.0
	StarInnerRadius = 5.0
	StarPoints      = 5
)

// Triangle
const (
	TriangleRadius = 11.0
)

// Bouncing
const (
	BounceSpeed = 6.0

	// BounceBudget is the number of reflections before the bullet is spent
	BounceBudget = 3
)

// Exploding
const (
	ExplodeSpeed = 5.0

	// ExplodeBandTolerance is the half-height of the mid-screen trigger band
	ExplodeBandTolerance = 20.0

	// ExplodeFragmentSpeed is the speed of each diagonal fragment
	ExplodeFragmentSpeed = 5.0
)

// Homing
const (
	HomingSpeed = 4.5

	// HomingTurnRate is the linear blend factor from current toward desired velocity per tick
	HomingTurnRate = 0.08

	// HomingLife is the tick budget after which a homing bullet expires
	HomingLife = 120.0
)

// Spiral
const (
	SpiralAngularSpeed = 0.12
	SpiralRadialSpeed  = 2.5
)

// Radial burst
const (
	RadialCount  = 8
	RadialSpeed  = 4.0
	RadialJitter = 0.1
)

// Wave
const (
	WaveSpeed     = 4.0
	WaveAmplitude = 40.0
	WavePhaseStep = 0.15
)

// Boomerang
const (
	BoomerangSpeed = 6.0

	// BoomerangOutboundTicks is the downward leg length
	BoomerangOutboundTicks = 40.0

	// BoomerangReturnFactor scales speed on the return leg
	BoomerangReturnFactor = 0.6
)

// Splitter
const (
	SplitterSpeed = 4.0

	// SplitterTimer is the tick budget before the splitter breaks apart
	SplitterTimer = 30.0

	SplitterFragments     = 6
	SplitterFragmentSpeed = 4.0
	SplitterFragmentSize  = 6.0
)

// Static trap
const (
	// TrapLife is the tick budget before an untriggered trap disarms
	TrapLife = 100.0

	// TrapTriggerRadius is the player distance that sets the trap off
	TrapTriggerRadius = 90.0

	TrapFragments     = 8
	TrapFragmentSpeed = 4.5

	// TrapPlayerClearance keeps a new trap at least this far from the player
	TrapPlayerClearance = 180.0
)
