package parameter

import "time"

// Tick timing
const (
	// TickInterval is the nominal simulation period; one tick of motion constants equals this much time
	TickInterval = 50 * time.Millisecond

	// FrameInterval is the driver's render period
	FrameInterval = 16 * time.Millisecond
)

// Playfield
const (
	// PlayfieldWidth is the simulated playfield width in pixels
	PlayfieldWidth = 800.0

	// PlayfieldHeight is the simulated playfield height in pixels
	PlayfieldHeight = 600.0

	// BoundsMargin is the slack outside the playfield an entity may occupy before it must be removed
	BoundsMargin = 80.0
)

// Event queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)
