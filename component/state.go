package component

import "github.com/lixenwraith/bullet-hell/core"

// State is the per-kind payload of an entity
// The set of implementations is closed; behaviors type-switch on it
type State interface {
	state()
}

// Linear moves at a constant velocity
// Used by vertical, horizontal, diagonal, triangle, quad, fast, rectangle, egg and boss
type Linear struct {
	Velocity core.Point
}

// ZigZag falls while its horizontal direction flips every ZigZagFlipTicks
type ZigZag struct {
	Velocity core.Point
	Ticks    float64 // Since last flip
}

// Star falls and spins its vertices about the centroid
type Star struct {
	Velocity core.Point
	Spin     float64 // Radians per tick
}

// Bounce reflects off the playfield edges until its budget runs out
type Bounce struct {
	Velocity  core.Point
	Remaining int
}

// Explode falls until it reaches the mid-screen band, then bursts into diagonal fragments
type Explode struct {
	Velocity  core.Point
	Fragments int
}

// Homing steers toward the player until its life runs out
type Homing struct {
	Velocity core.Point
	Life     float64 // Ticks left
}

// Spiral orbits its spawn point with growing angle and radius
type Spiral struct {
	Origin       core.Point // Spawn point; motion is applied relative to the current shape
	Angle        float64
	Radius       float64
	AngularSpeed float64
	RadialSpeed  float64
}

// Fragment is a constant-velocity ray, shared by radial bursts and every split or explosion
type Fragment struct {
	Velocity core.Point
}

// Wave falls with a sinusoidal horizontal offset from BaseX
type Wave struct {
	Phase     float64
	PhaseStep float64
	Amplitude float64
	BaseX     float64 // Spawn column; the swing is applied relative to the current shape
	SpeedY    float64
}

// Boomerang moves out for a fixed tick budget, then comes back slower
type Boomerang struct {
	Velocity  core.Point
	Elapsed   float64
	Returning bool
}

// Splitter falls until its timer runs out, then breaks into radial fragments
type Splitter struct {
	Velocity  core.Point
	Timer     float64 // Ticks left
	Fragments int
}

// Trap sits still until the player comes near or its life runs out
type Trap struct {
	Life      float64 // Ticks left
	Fragments int
}

func (*Linear) state()    {}
func (*ZigZag) state()    {}
func (*Star) state()      {}
func (*Bounce) state()    {}
func (*Explode) state()   {}
func (*Homing) state()    {}
func (*Spiral) state()    {}
func (*Fragment) state()  {}
func (*Wave) state()      {}
func (*Boomerang) state() {}
func (*Splitter) state()  {}
func (*Trap) state()      {}
