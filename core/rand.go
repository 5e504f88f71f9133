package core

import "math"

// Rand is a xorshift64 generator
// Not safe for concurrent use; the simulation owns one shared source and derives per-spawn ones
type Rand struct {
	state uint64
}

// NewRand returns a generator for seed; a zero seed is remapped since xorshift never leaves 0
func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = 0x9E3779B97F4A7C15
	}
	return &Rand{state: seed}
}

// Uint64 returns the next raw value
func (r *Rand) Uint64() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	r.state = x
	return x
}

// Intn returns a value in [0, n); 0 for n <= 0
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Uint64() % uint64(n))
}

// Float64 returns a value in [0, 1)
func (r *Rand) Float64() float64 {
	return float64(r.Uint64()>>11) / (1 << 53)
}

// Range returns a value in [lo, hi)
func (r *Rand) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Sign returns -1 or 1 with equal probability
func (r *Rand) Sign() float64 {
	if r.Uint64()&1 == 0 {
		return -1
	}
	return 1
}

// Angle returns a value in [0, 2π)
func (r *Rand) Angle() float64 {
	return r.Float64() * 2 * math.Pi
}
