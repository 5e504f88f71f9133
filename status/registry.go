package status

import (
	"sync/atomic"
	"time"
)

// Registry keys written by the tracker
const (
	KeyScore      = "score"
	KeyLives      = "lives"
	KeyGrazes     = "grazes"
	KeyDespawned  = "despawned"
	KeyRuns       = "runs"
	KeyLastEffect = "last_effect"
	KeyRunOver    = "run_over"
	KeySurvival   = "survival_s"
	KeyLive       = "live"
)

// Registry holds live run figures readable from any goroutine
// The tracker writes from the tick loop; the HUD, exit log and metrics server read
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Figures is a point-in-time copy of the run figures
type Figures struct {
	Score      int64
	Lives      int64
	Grazes     int64
	Despawned  int64
	Runs       int64
	Live       int64
	Survival   time.Duration
	LastEffect string
	RunOver    bool
}

// Figures reads every run figure; keys never written read as zero
// Each value is loaded independently, so a read racing a tick may mix adjacent ticks
func (r *Registry) Figures() Figures {
	return Figures{
		Score:      r.Ints.Get(KeyScore).Load(),
		Lives:      r.Ints.Get(KeyLives).Load(),
		Grazes:     r.Ints.Get(KeyGrazes).Load(),
		Despawned:  r.Ints.Get(KeyDespawned).Load(),
		Runs:       r.Ints.Get(KeyRuns).Load(),
		Live:       r.Ints.Get(KeyLive).Load(),
		Survival:   time.Duration(r.Floats.Get(KeySurvival).Get() * float64(time.Second)),
		LastEffect: r.Strings.Get(KeyLastEffect).Load(),
		RunOver:    r.Bools.Get(KeyRunOver).Load(),
	}
}
