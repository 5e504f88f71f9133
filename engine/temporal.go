package engine

import (
	"time"

	"github.com/lixenwraith/bullet-hell/event"
	"github.com/lixenwraith/bullet-hell/parameter"
)

// TintMode is the frozen overlay phase
type TintMode uint8

const (
	TintIn TintMode = iota
	TintHold
)

// EffectState is the active temporal effect; exactly one holds at a time
type EffectState interface {
	Effect() event.EffectKind
}

// Normal is the absence of any effect
type Normal struct{}

// Frozen holds every bullet in place until End
type Frozen struct {
	Start time.Duration
	End   time.Duration
	Mode  TintMode
}

// SlowMotion scales bullet motion by Factor until End
type SlowMotion struct {
	End    time.Duration
	Factor float64
}

// Rewinding plays history backward until End
type Rewinding struct {
	End        time.Duration
	Cursor     int // History index last applied; -1 when history was empty
	StartCount int // Live entities when the rewind began
}

func (Normal) Effect() event.EffectKind      { return event.EffectNone }
func (*Frozen) Effect() event.EffectKind     { return event.EffectFreeze }
func (*SlowMotion) Effect() event.EffectKind { return event.EffectSlowMotion }
func (*Rewinding) Effect() event.EffectKind  { return event.EffectRewind }

// Outcome is the answer to an effect request
type Outcome uint8

const (
	Activated Outcome = iota
	Queued
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Activated:
		return "activated"
	case Queued:
		return "queued"
	default:
		return "rejected"
	}
}

// Transition reports what a deadline check changed
type Transition struct {
	Expired   event.EffectKind // EffectNone when nothing ended
	Activated event.EffectKind // Queued effect started in the same tick
	Bonus     int64            // Rewind payout
}

// Temporal is the single dispatch point for freeze, slow motion and rewind
// All deadlines are on the simulated clock
type Temporal struct {
	state        EffectState
	rewindQueued bool

	history *History
	live    func() int
}

// NewTemporal creates a controller reading rewind data from history and live entity counts from live
func NewTemporal(history *History, live func() int) *Temporal {
	return &Temporal{
		state:   Normal{},
		history: history,
		live:    live,
	}
}

// Request asks for effect at simulated time now
// Rewind during a freeze is held in a single slot and starts when the freeze ends
func (t *Temporal) Request(effect event.EffectKind, now time.Duration) Outcome {
	switch t.state.(type) {
	case Normal:
		switch effect {
		case event.EffectFreeze:
			t.state = &Frozen{Start: now, End: now + parameter.FreezeDuration, Mode: TintIn}
		case event.EffectSlowMotion:
			t.state = &SlowMotion{End: now + parameter.SlowMotionDuration, Factor: parameter.SlowMotionFactor}
		case event.EffectRewind:
			t.startRewind(now)
		default:
			return Rejected
		}
		return Activated

	case *Frozen:
		if effect == event.EffectRewind && !t.rewindQueued {
			t.rewindQueued = true
			return Queued
		}
		return Rejected

	default:
		return Rejected
	}
}

func (t *Temporal) startRewind(now time.Duration) {
	t.state = &Rewinding{
		End:        now + parameter.RewindDuration,
		Cursor:     t.history.Len() - 1,
		StartCount: t.live(),
	}
}

// Expire ends the active effect once its deadline has passed
func (t *Temporal) Expire(now time.Duration) Transition {
	var tr Transition

	switch st := t.state.(type) {
	case *Frozen:
		if now < st.End {
			return tr
		}
		tr.Expired = event.EffectFreeze
		t.state = Normal{}
		if t.rewindQueued {
			t.rewindQueued = false
			t.startRewind(now)
			tr.Activated = event.EffectRewind
		}

	case *SlowMotion:
		if now < st.End {
			return tr
		}
		tr.Expired = event.EffectSlowMotion
		t.state = Normal{}

	case *Rewinding:
		if now < st.End {
			return tr
		}
		tr.Expired = event.EffectRewind
		tr.Bonus = int64(st.StartCount) * parameter.ScoreRewindPerBullet
		// Later snapshots describe a timeline that no longer happened
		if st.Cursor >= 0 {
			t.history.Truncate(st.Cursor + 1)
		}
		t.state = Normal{}
	}

	return tr
}

// RewindStep moves the cursor back one stride and returns the snapshot to apply
// The cursor never goes below zero; false when not rewinding or history is empty
func (t *Temporal) RewindStep() (Snapshot, bool) {
	st, ok := t.state.(*Rewinding)
	if !ok || st.Cursor < 0 {
		return Snapshot{}, false
	}
	st.Cursor = max(0, st.Cursor-parameter.RewindStride)
	return t.history.At(st.Cursor)
}

// UpdateTint promotes the frozen overlay to Hold once fully faded in
func (t *Temporal) UpdateTint(now time.Duration) {
	if st, ok := t.state.(*Frozen); ok && st.Mode == TintIn && t.TintProgress(now) >= 1 {
		st.Mode = TintHold
	}
}

// TintProgress returns the frozen overlay fade in [0, 1]; 0 outside a freeze
func (t *Temporal) TintProgress(now time.Duration) float64 {
	st, ok := t.state.(*Frozen)
	if !ok {
		return 0
	}
	if st.Mode == TintHold {
		return 1
	}
	p := float64(now-st.Start) / float64(parameter.FreezeTintDuration)
	return min(1, max(0, p))
}

// Scale returns the motion multiplier for bullets
func (t *Temporal) Scale() float64 {
	switch st := t.state.(type) {
	case Normal:
		return 1
	case *SlowMotion:
		return st.Factor
	default:
		return 0
	}
}

// Effect returns the active effect kind
func (t *Temporal) Effect() event.EffectKind {
	return t.state.Effect()
}

// State returns the active state
func (t *Temporal) State() EffectState {
	return t.state
}

// Remaining returns the time left on the active effect
func (t *Temporal) Remaining(now time.Duration) time.Duration {
	var end time.Duration
	switch st := t.state.(type) {
	case *Frozen:
		end = st.End
	case *SlowMotion:
		end = st.End
	case *Rewinding:
		end = st.End
	default:
		return 0
	}
	return max(0, end-now)
}

// RewindQueued reports whether a rewind waits on the current freeze
func (t *Temporal) RewindQueued() bool {
	return t.rewindQueued
}

func (t *Temporal) Reset() {
	t.state = Normal{}
	t.rewindQueued = false
}
