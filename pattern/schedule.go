package pattern

import (
	"time"

	"github.com/lixenwraith/bullet-hell/component"
	"github.com/lixenwraith/bullet-hell/core"
)

// Entry gates one kind: eligible once survival reaches Threshold, then spawns with chance 1/Denominator per tick
// A Denominator of 0 or less disables the kind
type Entry struct {
	Threshold   time.Duration
	Denominator int
}

// Schedule maps every kind to its entry; static for a run
type Schedule [component.KindCount]Entry

// DefaultSchedule returns the stock difficulty ramp
func DefaultSchedule() Schedule {
	s := Schedule{}
	set := func(k component.Kind, sec, den int) {
		s[k] = Entry{Threshold: time.Duration(sec) * time.Second, Denominator: den}
	}
	set(component.KindVertical, 0, 12)
	set(component.KindHorizontal, 5, 40)
	set(component.KindDiagonal, 10, 35)
	set(component.KindTriangle, 15, 45)
	set(component.KindQuadCluster, 20, 70)
	set(component.KindZigZag, 25, 50)
	set(component.KindFast, 30, 45)
	set(component.KindStar, 35, 60)
	set(component.KindRectangle, 40, 55)
	set(component.KindEgg, 45, 60)
	set(component.KindBouncing, 50, 80)
	set(component.KindExploding, 60, 90)
	set(component.KindHoming, 70, 100)
	set(component.KindSpiral, 80, 90)
	set(component.KindRadialBurst, 90, 120)
	set(component.KindWave, 100, 70)
	set(component.KindBoomerang, 110, 80)
	set(component.KindSplitter, 120, 100)
	set(component.KindStaticTrap, 130, 150)
	set(component.KindBoss, 150, 300)
	return s
}

// Enabled reports whether kind can ever spawn under s
func (s *Schedule) Enabled(kind component.Kind) bool {
	return kind < component.KindCount && s[kind].Denominator > 0
}

// Scheduler decides which kinds spawn each tick
// One shared source drives every draw so a fixed seed reproduces a run
type Scheduler struct {
	schedule  Schedule
	rng       *core.Rand
	announced [component.KindCount]bool
}

// NewScheduler creates a scheduler over schedule seeded with seed
func NewScheduler(schedule Schedule, seed uint64) *Scheduler {
	return &Scheduler{
		schedule: schedule,
		rng:      core.NewRand(seed),
	}
}

// Reset reseeds the shared source and forgets announced unlocks
func (s *Scheduler) Reset(seed uint64) {
	s.rng = core.NewRand(seed)
	s.announced = [component.KindCount]bool{}
}

// Schedule returns a copy of the active table
func (s *Scheduler) Schedule() Schedule {
	return s.schedule
}

// Evaluate returns the kinds selected to spawn this tick, in kind order
// Each eligible kind draws exactly once; a draw of 1 out of [1, den] selects it
func (s *Scheduler) Evaluate(survival time.Duration) []component.Kind {
	var out []component.Kind
	for k := component.Kind(0); k < component.KindCount; k++ {
		e := s.schedule[k]
		if e.Denominator <= 0 || survival < e.Threshold {
			continue
		}
		if s.rng.Intn(e.Denominator)+1 == 1 {
			out = append(out, k)
		}
	}
	return out
}

// Chance draws once from the shared source and reports a 1-in-den hit
func (s *Scheduler) Chance(den int) bool {
	if den <= 0 {
		return false
	}
	return s.rng.Intn(den) == 0
}

// SpawnSeed draws a seed for one spawn's private generator
func (s *Scheduler) SpawnSeed() uint64 {
	return s.rng.Uint64()
}

// NextUnlock returns the soonest kind still locked at survival and the time remaining until it unlocks
// Read-only; ties go to the lower kind
func (s *Scheduler) NextUnlock(survival time.Duration) (component.Kind, time.Duration, bool) {
	var (
		best  component.Kind
		until time.Duration
		found bool
	)
	for k := component.Kind(0); k < component.KindCount; k++ {
		e := s.schedule[k]
		if e.Denominator <= 0 || survival >= e.Threshold {
			continue
		}
		if !found || e.Threshold-survival < until {
			best, until, found = k, e.Threshold-survival, true
		}
	}
	return best, until, found
}

// Unlocked returns kinds that became eligible since the previous call
// Each kind is reported once per run
func (s *Scheduler) Unlocked(survival time.Duration) []component.Kind {
	var out []component.Kind
	for k := component.Kind(0); k < component.KindCount; k++ {
		e := s.schedule[k]
		if s.announced[k] || e.Denominator <= 0 || survival < e.Threshold {
			continue
		}
		s.announced[k] = true
		out = append(out, k)
	}
	return out
}
