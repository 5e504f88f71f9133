package pattern

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/bullet-hell/component"
)

func TestEvaluateRespectsThresholds(t *testing.T) {
	s := NewScheduler(DefaultSchedule(), 1)
	seen := false
	for i := 0; i < 2000; i++ {
		for _, k := range s.Evaluate(0) {
			require.Equal(t, component.KindVertical, k)
			seen = true
		}
	}
	assert.True(t, seen, "vertical never spawned in 2000 draws at 1/12")
}

func TestEvaluateDenominatorOneAlwaysSelects(t *testing.T) {
	var sched Schedule
	for k := range sched {
		sched[k] = Entry{Denominator: 1}
	}
	s := NewScheduler(sched, 9)
	assert.Equal(t, component.AllKinds(), s.Evaluate(0))
}

func TestEvaluateSkipsDisabled(t *testing.T) {
	sched := DefaultSchedule()
	sched[component.KindVertical].Denominator = 0
	s := NewScheduler(sched, 3)
	for i := 0; i < 500; i++ {
		assert.Empty(t, s.Evaluate(0))
	}
	assert.False(t, sched.Enabled(component.KindVertical))
	assert.True(t, sched.Enabled(component.KindBoss))
}

func TestSchedulerReproducible(t *testing.T) {
	a := NewScheduler(DefaultSchedule(), 77)
	b := NewScheduler(DefaultSchedule(), 77)
	survival := 200 * time.Second
	for i := 0; i < 300; i++ {
		require.Equal(t, a.Evaluate(survival), b.Evaluate(survival))
		require.Equal(t, a.SpawnSeed(), b.SpawnSeed())
	}

	a.Reset(77)
	c := NewScheduler(DefaultSchedule(), 77)
	assert.Equal(t, c.Evaluate(survival), a.Evaluate(survival))
}

func TestNextUnlock(t *testing.T) {
	s := NewScheduler(DefaultSchedule(), 1)

	tests := []struct {
		name     string
		survival time.Duration
		kind     component.Kind
		until    time.Duration
		ok       bool
	}{
		{"start", 0, component.KindHorizontal, 5 * time.Second, true},
		{"mid gap", 52 * time.Second, component.KindExploding, 8 * time.Second, true},
		{"exact threshold counts as unlocked", 10 * time.Second, component.KindTriangle, 5 * time.Second, true},
		{"before boss", 140 * time.Second, component.KindBoss, 10 * time.Second, true},
		{"all unlocked", 150 * time.Second, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, until, ok := s.NextUnlock(tt.survival)
			again, untilAgain, okAgain := s.NextUnlock(tt.survival)

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.kind, kind)
				assert.Equal(t, tt.until, until)
			}
			assert.Equal(t, kind, again)
			assert.Equal(t, until, untilAgain)
			assert.Equal(t, ok, okAgain)
		})
	}
}

func TestNextUnlockDoesNotDraw(t *testing.T) {
	a := NewScheduler(DefaultSchedule(), 5)
	b := NewScheduler(DefaultSchedule(), 5)
	for i := 0; i < 10; i++ {
		a.NextUnlock(time.Duration(i) * time.Second)
	}
	assert.Equal(t, b.SpawnSeed(), a.SpawnSeed())
}

func TestUnlockedReportsOnce(t *testing.T) {
	s := NewScheduler(DefaultSchedule(), 1)

	assert.Equal(t, []component.Kind{component.KindVertical}, s.Unlocked(0))
	assert.Empty(t, s.Unlocked(time.Second))
	assert.Equal(t, []component.Kind{component.KindHorizontal, component.KindDiagonal}, s.Unlocked(10*time.Second))
	assert.Empty(t, s.Unlocked(10*time.Second))

	s.Reset(1)
	assert.Len(t, s.Unlocked(10*time.Second), 3)
}

func TestChance(t *testing.T) {
	s := NewScheduler(DefaultSchedule(), 1)
	assert.False(t, s.Chance(0))
	assert.True(t, s.Chance(1))
}
