package audio

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/bullet-hell/event"
)

func TestSoundManagerDisabledIsSilent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	require.NoError(t, sm.Initialize())
	assert.False(t, sm.Initialized())

	// Must not panic without a speaker
	sm.Play(CueHit)
	sm.HandleEvent(event.GameEvent{Type: event.EventGrazed})
	sm.Cleanup()
}

func TestCleanupClosesSpeakerOnce(t *testing.T) {
	sm := NewSoundManager(DefaultConfig())
	closed := 0
	sm.closeSpeaker = func() { closed++ }

	sm.Cleanup()
	assert.Zero(t, closed, "never opened")

	sm.initialized = true
	sm.Cleanup()
	assert.Equal(t, 1, closed)
	assert.False(t, sm.Initialized())

	sm.Cleanup()
	assert.Equal(t, 1, closed)
}

func TestSoundManagerRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SampleRate = 0
	err := NewSoundManager(cfg).Initialize()
	assert.True(t, errors.Is(err, ErrBadSampleRate))

	cfg = DefaultConfig()
	cfg.CueVolumes[CuePulse] = 2
	assert.ErrorIs(t, cfg.Validate(), ErrBadVolume)
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		name string
		ev   event.GameEvent
		cue  Cue
		ok   bool
	}{
		{"graze", event.GameEvent{Type: event.EventGrazed}, CueGraze, true},
		{"hit", event.GameEvent{Type: event.EventLifeLost, Payload: &event.LifeLostPayload{Remaining: 2}}, CueHit, true},
		{"last life defers to run end", event.GameEvent{Type: event.EventLifeLost, Payload: &event.LifeLostPayload{Remaining: 0}}, 0, false},
		{"shield", event.GameEvent{Type: event.EventShieldBroken}, CueShield, true},
		{"pulse", event.GameEvent{Type: event.EventPulseReleased}, CuePulse, true},
		{"pickup", event.GameEvent{Type: event.EventPowerUpCollected}, CuePickup, true},
		{"freeze", event.GameEvent{Type: event.EventEffectActivated, Payload: &event.EffectPayload{Effect: event.EffectFreeze}}, CueFreeze, true},
		{"slow", event.GameEvent{Type: event.EventEffectActivated, Payload: &event.EffectPayload{Effect: event.EffectSlowMotion}}, CueSlow, true},
		{"rewind", event.GameEvent{Type: event.EventEffectActivated, Payload: &event.EffectPayload{Effect: event.EffectRewind}}, CueRewind, true},
		{"run ended", event.GameEvent{Type: event.EventRunEnded}, CueRunEnded, true},
		{"scored is silent", event.GameEvent{Type: event.EventScored}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cue, ok := CueFor(tt.ev)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.cue, cue)
			}
		})
	}
}

func TestGrazeThrottle(t *testing.T) {
	sm := NewSoundManager(DefaultConfig())
	now := time.Unix(100, 0)
	sm.now = func() time.Time { return now }

	assert.True(t, sm.grazeReady())
	assert.False(t, sm.grazeReady())
	now = now.Add(time.Second)
	assert.True(t, sm.grazeReady())
}

func TestParseCue(t *testing.T) {
	for c := Cue(0); c < cueCount; c++ {
		got, ok := ParseCue(c.String())
		assert.True(t, ok)
		assert.Equal(t, c, got)
	}
	_, ok := ParseCue("bogus")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Cue(-1).String())
}
