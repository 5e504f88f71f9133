package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/bullet-hell/event"
	"github.com/lixenwraith/bullet-hell/parameter"
)

// SoundManager plays cues for engine events
// Handlers run on the tick loop; the speaker pulls from the mixer on its own goroutine
type SoundManager struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	initialized bool

	lastGraze    time.Time
	now          func() time.Time
	closeSpeaker func()
}

// NewSoundManager creates a manager; nothing plays until Initialize succeeds
func NewSoundManager(cfg *Config) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &SoundManager{
		cfg:          cfg,
		mixer:        &beep.Mixer{},
		now:          time.Now,
		closeSpeaker: speaker.Close,
	}
}

// Initialize opens the speaker; a disabled config is a silent no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}
	if err := sm.cfg.Validate(); err != nil {
		return err
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup clears the mixer and closes the speaker; Initialize may open it again
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.closeSpeaker()
	sm.initialized = false
}

// Initialized reports whether cues reach the speaker
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play mixes cue in; ignored until initialized
func (sm *SoundManager) Play(cue Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := GetSoundEffect(cue, sm.cfg)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

func (sm *SoundManager) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGrazed,
		event.EventLifeLost,
		event.EventShieldBroken,
		event.EventPulseReleased,
		event.EventPowerUpCollected,
		event.EventEffectActivated,
		event.EventRunEnded,
	}
}

func (sm *SoundManager) HandleEvent(ev event.GameEvent) {
	cue, ok := CueFor(ev)
	if !ok {
		return
	}
	if cue == CueGraze && !sm.grazeReady() {
		return
	}
	sm.Play(cue)
}

// grazeReady throttles graze ticks so a dense stream does not saturate the mixer
func (sm *SoundManager) grazeReady() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	now := sm.now()
	if now.Sub(sm.lastGraze) < parameter.GrazeCueCooldown {
		return false
	}
	sm.lastGraze = now
	return true
}

// CueFor maps an engine event to its cue
func CueFor(ev event.GameEvent) (Cue, bool) {
	switch ev.Type {
	case event.EventGrazed:
		return CueGraze, true
	case event.EventLifeLost:
		// The last life plays the run-end cue instead
		if p, ok := ev.Payload.(*event.LifeLostPayload); ok && p.Remaining == 0 {
			return 0, false
		}
		return CueHit, true
	case event.EventShieldBroken:
		return CueShield, true
	case event.EventPulseReleased:
		return CuePulse, true
	case event.EventPowerUpCollected:
		return CuePickup, true
	case event.EventEffectActivated:
		p, ok := ev.Payload.(*event.EffectPayload)
		if !ok {
			return 0, false
		}
		switch p.Effect {
		case event.EffectFreeze:
			return CueFreeze, true
		case event.EffectSlowMotion:
			return CueSlow, true
		case event.EffectRewind:
			return CueRewind, true
		}
	case event.EventRunEnded:
		return CueRunEnded, true
	}
	return 0, false
}
