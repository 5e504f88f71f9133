package audio

import "errors"

// Cue identifies a sound effect
type Cue int

const (
	CueGraze    Cue = iota // Near miss
	CueHit                 // Life lost
	CueShield              // Shield absorbed a hit
	CuePulse               // Area clear
	CuePickup              // Power-up collected
	CueFreeze              // Freeze started
	CueSlow                // Slow motion started
	CueRewind              // Rewind started
	CueRunEnded            // Last life gone
	cueCount
)

var cueNames = [cueCount]string{"graze", "hit", "shield", "pulse", "pickup", "freeze", "slow", "rewind", "run_ended"}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// ParseCue maps a config key to a cue
func ParseCue(name string) (Cue, bool) {
	for i, n := range cueNames {
		if n == name {
			return Cue(i), true
		}
	}
	return 0, false
}

// Sentinel errors
var (
	ErrBadSampleRate = errors.New("audio sample rate must be positive")
	ErrBadVolume     = errors.New("audio volume must be within [0, 1]")
)
