package audio

import "fmt"

// Config controls cue synthesis and playback
type Config struct {
	Enabled      bool
	MasterVolume float64
	SampleRate   int
	CueVolumes   map[Cue]float64
}

// DefaultConfig returns audio on at half volume
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		CueVolumes: map[Cue]float64{
			CueGraze:    0.3,
			CueHit:      0.9,
			CueShield:   0.7,
			CuePulse:    0.8,
			CuePickup:   0.6,
			CueFreeze:   0.6,
			CueSlow:     0.6,
			CueRewind:   0.6,
			CueRunEnded: 1.0,
		},
	}
}

// Validate rejects values the synthesizer cannot use
func (c *Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrBadSampleRate, c.SampleRate)
	}
	if c.MasterVolume < 0 || c.MasterVolume > 1 {
		return fmt.Errorf("%w: master %.2f", ErrBadVolume, c.MasterVolume)
	}
	for cue, v := range c.CueVolumes {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: %s %.2f", ErrBadVolume, cue, v)
		}
	}
	return nil
}

// volume returns the effective gain of cue
func (c *Config) volume(cue Cue) float64 {
	v, ok := c.CueVolumes[cue]
	if !ok {
		v = 1
	}
	return v * c.MasterVolume
}
