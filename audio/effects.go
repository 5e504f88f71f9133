package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/bullet-hell/core"
	"github.com/lixenwraith/bullet-hell/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	sweep    float64 // Hz added per second
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *core.Rand
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding linearly from one frequency to another
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	o := &oscillator{
		freq:     from,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    core.NewRand(uint64(from*1000) + 1),
	}
	if duration > 0 {
		o.sweep = (to - from) / duration.Seconds()
	}
	return o
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.sweep*float64(o.position)/float64(o.rate)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(0, total-att-rel)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain; math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func shaped(osc beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(osc, d, attack, release, rate)
}

// CreateGrazeSound is a short high tick
func CreateGrazeSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.GrazeCueDuration
	tick := shaped(NewOscillator(1760, d, WaveSine, rate), d, parameter.GrazeCueAttack, parameter.GrazeCueRelease, rate)
	return newVolume(tick, cfg.volume(CueGraze))
}

// CreateHitSound is a falling saw growl mixed with noise
func CreateHitSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.HitCueDuration
	growl := shaped(NewSweep(220, 60, d, WaveSaw, rate), d, parameter.HitCueAttack, parameter.HitCueRelease, rate)
	crunch := shaped(NewOscillator(0, d, WaveNoise, rate), d, parameter.HitCueAttack, parameter.HitCueRelease/2, rate)
	return newVolume(beep.Mix(newVolume(growl, 0.7), newVolume(crunch, 0.3)), cfg.volume(CueHit))
}

// CreateShieldSound is a bright square ping
func CreateShieldSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.ShieldCueDuration
	ping := shaped(NewSweep(660, 990, d, WaveSquare, rate), d, parameter.ShieldCueAttack, parameter.ShieldCueRelease, rate)
	return newVolume(ping, cfg.volume(CueShield))
}

// CreatePulseSound is a rising noise whoosh over a low sine
func CreatePulseSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.PulseCueDuration
	air := shaped(NewOscillator(0, d, WaveNoise, rate), d, parameter.PulseCueAttack, parameter.PulseCueRelease, rate)
	body := shaped(NewSweep(80, 320, d, WaveSine, rate), d, parameter.PulseCueAttack, parameter.PulseCueRelease, rate)
	return newVolume(beep.Mix(newVolume(air, 0.5), newVolume(body, 0.5)), cfg.volume(CuePulse))
}

// CreatePickupSound is a two-note chime
func CreatePickupSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// B5 then E6
	n1 := shaped(NewOscillator(987.77, parameter.PickupCueNote1Duration, WaveSquare, rate),
		parameter.PickupCueNote1Duration, parameter.PickupCueAttack, parameter.PickupCueRelease/2, rate)
	n2 := shaped(NewOscillator(1318.51, parameter.PickupCueNote2Duration, WaveSquare, rate),
		parameter.PickupCueNote2Duration, parameter.PickupCueAttack, parameter.PickupCueRelease, rate)

	return newVolume(beep.Seq(n1, n2), cfg.volume(CuePickup))
}

// createEffectSound sweeps between two pitches; direction tells the effects apart
func createEffectSound(cfg *Config, cue Cue, from, to float64, wave WaveType) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.EffectCueDuration
	s := shaped(NewSweep(from, to, d, wave, rate), d, parameter.EffectCueAttack, parameter.EffectCueRelease, rate)
	return newVolume(s, cfg.volume(cue))
}

// CreateRunEndedSound is a long descending tone
func CreateRunEndedSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.RunEndCueDuration
	fall := shaped(NewSweep(440, 110, d, WaveSine, rate), d, parameter.RunEndCueAttack, parameter.RunEndCueRelease, rate)
	return newVolume(fall, cfg.volume(CueRunEnded))
}

// GetSoundEffect returns the streamer for cue, nil for unknown cues
func GetSoundEffect(cue Cue, cfg *Config) beep.Streamer {
	switch cue {
	case CueGraze:
		return CreateGrazeSound(cfg)
	case CueHit:
		return CreateHitSound(cfg)
	case CueShield:
		return CreateShieldSound(cfg)
	case CuePulse:
		return CreatePulseSound(cfg)
	case CuePickup:
		return CreatePickupSound(cfg)
	case CueFreeze:
		return createEffectSound(cfg, CueFreeze, 1200, 300, WaveSine)
	case CueSlow:
		return createEffectSound(cfg, CueSlow, 400, 200, WaveSaw)
	case CueRewind:
		return createEffectSound(cfg, CueRewind, 300, 1200, WaveSaw)
	case CueRunEnded:
		return CreateRunEndedSound(cfg)
	default:
		return nil
	}
}
