// Package config loads run settings from YAML with environment overrides
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/bullet-hell/audio"
	"github.com/lixenwraith/bullet-hell/component"
	"github.com/lixenwraith/bullet-hell/engine"
	"github.com/lixenwraith/bullet-hell/pattern"
)

// Environment variables consulted by Load
const (
	EnvConfig         = "BULLET_HELL_CONFIG"
	EnvSeed           = "BULLET_HELL_SEED"
	EnvDebug          = "BULLET_HELL_DEBUG"
	EnvAudioEnabled   = "BULLET_HELL_AUDIO_ENABLED"
	EnvMetricsAddress = "BULLET_HELL_METRICS_ADDR"
)

var (
	ErrUnknownKind = errors.New("unknown pattern kind")
	ErrUnknownCue  = errors.New("unknown audio cue")
	ErrInvalid     = errors.New("invalid config")
)

// Config is the root of the YAML document
type Config struct {
	// Seed 0 lets the driver pick one from the clock
	Seed            uint64                   `yaml:"seed"`
	Debug           bool                     `yaml:"debug"`
	Lives           int                      `yaml:"lives"`
	PowerUps        bool                     `yaml:"powerups"`
	HistoryCapacity int                      `yaml:"history_capacity"`
	Spawns          map[string]SpawnOverride `yaml:"spawns"`
	Audio           AudioConfig              `yaml:"audio"`
	Metrics         MetricsConfig            `yaml:"metrics"`
}

// SpawnOverride replaces one kind's schedule entry; nil fields keep the default
type SpawnOverride struct {
	Threshold   *time.Duration `yaml:"threshold"`
	Denominator *int           `yaml:"denominator"`
}

type AudioConfig struct {
	Enabled      bool               `yaml:"enabled"`
	MasterVolume float64            `yaml:"master_volume"`
	SampleRate   int                `yaml:"sample_rate"`
	Volumes      map[string]float64 `yaml:"volumes"`
}

type MetricsConfig struct {
	// Addr empty disables the /metrics listener
	Addr string `yaml:"addr"`
}

// Default returns the stock settings
func Default() *Config {
	opts := engine.DefaultOptions()
	ac := audio.DefaultConfig()
	return &Config{
		Lives:           opts.Lives,
		PowerUps:        opts.PowerUps,
		HistoryCapacity: opts.HistoryCapacity,
		Audio: AudioConfig{
			Enabled:      ac.Enabled,
			MasterVolume: ac.MasterVolume,
			SampleRate:   ac.SampleRate,
		},
	}
}

// Load reads path, or the file named by BULLET_HELL_CONFIG when path is empty
// With neither set it returns the defaults; environment overrides apply in every case
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides file values; priority is env > file > default
func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v := os.Getenv(EnvDebug); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDebug, err)
		}
		c.Debug = b
	}
	if v := os.Getenv(EnvAudioEnabled); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAudioEnabled, err)
		}
		c.Audio.Enabled = b
	}
	if v, ok := os.LookupEnv(EnvMetricsAddress); ok {
		c.Metrics.Addr = v
	}
	return nil
}

// Validate checks names and ranges
func (c *Config) Validate() error {
	if c.Lives <= 0 {
		return fmt.Errorf("%w: lives %d", ErrInvalid, c.Lives)
	}
	if c.HistoryCapacity <= 0 {
		return fmt.Errorf("%w: history_capacity %d", ErrInvalid, c.HistoryCapacity)
	}
	for name, o := range c.Spawns {
		if _, ok := component.ParseKind(name); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownKind, name)
		}
		if o.Threshold != nil && *o.Threshold < 0 {
			return fmt.Errorf("%w: %s threshold %v", ErrInvalid, name, *o.Threshold)
		}
	}
	for name := range c.Audio.Volumes {
		if _, ok := audio.ParseCue(name); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownCue, name)
		}
	}
	if c.Audio.Enabled {
		if err := c.AudioConfig().Validate(); err != nil {
			return fmt.Errorf("audio: %w", err)
		}
	}
	return nil
}

// Schedule returns the default ramp with spawn overrides applied
func (c *Config) Schedule() pattern.Schedule {
	s := pattern.DefaultSchedule()
	for name, o := range c.Spawns {
		k, ok := component.ParseKind(name)
		if !ok {
			continue
		}
		if o.Threshold != nil {
			s[k].Threshold = *o.Threshold
		}
		if o.Denominator != nil {
			s[k].Denominator = *o.Denominator
		}
	}
	return s
}

// EngineOptions maps the config onto engine options; the caller supplies the logger
func (c *Config) EngineOptions() engine.Options {
	opts := engine.DefaultOptions()
	opts.Seed = c.Seed
	opts.Lives = c.Lives
	opts.PowerUps = c.PowerUps
	opts.HistoryCapacity = c.HistoryCapacity
	opts.Schedule = c.Schedule()
	return opts
}

// AudioConfig builds the synthesizer settings, layering per-cue volumes over the defaults
func (c *Config) AudioConfig() *audio.Config {
	ac := audio.DefaultConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.MasterVolume
	ac.SampleRate = c.Audio.SampleRate
	for name, v := range c.Audio.Volumes {
		if cue, ok := audio.ParseCue(name); ok {
			ac.CueVolumes[cue] = v
		}
	}
	return ac
}
