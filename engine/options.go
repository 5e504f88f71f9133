package engine

import (
	"io"
	"log"

	"github.com/lixenwraith/bullet-hell/core"
	"github.com/lixenwraith/bullet-hell/parameter"
	"github.com/lixenwraith/bullet-hell/pattern"
)

// Options configures a run
type Options struct {
	Seed            uint64
	Field           core.Rect
	Schedule        pattern.Schedule
	HistoryCapacity int
	Lives           int
	PowerUps        bool // Random pickup drops

	// Logger receives effect transitions and run end; nil discards
	Logger *log.Logger
}

// DefaultOptions returns the stock 800×600 run
func DefaultOptions() Options {
	return Options{
		Seed:            1,
		Field:           core.Rect{W: parameter.PlayfieldWidth, H: parameter.PlayfieldHeight},
		Schedule:        pattern.DefaultSchedule(),
		HistoryCapacity: parameter.HistoryCapacity,
		Lives:           parameter.PlayerStartLives,
		PowerUps:        true,
	}
}

// normalize fills zero values with defaults
func (o Options) normalize() Options {
	d := DefaultOptions()
	if o.Field.W <= 0 || o.Field.H <= 0 {
		o.Field = d.Field
	}
	if o.HistoryCapacity <= 0 {
		o.HistoryCapacity = d.HistoryCapacity
	}
	if o.Lives <= 0 {
		o.Lives = d.Lives
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard, "", 0)
	}
	return o
}
