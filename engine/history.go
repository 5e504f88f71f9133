package engine

import (
	"github.com/lixenwraith/bullet-hell/component"
	"github.com/lixenwraith/bullet-hell/core"
)

// Record is one entity's position at snapshot time
type Record struct {
	ID    core.Entity
	Kind  component.Kind
	Shape component.Shape
}

// Snapshot captures every live entity at one tick
type Snapshot struct {
	Tick    int64
	Records []Record
}

// History is a fixed-capacity ring of snapshots; the oldest is evicted when full
type History struct {
	buf   []Snapshot
	head  int // Index of oldest
	count int
}

// NewHistory creates a ring holding at most capacity snapshots
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{buf: make([]Snapshot, capacity)}
}

// Push appends s, evicting the oldest snapshot when full
func (h *History) Push(s Snapshot) {
	if h.count < len(h.buf) {
		h.buf[(h.head+h.count)%len(h.buf)] = s
		h.count++
		return
	}
	h.buf[h.head] = s
	h.head = (h.head + 1) % len(h.buf)
}

// Len returns the number of retained snapshots
func (h *History) Len() int {
	return h.count
}

// Cap returns the ring capacity
func (h *History) Cap() int {
	return len(h.buf)
}

// At returns the i-th retained snapshot, 0 being the oldest
func (h *History) At(i int) (Snapshot, bool) {
	if i < 0 || i >= h.count {
		return Snapshot{}, false
	}
	return h.buf[(h.head+i)%len(h.buf)], true
}

// Truncate keeps the oldest n snapshots and drops the rest
func (h *History) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	for h.count > n {
		h.count--
		h.buf[(h.head+h.count)%len(h.buf)] = Snapshot{}
	}
}

// Reset drops every snapshot
func (h *History) Reset() {
	clear(h.buf)
	h.head = 0
	h.count = 0
}

// capture copies every live entity's shape into a snapshot
func capture(tick int64, entities []component.Entity) Snapshot {
	records := make([]Record, len(entities))
	for i := range entities {
		records[i] = Record{
			ID:    entities[i].ID,
			Kind:  entities[i].Kind,
			Shape: entities[i].Shape.Clone(),
		}
	}
	return Snapshot{Tick: tick, Records: records}
}
