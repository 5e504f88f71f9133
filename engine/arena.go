package engine

import (
	"github.com/lixenwraith/bullet-hell/component"
	"github.com/lixenwraith/bullet-hell/core"
)

// Arena owns every live entity
// Dense slice for iteration, id index for lookup, swap-remove on delete
// Ids increase monotonically and are never reused within a run
type Arena struct {
	entities []component.Entity
	index    map[core.Entity]int
	nextID   core.Entity
}

// NewArena creates an empty arena
func NewArena() *Arena {
	return &Arena{
		entities: make([]component.Entity, 0, 256),
		index:    make(map[core.Entity]int, 256),
	}
}

// Insert assigns a fresh id to e and stores it
func (a *Arena) Insert(e component.Entity) core.Entity {
	a.nextID++
	e.ID = a.nextID
	a.index[e.ID] = len(a.entities)
	a.entities = append(a.entities, e)
	return e.ID
}

// Get returns the live entity for id, nil if absent
// The pointer is invalidated by the next Insert or Remove
func (a *Arena) Get(id core.Entity) *component.Entity {
	i, ok := a.index[id]
	if !ok {
		return nil
	}
	return &a.entities[i]
}

// Alive reports whether id resolves to a live entity
func (a *Arena) Alive(id core.Entity) bool {
	_, ok := a.index[id]
	return ok
}

// Remove deletes id, moving the last entity into its slot
func (a *Arena) Remove(id core.Entity) (component.Entity, bool) {
	i, ok := a.index[id]
	if !ok {
		return component.Entity{}, false
	}
	removed := a.entities[i]
	last := len(a.entities) - 1
	if i != last {
		a.entities[i] = a.entities[last]
		a.index[a.entities[i].ID] = i
	}
	a.entities[last] = component.Entity{}
	a.entities = a.entities[:last]
	delete(a.index, id)
	return removed, true
}

// Len returns the live entity count
func (a *Arena) Len() int {
	return len(a.entities)
}

// Entities exposes the dense slice for in-place iteration
// Callers must not insert or remove while ranging over it
func (a *Arena) Entities() []component.Entity {
	return a.entities
}

// Reset drops every entity and restarts id assignment
func (a *Arena) Reset() {
	clear(a.entities)
	a.entities = a.entities[:0]
	clear(a.index)
	a.nextID = 0
}
