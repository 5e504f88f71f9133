package engine

import (
	"testing"

	"github.com/lixenwraith/bullet-hell/component"
	"github.com/lixenwraith/bullet-hell/core"
)

func box(x, y float64) component.Entity {
	return component.Entity{
		Kind:  component.KindVertical,
		Shape: component.BoxShape(core.Rect{X: x, Y: y, W: 10, H: 10}),
		State: &component.Linear{},
	}
}

func TestArenaInsertRemove(t *testing.T) {
	a := NewArena()

	ids := make([]core.Entity, 0, 4)
	for i := 0; i < 4; i++ {
		ids = append(ids, a.Insert(box(float64(i), 0)))
	}
	for i, id := range ids {
		if want := core.Entity(i + 1); id != want {
			t.Fatalf("id %d: got %d, want %d", i, id, want)
		}
	}

	if _, ok := a.Remove(ids[1]); !ok {
		t.Fatal("remove of live id failed")
	}
	if a.Alive(ids[1]) {
		t.Error("removed id still alive")
	}
	if a.Len() != 3 {
		t.Errorf("len: got %d, want 3", a.Len())
	}

	// Swap-remove must keep every other id resolvable to its own entity
	for _, id := range []core.Entity{ids[0], ids[2], ids[3]} {
		e := a.Get(id)
		if e == nil || e.ID != id {
			t.Errorf("lookup of %d broken after swap-remove", id)
		}
	}

	if _, ok := a.Remove(ids[1]); ok {
		t.Error("double remove reported success")
	}
}

func TestArenaIDsNeverReused(t *testing.T) {
	a := NewArena()
	first := a.Insert(box(0, 0))
	a.Remove(first)
	second := a.Insert(box(0, 0))
	if second <= first {
		t.Errorf("id reused or decreased: first %d, second %d", first, second)
	}

	a.Reset()
	if a.Len() != 0 {
		t.Errorf("len after reset: %d", a.Len())
	}
	if id := a.Insert(box(0, 0)); id != 1 {
		t.Errorf("new run should restart ids at 1, got %d", id)
	}
}
