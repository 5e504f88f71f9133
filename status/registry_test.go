package status

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestMetricMap_GetReturnsSamePointer(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	a := m.Get("x")
	b := m.Get("x")
	if a != b {
		t.Fatal("Get allocated twice for the same key")
	}
	if !m.Has("x") || m.Has("y") {
		t.Error("Has disagrees with Get")
	}
}

func TestMetricMap_RangeSorted(t *testing.T) {
	m := NewMetricMap[AtomicString]()
	for _, k := range []string{"c", "a", "b"} {
		m.Get(k).Store(k)
	}
	var got []string
	m.Range(func(k string, v *AtomicString) {
		got = append(got, k+"="+v.Load())
	})
	if strings.Join(got, ",") != "a=a,b=b,c=c" {
		t.Errorf("Range order = %v", got)
	}
}

func TestAtomicFloat_ConcurrentAdd(t *testing.T) {
	var f AtomicFloat
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				f.Add(0.5)
			}
		}()
	}
	wg.Wait()
	if got := f.Get(); got != 400 {
		t.Errorf("Get() = %v, want 400", got)
	}
}

func TestAtomicString_Truncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("zero value not empty")
	}
	s.Store(strings.Repeat("x", MaxStringLen+10))
	if len(s.Load()) != MaxStringLen {
		t.Errorf("len = %d, want %d", len(s.Load()), MaxStringLen)
	}
}

func TestRegistry_TotalCount(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("a")
	r.Bools.Get("b")
	r.Floats.Get("c")
	r.Strings.Get("d")
	r.Ints.Get("a")
	if r.TotalCount() != 4 {
		t.Errorf("TotalCount() = %d, want 4", r.TotalCount())
	}
}

func TestRegistry_FiguresReadsKeys(t *testing.T) {
	r := NewRegistry()
	if got := r.Figures(); got != (Figures{}) {
		t.Fatalf("fresh registry figures = %+v, want zero", got)
	}

	r.Ints.Get(KeyScore).Store(120)
	r.Ints.Get(KeyLives).Store(2)
	r.Ints.Get(KeyGrazes).Add(7)
	r.Ints.Get(KeyRuns).Add(1)
	r.Floats.Get(KeySurvival).Set(12.5)
	r.Strings.Get(KeyLastEffect).Store("rewind")
	r.Bools.Get(KeyRunOver).Store(true)

	want := Figures{
		Score:      120,
		Lives:      2,
		Grazes:     7,
		Runs:       1,
		Survival:   12500 * time.Millisecond,
		LastEffect: "rewind",
		RunOver:    true,
	}
	if got := r.Figures(); got != want {
		t.Errorf("Figures() = %+v, want %+v", got, want)
	}
}
