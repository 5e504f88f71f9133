package status

import "sync/atomic"

// MaxStringLen bounds stored strings so HUD columns stay fixed
const MaxStringLen = 24

// AtomicString is a bounded string behind an atomic pointer; the zero value is ""
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the value, truncated to MaxStringLen bytes
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		val = val[:MaxStringLen]
	}
	s.ptr.Store(&val)
}

func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
