package engine

// Ledger is the run score; it only grows
type Ledger struct {
	total int64
}

// Add applies a positive delta; non-positive deltas are ignored
func (l *Ledger) Add(delta int64) bool {
	if delta <= 0 {
		return false
	}
	l.total += delta
	return true
}

func (l *Ledger) Total() int64 {
	return l.total
}

// Reset zeroes the score at run start
func (l *Ledger) Reset() {
	l.total = 0
}
