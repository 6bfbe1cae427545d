// Package history keeps the in-session log of calculations.
package history

import (
	"errors"
	"sync"

	"github.com/jmattson/tally/internal/core/calculation"
)

// ErrEmpty is returned when the log has no calculations.
var ErrEmpty = errors.New("no calculations in history")

// Log is an ordered record of calculations for one session. Entries only
// leave the log through Clear, which empties it entirely; there is no
// partial deletion or reordering.
type Log struct {
	mu      sync.RWMutex
	entries []calculation.Calculation
}

// NewLog creates an empty calculation log.
func NewLog() *Log {
	return &Log{}
}

// Append adds calc to the end of the log.
func (l *Log) Append(calc calculation.Calculation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, calc)
}

// List returns all calculations in insertion order. The returned slice is a
// copy; mutating it does not affect the log.
func (l *Log) List() []calculation.Calculation {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]calculation.Calculation, len(l.entries))
	copy(out, l.entries)
	return out
}

// Last returns the most recent calculation. Returns ErrEmpty if the log has
// no entries.
func (l *Log) Last() (calculation.Calculation, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.entries) == 0 {
		return calculation.Calculation{}, ErrEmpty
	}
	return l.entries[len(l.entries)-1], nil
}

// Len returns the number of calculations in the log.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.entries)
}

// Clear empties the log. Clearing an empty log is a no-op.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = nil
}
