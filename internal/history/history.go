// Package history keeps a bounded FIFO record of engine cycles.
package history

import (
	"time"

	"github.com/wiltonos/lemniscate/internal/temporal"
)

// #region types

// ScaleSnapshot is the per-scale slice of one history entry.
type ScaleSnapshot struct {
	Mode               temporal.Mode `json:"mode"`
	TargetMode         temporal.Mode `json:"target_mode"`
	Coherence          float64       `json:"coherence"`
	TransitionProgress float64       `json:"transition_progress"`
}

// Entry is an immutable snapshot of one processing cycle.
type Entry struct {
	At           time.Time                        `json:"at"`
	Coherence    float64                          `json:"coherence"`
	DominantMode temporal.Mode                    `json:"dominant_mode"`
	Scales       map[temporal.Scale]ScaleSnapshot `json:"scales"`
}

// #endregion types

// #region ring

// DefaultCap is the standard history bound.
const DefaultCap = 1000

// Ring is a bounded FIFO buffer of entries. Oldest entries are evicted
// first. Not safe for concurrent use; the engine serializes access.
type Ring struct {
	entries []Entry
	cap     int
}

// NewRing creates a ring holding at most cap entries. cap <= 0 uses
// DefaultCap.
func NewRing(cap int) *Ring {
	if cap <= 0 {
		cap = DefaultCap
	}
	return &Ring{cap: cap}
}

// Append adds an entry, evicting the oldest when full.
func (r *Ring) Append(e Entry) {
	r.entries = append(r.entries, e)
	if len(r.entries) > r.cap {
		r.entries = r.entries[len(r.entries)-r.cap:]
	}
}

// Len reports the number of retained entries.
func (r *Ring) Len() int {
	return len(r.entries)
}

// Cap reports the maximum number of retained entries.
func (r *Ring) Cap() int {
	return r.cap
}

// Last returns the most recent entry and true, or a zero entry and false.
func (r *Ring) Last() (Entry, bool) {
	if len(r.entries) == 0 {
		return Entry{}, false
	}
	return r.entries[len(r.entries)-1], true
}

// Recent returns up to n most recent entries, oldest first.
func (r *Ring) Recent(n int) []Entry {
	if n > len(r.entries) {
		n = len(r.entries)
	}
	out := make([]Entry, n)
	copy(out, r.entries[len(r.entries)-n:])
	return out
}

// Values returns the coherence values of all retained entries, oldest first.
func (r *Ring) Values() []float64 {
	out := make([]float64, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Coherence
	}
	return out
}

// #endregion ring
