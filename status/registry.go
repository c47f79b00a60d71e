// Package status collects session counters that front-ends read while the
// scheduler writes them.
package status

import "sync/atomic"

// Registry holds the counters of one session. Fields are written by the
// stats system inside a tick and read concurrently by HTTP handlers.
type Registry struct {
	Ticks    atomic.Int64
	Moves    atomic.Int64
	Blocked  atomic.Int64
	Revealed atomic.Int64
	Entities atomic.Int64

	lastIntent atomic.Pointer[string]
}

// Snapshot is a point-in-time copy of a Registry, shaped for /api/stats
type Snapshot struct {
	Ticks      int64  `json:"ticks"`
	Moves      int64  `json:"moves"`
	Blocked    int64  `json:"blocked"`
	Revealed   int64  `json:"revealed"`
	Entities   int64  `json:"entities"`
	LastIntent string `json:"last_intent"`
}

// NewRegistry creates a zeroed Registry
func NewRegistry() *Registry {
	return &Registry{}
}

// SetLastIntent records the intent of the latest tick
func (r *Registry) SetLastIntent(name string) {
	r.lastIntent.Store(&name)
}

// LastIntent returns the intent of the latest tick, "" before the first one
func (r *Registry) LastIntent() string {
	if p := r.lastIntent.Load(); p != nil {
		return *p
	}
	return ""
}

// Snapshot copies every counter. Fields are loaded one at a time, so a
// snapshot taken mid-tick may mix two ticks.
func (r *Registry) Snapshot() Snapshot {
	return Snapshot{
		Ticks:      r.Ticks.Load(),
		Moves:      r.Moves.Load(),
		Blocked:    r.Blocked.Load(),
		Revealed:   r.Revealed.Load(),
		Entities:   r.Entities.Load(),
		LastIntent: r.LastIntent(),
	}
}
