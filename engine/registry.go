package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/vi-rogue/core"
)

var (
	// ErrInvalidEntity is returned for the zero entity or an index never issued
	ErrInvalidEntity = errors.New("invalid entity")
	// ErrStaleEntity is returned when an entity's generation no longer matches its slot
	ErrStaleEntity = errors.New("stale entity reference")
	// ErrNoComponent is returned when an entity lacks the requested component
	ErrNoComponent = errors.New("component not present")
)

// Registry issues generation-checked entity identifiers.
// Destroyed slots are recycled with an incremented generation, so an old
// identifier for a recycled slot fails validation instead of aliasing.
type Registry struct {
	generations []uint32
	alive       []bool
	free        []uint32
	live        int
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		generations: make([]uint32, 0, 64),
		alive:       make([]bool, 0, 64),
	}
}

// Create issues a new live entity, reusing a free slot when available
func (r *Registry) Create() core.Entity {
	var index uint32
	if n := len(r.free); n > 0 {
		index = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		index = uint32(len(r.generations))
		r.generations = append(r.generations, 1)
		r.alive = append(r.alive, false)
	}
	r.alive[index] = true
	r.live++
	return core.NewEntity(index, r.generations[index])
}

// Validate reports why e cannot be used, or nil if it is live
func (r *Registry) Validate(e core.Entity) error {
	if e.IsZero() {
		return ErrInvalidEntity
	}
	index := e.Index()
	if int(index) >= len(r.generations) {
		return fmt.Errorf("entity %v: %w", e, ErrInvalidEntity)
	}
	if !r.alive[index] || r.generations[index] != e.Generation() {
		return fmt.Errorf("entity %v (slot generation %d): %w", e, r.generations[index], ErrStaleEntity)
	}
	return nil
}

// Alive reports whether e is a live entity
func (r *Registry) Alive(e core.Entity) bool {
	return r.Validate(e) == nil
}

// Release frees e's slot and bumps its generation
func (r *Registry) Release(e core.Entity) error {
	if err := r.Validate(e); err != nil {
		return err
	}
	index := e.Index()
	r.alive[index] = false
	r.generations[index]++
	if r.generations[index] == 0 {
		r.generations[index] = 1
	}
	r.free = append(r.free, index)
	r.live--
	return nil
}

// Count returns the number of live entities
func (r *Registry) Count() int {
	return r.live
}

// Reset invalidates every issued entity while keeping generations monotonic
func (r *Registry) Reset() {
	r.free = r.free[:0]
	for i := len(r.generations) - 1; i >= 0; i-- {
		if r.alive[i] {
			r.alive[i] = false
			r.generations[i]++
			if r.generations[i] == 0 {
				r.generations[i] = 1
			}
		}
		r.free = append(r.free, uint32(i))
	}
	r.live = 0
}
