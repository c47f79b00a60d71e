package core

import "fmt"

// Entity is an opaque identifier packing a slot index (low 32 bits) and the
// slot generation (high 32 bits). The zero value never refers to a live entity
// because slot generations start at 1.
type Entity uint64

// NewEntity packs a slot index and generation into an Entity
func NewEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the storage slot of the entity
func (e Entity) Index() uint32 {
	return uint32(e)
}

// Generation returns the slot generation the entity was issued with
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}

// IsZero reports whether e is the invalid zero entity
func (e Entity) IsZero() bool {
	return e == 0
}

func (e Entity) String() string {
	return fmt.Sprintf("%d#%d", e.Index(), e.Generation())
}
