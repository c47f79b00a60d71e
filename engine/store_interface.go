package engine

import "github.com/lixenwraith/vi-rogue/core"

// AnyStore provides type-erased operations for lifecycle management
// This interface allows World to manage all stores uniformly
// for operations like entity destruction without knowing the concrete type
type AnyStore interface {
	// Remove deletes the entity's component, if any
	Remove(e core.Entity)

	// Has checks if an entity has this component
	Has(e core.Entity) bool

	// Count returns the number of entities with this component
	Count() int

	// Clear removes all components from this store
	Clear()
}

// QueryableStore extends AnyStore with the enumeration the query builder
// needs to intersect component sets
type QueryableStore interface {
	AnyStore

	// All returns the entities holding this component in insertion order
	All() []core.Entity
}
