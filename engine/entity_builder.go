package engine

import (
	"fmt"

	"github.com/lixenwraith/vi-rogue/core"
)

// EntityBuilder provides a fluent, type-safe interface for constructing entities with components.
//
// Example usage:
//
//	player := engine.With(
//	    engine.With(world.NewEntity(), world.Positions, pos),
//	    world.Players, components.PlayerComponent{},
//	).Build()
type EntityBuilder struct {
	world  *World
	entity core.Entity
	built  bool
}

// NewEntity creates a new EntityBuilder with a freshly issued entity
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.CreateEntity(),
	}
}

// Entity returns the identifier being built
func (eb *EntityBuilder) Entity() core.Entity {
	return eb.entity
}

// With adds a component of type T to the entity being built.
// Panics if called after Build().
func With[T any](eb *EntityBuilder, store *Store[T], component T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	if err := store.Set(eb.entity, component); err != nil {
		panic(fmt.Sprintf("entity builder: %v", err))
	}
	return eb
}

// Build finalizes entity construction and returns the entity ID
func (eb *EntityBuilder) Build() core.Entity {
	eb.built = true
	return eb.entity
}
