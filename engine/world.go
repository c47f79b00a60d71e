package engine

import (
	"github.com/lixenwraith/vi-rogue/components"
	"github.com/lixenwraith/vi-rogue/core"
)

// World contains all entities and their components using typed stores.
// Single-threaded: the scheduler orders phases so no two phases write the same store.
type World struct {
	entities *Registry

	// Component stores (public for direct system access)
	Positions   *Store[components.PositionComponent]
	Renderables *Store[components.RenderableComponent]
	Players     *Store[components.PlayerComponent]
	Viewsheds   *Store[components.ViewshedComponent]
	Names       *Store[components.NameComponent]
	Monsters    *Store[components.MonsterComponent]

	// Lifecycle registry - all stores implement AnyStore for uniform cleanup
	allStores []AnyStore

	commands *CommandBuffer
}

// NewWorld creates a world with all component stores initialized
func NewWorld() *World {
	reg := NewRegistry()
	w := &World{
		entities:    reg,
		Positions:   NewStore[components.PositionComponent](reg),
		Renderables: NewStore[components.RenderableComponent](reg),
		Players:     NewStore[components.PlayerComponent](reg),
		Viewsheds:   NewStore[components.ViewshedComponent](reg),
		Names:       NewStore[components.NameComponent](reg),
		Monsters:    NewStore[components.MonsterComponent](reg),
	}

	w.allStores = []AnyStore{
		w.Positions,
		w.Renderables,
		w.Players,
		w.Viewsheds,
		w.Names,
		w.Monsters,
	}
	w.commands = newCommandBuffer(w)

	return w
}

// CreateEntity issues a new entity without components
func (w *World) CreateEntity() core.Entity {
	return w.entities.Create()
}

// DestroyEntity removes all components of e and invalidates the identifier
func (w *World) DestroyEntity(e core.Entity) error {
	if err := w.entities.Validate(e); err != nil {
		return err
	}
	for _, store := range w.allStores {
		store.Remove(e)
	}
	return w.entities.Release(e)
}

// Alive reports whether e refers to a live entity
func (w *World) Alive(e core.Entity) bool {
	return w.entities.Alive(e)
}

// Validate returns ErrInvalidEntity or ErrStaleEntity for unusable identifiers
func (w *World) Validate(e core.Entity) error {
	return w.entities.Validate(e)
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return w.entities.Count()
}

// Commands returns the world's deferred structural change buffer
func (w *World) Commands() *CommandBuffer {
	return w.commands
}

// Clear removes all entities, components and pending commands
func (w *World) Clear() {
	for _, store := range w.allStores {
		store.Clear()
	}
	w.entities.Reset()
	w.commands.Rollback()
}
