package engine

import (
	"fmt"

	"github.com/lixenwraith/vi-rogue/core"
)

// Store is a generic container for a specific component type T
// Uses sparse set pattern: map for lookup, slice for ordered iteration
type Store[T any] struct {
	registry   *Registry
	components map[core.Entity]T
	entities   []core.Entity // Insertion order of entities holding T
}

// NewStore creates a new component store for type T validated against registry
func NewStore[T any](registry *Registry) *Store[T] {
	return &Store[T]{
		registry:   registry,
		components: make(map[core.Entity]T),
		entities:   make([]core.Entity, 0, 64),
	}
}

// Set inserts or updates a component for a live entity
func (s *Store[T]) Set(e core.Entity, val T) error {
	if err := s.registry.Validate(e); err != nil {
		return err
	}
	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
	return nil
}

// Get retrieves a component; false for stale entities or missing components
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	if !s.registry.Alive(e) {
		var zero T
		return zero, false
	}
	val, ok := s.components[e]
	return val, ok
}

// Lookup retrieves a component, distinguishing stale references from absence
func (s *Store[T]) Lookup(e core.Entity) (T, error) {
	var zero T
	if err := s.registry.Validate(e); err != nil {
		return zero, err
	}
	val, ok := s.components[e]
	if !ok {
		return zero, fmt.Errorf("entity %v: %w", e, ErrNoComponent)
	}
	return val, nil
}

// Has checks if a live entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	if !s.registry.Alive(e) {
		return false
	}
	_, ok := s.components[e]
	return ok
}

// Remove deletes the component from an entity, preserving iteration order
func (s *Store[T]) Remove(e core.Entity) {
	if _, exists := s.components[e]; !exists {
		return
	}
	delete(s.components, e)
	for i, entity := range s.entities {
		if entity == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
}

// All returns a snapshot of entities holding this component
func (s *Store[T]) All() []core.Entity {
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	return len(s.entities)
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	s.components = make(map[core.Entity]T)
	s.entities = make([]core.Entity, 0, 64)
}
