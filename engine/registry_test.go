package engine

import (
	"errors"
	"testing"

	"github.com/lixenwraith/vi-rogue/components"
	"github.com/lixenwraith/vi-rogue/core"
)

// TestZeroEntityInvalid verifies the zero identifier never validates
func TestZeroEntityInvalid(t *testing.T) {
	w := NewWorld()
	if err := w.Validate(core.Entity(0)); !errors.Is(err, ErrInvalidEntity) {
		t.Errorf("Expected ErrInvalidEntity, got %v", err)
	}
	if err := w.Validate(core.NewEntity(99, 1)); !errors.Is(err, ErrInvalidEntity) {
		t.Errorf("Expected ErrInvalidEntity for unissued index, got %v", err)
	}
}

// TestStaleAfterDestroy verifies destroyed identifiers fail validation and store access
func TestStaleAfterDestroy(t *testing.T) {
	w := NewWorld()
	e := With(w.NewEntity(), w.Positions, components.PositionComponent{X: 1, Y: 2}).Build()

	if err := w.DestroyEntity(e); err != nil {
		t.Fatalf("DestroyEntity failed: %v", err)
	}

	if w.Alive(e) {
		t.Error("Destroyed entity should not be alive")
	}
	if err := w.Validate(e); !errors.Is(err, ErrStaleEntity) {
		t.Errorf("Expected ErrStaleEntity, got %v", err)
	}
	if _, err := w.Positions.Lookup(e); !errors.Is(err, ErrStaleEntity) {
		t.Errorf("Lookup: expected ErrStaleEntity, got %v", err)
	}
	if err := w.Positions.Set(e, components.PositionComponent{}); !errors.Is(err, ErrStaleEntity) {
		t.Errorf("Set: expected ErrStaleEntity, got %v", err)
	}
	if err := w.DestroyEntity(e); !errors.Is(err, ErrStaleEntity) {
		t.Errorf("Double destroy: expected ErrStaleEntity, got %v", err)
	}
}

// TestStaleAfterSlotReuse verifies a recycled slot does not alias the old identifier
func TestStaleAfterSlotReuse(t *testing.T) {
	w := NewWorld()
	old := With(w.NewEntity(), w.Names, components.NameComponent{Name: "old"}).Build()
	_ = w.DestroyEntity(old)

	fresh := With(w.NewEntity(), w.Names, components.NameComponent{Name: "fresh"}).Build()

	if fresh.Index() != old.Index() {
		t.Fatalf("Expected slot reuse: old=%v fresh=%v", old, fresh)
	}
	if fresh.Generation() <= old.Generation() {
		t.Errorf("Generation not bumped: old=%v fresh=%v", old, fresh)
	}

	if _, ok := w.Names.Get(old); ok {
		t.Error("Stale identifier read the new occupant's component")
	}
	if w.Names.Has(old) {
		t.Error("Has() reported true for stale identifier")
	}
	if name, ok := w.Names.Get(fresh); !ok || name.Name != "fresh" {
		t.Errorf("Fresh entity component = %+v, %v", name, ok)
	}
}

// TestEntityCount verifies live counting across create, destroy and clear
func TestEntityCount(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	w.CreateEntity()
	w.CreateEntity()
	if w.EntityCount() != 3 {
		t.Errorf("Expected 3 entities, got %d", w.EntityCount())
	}

	_ = w.DestroyEntity(a)
	if w.EntityCount() != 2 {
		t.Errorf("Expected 2 entities, got %d", w.EntityCount())
	}

	w.Clear()
	if w.EntityCount() != 0 {
		t.Errorf("Expected 0 entities after Clear, got %d", w.EntityCount())
	}
}

// TestClearInvalidatesIdentifiers verifies identifiers issued before Clear are stale
func TestClearInvalidatesIdentifiers(t *testing.T) {
	w := NewWorld()
	e := With(w.NewEntity(), w.Players, components.PlayerComponent{}).Build()
	w.Clear()

	if w.Alive(e) {
		t.Error("Entity survived Clear")
	}
	next := w.CreateEntity()
	if next == e {
		t.Errorf("New entity %v aliases pre-Clear identifier", next)
	}
	if w.Players.Count() != 0 {
		t.Error("Stores not cleared")
	}
}

// TestDestroyRemovesAllComponents verifies destroy detaches every component kind
func TestDestroyRemovesAllComponents(t *testing.T) {
	w := NewWorld()
	e := With(With(With(w.NewEntity(),
		w.Positions, components.PositionComponent{}),
		w.Renderables, components.RenderableComponent{Glyph: 'g'}),
		w.Monsters, components.MonsterComponent{}).Build()

	_ = w.DestroyEntity(e)

	if w.Positions.Count()+w.Renderables.Count()+w.Monsters.Count() != 0 {
		t.Error("Components survived DestroyEntity")
	}
}
