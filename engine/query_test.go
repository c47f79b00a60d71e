package engine

import (
	"testing"

	"github.com/lixenwraith/vi-rogue/components"
)

// TestQueryJoin verifies intersection across stores
func TestQueryJoin(t *testing.T) {
	w := NewWorld()

	e1 := w.CreateEntity()
	_ = w.Positions.Set(e1, components.PositionComponent{X: 1, Y: 1})
	_ = w.Renderables.Set(e1, components.RenderableComponent{Glyph: 'A'})

	e2 := w.CreateEntity()
	_ = w.Positions.Set(e2, components.PositionComponent{X: 2, Y: 2})

	e3 := w.CreateEntity()
	_ = w.Renderables.Set(e3, components.RenderableComponent{Glyph: 'B'})

	results := w.Query().
		With(w.Positions).
		With(w.Renderables).
		Execute()

	if len(results) != 1 || results[0] != e1 {
		t.Errorf("Expected [%v], got %v", e1, results)
	}

	if n := len(w.Query().With(w.Positions).Execute()); n != 2 {
		t.Errorf("Expected 2 position results, got %d", n)
	}

	if n := len(w.Query().Execute()); n != 0 {
		t.Errorf("Expected 0 empty results, got %d", n)
	}
}

// TestQueryOrderFollowsSmallestStore verifies deterministic result order
func TestQueryOrderFollowsSmallestStore(t *testing.T) {
	w := NewWorld()
	a, b, c := w.CreateEntity(), w.CreateEntity(), w.CreateEntity()

	_ = w.Positions.Set(a, components.PositionComponent{})
	_ = w.Positions.Set(b, components.PositionComponent{})
	_ = w.Positions.Set(c, components.PositionComponent{})

	// Monsters is smaller and inserted in reverse order
	_ = w.Monsters.Set(c, components.MonsterComponent{})
	_ = w.Monsters.Set(a, components.MonsterComponent{})

	results := w.Query().With(w.Positions).With(w.Monsters).Execute()
	if len(results) != 2 || results[0] != c || results[1] != a {
		t.Errorf("Expected [%v %v], got %v", c, a, results)
	}
}

// TestQueryBuilder_Panic verifies modifying an executed query panics
func TestQueryBuilder_Panic(t *testing.T) {
	w := NewWorld()
	q := w.Query().With(w.Positions)
	q.Execute()

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when calling With() after Execute()")
		}
	}()
	q.With(w.Names)
}

// TestEntityBuilder verifies fluent construction and reuse panic
func TestEntityBuilder(t *testing.T) {
	w := NewWorld()

	eb := w.NewEntity()
	e := With(With(eb,
		w.Positions, components.PositionComponent{X: 3, Y: 7}),
		w.Names, components.NameComponent{Name: "Goblin #1"},
	).Build()

	if e != eb.Entity() || e.IsZero() {
		t.Fatalf("Build returned %v, builder holds %v", e, eb.Entity())
	}
	if pos, ok := w.Positions.Get(e); !ok || pos.X != 3 || pos.Y != 7 {
		t.Errorf("Position = %+v, %v", pos, ok)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when calling With() after Build()")
		}
	}()
	With(eb, w.Monsters, components.MonsterComponent{})
}
