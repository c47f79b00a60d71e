package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/lixenwraith/vi-rogue/components"
	"github.com/lixenwraith/vi-rogue/core"
)

// TestCommandBufferDeferred verifies queued changes stay invisible until Commit
func TestCommandBufferDeferred(t *testing.T) {
	w := NewWorld()
	cb := w.Commands()

	cb.Spawn(func(w *World, e core.Entity) error {
		return w.Monsters.Set(e, components.MonsterComponent{})
	})
	if w.EntityCount() != 0 || w.Monsters.Count() != 0 {
		t.Fatal("Spawn applied before Commit")
	}
	if cb.Pending() != 1 {
		t.Errorf("Expected 1 pending command, got %d", cb.Pending())
	}

	if err := cb.Commit(); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if w.Monsters.Count() != 1 || cb.Pending() != 0 {
		t.Errorf("After commit: monsters=%d pending=%d", w.Monsters.Count(), cb.Pending())
	}
}

// TestCommitInvisibleToRunningIteration verifies a query in progress sees the pre-commit set
func TestCommitInvisibleToRunningIteration(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 3; i++ {
		_ = w.Positions.Set(w.CreateEntity(), components.PositionComponent{X: i})
	}

	visited := 0
	entities := w.Query().With(w.Positions).Execute()
	for _, e := range entities {
		visited++
		// Every visited entity spawns a sibling and destroys itself
		w.Commands().Spawn(func(w *World, n core.Entity) error {
			return w.Positions.Set(n, components.PositionComponent{X: 100})
		})
		w.Commands().Destroy(e)

		if w.Positions.Count() != 3 {
			t.Fatalf("Buffered change leaked into iteration: count=%d", w.Positions.Count())
		}
	}
	if visited != 3 {
		t.Errorf("Expected 3 visits, got %d", visited)
	}

	if err := w.Commands().Commit(); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	for _, e := range entities {
		if w.Alive(e) {
			t.Errorf("Entity %v survived its queued destroy", e)
		}
	}
	if w.Positions.Count() != 3 {
		t.Errorf("Expected 3 spawned replacements, got %d", w.Positions.Count())
	}
}

// TestCommitContinuesPastErrors verifies one failing command does not block the rest
func TestCommitContinuesPastErrors(t *testing.T) {
	w := NewWorld()
	gone := w.CreateEntity()
	_ = w.DestroyEntity(gone)
	live := w.CreateEntity()

	cb := w.Commands()
	DeferSet(cb, w.Names, gone, components.NameComponent{Name: "ghost"})
	DeferSet(cb, w.Names, live, components.NameComponent{Name: "live"})
	cb.Destroy(gone)

	err := cb.Commit()
	if !errors.Is(err, ErrStaleEntity) {
		t.Errorf("Expected joined ErrStaleEntity, got %v", err)
	}
	if name, ok := w.Names.Get(live); !ok || name.Name != "live" {
		t.Error("Valid command after a failure was not applied")
	}
}

// TestFailedSpawnRollsBack verifies a spawn whose builder fails leaves no entity behind
func TestFailedSpawnRollsBack(t *testing.T) {
	w := NewWorld()
	boom := errors.New("boom")
	w.Commands().Spawn(func(w *World, e core.Entity) error {
		_ = w.Positions.Set(e, components.PositionComponent{})
		return boom
	})

	if err := w.Commands().Commit(); !errors.Is(err, boom) {
		t.Errorf("Expected builder error, got %v", err)
	}
	if w.EntityCount() != 0 || w.Positions.Count() != 0 {
		t.Error("Failed spawn left state behind")
	}
}

// TestDeferRemoveAndRollback verifies component detach and discarding queued work
func TestDeferRemoveAndRollback(t *testing.T) {
	w := NewWorld()
	e := With(w.NewEntity(), w.Monsters, components.MonsterComponent{}).Build()

	cb := w.Commands()
	DeferRemove(cb, w.Monsters, e)
	cb.Rollback()
	if err := cb.Commit(); err != nil {
		t.Fatalf("Commit of empty buffer failed: %v", err)
	}
	if !w.Monsters.Has(e) {
		t.Error("Rolled-back removal was applied")
	}

	DeferRemove(cb, w.Monsters, e)
	if !strings.Contains(cb.String(), "mutations: 1") {
		t.Errorf("String() = %q", cb.String())
	}
	_ = cb.Commit()
	if w.Monsters.Has(e) {
		t.Error("Deferred removal not applied")
	}
}

// TestCommandsQueuedDuringCommit verifies nested queuing waits for the next commit
func TestCommandsQueuedDuringCommit(t *testing.T) {
	w := NewWorld()
	cb := w.Commands()
	cb.Spawn(func(w *World, e core.Entity) error {
		w.Commands().Spawn(nil)
		return nil
	})

	_ = cb.Commit()
	if w.EntityCount() != 1 || cb.Pending() != 1 {
		t.Errorf("entities=%d pending=%d, want 1/1", w.EntityCount(), cb.Pending())
	}
	_ = cb.Commit()
	if w.EntityCount() != 2 {
		t.Errorf("Expected 2 entities after second commit, got %d", w.EntityCount())
	}
}
