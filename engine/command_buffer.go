package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/vi-rogue/core"
)

// commandOp is the kind of a buffered structural change
type commandOp uint8

const (
	// opSpawn creates an entity and runs its builder
	opSpawn commandOp = iota
	// opDestroy removes an entity and all its components
	opDestroy
	// opMutate attaches or detaches a component
	opMutate
)

// command is one pending structural change
type command struct {
	op     commandOp
	entity core.Entity
	apply  func(w *World, e core.Entity) error
}

// CommandBuffer records structural changes requested while systems iterate
// and applies them only at Commit, which the scheduler runs between phases.
// Nothing recorded is visible to queries until then.
type CommandBuffer struct {
	world    *World
	commands []command
}

func newCommandBuffer(w *World) *CommandBuffer {
	return &CommandBuffer{
		world:    w,
		commands: make([]command, 0, 16),
	}
}

// Spawn queues creation of an entity; build attaches its components at commit
func (cb *CommandBuffer) Spawn(build func(w *World, e core.Entity) error) {
	cb.commands = append(cb.commands, command{op: opSpawn, apply: build})
}

// Destroy queues removal of an entity
func (cb *CommandBuffer) Destroy(e core.Entity) {
	cb.commands = append(cb.commands, command{op: opDestroy, entity: e})
}

// DeferSet queues attaching (or replacing) component val on e
func DeferSet[T any](cb *CommandBuffer, store *Store[T], e core.Entity, val T) {
	cb.commands = append(cb.commands, command{
		op:     opMutate,
		entity: e,
		apply: func(_ *World, e core.Entity) error {
			return store.Set(e, val)
		},
	})
}

// DeferRemove queues detaching store's component from e
func DeferRemove[T any](cb *CommandBuffer, store *Store[T], e core.Entity) {
	cb.commands = append(cb.commands, command{
		op:     opMutate,
		entity: e,
		apply: func(w *World, e core.Entity) error {
			if err := w.Validate(e); err != nil {
				return err
			}
			store.Remove(e)
			return nil
		},
	})
}

// Pending returns the number of queued commands
func (cb *CommandBuffer) Pending() int {
	return len(cb.commands)
}

// Commit applies queued commands in order. A failing command does not stop the
// ones after it; all failures are joined into the returned error. Commands
// queued while committing stay pending for the next Commit.
func (cb *CommandBuffer) Commit() error {
	if len(cb.commands) == 0 {
		return nil
	}

	batch := cb.commands
	cb.commands = make([]command, 0, cap(batch))

	var errs []error
	for i, cmd := range batch {
		var err error
		switch cmd.op {
		case opSpawn:
			e := cb.world.CreateEntity()
			if cmd.apply != nil {
				if err = cmd.apply(cb.world, e); err != nil {
					// Half-built spawns are rolled back
					_ = cb.world.DestroyEntity(e)
				}
			}
		case opDestroy:
			err = cb.world.DestroyEntity(cmd.entity)
		case opMutate:
			err = cmd.apply(cb.world, cmd.entity)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("command %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// Rollback clears all pending commands without applying them
func (cb *CommandBuffer) Rollback() {
	cb.commands = cb.commands[:0]
}

// String returns a string representation of the buffer for debugging
func (cb *CommandBuffer) String() string {
	var spawns, destroys, mutations int
	for _, cmd := range cb.commands {
		switch cmd.op {
		case opSpawn:
			spawns++
		case opDestroy:
			destroys++
		case opMutate:
			mutations++
		}
	}
	return fmt.Sprintf("CommandBuffer{spawns: %d, destroys: %d, mutations: %d}", spawns, destroys, mutations)
}
