package engine

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/vi-rogue/core"
	"github.com/lixenwraith/vi-rogue/grid"
	"github.com/lixenwraith/vi-rogue/input"
	"github.com/lixenwraith/vi-rogue/mapgen"
)

// MoveResult records the outcome of the last movement phase
type MoveResult struct {
	Attempted bool
	Moved     bool
	Blocked   bool
	From, To  core.Point
}

// GameContext holds all simulation state passed to systems
type GameContext struct {
	// ===== Immutable After Init =====
	World *World        // ECS world
	Grid  grid.View     // Read-only map; never mutated after generation
	Rooms []mapgen.Room // Accepted rooms in generation order

	// ===== Session State =====
	Player   core.Entity            // Zero when no room was available to spawn in
	Revealed mapset.Set[core.Point] // Tiles the player has seen at least once

	// ===== Per-Tick =====
	Intent        input.Intent // Consumed by the movement phase, reset after the tick
	LastMove      MoveResult   // Written by the movement phase
	NewlyRevealed int          // Tiles added to Revealed during this tick
}

// NewGameContext creates a context over a generated map with an empty world
func NewGameContext(world *World, view grid.View, rooms []mapgen.Room) *GameContext {
	return &GameContext{
		World:    world,
		Grid:     view,
		Rooms:    rooms,
		Revealed: mapset.New[core.Point](),
	}
}

// HasPlayer reports whether the player entity exists
func (ctx *GameContext) HasPlayer() bool {
	return ctx.World.Alive(ctx.Player)
}

// PlayerPosition returns the player's cell, false when there is no player
func (ctx *GameContext) PlayerPosition() (core.Point, bool) {
	pos, ok := ctx.World.Positions.Get(ctx.Player)
	if !ok {
		return core.Point{}, false
	}
	return pos.Point(), true
}
