package systems

import (
	"github.com/lixenwraith/vi-rogue/engine"
)

// MovementSystem applies the tick's movement intent to the player.
// A destination outside the grid or on a Wall drops the intent and
// reports the move as blocked.
type MovementSystem struct{}

// NewMovementSystem creates a movement system
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// Update implements engine.System
func (s *MovementSystem) Update(ctx *engine.GameContext) {
	dx, dy := ctx.Intent.Delta()
	if dx == 0 && dy == 0 {
		return
	}

	w := ctx.World
	pos, ok := w.Positions.Get(ctx.Player)
	if !ok {
		return
	}

	from := pos.Point()
	to := from.Add(dx, dy)
	ctx.LastMove = engine.MoveResult{Attempted: true, From: from, To: from}

	if !ctx.Grid.IsWalkable(to.X, to.Y) {
		ctx.LastMove.Blocked = true
		return
	}

	pos.X, pos.Y = ctx.Grid.Clamp(to.X, to.Y)
	if err := w.Positions.Set(ctx.Player, pos); err != nil {
		return
	}

	if vs, ok := w.Viewsheds.Get(ctx.Player); ok {
		vs.Dirty = true
		_ = w.Viewsheds.Set(ctx.Player, vs)
	}

	ctx.LastMove.Moved = true
	ctx.LastMove.To = pos.Point()
}
