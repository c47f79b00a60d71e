package systems

import (
	"github.com/lixenwraith/vi-rogue/engine"
	"github.com/lixenwraith/vi-rogue/status"
)

// StatsSystem publishes per-tick counters to a status registry
type StatsSystem struct {
	reg *status.Registry
}

// NewStatsSystem creates a stats system writing to reg
func NewStatsSystem(reg *status.Registry) *StatsSystem {
	return &StatsSystem{reg: reg}
}

// Update implements engine.System
func (s *StatsSystem) Update(ctx *engine.GameContext) {
	s.reg.Ticks.Add(1)
	if ctx.LastMove.Moved {
		s.reg.Moves.Add(1)
	}
	if ctx.LastMove.Blocked {
		s.reg.Blocked.Add(1)
	}
	s.reg.Revealed.Store(int64(ctx.Revealed.Size()))
	s.reg.Entities.Store(int64(ctx.World.EntityCount()))
	s.reg.SetLastIntent(ctx.Intent.String())
}
