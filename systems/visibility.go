package systems

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/vi-rogue/components"
	"github.com/lixenwraith/vi-rogue/core"
	"github.com/lixenwraith/vi-rogue/engine"
	"github.com/lixenwraith/vi-rogue/fov"
)

// VisibilitySystem recomputes viewsheds with symmetric shadowcasting
type VisibilitySystem struct{}

// NewVisibilitySystem creates a visibility system
func NewVisibilitySystem() *VisibilitySystem {
	return &VisibilitySystem{}
}

// Update implements engine.System. A viewshed is recomputed when it is dirty
// or when its entity no longer stands where it was last computed from, so a
// position change without the dirty flag still refreshes it.
func (s *VisibilitySystem) Update(ctx *engine.GameContext) {
	w := ctx.World
	entities := w.Query().
		With(w.Positions).
		With(w.Viewsheds).
		Execute()

	for _, e := range entities {
		pos, _ := w.Positions.Get(e)
		vs, _ := w.Viewsheds.Get(e)

		origin := pos.Point()
		if !needsRecompute(vs, origin) {
			continue
		}

		vs.VisibleTiles = fov.Compute(origin, vs.Range, ctx.Grid)
		vs.Origin = origin
		vs.Dirty = false
		if err := w.Viewsheds.Set(e, vs); err != nil {
			continue
		}

		if e == ctx.Player {
			ctx.NewlyRevealed += reveal(ctx.Revealed, vs.VisibleTiles)
		}
	}
}

func needsRecompute(vs components.ViewshedComponent, origin core.Point) bool {
	return vs.Dirty || vs.Origin != origin || vs.VisibleTiles.Size() == 0
}

// reveal adds visible to memory and returns how many tiles were new
func reveal(memory, visible mapset.Set[core.Point]) int {
	added := 0
	visible.Each(func(p core.Point) {
		if !memory.Has(p) {
			memory.Put(p)
			added++
		}
	})
	return added
}
