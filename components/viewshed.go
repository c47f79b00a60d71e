package components

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/vi-rogue/core"
)

// ViewshedComponent holds an entity's sight range and last computed visible set
type ViewshedComponent struct {
	Range        int
	VisibleTiles mapset.Set[core.Point]

	// Dirty requests recomputation; cleared by the visibility system
	Dirty bool
	// Origin is the position VisibleTiles was computed from
	Origin core.Point
}

// NewViewshed returns a dirty viewshed with an empty visible set
func NewViewshed(sightRange int) ViewshedComponent {
	return ViewshedComponent{
		Range:        sightRange,
		VisibleTiles: mapset.New[core.Point](),
		Dirty:        true,
	}
}

// CanSee reports whether p was visible at the last recomputation
func (v ViewshedComponent) CanSee(p core.Point) bool {
	return v.VisibleTiles.Has(p)
}
