package engine

import (
	"github.com/lixenwraith/vi-rogue/components"
	"github.com/lixenwraith/vi-rogue/core"
	"github.com/lixenwraith/vi-rogue/grid"
)

// Drawable is one (Position, Renderable) pair exposed to renderers
type Drawable struct {
	Entity     core.Entity
	Position   core.Point
	Renderable components.RenderableComponent
	Player     bool
	Name       string
}

// Frame is the read-only render surface handed to front-ends
type Frame struct {
	ctx  *GameContext
	tick uint64
}

// Tick returns the number of ticks completed when the frame was taken
func (f Frame) Tick() uint64 {
	return f.tick
}

// Width returns the map width
func (f Frame) Width() int {
	return f.ctx.Grid.Width()
}

// Height returns the map height
func (f Frame) Height() int {
	return f.ctx.Grid.Height()
}

// KindAt returns the tile kind at (x, y)
func (f Frame) KindAt(x, y int) (grid.TileKind, error) {
	return f.ctx.Grid.KindAt(x, y)
}

// Visible reports whether the player currently sees p
func (f Frame) Visible(p core.Point) bool {
	vs, ok := f.ctx.World.Viewsheds.Get(f.ctx.Player)
	if !ok {
		return false
	}
	return vs.CanSee(p)
}

// Revealed reports whether the player has ever seen p
func (f Frame) Revealed(p core.Point) bool {
	return f.ctx.Revealed.Has(p)
}

// PlayerPosition returns the player's cell, false when there is no player
func (f Frame) PlayerPosition() (core.Point, bool) {
	return f.ctx.PlayerPosition()
}

// Drawables returns all positioned renderable entities, players last
func (f Frame) Drawables() []Drawable {
	w := f.ctx.World
	entities := w.Query().
		With(w.Positions).
		With(w.Renderables).
		Execute()

	result := make([]Drawable, 0, len(entities))
	var players []Drawable
	for _, e := range entities {
		pos, _ := w.Positions.Get(e)
		rend, _ := w.Renderables.Get(e)
		d := Drawable{
			Entity:     e,
			Position:   pos.Point(),
			Renderable: rend,
			Player:     w.Players.Has(e),
		}
		if name, ok := w.Names.Get(e); ok {
			d.Name = name.Name
		}
		if d.Player {
			players = append(players, d)
			continue
		}
		result = append(result, d)
	}
	return append(result, players...)
}

// EntitiesAt returns drawables occupying p
func (f Frame) EntitiesAt(p core.Point) []Drawable {
	var result []Drawable
	for _, d := range f.Drawables() {
		if d.Position == p {
			result = append(result, d)
		}
	}
	return result
}
