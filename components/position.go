package components

import "github.com/lixenwraith/vi-rogue/core"

// PositionComponent is the grid cell an entity occupies
type PositionComponent struct {
	X, Y int
}

// Point returns the position as a core.Point
func (p PositionComponent) Point() core.Point {
	return core.Point{X: p.X, Y: p.Y}
}
