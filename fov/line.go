package fov

import "github.com/lixenwraith/vi-rogue/core"

// Line returns the Bresenham cell sequence from a to b, both ends included
func Line(a, b core.Point) []core.Point {
	dx := b.X - a.X
	if dx < 0 {
		dx = -dx
	}
	dy := -(b.Y - a.Y)
	if dy > 0 {
		dy = -dy
	}
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}

	cells := make([]core.Point, 0, max(dx, -dy)+1)
	x, y := a.X, a.Y
	e := dx + dy
	for {
		cells = append(cells, core.Point{X: x, Y: y})
		if x == b.X && y == b.Y {
			return cells
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

// LineOfSight reports whether no opaque cell lies strictly between a and b
func LineOfSight(a, b core.Point, view Opacity) bool {
	if !view.InBounds(a.X, a.Y) || !view.InBounds(b.X, b.Y) {
		return false
	}
	cells := Line(a, b)
	if len(cells) <= 2 {
		return true
	}
	for _, p := range cells[1 : len(cells)-1] {
		if view.IsOpaque(p.X, p.Y) {
			return false
		}
	}
	return true
}
