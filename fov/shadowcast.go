// Package fov computes grid field of view with symmetric shadowcasting.
//
// The plane around the origin is split into four quadrants (north, south, east,
// west), each covering two octants. Rows are scanned outward from the origin;
// slopes are kept as exact fractions so results never depend on float rounding.
// A tile is visible when it is a wall reached by an unobstructed ray or when its
// center lies inside the current light cone, which makes visibility symmetric:
// if A sees B then B sees A.
package fov

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/vi-rogue/core"
)

// Opacity is the minimal grid surface the algorithm reads
type Opacity interface {
	InBounds(x, y int) bool
	IsOpaque(x, y int) bool
}

// InRadius reports whether an offset lies inside the circular sight radius
func InRadius(dx, dy, radius int) bool {
	return dx*dx+dy*dy <= radius*radius
}

// Compute returns every in-bounds cell visible from origin within radius.
// The origin is always included for radius >= 0; radius < 0 yields an empty set.
func Compute(origin core.Point, radius int, view Opacity) mapset.Set[core.Point] {
	visible := mapset.New[core.Point]()
	if radius < 0 {
		return visible
	}
	if view.InBounds(origin.X, origin.Y) {
		visible.Put(origin)
	}
	if radius == 0 {
		return visible
	}

	for _, dir := range quadrants {
		s := scanner{
			origin:  origin,
			dir:     dir,
			radius:  radius,
			view:    view,
			visible: visible,
		}
		s.scan(row{depth: 1, start: fraction{-1, 1}, end: fraction{1, 1}})
	}
	return visible
}

// --- Quadrants ---

type quadrant uint8

const (
	north quadrant = iota
	east
	south
	west
)

var quadrants = [4]quadrant{north, east, south, west}

// transform maps a (depth, col) tile in quadrant space to grid coordinates
func (q quadrant) transform(o core.Point, depth, col int) (int, int) {
	switch q {
	case north:
		return o.X + col, o.Y - depth
	case south:
		return o.X + col, o.Y + depth
	case east:
		return o.X + depth, o.Y + col
	default:
		return o.X - depth, o.Y + col
	}
}

// --- Rational slopes ---

// fraction is num/den with den > 0
type fraction struct {
	num, den int
}

// tileSlope is the slope of the tile's left edge: (2*col-1) / (2*depth)
func tileSlope(depth, col int) fraction {
	return fraction{2*col - 1, 2 * depth}
}

// row is one scan line of a quadrant between two slopes
type row struct {
	depth      int
	start, end fraction
}

// minCol is round-half-up(depth*start)
func (r row) minCol() int {
	return floorDiv(2*r.depth*r.start.num+r.start.den, 2*r.start.den)
}

// maxCol is round-half-down(depth*end)
func (r row) maxCol() int {
	return -floorDiv(-(2*r.depth*r.end.num - r.end.den), 2*r.end.den)
}

// symmetric reports whether the tile center lies inside the row's cone
func (r row) symmetric(col int) bool {
	return col*r.start.den >= r.depth*r.start.num && col*r.end.den <= r.depth*r.end.num
}

func (r row) next() row {
	return row{depth: r.depth + 1, start: r.start, end: r.end}
}

// --- Scanner ---

type scanner struct {
	origin  core.Point
	dir     quadrant
	radius  int
	view    Opacity
	visible mapset.Set[core.Point]
}

const (
	tileNone = iota
	tileWall
	tileFloor
)

// classify treats out-of-bounds cells as walls so light never leaks off-grid
func (s *scanner) classify(depth, col int) int {
	x, y := s.dir.transform(s.origin, depth, col)
	if s.view.IsOpaque(x, y) {
		return tileWall
	}
	return tileFloor
}

func (s *scanner) reveal(depth, col int) {
	if !InRadius(depth, col, s.radius) {
		return
	}
	x, y := s.dir.transform(s.origin, depth, col)
	if s.view.InBounds(x, y) {
		s.visible.Put(core.Point{X: x, Y: y})
	}
}

func (s *scanner) scan(r row) {
	if r.depth > s.radius {
		return
	}

	prev := tileNone
	for col := r.minCol(); col <= r.maxCol(); col++ {
		curr := s.classify(r.depth, col)

		if curr == tileWall || r.symmetric(col) {
			s.reveal(r.depth, col)
		}
		if prev == tileWall && curr == tileFloor {
			r.start = tileSlope(r.depth, col)
		}
		if prev == tileFloor && curr == tileWall {
			nr := r.next()
			nr.end = tileSlope(r.depth, col)
			s.scan(nr)
		}
		prev = curr
	}
	if prev == tileFloor {
		s.scan(r.next())
	}
}

// floorDiv divides rounding toward negative infinity; b > 0
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
