package mapgen

import "github.com/lixenwraith/vi-rogue/core"

// Room is an axis-aligned rectangle of floor; X2 and Y2 are exclusive
type Room struct {
	X1, Y1, X2, Y2 int
}

// NewRoom builds a room from its top-left corner and size
func NewRoom(x, y, w, h int) Room {
	return Room{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

func (r Room) Width() int  { return r.X2 - r.X1 }
func (r Room) Height() int { return r.Y2 - r.Y1 }

// Center returns the integer midpoint of the room's cells
func (r Room) Center() core.Point {
	return core.Point{X: (r.X1 + r.X2 - 1) / 2, Y: (r.Y1 + r.Y2 - 1) / 2}
}

// Contains reports whether p is one of the room's cells
func (r Room) Contains(p core.Point) bool {
	return p.X >= r.X1 && p.X < r.X2 && p.Y >= r.Y1 && p.Y < r.Y2
}

// Intersects reports whether the rooms overlap once both are grown by margin cells
func (r Room) Intersects(o Room, margin int) bool {
	return r.X1-margin < o.X2 && r.X2+margin > o.X1 &&
		r.Y1-margin < o.Y2 && r.Y2+margin > o.Y1
}
