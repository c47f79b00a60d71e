package mapgen

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/vi-rogue/core"
	"github.com/lixenwraith/vi-rogue/grid"
)

// Reachable floods 4-connected walkable tiles from start (BFS).
// Returns an empty set when start is not walkable.
func Reachable(g grid.View, start core.Point) mapset.Set[core.Point] {
	visited := mapset.New[core.Point]()
	if !g.IsWalkable(start.X, start.Y) {
		return visited
	}

	queue := []core.Point{start}
	visited.Put(start)

	dirs := []core.Point{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, d := range dirs {
			next := curr.Add(d.X, d.Y)
			if g.IsWalkable(next.X, next.Y) && !visited.Has(next) {
				visited.Put(next)
				queue = append(queue, next)
			}
		}
	}
	return visited
}

// Connected reports whether every room center is reachable from the first room
func Connected(res Result) bool {
	if len(res.Rooms) == 0 {
		return true
	}
	reach := Reachable(res.Grid, res.Rooms[0].Center())
	for _, r := range res.Rooms[1:] {
		if !reach.Has(r.Center()) {
			return false
		}
	}
	return true
}
