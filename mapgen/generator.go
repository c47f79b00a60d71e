// Package mapgen builds dungeon levels out of rectangular rooms joined by
// L-shaped corridors. Generation is a pure function of Config: the same seed
// and parameters always yield the same grid, rooms and corridors.
package mapgen

import (
	"math/rand"

	"github.com/lixenwraith/vi-rogue/constants"
	"github.com/lixenwraith/vi-rogue/core"
	"github.com/lixenwraith/vi-rogue/grid"
)

// DefaultMaxAttempts bounds resampling of a single room slot
const DefaultMaxAttempts = 16

// Config holds generation parameters
type Config struct {
	Width, Height int

	MaxRooms int
	MinSize  int // Minimum room edge length
	MaxSize  int // Maximum room edge length

	// Resamples per room slot before the slot is abandoned (0 = DefaultMaxAttempts)
	MaxAttempts int

	Seed int64
}

// Corridor records one carved connection between consecutive rooms
type Corridor struct {
	From, To        core.Point
	HorizontalFirst bool
}

// Path returns the cells the corridor carved
func (c Corridor) Path() []core.Point {
	return CorridorPath(c.From, c.To, c.HorizontalFirst)
}

// Result is a generated level
type Result struct {
	Grid      *grid.Grid
	Rooms     []Room
	Corridors []Corridor

	// Attempts is the total number of room candidates sampled
	Attempts int
	// Exhausted is set when at least one room slot ran out of attempts
	Exhausted bool
}

// Generate creates a rooms-and-corridors level
func Generate(cfg Config) Result {
	cfg = sanitize(cfg)

	// 1. Grid filled with walls
	g, err := grid.New(cfg.Width, cfg.Height, grid.Wall)
	if err != nil {
		// Unusable dimensions: a 1x1 solid grid keeps callers total
		g, _ = grid.New(1, 1, grid.Wall)
		return Result{Grid: g, Exhausted: true}
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	res := Result{Grid: g}

	// 2. Room placement with bounded resampling per slot
	for slot := 0; slot < cfg.MaxRooms; slot++ {
		room, ok := placeRoom(&res, cfg, rng)
		if !ok {
			res.Exhausted = true
			continue
		}
		carveRoom(g, room)

		// 3. Connect to the previously accepted room
		if n := len(res.Rooms); n > 0 {
			c := Corridor{
				From:            res.Rooms[n-1].Center(),
				To:              room.Center(),
				HorizontalFirst: rng.Intn(2) == 1,
			}
			carvePath(g, c.Path())
			res.Corridors = append(res.Corridors, c)
		}
		res.Rooms = append(res.Rooms, room)
	}

	return res
}

// placeRoom samples candidates until one fits without touching accepted rooms
func placeRoom(res *Result, cfg Config, rng *rand.Rand) (Room, bool) {
	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		res.Attempts++

		w := cfg.MinSize + rng.Intn(cfg.MaxSize-cfg.MinSize+1)
		h := cfg.MinSize + rng.Intn(cfg.MaxSize-cfg.MinSize+1)

		// Keep a 1-cell wall border: x in [1, width-1-w]
		spanX := cfg.Width - 1 - w
		spanY := cfg.Height - 1 - h
		if spanX < 1 || spanY < 1 {
			continue
		}
		x := 1 + rng.Intn(spanX)
		y := 1 + rng.Intn(spanY)

		candidate := NewRoom(x, y, w, h)
		if !overlapsAny(candidate, res.Rooms) {
			return candidate, true
		}
	}
	return Room{}, false
}

func overlapsAny(r Room, rooms []Room) bool {
	for _, other := range rooms {
		if r.Intersects(other, constants.RoomMargin) {
			return true
		}
	}
	return false
}

// --- Carving ---

func carveRoom(g *grid.Grid, r Room) {
	for y := r.Y1; y < r.Y2; y++ {
		for x := r.X1; x < r.X2; x++ {
			_ = g.Set(x, y, grid.Floor)
		}
	}
}

func carvePath(g *grid.Grid, path []core.Point) {
	for _, p := range path {
		_ = g.Set(p.X, p.Y, grid.Floor)
	}
}

// CorridorPath returns the L-shaped cell sequence from a to b. With
// horizontalFirst the path runs along a.Y to b.X and then along b.X to b.Y,
// otherwise along a.X to b.Y and then along b.Y to b.X. The corner appears once.
func CorridorPath(a, b core.Point, horizontalFirst bool) []core.Point {
	path := make([]core.Point, 0, abs(a.X-b.X)+abs(a.Y-b.Y)+1)
	if horizontalFirst {
		path = appendHorizontal(path, a.X, b.X, a.Y)
		path = appendVertical(path, a.Y, b.Y, b.X)
	} else {
		path = appendVertical(path, a.Y, b.Y, a.X)
		path = appendHorizontal(path, a.X, b.X, b.Y)
	}
	return path
}

// appendHorizontal appends (x1..x2, y), skipping x1 when it is already the path tail
func appendHorizontal(path []core.Point, x1, x2, y int) []core.Point {
	step := sign(x2 - x1)
	x := x1
	for {
		p := core.Point{X: x, Y: y}
		if len(path) == 0 || path[len(path)-1] != p {
			path = append(path, p)
		}
		if x == x2 {
			return path
		}
		x += step
	}
}

func appendVertical(path []core.Point, y1, y2, x int) []core.Point {
	step := sign(y2 - y1)
	y := y1
	for {
		p := core.Point{X: x, Y: y}
		if len(path) == 0 || path[len(path)-1] != p {
			path = append(path, p)
		}
		if y == y2 {
			return path
		}
		y += step
	}
}

// --- Helpers ---

func sanitize(cfg Config) Config {
	if cfg.MaxRooms < 0 {
		cfg.MaxRooms = 0
	}
	if cfg.MinSize < 1 {
		cfg.MinSize = 1
	}
	if cfg.MaxSize < cfg.MinSize {
		cfg.MaxSize = cfg.MinSize
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	return cfg
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
