// Package grid holds the static tile classification of a dungeon level and the
// coordinate math over it. Tiles are stored row-major: index(x,y) = y*width + x.
package grid

import (
	"errors"
	"fmt"
	"strings"
)

// TileKind classifies a single cell
type TileKind uint8

const (
	Wall TileKind = iota
	Floor
)

// ErrOutOfBounds is returned for coordinates or indices outside the grid
var ErrOutOfBounds = errors.New("coordinate out of bounds")

func (k TileKind) String() string {
	switch k {
	case Wall:
		return "wall"
	case Floor:
		return "floor"
	default:
		return fmt.Sprintf("TileKind(%d)", uint8(k))
	}
}

// Blocks reports whether the tile stops both movement and sight
func (k TileKind) Blocks() bool {
	return k == Wall
}

// View is the read-only surface of a grid handed to systems and renderers
type View interface {
	Width() int
	Height() int
	InBounds(x, y int) bool
	KindAt(x, y int) (TileKind, error)
	IsWalkable(x, y int) bool
	IsOpaque(x, y int) bool
	Clamp(x, y int) (int, int)
}

// Grid is a fixed-size row-major tile map
type Grid struct {
	width  int
	height int
	tiles  []TileKind
}

// New creates a width x height grid filled with the given kind
func New(width, height int, fill TileKind) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("grid dimensions %dx%d must be positive", width, height)
	}
	tiles := make([]TileKind, width*height)
	if fill != Wall {
		for i := range tiles {
			tiles[i] = fill
		}
	}
	return &Grid{width: width, height: height, tiles: tiles}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells
func (g *Grid) Len() int { return len(g.tiles) }

// InBounds reports whether (x, y) lies inside the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Index converts a coordinate to its flat row-major index
func (g *Grid) Index(x, y int) (int, error) {
	if !g.InBounds(x, y) {
		return 0, fmt.Errorf("(%d,%d) in %dx%d grid: %w", x, y, g.width, g.height, ErrOutOfBounds)
	}
	return y*g.width + x, nil
}

// Coords converts a flat index back to its coordinate
func (g *Grid) Coords(i int) (x, y int, err error) {
	if i < 0 || i >= len(g.tiles) {
		return 0, 0, fmt.Errorf("index %d in grid of %d cells: %w", i, len(g.tiles), ErrOutOfBounds)
	}
	return i % g.width, i / g.width, nil
}

// KindAt returns the tile kind at (x, y)
func (g *Grid) KindAt(x, y int) (TileKind, error) {
	i, err := g.Index(x, y)
	if err != nil {
		return Wall, err
	}
	return g.tiles[i], nil
}

// Set overwrites the tile at (x, y); only map generation and tests write tiles
func (g *Grid) Set(x, y int, kind TileKind) error {
	i, err := g.Index(x, y)
	if err != nil {
		return err
	}
	g.tiles[i] = kind
	return nil
}

// IsWalkable reports whether (x, y) is an in-bounds floor tile
func (g *Grid) IsWalkable(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return !g.tiles[y*g.width+x].Blocks()
}

// IsOpaque reports whether (x, y) blocks sight; out-of-bounds cells are opaque
func (g *Grid) IsOpaque(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.tiles[y*g.width+x].Blocks()
}

// Clamp pins (x, y) to [0,width-1] x [0,height-1]
func (g *Grid) Clamp(x, y int) (int, int) {
	return min(max(x, 0), g.width-1), min(max(y, 0), g.height-1)
}

// Count returns the number of tiles of the given kind
func (g *Grid) Count(kind TileKind) int {
	n := 0
	for _, t := range g.tiles {
		if t == kind {
			n++
		}
	}
	return n
}

// Equal reports whether two grids have identical dimensions and tiles
func (g *Grid) Equal(o *Grid) bool {
	if g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.tiles {
		if g.tiles[i] != o.tiles[i] {
			return false
		}
	}
	return true
}

// String renders the grid as rows of '#' (wall) and '.' (floor)
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.tiles[y*g.width+x] == Floor {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
