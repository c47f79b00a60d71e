package constants

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Glyphs
const (
	GlyphPlayer = '@'
	GlyphGoblin = 'g'
	GlyphOrc    = 'o'
	GlyphWall   = '#'
	GlyphFloor  = '.'
)

// Tile Colors
var (
	// Lit tiles inside the player's current view
	WallVisibleColor  = tcell.NewRGBColor(0, 200, 120)
	FloorVisibleColor = tcell.NewRGBColor(120, 120, 120)

	// Remembered tiles outside the current view
	WallRevealedColor  = tcell.NewRGBColor(0, 70, 45)
	FloorRevealedColor = tcell.NewRGBColor(45, 45, 45)

	BackgroundColor = tcell.ColorBlack
)

// Entity Colors
var (
	PlayerColor = tcell.ColorYellow
	GoblinColor = tcell.ColorRed
	OrcColor    = tcell.NewRGBColor(255, 140, 0)
)

// Status Line Colors
var (
	StatusForeground = tcell.ColorWhite
	StatusBlocked    = tcell.NewRGBColor(255, 80, 80)
)

// Timing
const (
	// BlockedStatusTimeout is how long the blocked-move notice stays on the status line
	BlockedStatusTimeout = 1500 * time.Millisecond
)
