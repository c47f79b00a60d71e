package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-rogue/constants"
	"github.com/lixenwraith/vi-rogue/core"
	"github.com/lixenwraith/vi-rogue/engine"
	"github.com/lixenwraith/vi-rogue/grid"
)

// statusRows is the height reserved below the map
const statusRows = 1

// TerminalRenderer draws frames onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int

	// Map viewport; scrolls to keep the player centered on small terminals
	gameWidth  int
	gameHeight int
	cameraX    int
	cameraY    int
}

// NewTerminalRenderer creates a renderer for screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen}
	r.UpdateDimensions()
	return r
}

// UpdateDimensions re-reads the terminal size; call on resize
func (r *TerminalRenderer) UpdateDimensions() {
	r.width, r.height = r.screen.Size()
}

// RenderFrame draws the map, entities and status line, then shows the screen
func (r *TerminalRenderer) RenderFrame(f engine.Frame, status string) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(constants.BackgroundColor)

	r.layout(f)
	r.drawTiles(f)
	r.drawEntities(f)
	r.drawStatusBar(status, defaultStyle)

	r.screen.Show()
}

// layout sizes the viewport and centers the camera on the player
func (r *TerminalRenderer) layout(f engine.Frame) {
	r.gameWidth = min(r.width, f.Width())
	r.gameHeight = max(min(r.height-statusRows, f.Height()), 0)

	focus, ok := f.PlayerPosition()
	if !ok {
		r.cameraX, r.cameraY = 0, 0
		return
	}
	r.cameraX = clamp(focus.X-r.gameWidth/2, 0, f.Width()-r.gameWidth)
	r.cameraY = clamp(focus.Y-r.gameHeight/2, 0, f.Height()-r.gameHeight)
}

func (r *TerminalRenderer) drawTiles(f engine.Frame) {
	for sy := 0; sy < r.gameHeight; sy++ {
		for sx := 0; sx < r.gameWidth; sx++ {
			p := core.Point{X: sx + r.cameraX, Y: sy + r.cameraY}
			kind, err := f.KindAt(p.X, p.Y)
			if err != nil {
				continue
			}
			ch, style, ok := TileAppearance(kind, f.Visible(p), f.Revealed(p))
			if !ok {
				continue
			}
			r.screen.SetContent(sx, sy, ch, nil, style)
		}
	}
}

// drawEntities draws occupants the player can currently see; the player always
func (r *TerminalRenderer) drawEntities(f engine.Frame) {
	for _, d := range f.Drawables() {
		if !d.Player && !f.Visible(d.Position) {
			continue
		}
		sx, sy := d.Position.X-r.cameraX, d.Position.Y-r.cameraY
		if sx < 0 || sy < 0 || sx >= r.gameWidth || sy >= r.gameHeight {
			continue
		}
		r.screen.SetContent(sx, sy, d.Renderable.Glyph, nil, d.Renderable.Style())
	}
}

func (r *TerminalRenderer) drawStatusBar(status string, defaultStyle tcell.Style) {
	statusY := r.gameHeight
	if statusY >= r.height {
		return
	}

	// Clear status bar
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, statusY, ' ', nil, defaultStyle)
	}

	style := defaultStyle.Foreground(constants.StatusForeground)
	x := 0
	for _, ch := range status {
		if x >= r.width {
			break
		}
		r.screen.SetContent(x, statusY, ch, nil, style)
		x++
	}
}

// TileAppearance returns how a tile is drawn: bright when visible, dim when
// only remembered, and not at all (ok=false) when never seen
func TileAppearance(kind grid.TileKind, visible, revealed bool) (rune, tcell.Style, bool) {
	if !visible && !revealed {
		return ' ', tcell.StyleDefault, false
	}

	base := tcell.StyleDefault.Background(constants.BackgroundColor)
	switch kind {
	case grid.Wall:
		if visible {
			return constants.GlyphWall, base.Foreground(constants.WallVisibleColor), true
		}
		return constants.GlyphWall, base.Foreground(constants.WallRevealedColor), true
	default:
		if visible {
			return constants.GlyphFloor, base.Foreground(constants.FloorVisibleColor), true
		}
		return constants.GlyphFloor, base.Foreground(constants.FloorRevealedColor), true
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
