package components

import "github.com/gdamore/tcell/v2"

// RenderableComponent is the immutable visual descriptor drawn at an entity's position
type RenderableComponent struct {
	Glyph      rune
	Foreground tcell.Color
	Background tcell.Color
}

// Style converts the descriptor into a tcell style
func (r RenderableComponent) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(r.Foreground).Background(r.Background)
}
