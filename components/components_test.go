package components

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-rogue/core"
)

// TestNewViewshedStartsDirty verifies a fresh viewshed requests recomputation
func TestNewViewshedStartsDirty(t *testing.T) {
	v := NewViewshed(8)
	if !v.Dirty {
		t.Error("Expected new viewshed to be dirty")
	}
	if v.Range != 8 {
		t.Errorf("Expected range 8, got %d", v.Range)
	}
	if v.CanSee(core.Point{}) {
		t.Error("Empty viewshed should see nothing")
	}

	v.VisibleTiles.Put(core.Point{X: 3, Y: 4})
	if !v.CanSee(core.Point{X: 3, Y: 4}) {
		t.Error("Expected tile to be visible after Put")
	}
}

func TestZeroViewshedCanSee(t *testing.T) {
	var v ViewshedComponent
	if v.CanSee(core.Point{X: 1, Y: 1}) {
		t.Error("Zero-value viewshed should see nothing")
	}
}

func TestRenderableStyle(t *testing.T) {
	r := RenderableComponent{Glyph: '@', Foreground: tcell.ColorYellow, Background: tcell.ColorBlack}
	fg, bg, _ := r.Style().Decompose()
	if fg != tcell.ColorYellow || bg != tcell.ColorBlack {
		t.Errorf("Style colors = %v/%v", fg, bg)
	}
}

func TestPositionPoint(t *testing.T) {
	p := PositionComponent{X: 4, Y: 9}
	if p.Point() != (core.Point{X: 4, Y: 9}) {
		t.Errorf("Point() = %v", p.Point())
	}
}
