package webview

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-rogue/core"
	"github.com/lixenwraith/vi-rogue/engine"
	"github.com/lixenwraith/vi-rogue/grid"
	"github.com/lixenwraith/vi-rogue/render"
)

// Fog markers used in FrameDTO.Fog
const (
	fogVisible  = 'v'
	fogRevealed = 'r'
	fogUnknown  = ' '
)

// PointDTO is a grid coordinate
type PointDTO struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func toPoint(p core.Point) PointDTO {
	return PointDTO{X: p.X, Y: p.Y}
}

// EntityDTO is one drawable entity
type EntityDTO struct {
	ID     string   `json:"id"`
	Name   string   `json:"name,omitempty"`
	Glyph  string   `json:"glyph"`
	Fg     string   `json:"fg,omitempty"`
	Bg     string   `json:"bg,omitempty"`
	Pos    PointDTO `json:"pos"`
	Player bool     `json:"player,omitempty"`
}

// FrameDTO is the JSON form of the render surface. Rows holds the glyph of
// every seen tile and a space for unseen ones; Fog marks each cell as
// visible, remembered or unknown.
type FrameDTO struct {
	Tick     uint64      `json:"tick"`
	Width    int         `json:"width"`
	Height   int         `json:"height"`
	Rows     []string    `json:"rows"`
	Fog      []string    `json:"fog"`
	Entities []EntityDTO `json:"entities"`
	Player   *PointDTO   `json:"player,omitempty"`
}

// TickDTO is the JSON form of a tick result
type TickDTO struct {
	Tick     uint64   `json:"tick"`
	Intent   string   `json:"intent"`
	Moved    bool     `json:"moved"`
	Blocked  bool     `json:"blocked"`
	From     PointDTO `json:"from"`
	To       PointDTO `json:"to"`
	Revealed int      `json:"revealed"`
}

// CellDTO answers an inspect query
type CellDTO struct {
	Pos         PointDTO `json:"pos"`
	Kind        string   `json:"kind"`
	Visible     bool     `json:"visible"`
	Revealed    bool     `json:"revealed"`
	LineOfSight bool     `json:"line_of_sight"`
	Entities    []string `json:"entities,omitempty"`
}

// Message is the envelope pushed over the websocket
type Message struct {
	Type   string    `json:"type"`
	Frame  *FrameDTO `json:"frame,omitempty"`
	Result *TickDTO  `json:"result,omitempty"`
	Error  string    `json:"error,omitempty"`
}

// ClientMessage is a request read from the websocket
type ClientMessage struct {
	Type   string `json:"type"`
	Intent string `json:"intent"`
}

// NewFrameDTO snapshots f. Occupants are included only while visible to the player.
func NewFrameDTO(f engine.Frame) FrameDTO {
	dto := FrameDTO{
		Tick:   f.Tick(),
		Width:  f.Width(),
		Height: f.Height(),
		Rows:   make([]string, f.Height()),
		Fog:    make([]string, f.Height()),
	}

	var rows, fog strings.Builder
	for y := 0; y < f.Height(); y++ {
		rows.Reset()
		fog.Reset()
		for x := 0; x < f.Width(); x++ {
			p := core.Point{X: x, Y: y}
			visible, revealed := f.Visible(p), f.Revealed(p)
			kind, _ := f.KindAt(x, y)

			ch, _, ok := render.TileAppearance(kind, visible, revealed)
			if !ok {
				ch = ' '
			}
			rows.WriteRune(ch)

			switch {
			case visible:
				fog.WriteByte(fogVisible)
			case revealed:
				fog.WriteByte(fogRevealed)
			default:
				fog.WriteByte(fogUnknown)
			}
		}
		dto.Rows[y] = rows.String()
		dto.Fog[y] = fog.String()
	}

	dto.Entities = make([]EntityDTO, 0)
	for _, d := range f.Drawables() {
		if !d.Player && !f.Visible(d.Position) {
			continue
		}
		dto.Entities = append(dto.Entities, EntityDTO{
			ID:     d.Entity.String(),
			Name:   d.Name,
			Glyph:  string(d.Renderable.Glyph),
			Fg:     colorHex(d.Renderable.Foreground),
			Bg:     colorHex(d.Renderable.Background),
			Pos:    toPoint(d.Position),
			Player: d.Player,
		})
	}

	if p, ok := f.PlayerPosition(); ok {
		pt := toPoint(p)
		dto.Player = &pt
	}
	return dto
}

// NewTickDTO converts a tick result
func NewTickDTO(res engine.TickResult) TickDTO {
	return TickDTO{
		Tick:     res.Tick,
		Intent:   res.Intent.String(),
		Moved:    res.Moved,
		Blocked:  res.Blocked,
		From:     toPoint(res.From),
		To:       toPoint(res.To),
		Revealed: res.Revealed,
	}
}

// kindName reports a tile's kind, hiding it until the player has seen it
func kindName(kind grid.TileKind, revealed bool) string {
	if !revealed {
		return "unknown"
	}
	return kind.String()
}

// colorHex renders c as #rrggbb, empty for the terminal default
func colorHex(c tcell.Color) string {
	hex := c.Hex()
	if hex < 0 {
		return ""
	}
	return fmt.Sprintf("#%06x", hex)
}
