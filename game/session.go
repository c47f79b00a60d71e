// Package game wires a generated level, the entity world and the tick
// scheduler into a playable session.
package game

import (
	"fmt"
	"log"

	"github.com/lixenwraith/vi-rogue/components"
	"github.com/lixenwraith/vi-rogue/config"
	"github.com/lixenwraith/vi-rogue/constants"
	"github.com/lixenwraith/vi-rogue/core"
	"github.com/lixenwraith/vi-rogue/engine"
	"github.com/lixenwraith/vi-rogue/mapgen"
	"github.com/lixenwraith/vi-rogue/status"
	"github.com/lixenwraith/vi-rogue/systems"
)

// Session is one generated level with its world and scheduler
type Session struct {
	Ctx       *engine.GameContext
	Scheduler *engine.Scheduler
	Level     mapgen.Result
	Seed      int64
}

// Option customizes session construction
type Option func(*Session)

// WithAudio registers an audio system that plays tick cues through player
func WithAudio(player systems.AudioPlayer) Option {
	return func(s *Session) {
		if player != nil {
			s.Scheduler.AddSystem(engine.PhaseRender, systems.NewAudioSystem(player))
		}
	}
}

// WithStats registers a system that publishes tick counters to reg
func WithStats(reg *status.Registry) Option {
	return func(s *Session) {
		if reg != nil {
			s.Scheduler.AddSystem(engine.PhaseRender, systems.NewStatsSystem(reg))
		}
	}
}

// New generates the level described by cfg and spawns its occupants.
// When no room could be placed the session has no player; callers check
// Spawned before offering movement.
func New(cfg config.Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level := mapgen.Generate(cfg.Generator())
	if level.Exhausted {
		log.Printf("game: placed %d of %d rooms (seed %d)", len(level.Rooms), cfg.Map.MaxRooms, cfg.Map.Seed)
	}

	world := engine.NewWorld()
	ctx := engine.NewGameContext(world, level.Grid, level.Rooms)

	s := &Session{
		Ctx:       ctx,
		Scheduler: engine.NewScheduler(ctx),
		Level:     level,
		Seed:      cfg.Map.Seed,
	}
	s.Scheduler.AddSystem(engine.PhaseApplyMovement, systems.NewMovementSystem())
	s.Scheduler.AddSystem(engine.PhaseRunVisibility, systems.NewVisibilitySystem())

	if len(level.Rooms) > 0 {
		ctx.Player = spawnPlayer(world, level.Rooms[0].Center(), cfg.Player.ViewRange)
		queueOccupants(world, level.Rooms[1:], cfg.Occupants)
	} else {
		log.Printf("game: no rooms generated, player not spawned (seed %d)", cfg.Map.Seed)
	}

	if err := world.Commands().Commit(); err != nil {
		return nil, fmt.Errorf("spawn occupants: %w", err)
	}
	s.Scheduler.Refresh()

	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Spawned reports whether the player entity exists
func (s *Session) Spawned() bool {
	return s.Ctx.HasPlayer()
}

// Frame returns the current render surface
func (s *Session) Frame() engine.Frame {
	return s.Scheduler.Frame()
}

func spawnPlayer(w *engine.World, at core.Point, viewRange int) core.Entity {
	eb := w.NewEntity()
	engine.With(eb, w.Positions, components.PositionComponent{X: at.X, Y: at.Y})
	engine.With(eb, w.Renderables, components.RenderableComponent{
		Glyph:      constants.GlyphPlayer,
		Foreground: constants.PlayerColor,
		Background: constants.BackgroundColor,
	})
	engine.With(eb, w.Players, components.PlayerComponent{})
	engine.With(eb, w.Viewsheds, components.NewViewshed(viewRange))
	engine.With(eb, w.Names, components.NameComponent{Name: "Player"})
	return eb.Build()
}

// occupantKind describes one monster archetype
type occupantKind struct {
	name string
	look components.RenderableComponent
}

var occupantKinds = []occupantKind{
	{"Goblin", components.RenderableComponent{Glyph: constants.GlyphGoblin, Foreground: constants.GoblinColor, Background: constants.BackgroundColor}},
	{"Orc", components.RenderableComponent{Glyph: constants.GlyphOrc, Foreground: constants.OrcColor, Background: constants.BackgroundColor}},
}

// queueOccupants buffers one monster per room center, up to the configured count
func queueOccupants(w *engine.World, rooms []mapgen.Room, cfg config.OccupantsConfig) {
	n := min(len(rooms), cfg.Count)
	for i := 0; i < n; i++ {
		kind := occupantKinds[i%len(occupantKinds)]
		center := rooms[i].Center()
		name := fmt.Sprintf("%s #%d", kind.name, i+1)
		viewRange := cfg.ViewRange

		w.Commands().Spawn(func(w *engine.World, e core.Entity) error {
			if err := w.Positions.Set(e, components.PositionComponent{X: center.X, Y: center.Y}); err != nil {
				return err
			}
			if err := w.Renderables.Set(e, kind.look); err != nil {
				return err
			}
			if err := w.Monsters.Set(e, components.MonsterComponent{}); err != nil {
				return err
			}
			if err := w.Viewsheds.Set(e, components.NewViewshed(viewRange)); err != nil {
				return err
			}
			return w.Names.Set(e, components.NameComponent{Name: name})
		})
	}
}
