package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-rogue/audio"
	"github.com/lixenwraith/vi-rogue/constants"
	"github.com/lixenwraith/vi-rogue/engine"
	"github.com/lixenwraith/vi-rogue/game"
	"github.com/lixenwraith/vi-rogue/input"
	"github.com/lixenwraith/vi-rogue/render"
)

// runTerminal drives the session from keyboard events until quit
func runTerminal(session *game.Session, sound *audio.SoundManager) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer func() {
		// Restore the terminal before main's recover prints the crash
		if r := recover(); r != nil {
			screen.Fini()
			panic(r)
		}
		screen.Fini()
	}()

	renderer := render.NewTerminalRenderer(screen)
	renderer.UpdateDimensions()
	keys := input.DefaultKeyTable()

	status := &statusLine{}
	renderer.RenderFrame(session.Frame(), status.Text(session, sound.IsMuted(), time.Now()))

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			// Screen finalized elsewhere
			return nil
		case *tcell.EventResize:
			screen.Sync()
			renderer.UpdateDimensions()
		case *tcell.EventKey:
			entry := keys.Lookup(ev)
			switch entry.Command {
			case input.CommandQuit:
				return nil
			case input.CommandToggleMute:
				sound.ToggleMute()
			case input.CommandRedraw:
				screen.Sync()
			case input.CommandMove:
				if !session.Spawned() {
					continue
				}
				status.Record(session.Scheduler.Step(entry.Intent), time.Now())
			default:
				continue
			}
		default:
			continue
		}
		renderer.RenderFrame(session.Frame(), status.Text(session, sound.IsMuted(), time.Now()))
	}
}

// statusLine formats the bottom row and remembers when a move was blocked
type statusLine struct {
	blockedAt time.Time
}

// Record notes the outcome of a tick
func (s *statusLine) Record(res engine.TickResult, now time.Time) {
	if res.Blocked {
		s.blockedAt = now
	}
}

// Text renders the status for the current tick
func (s *statusLine) Text(session *game.Session, muted bool, now time.Time) string {
	if !session.Spawned() {
		return fmt.Sprintf("seed %d | no rooms generated | q quit", session.Seed)
	}

	text := fmt.Sprintf("seed %d | tick %d | explored %d", session.Seed, session.Scheduler.Tick(), session.Ctx.Revealed.Size())
	if pos, ok := session.Ctx.PlayerPosition(); ok {
		text += fmt.Sprintf(" | %d,%d", pos.X, pos.Y)
	}
	if muted {
		text += " | muted"
	}
	if !s.blockedAt.IsZero() && now.Sub(s.blockedAt) < constants.BlockedStatusTimeout {
		text += " | blocked"
	}
	return text
}
