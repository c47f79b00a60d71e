package systems

import (
	"github.com/lixenwraith/vi-rogue/engine"
)

// AudioPlayer plays feedback cues; satisfied by audio.SoundManager
type AudioPlayer interface {
	PlayBump()
	PlayReveal()
}

// AudioSystem turns tick outcomes into sound cues during the Render phase
type AudioSystem struct {
	player AudioPlayer
}

// NewAudioSystem creates an audio system; player may be nil if audio is disabled
func NewAudioSystem(player AudioPlayer) *AudioSystem {
	return &AudioSystem{player: player}
}

// Update implements engine.System
func (s *AudioSystem) Update(ctx *engine.GameContext) {
	if s.player == nil {
		return
	}
	if ctx.LastMove.Blocked {
		s.player.PlayBump()
		return
	}
	if ctx.LastMove.Moved && ctx.NewlyRevealed > 0 {
		s.player.PlayReveal()
	}
}
