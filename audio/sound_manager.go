package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-rogue/constants"
)

// SoundManager plays short cues through the system speaker.
// Every method is safe to call when the speaker could not be opened;
// playback is then a no-op.
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	lastPlayed  map[SoundType]time.Time
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:        cfg,
		mixer:      &beep.Mixer{},
		lastPlayed: make(map[SoundType]time.Time),
	}
}

// Initialize opens the speaker; disabled configs succeed without touching it
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.SpeakerBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker Close; an empty mixer keeps it silent
	sm.initialized = false
}

// IsInitialized reports whether the speaker is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// ToggleMute flips the mute flag and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// IsMuted reports whether playback is muted
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play queues soundType on the mixer. Repeats of the same sound within its
// own duration are dropped so held keys do not stack cues.
func (sm *SoundManager) Play(soundType SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	now := time.Now()
	if last, ok := sm.lastPlayed[soundType]; ok && now.Sub(last) < soundDuration(soundType) {
		return
	}

	streamer := GetSoundEffect(soundType, sm.cfg)
	if streamer == nil {
		return
	}
	sm.lastPlayed[soundType] = now

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// PlayBump plays the blocked-move cue
func (sm *SoundManager) PlayBump() {
	sm.Play(SoundBump)
}

// PlayReveal plays the exploration cue
func (sm *SoundManager) PlayReveal() {
	sm.Play(SoundReveal)
}

func soundDuration(s SoundType) time.Duration {
	switch s {
	case SoundBump:
		return constants.BumpSoundDuration
	case SoundReveal:
		return constants.RevealSoundDuration
	default:
		return 0
	}
}
