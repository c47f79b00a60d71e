package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundBump   SoundType = iota // Move into a wall
	SoundReveal                  // Unexplored tiles came into view
	soundTypeCount
)

// String returns the sound's config key
func (s SoundType) String() string {
	switch s {
	case SoundBump:
		return "bump"
	case SoundReveal:
		return "reveal"
	default:
		return "unknown"
	}
}

// AudioConfig holds mixer settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns settings with all effects at full volume
func DefaultAudioConfig() *AudioConfig {
	cfg := &AudioConfig{
		Enabled:       true,
		MasterVolume:  0.5,
		EffectVolumes: make(map[SoundType]float64, soundTypeCount),
		SampleRate:    48000,
	}
	for s := SoundType(0); s < soundTypeCount; s++ {
		cfg.EffectVolumes[s] = 1.0
	}
	return cfg
}
