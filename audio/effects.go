package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vi-rogue/constants"
)

// shape selects the waveform of a partial
type shape uint8

const (
	shapeSine shape = iota
	shapeSaw
)

// sample evaluates the waveform at phase in [0, 1)
func (s shape) sample(phase float64) float64 {
	if s == shapeSaw {
		return 2*phase - 1
	}
	return math.Sin(2 * math.Pi * phase)
}

// partial is one tone within a cue; weights of a cue should sum to at most 1
type partial struct {
	freq   float64
	weight float64
	shape  shape
}

// cueSpec describes a cue before it is bound to a sample rate
type cueSpec struct {
	duration time.Duration
	attack   time.Duration
	release  time.Duration
	// glide scales every partial's pitch linearly to this factor by the end
	glide    float64
	partials []partial
}

var (
	// Low saw thud that drops an octave
	bumpCue = cueSpec{
		duration: constants.BumpSoundDuration,
		attack:   constants.BumpSoundAttack,
		release:  constants.BumpSoundRelease,
		glide:    0.5,
		partials: []partial{{freq: 110, weight: 1, shape: shapeSaw}},
	}

	// E5 with a softer fifth above
	revealCue = cueSpec{
		duration: constants.RevealSoundDuration,
		attack:   constants.RevealSoundAttack,
		release:  constants.RevealSoundRelease,
		glide:    1,
		partials: []partial{
			{freq: 659.25, weight: 0.7, shape: shapeSine},
			{freq: 987.77, weight: 0.3, shape: shapeSine},
		},
	}
)

// cue streams a cueSpec: summed partials under a linear attack/release gate
type cue struct {
	spec   cueSpec
	rate   float64
	total  int
	attack int
	fade   int
	pos    int
	phases []float64
}

func newCue(spec cueSpec, rate beep.SampleRate) *cue {
	return &cue{
		spec:   spec,
		rate:   float64(rate),
		total:  rate.N(spec.duration),
		attack: rate.N(spec.attack),
		fade:   rate.N(spec.release),
		phases: make([]float64, len(spec.partials)),
	}
}

// gate returns the envelope level at the current position
func (c *cue) gate() float64 {
	level := 1.0
	if c.attack > 0 && c.pos < c.attack {
		level = float64(c.pos) / float64(c.attack)
	}
	if left := c.total - c.pos; c.fade > 0 && left < c.fade {
		level = min(level, float64(left)/float64(c.fade))
	}
	return level
}

// Stream implements beep.Streamer
func (c *cue) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if c.pos >= c.total {
			return i, i > 0
		}

		bend := 1 + (c.spec.glide-1)*float64(c.pos)/float64(c.total)
		var v float64
		for j, p := range c.spec.partials {
			v += p.weight * p.shape.sample(c.phases[j])
			_, c.phases[j] = math.Modf(c.phases[j] + p.freq*bend/c.rate)
		}
		v *= c.gate()

		samples[i] = [2]float64{v, v}
		c.pos++
	}
	return len(samples), true
}

// Err implements beep.Streamer
func (c *cue) Err() error { return nil }

// scaled applies a linear volume; zero or less is silence
func scaled(s beep.Streamer, vol float64) beep.Streamer {
	return &effects.Gain{Streamer: s, Gain: max(vol, 0) - 1}
}

// CreateBumpSound generates the blocked-move thud
func CreateBumpSound(cfg *AudioConfig) beep.Streamer {
	return scaled(newCue(bumpCue, beep.SampleRate(cfg.SampleRate)), cfg.EffectVolumes[SoundBump]*cfg.MasterVolume)
}

// CreateRevealSound generates the chime played when unexplored tiles come into view
func CreateRevealSound(cfg *AudioConfig) beep.Streamer {
	return scaled(newCue(revealCue, beep.SampleRate(cfg.SampleRate)), cfg.EffectVolumes[SoundReveal]*cfg.MasterVolume)
}

// GetSoundEffect returns the streamer for soundType, nil for unknown types
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundBump:
		return CreateBumpSound(cfg)
	case SoundReveal:
		return CreateRevealSound(cfg)
	default:
		return nil
	}
}
