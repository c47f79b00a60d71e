package constants

import "time"

// Bump Sound Timing (blocked move)
const (
	BumpSoundDuration = 80 * time.Millisecond
	BumpSoundAttack   = 5 * time.Millisecond
	BumpSoundRelease  = 20 * time.Millisecond
)

// Reveal Sound Timing (new room entered view)
const (
	RevealSoundDuration = 250 * time.Millisecond
	RevealSoundAttack   = 5 * time.Millisecond
	RevealSoundRelease  = 200 * time.Millisecond
)

// Speaker
const (
	// SpeakerBufferDuration is the speaker latency buffer
	SpeakerBufferDuration = 100 * time.Millisecond
)
