package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/lixenwraith/vi-rogue/audio"
	"github.com/lixenwraith/vi-rogue/config"
	"github.com/lixenwraith/vi-rogue/game"
	"github.com/lixenwraith/vi-rogue/status"
)

var (
	configFlag     = flag.String("config", "vi-rogue.toml", "Path to TOML config file")
	seedFlag       = flag.Int64("seed", 0, "Map seed (overrides config; random when unset)")
	debugFlag      = flag.Bool("debug", false, "Write logs to logs/vi-rogue.log")
	webFlag        = flag.Bool("web", false, "Serve the web view instead of the terminal")
	addrFlag       = flag.String("addr", "", "Web listen address (overrides config)")
	muteFlag       = flag.Bool("mute", false, "Disable sound")
	dumpConfigFlag = flag.Bool("dump-config", false, "Print the effective config and exit")
)

func main() {
	// Panic Recovery: print the crash after the terminal has been restored
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-ROGUE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg.Map.Seed = resolveSeed(cfg.Map.Seed, time.Now())
	if *addrFlag != "" {
		cfg.Web.Addr = *addrFlag
	}

	if *dumpConfigFlag {
		if err := cfg.Encode(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode config: %v\n", err)
			os.Exit(1)
		}
		return
	}

	sound := newSoundManager(cfg, *muteFlag)
	defer sound.Cleanup()

	stats := status.NewRegistry()
	session, err := game.New(cfg, game.WithAudio(sound), game.WithStats(stats))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start game: %v\n", err)
		os.Exit(1)
	}
	log.Printf("vi-rogue: seed %d, %d rooms, %d entities", session.Seed, len(session.Level.Rooms), session.Ctx.World.EntityCount())

	if *webFlag {
		err = runWeb(session, stats, cfg.Web.Addr)
	} else {
		err = runTerminal(session, sound)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-rogue: %v\n", err)
		os.Exit(1)
	}
}

// resolveSeed prefers an explicit -seed flag, then a non-zero config seed,
// then the clock
func resolveSeed(configured int64, now time.Time) int64 {
	explicit := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			explicit = true
		}
	})
	switch {
	case explicit:
		return *seedFlag
	case configured != 0:
		return configured
	default:
		return now.UnixNano()
	}
}

// newSoundManager builds the mixer; a speaker that fails to open leaves the
// game silent instead of aborting
func newSoundManager(cfg config.Config, mute bool) *audio.SoundManager {
	audioCfg := audio.DefaultAudioConfig()
	audioCfg.Enabled = cfg.Audio.Enabled && !mute
	audioCfg.MasterVolume = cfg.Audio.Volume

	sound := audio.NewSoundManager(audioCfg)
	if err := sound.Initialize(); err != nil {
		log.Printf("audio: disabled: %v", err)
	}
	return sound
}
