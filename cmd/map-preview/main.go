package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/vi-rogue/config"
	"github.com/lixenwraith/vi-rogue/core"
	"github.com/lixenwraith/vi-rogue/grid"
	"github.com/lixenwraith/vi-rogue/mapgen"
)

// options holds the preview's command-line overrides
type options struct {
	configPath string
	seed       int64
	width      int
	height     int
	rooms      int
	list       bool
}

// newFlagSet binds the preview flags to o
func newFlagSet(o *options) *flag.FlagSet {
	fs := flag.NewFlagSet("map-preview", flag.ExitOnError)
	fs.StringVar(&o.configPath, "config", "", "Optional TOML config for map defaults")
	fs.Int64Var(&o.seed, "seed", 0, "Map seed (overrides config)")
	fs.IntVar(&o.width, "width", 0, "Map width (0 keeps config)")
	fs.IntVar(&o.height, "height", 0, "Map height (0 keeps config)")
	fs.IntVar(&o.rooms, "rooms", -1, "Maximum rooms (-1 keeps config)")
	fs.BoolVar(&o.list, "list", false, "List rooms and corridors after the map")
	return fs
}

// applyOverrides copies flags the user set onto cfg; the seed only when -seed was given
func applyOverrides(cfg *config.Config, fs *flag.FlagSet, o options) {
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.Map.Seed = o.seed
		}
	})
	if o.width > 0 {
		cfg.Map.Width = o.width
	}
	if o.height > 0 {
		cfg.Map.Height = o.height
	}
	if o.rooms >= 0 {
		cfg.Map.MaxRooms = o.rooms
	}
}

func main() {
	var opts options
	fs := newFlagSet(&opts)
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyOverrides(&cfg, fs, opts)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid map parameters: %v\n", err)
		os.Exit(1)
	}

	startT := time.Now()
	res := mapgen.Generate(cfg.Generator())
	dur := time.Since(startT)

	fmt.Printf("Seed %d: %dx%d, %d rooms, %d corridors, %d attempts in %v\n",
		cfg.Map.Seed, res.Grid.Width(), res.Grid.Height(), len(res.Rooms), len(res.Corridors), res.Attempts, dur)
	floor := res.Grid.Count(grid.Floor)
	fmt.Printf("Floor: %d of %d tiles (%.1f%%)\n", floor, res.Grid.Len(), 100*float64(floor)/float64(res.Grid.Len()))
	if res.Exhausted {
		fmt.Println("Status: placement attempts exhausted")
	}
	if mapgen.Connected(res) {
		fmt.Println("Connectivity: all rooms reachable")
	} else {
		fmt.Println("Connectivity: DISCONNECTED")
	}

	draw(res)

	if opts.list {
		for i, r := range res.Rooms {
			c := r.Center()
			fmt.Printf("room %2d: (%d,%d)-(%d,%d) center %d,%d\n", i, r.X1, r.Y1, r.X2, r.Y2, c.X, c.Y)
		}
		for i, c := range res.Corridors {
			fmt.Printf("corridor %2d: %d cells\n", i, len(c.Path()))
		}
	}
}

// draw prints the grid with room centers numbered
func draw(res mapgen.Result) {
	centers := make(map[core.Point]int, len(res.Rooms))
	for i, r := range res.Rooms {
		centers[r.Center()] = i
	}

	g := res.Grid
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := core.Point{X: x, Y: y}
			if i, ok := centers[p]; ok {
				fmt.Print(string(rune('0' + i%10)))
				continue
			}
			if g.IsWalkable(x, y) {
				fmt.Print(".")
			} else {
				fmt.Print("█")
			}
		}
		fmt.Println()
	}
}
