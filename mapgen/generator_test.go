package mapgen

import (
	"reflect"
	"testing"

	"github.com/lixenwraith/vi-rogue/constants"
	"github.com/lixenwraith/vi-rogue/core"
	"github.com/lixenwraith/vi-rogue/grid"
)

func referenceConfig(seed int64) Config {
	return Config{
		Width:    80,
		Height:   50,
		MaxRooms: 30,
		MinSize:  6,
		MaxSize:  10,
		Seed:     seed,
	}
}

// TestGenerateDeterministic verifies identical config reproduces identical output
func TestGenerateDeterministic(t *testing.T) {
	for _, seed := range []int64{0, 1, 42, 1337, -9} {
		a := Generate(referenceConfig(seed))
		b := Generate(referenceConfig(seed))

		if !a.Grid.Equal(b.Grid) {
			t.Errorf("seed %d: grids differ between runs", seed)
		}
		if !reflect.DeepEqual(a.Rooms, b.Rooms) {
			t.Errorf("seed %d: room lists differ between runs", seed)
		}
		if !reflect.DeepEqual(a.Corridors, b.Corridors) {
			t.Errorf("seed %d: corridors differ between runs", seed)
		}
	}

	if Generate(referenceConfig(1)).Grid.Equal(Generate(referenceConfig(2)).Grid) {
		t.Error("Different seeds produced identical grids")
	}
}

// TestRoomsPairwiseDisjoint verifies no two accepted rooms touch, margin included
func TestRoomsPairwiseDisjoint(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		res := Generate(referenceConfig(seed))
		for i := 0; i < len(res.Rooms); i++ {
			for j := i + 1; j < len(res.Rooms); j++ {
				if res.Rooms[i].Intersects(res.Rooms[j], constants.RoomMargin) {
					t.Fatalf("seed %d: rooms %d %+v and %d %+v intersect", seed, i, res.Rooms[i], j, res.Rooms[j])
				}
			}
		}
	}
}

// TestRoomsInsideBorder verifies rooms respect size limits and the 1-cell wall border
func TestRoomsInsideBorder(t *testing.T) {
	cfg := referenceConfig(7)
	res := Generate(cfg)
	for i, r := range res.Rooms {
		if r.Width() < cfg.MinSize || r.Width() > cfg.MaxSize || r.Height() < cfg.MinSize || r.Height() > cfg.MaxSize {
			t.Errorf("room %d has size %dx%d outside [%d,%d]", i, r.Width(), r.Height(), cfg.MinSize, cfg.MaxSize)
		}
		if r.X1 < 1 || r.Y1 < 1 || r.X2 > cfg.Width-1 || r.Y2 > cfg.Height-1 {
			t.Errorf("room %d %+v touches the outer border", i, r)
		}
		for y := r.Y1; y < r.Y2; y++ {
			for x := r.X1; x < r.X2; x++ {
				if kind, _ := res.Grid.KindAt(x, y); kind != grid.Floor {
					t.Fatalf("room %d cell (%d,%d) is %v", i, x, y, kind)
				}
			}
		}
	}
}

// TestCorridorsCarved verifies every cell on each L path between consecutive rooms is floor
func TestCorridorsCarved(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		res := Generate(referenceConfig(seed))
		if len(res.Rooms) > 0 && len(res.Corridors) != len(res.Rooms)-1 {
			t.Fatalf("seed %d: %d rooms but %d corridors", seed, len(res.Rooms), len(res.Corridors))
		}
		for i, c := range res.Corridors {
			if c.From != res.Rooms[i].Center() || c.To != res.Rooms[i+1].Center() {
				t.Fatalf("seed %d: corridor %d does not join consecutive room centers", seed, i)
			}
			for _, p := range c.Path() {
				if kind, err := res.Grid.KindAt(p.X, p.Y); err != nil || kind != grid.Floor {
					t.Fatalf("seed %d: corridor %d cell %v is %v (%v)", seed, i, p, kind, err)
				}
			}
		}
		if !Connected(res) {
			t.Errorf("seed %d: not every room is reachable from room 0", seed)
		}
	}
}

// TestReferenceScenarioSpawn verifies the 80x50 reference level offers a floor spawn
func TestReferenceScenarioSpawn(t *testing.T) {
	res := Generate(referenceConfig(20240601))
	if len(res.Rooms) < 1 {
		t.Fatal("Expected at least one room")
	}
	spawn := res.Rooms[0].Center()
	kind, err := res.Grid.KindAt(spawn.X, spawn.Y)
	if err != nil {
		t.Fatalf("KindAt(spawn) failed: %v", err)
	}
	if kind != grid.Floor {
		t.Errorf("Spawn %v is %v, expected floor", spawn, kind)
	}
}

// TestGenerateExhausted verifies impossible parameters yield zero rooms without failing
func TestGenerateExhausted(t *testing.T) {
	res := Generate(Config{Width: 8, Height: 8, MaxRooms: 5, MinSize: 10, MaxSize: 12, Seed: 3})
	if len(res.Rooms) != 0 {
		t.Errorf("Expected no rooms, got %d", len(res.Rooms))
	}
	if !res.Exhausted {
		t.Error("Expected Exhausted to be set")
	}
	if res.Grid.Count(grid.Floor) != 0 {
		t.Error("Expected an all-wall grid")
	}
	if res.Attempts != 5*DefaultMaxAttempts {
		t.Errorf("Expected %d attempts, got %d", 5*DefaultMaxAttempts, res.Attempts)
	}
}

func TestGenerateZeroRoomsRequested(t *testing.T) {
	res := Generate(Config{Width: 20, Height: 20, MaxRooms: 0, MinSize: 3, MaxSize: 4})
	if len(res.Rooms) != 0 || res.Exhausted {
		t.Errorf("Expected empty, non-exhausted result, got %d rooms exhausted=%v", len(res.Rooms), res.Exhausted)
	}
}

func TestCorridorPathShapes(t *testing.T) {
	a := core.Point{X: 2, Y: 2}
	b := core.Point{X: 5, Y: 4}

	h := CorridorPath(a, b, true)
	wantH := []core.Point{{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 4, Y: 2}, {X: 5, Y: 2}, {X: 5, Y: 3}, {X: 5, Y: 4}}
	if !reflect.DeepEqual(h, wantH) {
		t.Errorf("horizontal-first path = %v, expected %v", h, wantH)
	}

	v := CorridorPath(a, b, false)
	wantV := []core.Point{{X: 2, Y: 2}, {X: 2, Y: 3}, {X: 2, Y: 4}, {X: 3, Y: 4}, {X: 4, Y: 4}, {X: 5, Y: 4}}
	if !reflect.DeepEqual(v, wantV) {
		t.Errorf("vertical-first path = %v, expected %v", v, wantV)
	}

	// Backwards and degenerate paths
	back := CorridorPath(b, a, true)
	if back[0] != b || back[len(back)-1] != a || len(back) != 6 {
		t.Errorf("reverse path = %v", back)
	}
	single := CorridorPath(a, a, false)
	if len(single) != 1 || single[0] != a {
		t.Errorf("degenerate path = %v", single)
	}
}

func TestRoomGeometry(t *testing.T) {
	r := NewRoom(10, 20, 6, 5)
	if r.Width() != 6 || r.Height() != 5 {
		t.Errorf("Unexpected size %dx%d", r.Width(), r.Height())
	}
	if c := r.Center(); c != (core.Point{X: 12, Y: 22}) {
		t.Errorf("Center = %v", c)
	}
	if !r.Contains(r.Center()) || r.Contains(core.Point{X: 16, Y: 20}) {
		t.Error("Contains disagrees with exclusive bounds")
	}

	// Adjacent rooms intersect only once the margin is applied
	adj := NewRoom(16, 20, 3, 3)
	if r.Intersects(adj, 0) {
		t.Error("Touching rooms should not overlap without margin")
	}
	if !r.Intersects(adj, 1) {
		t.Error("Touching rooms should intersect with a 1-cell margin")
	}
	far := NewRoom(18, 20, 3, 3)
	if r.Intersects(far, 1) {
		t.Error("Rooms separated by a wall should not intersect")
	}
}

func TestReachable(t *testing.T) {
	g, _ := grid.New(7, 3, grid.Wall)
	for x := 1; x <= 5; x++ {
		_ = g.Set(x, 1, grid.Floor)
	}
	_ = g.Set(3, 1, grid.Wall)

	reach := Reachable(g, core.Point{X: 1, Y: 1})
	if reach.Size() != 2 {
		t.Errorf("Expected 2 reachable cells, got %d", reach.Size())
	}
	if reach.Has(core.Point{X: 4, Y: 1}) {
		t.Error("Cell behind wall should be unreachable")
	}
	if Reachable(g, core.Point{X: 0, Y: 0}).Size() != 0 {
		t.Error("Flood from a wall should be empty")
	}
}
