package status

import (
	"encoding/json"
	"strings"
	"sync"
	"testing"
)

// TestSnapshotCopiesCounters verifies every counter reaches the snapshot
func TestSnapshotCopiesCounters(t *testing.T) {
	r := NewRegistry()
	r.Ticks.Add(3)
	r.Moves.Add(2)
	r.Blocked.Add(1)
	r.Revealed.Store(40)
	r.Entities.Store(5)
	r.SetLastIntent("left")

	want := Snapshot{Ticks: 3, Moves: 2, Blocked: 1, Revealed: 40, Entities: 5, LastIntent: "left"}
	if got := r.Snapshot(); got != want {
		t.Errorf("Snapshot = %+v, want %+v", got, want)
	}
}

// TestLastIntentZeroValue verifies an unused registry reports no intent
func TestLastIntentZeroValue(t *testing.T) {
	r := NewRegistry()
	if got := r.LastIntent(); got != "" {
		t.Errorf("LastIntent = %q, want empty", got)
	}
	if got := r.Snapshot(); got != (Snapshot{}) {
		t.Errorf("Snapshot of fresh registry = %+v, want zero", got)
	}
}

// TestSnapshotJSONKeys verifies the wire names used by the web view
func TestSnapshotJSONKeys(t *testing.T) {
	data, err := json.Marshal(Snapshot{Ticks: 1, LastIntent: "up"})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	for _, key := range []string{`"ticks":1`, `"moves":0`, `"blocked":0`, `"revealed":0`, `"entities":0`, `"last_intent":"up"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("JSON %s missing %s", data, key)
		}
	}
}

// TestConcurrentWritesAndSnapshots verifies counters stay exact while being read
func TestConcurrentWritesAndSnapshots(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Ticks.Add(1)
				r.SetLastIntent("right")
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = r.Snapshot()
			}
		}()
	}
	wg.Wait()

	if got := r.Ticks.Load(); got != 800 {
		t.Errorf("Ticks = %d, want 800", got)
	}
	if got := r.LastIntent(); got != "right" {
		t.Errorf("LastIntent = %q, want right", got)
	}
}
