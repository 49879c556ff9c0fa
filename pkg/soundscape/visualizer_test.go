// ABOUTME: Tests for the high-level Visualizer API
// ABOUTME: Exercises construction defaults, custom sources, and lifecycle
package soundscape

import (
	"path/filepath"
	"testing"
	"time"
)

type rampSource struct {
	bins int
}

func (s *rampSource) NextFrame(dst []float64) error {
	for i := range dst {
		dst[i] = float64(i) / float64(len(dst))
	}
	return nil
}

func (s *rampSource) Bins() int    { return s.bins }
func (s *rampSource) Close() error { return nil }

func TestNewDefaults(t *testing.T) {
	viz, err := New(Config{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer viz.Stop()

	if viz.Mode() != "sacred" {
		t.Errorf("expected default mode sacred, got %q", viz.Mode())
	}
	if viz.Snapshot() != nil {
		t.Error("expected nil snapshot before Start")
	}
}

func TestNewMissingAudioFile(t *testing.T) {
	_, err := New(Config{AudioFile: "/nonexistent/track.mp3"})
	if err == nil {
		t.Fatal("expected error for missing audio file")
	}
}

func TestCustomSource(t *testing.T) {
	viz, err := New(Config{Source: &rampSource{bins: 32}, Mode: "pulse"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer viz.Stop()

	viz.Start()
	waitForSnapshot(t, viz)

	snap := viz.Snapshot()
	if len(snap.Frame) != 32 {
		t.Errorf("expected 32-bin frame, got %d", len(snap.Frame))
	}

	shapes := viz.Scene(0, 800, 600)
	if len(shapes) == 0 {
		t.Error("expected scene primitives after first tick")
	}
}

func TestModeSwitching(t *testing.T) {
	viz, err := New(Config{Source: &rampSource{bins: 16}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer viz.Stop()

	if err := viz.SetMode("neural"); err != nil {
		t.Fatalf("SetMode failed: %v", err)
	}
	if viz.Mode() != "neural" {
		t.Errorf("expected mode neural, got %q", viz.Mode())
	}
	if err := viz.SetMode("bogus"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestModesList(t *testing.T) {
	modes := Modes()
	if len(modes) != 8 {
		t.Fatalf("expected 8 modes, got %d", len(modes))
	}
}

func TestStopIdempotent(t *testing.T) {
	viz, err := New(Config{Source: &rampSource{bins: 16}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	viz.Start()
	viz.Stop()
	viz.Stop()
}

func TestSavePNG(t *testing.T) {
	viz, err := New(Config{Source: &rampSource{bins: 32}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer viz.Stop()

	path := filepath.Join(t.TempDir(), "scene.png")
	if err := viz.SavePNG(path, 0, 120, 90); err == nil {
		t.Error("expected error before first tick")
	}

	viz.Start()
	waitForSnapshot(t, viz)

	if err := viz.SavePNG(path, 0, 120, 90); err != nil {
		t.Errorf("SavePNG failed: %v", err)
	}
}

func waitForSnapshot(t *testing.T, viz *Visualizer) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for viz.Snapshot() == nil {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for first analysis tick")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
