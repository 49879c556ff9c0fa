// ABOUTME: Tests for the TUI model
// ABOUTME: Key handling, mode switching, and view rendering
package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/audio"
	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/engine"
	tea "github.com/charmbracelet/bubbletea"
)

func newUIEngine(t *testing.T) *engine.Engine {
	t.Helper()
	eng, err := engine.New(engine.Config{Source: audio.NewSimulatedSource(128)})
	if err != nil {
		t.Fatalf("engine.New failed: %v", err)
	}
	return eng
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestQuitKey(t *testing.T) {
	m := NewModel(newUIEngine(t))

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if msg := cmd(); msg == nil {
		t.Error("expected quit message")
	}
}

func TestNumberKeySwitchesMode(t *testing.T) {
	eng := newUIEngine(t)
	m := NewModel(eng)

	m.Update(keyMsg("4"))
	if eng.Mode() != "pulse" {
		t.Errorf("expected mode pulse after key 4, got %q", eng.Mode())
	}

	m.Update(keyMsg("8"))
	if eng.Mode() != "galaxy" {
		t.Errorf("expected mode galaxy after key 8, got %q", eng.Mode())
	}
}

func TestTabCyclesModes(t *testing.T) {
	eng := newUIEngine(t)
	m := NewModel(eng)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if eng.Mode() != "cosmic" {
		t.Errorf("expected cosmic after one cycle, got %q", eng.Mode())
	}

	// Cycling from the last mode wraps to the first
	eng.SetMode("galaxy")
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if eng.Mode() != "sacred" {
		t.Errorf("expected wrap to sacred, got %q", eng.Mode())
	}
}

func TestIntensityKeys(t *testing.T) {
	eng := newUIEngine(t)
	m := NewModel(eng)

	start := eng.Intensity()
	m.Update(keyMsg("+"))
	if eng.Intensity() <= start {
		t.Error("expected + to raise intensity")
	}

	for i := 0; i < 30; i++ {
		m.Update(keyMsg("-"))
	}
	if eng.Intensity() != engine.GainMin {
		t.Errorf("expected intensity floored at %v, got %v", engine.GainMin, eng.Intensity())
	}
}

func TestViewBeforeFirstTick(t *testing.T) {
	m := NewModel(newUIEngine(t))

	view := m.View()
	if !strings.Contains(view, "Waiting") {
		t.Errorf("expected waiting notice, got %q", view)
	}
}

func TestViewShowsFeatures(t *testing.T) {
	eng := newUIEngine(t)
	m := NewModel(eng)

	// Let the engine publish a couple of snapshots
	ctx, cancel := context.WithTimeout(context.Background(), 180*time.Millisecond)
	defer cancel()
	eng.Run(ctx)

	if eng.Snapshot() == nil {
		t.Skip("no analysis tick landed; timer resolution too coarse")
	}

	view := m.View()
	for _, want := range []string{"Mode:", "bass", "Palette", "#"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
