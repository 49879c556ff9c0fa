// ABOUTME: Tests for the mode registry and the eight scene generators
// ABOUTME: Verifies registry completeness, determinism, and missing-sample tolerance
package render

import (
	"reflect"
	"testing"

	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/analysis"
	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/audio"
	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/palette"
)

func testInput(frameLen int) Input {
	frame := make(audio.Frame, frameLen)
	for i := range frame {
		frame[i] = 0.5 + 0.4*float64(i%3-1)
	}
	return Input{
		Frame: frame,
		Time:  1.25,
		Features: analysis.Features{
			Bass: 0.8, Mid: 0.5, Treble: 0.4,
			Rhythm: 0.9, Melody: 0.6, Harmony: 0.7,
			Dynamics: 0.6, Energy: 0.75, Tempo: 128,
			Mood: analysis.MoodEnergetic,
		},
		Palette: palette.Palette{
			Primary:    palette.HSL(260, 80, 55),
			Secondary:  palette.HSL(20, 64, 50),
			Accent:     palette.HSL(140, 96, 60),
			Background: palette.HSL(80, 24, 11),
			Glow:       palette.HSL(260, 100, 71),
			Particles: []palette.Color{
				palette.HSL(0, 70, 50), palette.HSL(120, 70, 50), palette.HSL(240, 70, 50),
			},
		},
		Width:  800,
		Height: 600,
	}
}

func TestRegistryHasAllModes(t *testing.T) {
	want := []string{"sacred", "cosmic", "flow", "pulse", "trippy", "ocean", "neural", "galaxy"}

	got := Modes()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("mode list = %v, want %v", got, want)
	}

	for _, name := range want {
		m, ok := Lookup(name)
		if !ok {
			t.Errorf("mode %q not registered", name)
			continue
		}
		if m.Name() != name {
			t.Errorf("mode %q reports name %q", name, m.Name())
		}
	}

	if _, ok := Lookup("nope"); ok {
		t.Error("unknown mode must not resolve")
	}
}

func TestEveryModeEmitsPrimitives(t *testing.T) {
	in := testInput(128)
	for _, name := range Modes() {
		m, _ := Lookup(name)
		prims := m.Render(in)
		if len(prims) == 0 {
			t.Errorf("mode %q produced no primitives", name)
		}
		for i, p := range prims {
			switch p.Kind() {
			case "path", "circle", "gradient":
			default:
				t.Errorf("mode %q primitive %d has unknown kind %q", name, i, p.Kind())
			}
		}
	}
}

func TestModesAreDeterministic(t *testing.T) {
	in := testInput(128)
	for _, name := range Modes() {
		m, _ := Lookup(name)
		a := m.Render(in)
		b := m.Render(in)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("mode %q is not deterministic for identical input", name)
		}
	}
}

// Undersized and empty frames read missing samples as zero instead of
// failing; every mode must still emit something drawable.
func TestModesTolerateShortFrames(t *testing.T) {
	for _, frameLen := range []int{0, 1, 7, 33} {
		in := testInput(frameLen)
		for _, name := range Modes() {
			m, _ := Lookup(name)

			func() {
				defer func() {
					if r := recover(); r != nil {
						t.Errorf("mode %q panicked on %d-bin frame: %v", name, frameLen, r)
					}
				}()
				m.Render(in)
			}()
		}
	}
}

func TestModesTolerateEmptyParticleList(t *testing.T) {
	in := testInput(128)
	in.Palette.Particles = nil

	for _, name := range Modes() {
		m, _ := Lookup(name)
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("mode %q panicked without particles: %v", name, r)
				}
			}()
			m.Render(in)
		}()
	}
}
