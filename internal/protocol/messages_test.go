// ABOUTME: Tests for wire message encoding
// ABOUTME: Palette and primitive flattening plus JSON round trips
package protocol

import (
	"encoding/json"
	"testing"

	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/palette"
	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/render"
)

func TestFromColorCarriesHSLAndHex(t *testing.T) {
	wc := FromColor(palette.HSL(30, 40, 30))

	if wc.H != 30 || wc.S != 40 || wc.L != 30 {
		t.Errorf("HSL triple must round-trip exactly: %+v", wc)
	}
	if len(wc.Hex) != 7 || wc.Hex[0] != '#' {
		t.Errorf("bad hex: %q", wc.Hex)
	}
}

func TestFromPrimitivesFlattening(t *testing.T) {
	prims := []render.Primitive{
		render.Path{
			Points: []render.Point{{X: 0, Y: 1}, {X: 2, Y: 3}},
			Closed: true,
			Style:  render.Style{Color: palette.HSL(0, 50, 50), Alpha: 0.5, Width: 2},
		},
		render.Circle{
			Center: render.Point{X: 10, Y: 20},
			Radius: 5,
			Filled: true,
			Style:  render.Style{Color: palette.HSL(120, 50, 50), Alpha: 1},
		},
		render.RadialGradient{
			Center:     render.Point{X: 1, Y: 2},
			Radius:     100,
			Inner:      palette.HSL(200, 50, 50),
			Outer:      palette.HSL(220, 50, 10),
			InnerAlpha: 0.8,
		},
	}

	shapes := FromPrimitives(prims)
	if len(shapes) != 3 {
		t.Fatalf("expected 3 shapes, got %d", len(shapes))
	}

	if shapes[0].Kind != "path" || !shapes[0].Closed || len(shapes[0].Points) != 2 {
		t.Errorf("bad path encoding: %+v", shapes[0])
	}
	if shapes[1].Kind != "circle" || shapes[1].X != 10 || shapes[1].Radius != 5 || !shapes[1].Filled {
		t.Errorf("bad circle encoding: %+v", shapes[1])
	}
	if shapes[2].Kind != "gradient" || shapes[2].Inner == nil || shapes[2].Inner.H != 200 {
		t.Errorf("bad gradient encoding: %+v", shapes[2])
	}
}

func TestSceneUpdateJSONRoundTrip(t *testing.T) {
	pal := palette.Palette{
		Primary:   palette.HSL(30, 40, 30),
		Particles: []palette.Color{palette.HSL(0, 50, 50)},
	}
	update := SceneUpdate{
		Time:    1.5,
		Mode:    "pulse",
		Width:   800,
		Height:  600,
		Palette: FromPalette(pal),
	}

	data, err := json.Marshal(Message{Type: TypeScene, Payload: update})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var msg struct {
		Type    string      `json:"type"`
		Payload SceneUpdate `json:"payload"`
	}
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if msg.Type != TypeScene {
		t.Errorf("expected type %q, got %q", TypeScene, msg.Type)
	}
	if msg.Payload.Palette.Primary.H != 30 {
		t.Errorf("palette hue lost in transit: %+v", msg.Payload.Palette.Primary)
	}
	if msg.Payload.Mode != "pulse" || msg.Payload.Time != 1.5 {
		t.Errorf("fields lost in transit: %+v", msg.Payload)
	}
}
