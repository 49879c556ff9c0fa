// ABOUTME: Soundscape wire protocol message type definitions
// ABOUTME: JSON messages exchanged between the scene server and canvas clients
package protocol

import (
	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/palette"
	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/render"
)

// Protocol message types
const (
	TypeServerHello = "server/hello"
	TypeScene       = "scene/update"
	TypeSetMode     = "client/set-mode"
	TypeSetGain     = "client/set-gain"
	TypeCanvasSize  = "client/canvas-size"
)

// ProtocolVersion bumps on breaking wire changes
const ProtocolVersion = 1

// Message is the top-level wrapper for all protocol messages
type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// ServerHello greets a freshly connected client
type ServerHello struct {
	ServerID string   `json:"server_id"`
	Name     string   `json:"name"`
	Version  int      `json:"version"`
	Bins     int      `json:"bins"`
	Modes    []string `json:"modes"`
	Mode     string   `json:"mode"`
}

// SceneUpdate carries one rendered frame of draw primitives
type SceneUpdate struct {
	Time    float64     `json:"time"`
	Mode    string      `json:"mode"`
	Width   float64     `json:"width"`
	Height  float64     `json:"height"`
	Palette WirePalette `json:"palette"`
	Shapes  []WireShape `json:"shapes"`
}

// SetMode asks the server to switch the visualization mode
type SetMode struct {
	Mode string `json:"mode"`
}

// SetGain adjusts the amplitude tunables; nil fields stay unchanged
type SetGain struct {
	Intensity   *float64 `json:"intensity,omitempty"`
	Sensitivity *float64 `json:"sensitivity,omitempty"`
}

// CanvasSize reports the client's drawing surface extent
type CanvasSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// WireColor is an HSL triple plus its sRGB hex rendering for canvas clients
type WireColor struct {
	H   float64 `json:"h"`
	S   float64 `json:"s"`
	L   float64 `json:"l"`
	Hex string  `json:"hex"`
}

// WirePalette mirrors palette.Palette with hex-annotated colors
type WirePalette struct {
	Primary    WireColor   `json:"primary"`
	Secondary  WireColor   `json:"secondary"`
	Accent     WireColor   `json:"accent"`
	Background WireColor   `json:"background"`
	Glow       WireColor   `json:"glow"`
	Particles  []WireColor `json:"particles"`
}

// WireShape is the flattened encoding of one draw primitive
type WireShape struct {
	Kind       string       `json:"kind"`
	Points     [][2]float64 `json:"points,omitempty"`
	X          float64      `json:"x,omitempty"`
	Y          float64      `json:"y,omitempty"`
	Radius     float64      `json:"radius,omitempty"`
	Closed     bool         `json:"closed,omitempty"`
	Filled     bool         `json:"filled,omitempty"`
	Color      *WireColor   `json:"color,omitempty"`
	Alpha      float64      `json:"alpha,omitempty"`
	Width      float64      `json:"width,omitempty"`
	Inner      *WireColor   `json:"inner,omitempty"`
	Outer      *WireColor   `json:"outer,omitempty"`
	InnerAlpha float64      `json:"innerAlpha,omitempty"`
	OuterAlpha float64      `json:"outerAlpha,omitempty"`
}

// FromColor annotates a palette color with its hex rendering
func FromColor(c palette.Color) WireColor {
	return WireColor{H: c.H, S: c.S, L: c.L, Hex: c.Hex()}
}

// FromPalette converts a palette for the wire
func FromPalette(p palette.Palette) WirePalette {
	out := WirePalette{
		Primary:    FromColor(p.Primary),
		Secondary:  FromColor(p.Secondary),
		Accent:     FromColor(p.Accent),
		Background: FromColor(p.Background),
		Glow:       FromColor(p.Glow),
		Particles:  make([]WireColor, len(p.Particles)),
	}
	for i, c := range p.Particles {
		out.Particles[i] = FromColor(c)
	}
	return out
}

// FromPrimitives flattens renderer output for the wire
func FromPrimitives(prims []render.Primitive) []WireShape {
	out := make([]WireShape, 0, len(prims))
	for _, p := range prims {
		switch s := p.(type) {
		case render.Path:
			pts := make([][2]float64, len(s.Points))
			for i, pt := range s.Points {
				pts[i] = [2]float64{pt.X, pt.Y}
			}
			c := FromColor(s.Style.Color)
			out = append(out, WireShape{
				Kind:   s.Kind(),
				Points: pts,
				Closed: s.Closed,
				Filled: s.Filled,
				Color:  &c,
				Alpha:  s.Style.Alpha,
				Width:  s.Style.Width,
			})
		case render.Circle:
			c := FromColor(s.Style.Color)
			out = append(out, WireShape{
				Kind:   s.Kind(),
				X:      s.Center.X,
				Y:      s.Center.Y,
				Radius: s.Radius,
				Filled: s.Filled,
				Color:  &c,
				Alpha:  s.Style.Alpha,
				Width:  s.Style.Width,
			})
		case render.RadialGradient:
			inner := FromColor(s.Inner)
			outer := FromColor(s.Outer)
			out = append(out, WireShape{
				Kind:       s.Kind(),
				X:          s.Center.X,
				Y:          s.Center.Y,
				Radius:     s.Radius,
				Inner:      &inner,
				Outer:      &outer,
				InnerAlpha: s.InnerAlpha,
				OuterAlpha: s.OuterAlpha,
			})
		}
	}
	return out
}
