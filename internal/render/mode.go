// ABOUTME: Visualization mode interface and registry
// ABOUTME: Eight procedural geometry generators selected by mode name
package render

import (
	"math"

	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/analysis"
	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/audio"
	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/palette"
)

// Input is everything a mode needs to draw one frame
type Input struct {
	Frame    audio.Frame
	Time     float64 // seconds since playback start
	Features analysis.Features
	Palette  palette.Palette
	Width    float64
	Height   float64
}

// Mode is one procedural geometry generator. Render is pure: the same
// input always yields the same primitives.
type Mode interface {
	Name() string
	Render(in Input) []Primitive
}

var registry = map[string]Mode{
	"sacred": sacredMode{},
	"cosmic": cosmicMode{},
	"flow":   flowMode{},
	"pulse":  pulseMode{},
	"trippy": trippyMode{},
	"ocean":  oceanMode{},
	"neural": neuralMode{},
	"galaxy": galaxyMode{},
}

// modeOrder is the display/selection order
var modeOrder = []string{"sacred", "cosmic", "flow", "pulse", "trippy", "ocean", "neural", "galaxy"}

// Lookup returns the mode registered under name
func Lookup(name string) (Mode, bool) {
	m, ok := registry[name]
	return m, ok
}

// Modes lists all mode names in selection order
func Modes() []string {
	out := make([]string, len(modeOrder))
	copy(out, modeOrder)
	return out
}

// center returns the canvas midpoint and the smaller half-extent
func center(in Input) (cx, cy, minHalf float64) {
	cx = in.Width / 2
	cy = in.Height / 2
	minHalf = math.Min(cx, cy)
	return
}

// polar converts a polar offset around (cx, cy) into a point
func polar(cx, cy, r, angle float64) Point {
	return Point{
		X: cx + r*math.Cos(angle),
		Y: cy + r*math.Sin(angle),
	}
}
