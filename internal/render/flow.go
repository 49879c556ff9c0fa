// ABOUTME: Flow mode
// ABOUTME: Superposed sine and cosine wave strokes spanning the full width
package render

import "math"

// flowMode draws 2 to 6 wave strokes across the canvas. Harmony sets the
// wave count, per-sample intensity scaled by harmony sets the amplitude.
type flowMode struct{}

func (flowMode) Name() string { return "flow" }

func (flowMode) Render(in Input) []Primitive {
	waves := 2 + int(in.Features.Harmony*4)
	if waves > 6 {
		waves = 6
	}

	out := make([]Primitive, 0, waves)
	n := len(in.Frame)
	const steps = 96

	for w := 0; w < waves; w++ {
		phase := float64(w) * math.Pi / float64(waves)
		freq := 2 + float64(w)
		baseline := in.Height * (0.3 + 0.4*float64(w)/float64(waves))

		pts := make([]Point, steps+1)
		for s := 0; s <= steps; s++ {
			x := float64(s) / steps * in.Width
			idx := 0
			if n > 0 {
				idx = s * n / (steps + 1)
			}
			amp := in.Frame.Sample(idx) * in.Features.Harmony * in.Height * 0.25

			y := baseline
			if w%2 == 0 {
				y += math.Sin(float64(s)/steps*freq*2*math.Pi+in.Time+phase) * amp
			} else {
				y += math.Cos(float64(s)/steps*freq*2*math.Pi+in.Time+phase) * amp
			}
			pts[s] = Point{X: x, Y: y}
		}

		c := in.Palette.Primary
		switch w % 3 {
		case 1:
			c = in.Palette.Secondary
		case 2:
			c = in.Palette.Accent
		}
		out = append(out, Path{
			Points: pts,
			Style:  Style{Color: c, Alpha: 0.7 - float64(w)*0.06, Width: 2},
		})
	}
	return out
}
