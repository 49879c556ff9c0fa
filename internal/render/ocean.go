// ABOUTME: Ocean mode
// ABOUTME: Four semi-transparent filled wave layers stacked bottom-up
package render

import "math"

// oceanMode stacks four filled wave layers from the bottom of the canvas.
// Wave height follows per-sample amplitude; opacity falls with depth.
type oceanMode struct{}

func (oceanMode) Name() string { return "ocean" }

func (oceanMode) Render(in Input) []Primitive {
	const layers = 4
	const steps = 64

	out := make([]Primitive, 0, layers+1)
	out = append(out, RadialGradient{
		Center:     Point{X: in.Width / 2, Y: in.Height * 0.2},
		Radius:     in.Width,
		Inner:      in.Palette.Background,
		Outer:      in.Palette.Background,
		InnerAlpha: 1,
		OuterAlpha: 1,
	})

	n := len(in.Frame)
	for layer := 0; layer < layers; layer++ {
		depth := float64(layer) / layers
		baseY := in.Height * (0.55 + depth*0.12)
		alpha := 0.55 - depth*0.12

		pts := make([]Point, 0, steps+3)
		for s := 0; s <= steps; s++ {
			x := float64(s) / steps * in.Width
			idx := 0
			if n > 0 {
				idx = s * n / (steps + 1)
			}
			amp := in.Frame.Sample(idx) * in.Height * 0.2 * (1 - depth*0.5)
			y := baseY - amp*(0.5+0.5*math.Sin(float64(s)/steps*4*math.Pi+in.Time*(1+depth)))
			pts = append(pts, Point{X: x, Y: y})
		}
		// Close the polygon along the bottom edge
		pts = append(pts, Point{X: in.Width, Y: in.Height}, Point{X: 0, Y: in.Height})

		c := in.Palette.Primary
		if layer%2 == 1 {
			c = in.Palette.Secondary
		}
		out = append(out, Path{
			Points: pts,
			Closed: true,
			Filled: true,
			Style:  Style{Color: c, Alpha: alpha},
		})
	}
	return out
}
