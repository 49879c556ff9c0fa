// ABOUTME: Trippy mode
// ABOUTME: Scanning particles with a five-step fading trail and time-cycled hue
package render

import (
	"math"

	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/palette"
)

// trippyMode scans particles horizontally, one per sampled bin, leaving a
// five-step trail whose opacity follows the sample amplitude. Hues cycle
// with time on top of the palette's primary hue.
type trippyMode struct{}

func (trippyMode) Name() string { return "trippy" }

func (trippyMode) Render(in Input) []Primitive {
	out := make([]Primitive, 0, 128)

	n := len(in.Frame)
	if n == 0 {
		n = 1
	}
	const step = 4
	const trail = 5

	hueBase := in.Palette.Primary.H + in.Time*40

	for i := 0; i < n; i += step {
		v := in.Frame.Sample(i)
		lane := float64(i) / float64(n)
		y := in.Height * (0.1 + lane*0.8)
		scan := math.Mod(in.Time*0.15+lane, 1.0)

		for t := 0; t < trail; t++ {
			tx := scan - float64(t)*0.02
			if tx < 0 {
				tx += 1
			}
			fade := 1 - float64(t)/trail

			c := palette.HSL(hueBase+lane*120+float64(t)*8, in.Palette.Primary.S, in.Palette.Primary.L)
			out = append(out, Circle{
				Center: Point{X: tx * in.Width, Y: y + math.Sin(in.Time*2+lane*6)*10},
				Radius: 1.5 + v*5*fade,
				Filled: true,
				Style:  Style{Color: c, Alpha: v * fade * 0.9},
			})
		}
	}
	return out
}
