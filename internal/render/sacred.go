// ABOUTME: Sacred geometry mode
// ABOUTME: Rotating concentric polygon rings driven by harmony, tempo, and energy
package render

import "math"

// sacredMode draws one polygon ring per harmonic segment of the frame.
// Harmony sets the polygon side count, tempo the rotation speed, energy the
// overall radius, and dynamics the stroke glow.
type sacredMode struct{}

func (sacredMode) Name() string { return "sacred" }

func (sacredMode) Render(in Input) []Primitive {
	cx, cy, minHalf := center(in)
	out := make([]Primitive, 0, 12)

	out = append(out, RadialGradient{
		Center:     Point{X: cx, Y: cy},
		Radius:     minHalf * 2,
		Inner:      in.Palette.Background,
		Outer:      in.Palette.Background,
		InnerAlpha: 1,
		OuterAlpha: 1,
	})

	sides := 3 + int(in.Features.Harmony*6)
	if sides > 9 {
		sides = 9
	}
	rotation := in.Time * (in.Features.Tempo / 120.0) * 0.5
	maxRadius := minHalf * (0.35 + in.Features.Energy*0.6)
	glow := 0.3 + in.Features.Dynamics*0.7

	const rings = 8
	seg := len(in.Frame) / rings
	for ring := 0; ring < rings; ring++ {
		// Segment intensity scales this ring's radius share
		var level float64
		for k := 0; k < seg; k++ {
			level += in.Frame.Sample(ring*seg + k)
		}
		if seg > 0 {
			level /= float64(seg)
		}

		r := maxRadius * (float64(ring+1) / rings) * (0.6 + level*0.4)
		angle := rotation * alternating(ring)

		pts := make([]Point, sides)
		for i := 0; i < sides; i++ {
			a := angle + float64(i)/float64(sides)*2*math.Pi
			pts[i] = polar(cx, cy, r, a)
		}

		style := Style{Color: in.Palette.Primary, Alpha: glow * (1 - float64(ring)*0.08), Width: 1.5}
		if ring%2 == 1 {
			style.Color = in.Palette.Secondary
		}
		out = append(out, Path{Points: pts, Closed: true, Style: style})
	}

	if in.Features.Bass > 0.7 {
		out = append(out, Circle{
			Center: Point{X: cx, Y: cy},
			Radius: minHalf * 0.06 * (1 + in.Features.Bass),
			Filled: true,
			Style:  Style{Color: in.Palette.Accent, Alpha: 0.9},
		})
	}
	return out
}

// alternating flips rotation direction on every other ring
func alternating(ring int) float64 {
	if ring%2 == 0 {
		return 1
	}
	return -1
}
