// ABOUTME: Cosmic mode
// ABOUTME: Radial particle field with trailing dots and bursts on intensity spikes
package render

import "math"

// cosmicMode orbits one particle per sampled bin around the center. Tempo
// drives orbit speed, energy the orbit distance, dynamics the particle size.
// Bins above 0.8 intensity flare into a three-point burst.
type cosmicMode struct{}

func (cosmicMode) Name() string { return "cosmic" }

func (cosmicMode) Render(in Input) []Primitive {
	cx, cy, minHalf := center(in)
	out := make([]Primitive, 0, 64)

	orbitSpeed := (in.Features.Tempo / 120.0) * 0.6
	baseDist := minHalf * (0.2 + in.Features.Energy*0.55)
	size := 1.5 + in.Features.Dynamics*4

	n := len(in.Frame)
	if n == 0 {
		n = 1
	}
	const step = 4
	particles := len(in.Palette.Particles)

	for i := 0; i < n; i += step {
		v := in.Frame.Sample(i)
		angle := float64(i)/float64(n)*2*math.Pi + in.Time*orbitSpeed
		dist := baseDist * (0.5 + v)

		var c = in.Palette.Primary
		if particles > 0 {
			c = in.Palette.Particles[(i/step)%particles]
		}

		out = append(out, Circle{
			Center: polar(cx, cy, dist, angle),
			Radius: size * (0.4 + v),
			Filled: true,
			Style:  Style{Color: c, Alpha: 0.4 + v*0.6},
		})

		// Trailing secondary dot a little behind on the orbit
		out = append(out, Circle{
			Center: polar(cx, cy, dist, angle-0.12),
			Radius: size * (0.4 + v) * 0.5,
			Filled: true,
			Style:  Style{Color: in.Palette.Secondary, Alpha: (0.4 + v*0.6) * 0.5},
		})

		if v > 0.8 {
			for b := 0; b < 3; b++ {
				burstAngle := angle + float64(b)/3*2*math.Pi
				out = append(out, Circle{
					Center: polar(cx, cy, dist+size*3, burstAngle),
					Radius: size * 0.6,
					Filled: true,
					Style:  Style{Color: in.Palette.Glow, Alpha: 0.8},
				})
			}
		}
	}
	return out
}
