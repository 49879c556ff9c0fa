// ABOUTME: Galaxy mode
// ABOUTME: Gradient backdrop, 100 orbiting stars with twinkle, and a logarithmic spiral arm
package render

import "math"

const (
	galaxyStars      = 100
	galaxyTwinkleMin = 0.7
	goldenAngle      = 2.399963229728653
)

// galaxyMode scatters stars on deterministic golden-angle orbits, makes
// their visibility follow the mapped sample amplitude, and sweeps one
// logarithmic spiral arm whose density tracks the angle-mapped spectrum.
type galaxyMode struct{}

func (galaxyMode) Name() string { return "galaxy" }

func (galaxyMode) Render(in Input) []Primitive {
	cx, cy, minHalf := center(in)
	out := make([]Primitive, 0, galaxyStars+8)

	out = append(out, RadialGradient{
		Center:     Point{X: cx, Y: cy},
		Radius:     minHalf * 1.4,
		Inner:      in.Palette.Glow,
		Outer:      in.Palette.Background,
		InnerAlpha: 0.3,
		OuterAlpha: 1,
	})

	n := len(in.Frame)
	for s := 0; s < galaxyStars; s++ {
		// Golden-angle placement spreads stars without shared RNG state
		baseAngle := float64(s) * goldenAngle
		dist := minHalf * math.Sqrt(float64(s)/galaxyStars) * 0.95
		angle := baseAngle + in.Time*0.1*(1-float64(s)/galaxyStars*0.7)

		idx := 0
		if n > 0 {
			idx = s * n / galaxyStars
		}
		v := in.Frame.Sample(idx)
		if v < 0.02 {
			continue
		}

		c := in.Palette.Primary
		if len(in.Palette.Particles) > 0 {
			c = in.Palette.Particles[s%len(in.Palette.Particles)]
		}

		p := polar(cx, cy, dist, angle)
		out = append(out, Circle{
			Center: p,
			Radius: 0.8 + v*2,
			Filled: true,
			Style:  Style{Color: c, Alpha: 0.2 + v*0.8},
		})

		if v > galaxyTwinkleMin {
			out = append(out, Circle{
				Center: p,
				Radius: 3 + v*4,
				Filled: true,
				Style:  Style{Color: in.Palette.Glow, Alpha: 0.3},
			})
		}
	}

	// One spiral arm: r = a·e^(bθ), angle-mapped samples modulate thickness
	const turns = 2.5
	const steps = 120
	pts := make([]Point, 0, steps)
	for s := 0; s < steps; s++ {
		theta := float64(s) / steps * turns * 2 * math.Pi
		r := minHalf * 0.05 * math.Exp(theta*0.18)
		if r > minHalf {
			break
		}
		idx := 0
		if n > 0 {
			idx = int(theta/(turns*2*math.Pi)*float64(n)) % n
		}
		wobble := in.Frame.Sample(idx) * minHalf * 0.04
		pts = append(pts, polar(cx, cy, r+wobble, theta+in.Time*0.05))
	}
	out = append(out, Path{
		Points: pts,
		Style:  Style{Color: in.Palette.Accent, Alpha: 0.5, Width: 1.5},
	})
	return out
}
