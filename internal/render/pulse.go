// ABOUTME: Pulse mode
// ABOUTME: Three concentric rings sized from the bass, mid, and high sub-band averages
package render

// pulseMode draws one ring per sub-band, radius proportional to the band
// average scaled by overall energy.
type pulseMode struct{}

func (pulseMode) Name() string { return "pulse" }

func (pulseMode) Render(in Input) []Primitive {
	cx, cy, minHalf := center(in)

	n := len(in.Frame)
	bandAvg := func(lo, hi int) float64 {
		if hi <= lo {
			return 0
		}
		var sum float64
		for i := lo; i < hi; i++ {
			sum += in.Frame.Sample(i)
		}
		return sum / float64(hi-lo)
	}

	bands := []struct {
		level float64
		color int // 0 primary, 1 secondary, 2 accent
		scale float64
	}{
		{bandAvg(0, n/4), 0, 1.0},
		{bandAvg(n/4, 3*n/4), 1, 0.75},
		{bandAvg(3*n/4, n), 2, 0.5},
	}

	out := make([]Primitive, 0, 4)
	out = append(out, RadialGradient{
		Center:     Point{X: cx, Y: cy},
		Radius:     minHalf,
		Inner:      in.Palette.Glow,
		Outer:      in.Palette.Background,
		InnerAlpha: 0.15 + in.Features.Energy*0.2,
		OuterAlpha: 0,
	})

	for _, b := range bands {
		c := in.Palette.Primary
		switch b.color {
		case 1:
			c = in.Palette.Secondary
		case 2:
			c = in.Palette.Accent
		}
		out = append(out, Circle{
			Center: Point{X: cx, Y: cy},
			Radius: minHalf * b.scale * (0.2 + b.level*in.Features.Energy*0.8),
			Style:  Style{Color: c, Alpha: 0.8, Width: 2 + b.level*6},
		})
	}
	return out
}
