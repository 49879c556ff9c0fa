// ABOUTME: Palette generator mapping features and context to a smoothed color scheme
// ABOUTME: Mood profile, genre-keyed hues, contextual refinement, temporal smoothing
package palette

import (
	"math"
	"math/rand"
	"time"

	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/analysis"
)

// Rand is the jitter source for particle colors. *rand.Rand satisfies it;
// tests inject a stub to pin output.
type Rand interface {
	Float64() float64
}

const (
	// HistoryCap bounds the rolling palette history used for smoothing
	HistoryCap = 10

	defaultSmoothing = 0.1
)

// Palette is the named color set plus a variable-length particle list.
// Particle count is recomputed every tick from energy alone.
type Palette struct {
	Primary    Color   `json:"primary"`
	Secondary  Color   `json:"secondary"`
	Accent     Color   `json:"accent"`
	Background Color   `json:"background"`
	Glow       Color   `json:"glow"`
	Particles  []Color `json:"particles"`
}

type temperature string

const (
	tempNeutral temperature = "neutral"
	tempCool    temperature = "cool"
	tempWarm    temperature = "warm"
)

// moodProfile carries the intermediate mood analysis. Temperature and
// contrast are computed for parity with the reference scheme but not
// consumed by later steps.
type moodProfile struct {
	temperature temperature
	saturation  float64
	brightness  float64
	contrast    float64
}

// Generator derives palettes and smooths them against its own bounded
// history. One instance per visualizer; the zero value is not usable.
type Generator struct {
	rng       Rand
	smoothing float64
	history   []Palette
}

// NewGenerator creates a generator. A nil rng falls back to a time-seeded
// math/rand source.
func NewGenerator(rng Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng, smoothing: defaultSmoothing}
}

// HistoryLen reports how many palettes the smoothing history holds
func (g *Generator) HistoryLen() int { return len(g.history) }

// Generate produces the palette for one tick: mood profile, base colors,
// contextual refinement, then temporal smoothing against the previous
// palette. The result is pushed onto the bounded history.
func (g *Generator) Generate(f analysis.Features, ctx analysis.Context) Palette {
	prof := profileMood(f, ctx)
	p := g.buildBase(f, ctx, prof)
	g.refine(&p, ctx)
	p = g.smooth(p)

	g.history = append(g.history, p)
	if len(g.history) > HistoryCap {
		g.history = g.history[1:]
	}
	return p
}

// profileMood derives temperature, saturation, brightness, and contrast.
// The temperature rules run in this literal order: the mood override is
// last so mysterious/dramatic always read cool.
func profileMood(f analysis.Features, ctx analysis.Context) moodProfile {
	temp := tempNeutral
	if f.Bass > 0.6 || ctx.Genre == analysis.GenreElectronic {
		temp = tempCool
	}
	if f.Harmony > 0.6 || ctx.Genre == analysis.GenreAcoustic {
		temp = tempWarm
	}
	if f.Mood == analysis.MoodMysterious || f.Mood == analysis.MoodDramatic {
		temp = tempCool
	}

	return moodProfile{
		temperature: temp,
		saturation:  math.Min(100, 40+f.Energy*60+f.Dynamics*30),
		brightness:  math.Min(100, 30+f.Treble*40+ctx.EmotionalIntensity*30),
		contrast:    math.Min(100, 20+f.Dynamics*50+f.Energy*30),
	}
}

// baseHue keys the palette's root hue off the genre hint
func baseHue(f analysis.Features, ctx analysis.Context) float64 {
	var h float64
	switch ctx.Genre {
	case analysis.GenreElectronic:
		h = 240 + f.Bass*60
	case analysis.GenreAcoustic:
		h = 30 + f.Harmony*60
	case analysis.GenreClassical:
		h = 200 + f.Harmony*80
	case analysis.GenreRock:
		h = f.Energy * 60
	case analysis.GenreAmbient:
		h = 180 + f.Mid*120
	case analysis.GenreVoice:
		if ctx.VocalPresence {
			h = 45 + ctx.EmotionalIntensity*90
		} else {
			h = 200
		}
	default:
		h = f.Bass*120 + f.Treble*240
	}
	return wrapHue(h)
}

func (g *Generator) buildBase(f analysis.Features, ctx analysis.Context, prof moodProfile) Palette {
	base := baseHue(f, ctx)
	sat := prof.saturation
	bright := prof.brightness

	count := int(3 + f.Energy*5)
	if count < 3 {
		count = 3
	}
	if count > 8 {
		count = 8
	}

	particles := make([]Color, count)
	for i := range particles {
		particles[i] = Color{
			H: wrapHue(base + float64(i)*(360/float64(count))),
			S: clamp(sat+g.jitter(15), 0, 100),
			L: clamp(bright+g.jitter(20), 10, 90),
		}
	}

	return Palette{
		Primary:    HSL(base, sat, bright),
		Secondary:  HSL(base+120, sat*0.8, bright*0.9),
		Accent:     HSL(base+240, sat*1.2, bright*1.1),
		Background: HSL(base+180, sat*0.3, bright*0.2),
		Glow:       HSL(base, sat*1.5, bright*1.3),
		Particles:  particles,
	}
}

// refine applies the contextual adjustments in their fixed order: beat-drop
// boost, vocal hue pull, density extension, emotional saturation boost.
func (g *Generator) refine(p *Palette, ctx analysis.Context) {
	if ctx.BeatDrop {
		boost := func(c Color) Color {
			return Color{H: c.H, S: math.Min(100, c.S*1.5), L: math.Min(90, c.L*1.5)}
		}
		p.Primary = boost(p.Primary)
		p.Accent = boost(p.Accent)
		p.Glow = boost(p.Glow)
		for i := range p.Particles {
			p.Particles[i] = boost(p.Particles[i])
		}
	}

	if ctx.VocalPresence {
		p.Primary = pullTowardWarmAnchors(p.Primary)
		p.Secondary = pullTowardWarmAnchors(p.Secondary)
		p.Glow = pullTowardWarmAnchors(p.Glow)
	}

	if ctx.InstrumentalDensity > 0.7 && len(p.Particles) > 0 {
		extra := len(p.Particles) / 2
		if extra > 5 {
			extra = 5
		}
		for i := 0; i < extra; i++ {
			src := p.Particles[i%len(p.Particles)]
			p.Particles = append(p.Particles, Color{
				H: wrapHue(src.H + g.jitter(30)),
				S: src.S,
				L: src.L,
			})
		}
	}

	if ctx.EmotionalIntensity > 0.8 {
		scale := 1 + ctx.EmotionalIntensity*0.5
		saturate := func(c Color) Color {
			return Color{H: c.H, S: math.Min(100, c.S*scale), L: c.L}
		}
		p.Primary = saturate(p.Primary)
		p.Secondary = saturate(p.Secondary)
		p.Accent = saturate(p.Accent)
		for i := range p.Particles {
			p.Particles[i] = saturate(p.Particles[i])
		}
	}
}

// pullTowardWarmAnchors shifts a hue 30% of the way toward the nearest of
// 0°, 30°, or 60°
func pullTowardWarmAnchors(c Color) Color {
	anchors := [3]float64{0, 30, 60}
	best := hueDelta(c.H, anchors[0])
	for _, a := range anchors[1:] {
		if d := hueDelta(c.H, a); math.Abs(d) < math.Abs(best) {
			best = d
		}
	}
	c.H = wrapHue(c.H + best*0.3)
	return c
}

// smooth blends the previous palette toward the new one by the smoothing
// factor. Particle entries align by index; indices beyond the previous
// length pass through unblended.
func (g *Generator) smooth(next Palette) Palette {
	if len(g.history) == 0 {
		return next
	}
	prev := g.history[len(g.history)-1]

	out := Palette{
		Primary:    prev.Primary.BlendToward(next.Primary, g.smoothing),
		Secondary:  prev.Secondary.BlendToward(next.Secondary, g.smoothing),
		Accent:     prev.Accent.BlendToward(next.Accent, g.smoothing),
		Background: prev.Background.BlendToward(next.Background, g.smoothing),
		Glow:       prev.Glow.BlendToward(next.Glow, g.smoothing),
		Particles:  make([]Color, len(next.Particles)),
	}
	for i, c := range next.Particles {
		if i < len(prev.Particles) {
			out.Particles[i] = prev.Particles[i].BlendToward(c, g.smoothing)
		} else {
			out.Particles[i] = c
		}
	}
	return out
}

// jitter returns a uniform value in [-r, r]
func (g *Generator) jitter(r float64) float64 {
	return (g.rng.Float64()*2 - 1) * r
}
