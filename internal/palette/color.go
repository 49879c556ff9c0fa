// ABOUTME: HSL color type with wrapping, clamping, and shortest-arc blending
// ABOUTME: Hex/RGB output goes through go-colorful at the serialization boundary
package palette

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a hue/saturation/lightness triple. Hue is degrees in [0,360)
// and wraps; saturation and lightness are percentages in [0,100]. The HSL
// triple is the source of truth, RGB is derived on demand.
type Color struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// HSL builds a color, wrapping the hue and clamping the other channels
func HSL(h, s, l float64) Color {
	return Color{
		H: wrapHue(h),
		S: clamp(s, 0, 100),
		L: clamp(l, 0, 100),
	}
}

// Hex renders the color as an sRGB hex string like "#1a2b3c"
func (c Color) Hex() string {
	return colorful.Hsl(c.H, c.S/100, c.L/100).Hex()
}

// RGBA8 returns the 8-bit sRGB channels
func (c Color) RGBA8() (r, g, b uint8) {
	return colorful.Hsl(c.H, c.S/100, c.L/100).Clamped().RGB255()
}

// BlendToward moves this color toward target by factor: hue along the
// shortest arc, saturation and lightness linearly. factor 0 keeps the
// receiver, factor 1 lands on the target.
func (c Color) BlendToward(target Color, factor float64) Color {
	return Color{
		H: wrapHue(c.H + hueDelta(c.H, target.H)*factor),
		S: clamp(c.S+(target.S-c.S)*factor, 0, 100),
		L: clamp(c.L+(target.L-c.L)*factor, 0, 100),
	}
}

// hueDelta returns the signed shortest-arc distance from h1 to h2 in
// [-180, 180); antipodal hues come back as -180
func hueDelta(h1, h2 float64) float64 {
	d := math.Mod(h2-h1+180, 360)
	if d < 0 {
		d += 360
	}
	return d - 180
}

// wrapHue normalizes a hue into [0,360)
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
