// ABOUTME: Tests for the HSL color type
// ABOUTME: Hue wrapping, channel clamping, and shortest-arc blending
package palette

import (
	"math"
	"testing"
)

func TestHSLWrapsAndClamps(t *testing.T) {
	c := HSL(370, 120, -5)
	if c.H != 10 {
		t.Errorf("expected hue 10, got %v", c.H)
	}
	if c.S != 100 {
		t.Errorf("expected saturation clamped to 100, got %v", c.S)
	}
	if c.L != 0 {
		t.Errorf("expected lightness clamped to 0, got %v", c.L)
	}

	if h := HSL(-30, 50, 50).H; h != 330 {
		t.Errorf("expected -30 to wrap to 330, got %v", h)
	}
	if h := HSL(360, 50, 50).H; h != 0 {
		t.Errorf("hue 360 must normalize to 0, got %v", h)
	}
}

func TestHueDeltaShortestArc(t *testing.T) {
	cases := []struct {
		from, to, want float64
	}{
		{350, 10, 20},
		{10, 350, -20},
		// Antipodal hues are a tie; the formula resolves it to -180
		{0, 180, -180},
		{90, 90, 0},
		{200, 60, -140},
	}
	for _, tc := range cases {
		if got := hueDelta(tc.from, tc.to); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("hueDelta(%v,%v) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestBlendTowardCrossesWrap(t *testing.T) {
	a := Color{H: 350, S: 40, L: 40}
	b := Color{H: 10, S: 60, L: 60}

	mid := a.BlendToward(b, 0.5)
	if math.Abs(mid.H-0) > 1e-9 {
		t.Errorf("expected blended hue 0 across the wrap, got %v", mid.H)
	}
	if mid.S != 50 || mid.L != 50 {
		t.Errorf("expected linear S/L blend to 50/50, got %v/%v", mid.S, mid.L)
	}

	if got := a.BlendToward(b, 0); got != a {
		t.Errorf("factor 0 must keep the receiver, got %+v", got)
	}
	if got := a.BlendToward(b, 1); got != b {
		t.Errorf("factor 1 must land on the target, got %+v", got)
	}
}

func TestHexRoundsToValidString(t *testing.T) {
	hex := Color{H: 30, S: 40, L: 30}.Hex()
	if len(hex) != 7 || hex[0] != '#' {
		t.Errorf("unexpected hex encoding: %q", hex)
	}
}
