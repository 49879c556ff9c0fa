// ABOUTME: Neural mode
// ABOUTME: Ring of nodes linked when both endpoints are active and close enough
package render

import "math"

const (
	neuralNodes       = 24
	neuralLinkMinGlow = 0.3
	neuralGlowLevel   = 0.6
	neuralLinkMaxDist = 150.0
)

// neuralMode places a fixed ring of nodes, activates each from its mapped
// sample amplitude, and connects pairs whose activations both exceed 0.3
// and whose euclidean distance is under 150px. Nodes above 0.6 glow.
type neuralMode struct{}

func (neuralMode) Name() string { return "neural" }

func (neuralMode) Render(in Input) []Primitive {
	cx, cy, minHalf := center(in)
	ringR := minHalf * 0.7

	n := len(in.Frame)
	type node struct {
		p     Point
		level float64
	}
	nodes := make([]node, neuralNodes)
	for i := range nodes {
		angle := float64(i) / neuralNodes * 2 * math.Pi
		idx := 0
		if n > 0 {
			idx = i * n / neuralNodes
		}
		nodes[i] = node{
			p:     polar(cx, cy, ringR, angle),
			level: in.Frame.Sample(idx),
		}
	}

	out := make([]Primitive, 0, 64)

	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			if nodes[i].level <= neuralLinkMinGlow || nodes[j].level <= neuralLinkMinGlow {
				continue
			}
			dx := nodes[i].p.X - nodes[j].p.X
			dy := nodes[i].p.Y - nodes[j].p.Y
			if math.Hypot(dx, dy) >= neuralLinkMaxDist {
				continue
			}
			out = append(out, Path{
				Points: []Point{nodes[i].p, nodes[j].p},
				Style: Style{
					Color: in.Palette.Secondary,
					Alpha: (nodes[i].level + nodes[j].level) / 2 * 0.7,
					Width: 1,
				},
			})
		}
	}

	for _, nd := range nodes {
		out = append(out, Circle{
			Center: nd.p,
			Radius: 2 + nd.level*4,
			Filled: true,
			Style:  Style{Color: in.Palette.Primary, Alpha: 0.3 + nd.level*0.7},
		})
		if nd.level > neuralGlowLevel {
			out = append(out, Circle{
				Center: nd.p,
				Radius: 6 + nd.level*8,
				Filled: true,
				Style:  Style{Color: in.Palette.Glow, Alpha: 0.25},
			})
		}
	}
	return out
}
