// ABOUTME: Immediate-mode draw primitives emitted by the scene generators
// ABOUTME: Backend-agnostic paths, circles, and radial gradients in 2-D canvas space
package render

import (
	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/palette"
)

// Point is a 2-D canvas coordinate, origin top-left, y growing downward
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Style carries color, opacity, and stroke width for a primitive
type Style struct {
	Color palette.Color `json:"color"`
	Alpha float64       `json:"alpha"`
	Width float64       `json:"width,omitempty"`
}

// Primitive is one drawing instruction. Backends type-switch on the three
// concrete shapes.
type Primitive interface {
	Kind() string
}

// Path is a polyline, stroked or filled, optionally closed
type Path struct {
	Points []Point `json:"points"`
	Closed bool    `json:"closed,omitempty"`
	Filled bool    `json:"filled,omitempty"`
	Style  Style   `json:"style"`
}

func (Path) Kind() string { return "path" }

// Circle is a stroked or filled disc
type Circle struct {
	Center Point   `json:"center"`
	Radius float64 `json:"radius"`
	Filled bool    `json:"filled,omitempty"`
	Style  Style   `json:"style"`
}

func (Circle) Kind() string { return "circle" }

// RadialGradient fills a disc fading from the inner color to the outer one
type RadialGradient struct {
	Center     Point         `json:"center"`
	Radius     float64       `json:"radius"`
	Inner      palette.Color `json:"inner"`
	Outer      palette.Color `json:"outer"`
	InnerAlpha float64       `json:"innerAlpha"`
	OuterAlpha float64       `json:"outerAlpha"`
}

func (RadialGradient) Kind() string { return "gradient" }
