// ABOUTME: Offline raster backend rendering draw primitives to an image
// ABOUTME: Builds tdewolff/canvas paths from the scene and rasterizes to RGBA/PNG
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/rasterizer"

	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/palette"
	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/render"
)

// Draw rasterizes one scene into a fresh RGBA image
func Draw(prims []render.Primitive, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	w := float64(width)
	h := float64(height)
	c := canvas.New(w, h)
	ctx := canvas.NewContext(c)

	// Scene coordinates are top-left origin; the canvas is bottom-left
	flip := func(p render.Point) (float64, float64) {
		return p.X, h - p.Y
	}

	ctx.SetFillColor(color.Black)
	ctx.DrawPath(0, 0, canvas.Rectangle(w, h))

	for _, prim := range prims {
		switch s := prim.(type) {
		case render.RadialGradient:
			// Approximated as a filled disc of the inner color; good
			// enough for offline snapshots
			ctx.SetFillColor(toRGBA(s.Inner, s.InnerAlpha))
			x, y := flip(s.Center)
			ctx.DrawPath(x, y, canvas.Circle(s.Radius))

		case render.Circle:
			x, y := flip(s.Center)
			if s.Filled {
				ctx.SetFillColor(toRGBA(s.Style.Color, s.Style.Alpha))
				ctx.DrawPath(x, y, canvas.Circle(s.Radius))
			} else {
				stroke := canvas.Circle(s.Radius).Stroke(strokeWidth(s.Style), canvas.RoundCap, canvas.RoundJoin)
				ctx.SetFillColor(toRGBA(s.Style.Color, s.Style.Alpha))
				ctx.DrawPath(x, y, stroke)
			}

		case render.Path:
			if len(s.Points) < 2 {
				continue
			}
			p := &canvas.Path{}
			x0, y0 := flip(s.Points[0])
			p.MoveTo(x0, y0)
			for _, pt := range s.Points[1:] {
				x, y := flip(pt)
				p.LineTo(x, y)
			}
			if s.Closed {
				p.Close()
			}
			if !s.Filled {
				p = p.Stroke(strokeWidth(s.Style), canvas.RoundCap, canvas.RoundJoin)
			}
			ctx.SetFillColor(toRGBA(s.Style.Color, s.Style.Alpha))
			ctx.DrawPath(0, 0, p)
		}
	}

	r := rasterizer.New(img, 1)
	c.Render(r)
	return img
}

// WritePNG renders a scene and writes it to path
func WritePNG(path string, prims []render.Primitive, width, height int) error {
	img := Draw(prims, width, height)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

func strokeWidth(s render.Style) float64 {
	if s.Width <= 0 {
		return 1
	}
	return s.Width
}

// toRGBA converts an HSL palette color plus alpha into premultiplied RGBA
func toRGBA(c palette.Color, alpha float64) color.Color {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	r, g, b := c.RGBA8()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha * 255)}
}
