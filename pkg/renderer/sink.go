package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PixelSink receives traced colors. Implementations clamp and convert the
// color to their storage format, ignore coordinates outside their bounds,
// and must accept concurrent writes to distinct pixels.
type PixelSink interface {
	SetPixel(x, y int, c core.Color)
}

// ToRGBA clamps a color to [0, 1] and converts it to 8-bit RGBA
func ToRGBA(c core.Color) color.RGBA {
	c = c.Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255 * c.R),
		G: uint8(255 * c.G),
		B: uint8(255 * c.B),
		A: 255,
	}
}

// Canvas is a PixelSink backed by an in-memory RGBA image.
// Each pixel owns distinct bytes, so disjoint concurrent writes are safe.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas creates a black canvas of the given size
func NewCanvas(width, height int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// SetPixel stores the clamped color; out-of-range coordinates are ignored
func (c *Canvas) SetPixel(x, y int, col core.Color) {
	if !image.Pt(x, y).In(c.img.Rect) {
		return
	}
	c.img.SetRGBA(x, y, ToRGBA(col))
}

// Image returns the underlying image
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int { return c.img.Rect.Dx() }

// Height returns the canvas height in pixels
func (c *Canvas) Height() int { return c.img.Rect.Dy() }
