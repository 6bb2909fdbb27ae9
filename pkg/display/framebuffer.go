// Package display holds pixel storage shared between render workers and a
// presenting window.
package display

import (
	"image"
	"sync"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

var _ renderer.PixelSink = (*Framebuffer)(nil)

// Framebuffer is a PixelSink that can be read while it is being written.
// Writers and readers are serialized by a mutex.
type Framebuffer struct {
	mu      sync.Mutex
	img     *image.RGBA
	written int
}

// NewFramebuffer creates a black framebuffer of the given size
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (f *Framebuffer) Width() int  { return f.img.Rect.Dx() }
func (f *Framebuffer) Height() int { return f.img.Rect.Dy() }

// SetPixel stores the clamped color; out-of-range coordinates are ignored
func (f *Framebuffer) SetPixel(x, y int, c core.Color) {
	if !image.Pt(x, y).In(f.img.Rect) {
		return
	}
	rgba := renderer.ToRGBA(c)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.img.SetRGBA(x, y, rgba)
	f.written++
}

// SnapshotRGBA copies the current pixels into dst, which must hold
// 4*Width()*Height() bytes
func (f *Framebuffer) SnapshotRGBA(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.img.Pix)
}

// Image returns a copy of the current contents
func (f *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(f.img.Rect)
	f.SnapshotRGBA(img.Pix)
	return img
}

// Progress returns the fraction of pixel writes received so far, in [0, 1]
func (f *Framebuffer) Progress() float64 {
	total := f.Width() * f.Height()
	if total == 0 {
		return 1
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return min(float64(f.written)/float64(total), 1)
}

// Reset clears the framebuffer to black and zeroes the progress
func (f *Framebuffer) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	clear(f.img.Pix)
	f.written = 0
}
