//go:build cgo

package main

import (
	"fmt"
	"image"
	"log"

	"github.com/df07/go-whitted-raytracer/pkg/display"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// runWindow shows fb in a desktop window until it is closed or Esc is pressed.
// It blocks and must be called from the main goroutine.
func runWindow(fb *display.Framebuffer, title string, scale int, save func(image.Image) error) error {
	v := &viewer{fb: fb, title: title, save: save, progress: -1}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(fb.Width()*scale, fb.Height()*scale)
	ebiten.SetTPS(30)
	return ebiten.RunGame(v)
}

type viewer struct {
	fb       *display.Framebuffer
	title    string
	save     func(image.Image) error
	progress float64
	fbImg    *ebiten.Image
	scratch  []byte
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := v.save(v.fb.Image()); err != nil {
			log.Printf("Error saving image: %v", err)
		}
	}

	if p := v.fb.Progress(); p != v.progress {
		v.progress = p
		ebiten.SetWindowTitle(fmt.Sprintf("%s (%.0f%%)", v.title, p*100))
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	w, h := v.fb.Width(), v.fb.Height()
	if v.fbImg == nil {
		v.fbImg = ebiten.NewImage(w, h)
		v.scratch = make([]byte, 4*w*h)
	}

	v.fb.SnapshotRGBA(v.scratch)
	v.fbImg.WritePixels(v.scratch)
	screen.DrawImage(v.fbImg, nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.fb.Width(), v.fb.Height()
}
