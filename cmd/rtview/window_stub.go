//go:build !cgo

package main

import (
	"errors"
	"image"

	"github.com/df07/go-whitted-raytracer/pkg/display"
)

func runWindow(_ *display.Framebuffer, _ string, _ int, _ func(image.Image) error) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
