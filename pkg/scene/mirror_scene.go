package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewMirrorScene places a sphere between two facing mirrors so reflections
// run until the recursion limit
func NewMirrorScene() *Scene {
	s := NewScene(core.NewVec3(0.0, 1.5, 3.5), core.NewVec3(0.0, 1.0, 0.0))
	s.Background = core.NewColor(0.05, 0.05, 0.1)

	s.AddPlane(core.NewVec3(0.0, 1.0, 0.0), 0.0, material.Checkerboard)
	s.AddPlane(core.NewVec3(1.0, 0.0, 0.0), 2.0, material.Mirror)  // x = -2, facing +x
	s.AddPlane(core.NewVec3(-1.0, 0.0, 0.0), 2.0, material.Mirror) // x = 2, facing -x
	s.AddSphere(core.NewVec3(0.0, 0.75, 0.0), 0.75, material.Shiny)

	s.AddLight(core.NewVec3(0.0, 4.0, 2.0), core.NewColor(0.6, 0.6, 0.6))
	s.AddLight(core.NewVec3(1.0, 2.0, -2.0), core.NewColor(0.2, 0.1, 0.05))

	return s
}

// NewEmptyScene has a camera and nothing else; every pixel is background
func NewEmptyScene() *Scene {
	return NewScene(core.NewVec3(3.0, 2.0, 4.0), core.NewVec3(-1.0, 0.5, 0.0))
}
