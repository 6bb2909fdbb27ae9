package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates the demonstration scene: a checkerboard floor,
// two shiny spheres and four colored lights
func NewDefaultScene() *Scene {
	s := NewScene(core.NewVec3(3.0, 2.0, 4.0), core.NewVec3(-1.0, 0.5, 0.0))

	s.AddPlane(core.NewVec3(0.0, 1.0, 0.0), 0.0, material.Checkerboard)
	s.AddSphere(core.NewVec3(0.0, 1.0, -0.25), 1.0, material.Shiny)
	s.AddSphere(core.NewVec3(-1.0, 0.5, 1.5), 0.5, material.Shiny)

	s.AddLight(core.NewVec3(-2.0, 2.5, 0.0), core.NewColor(0.49, 0.07, 0.07))
	s.AddLight(core.NewVec3(1.5, 2.5, 1.5), core.NewColor(0.07, 0.07, 0.49))
	s.AddLight(core.NewVec3(1.5, 2.5, -1.5), core.NewColor(0.07, 0.49, 0.071))
	s.AddLight(core.NewVec3(0.0, 3.5, 0.0), core.NewColor(0.21, 0.21, 0.35))

	return s
}
