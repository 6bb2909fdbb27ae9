package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/transform"
)

// NewTransformScene shows object-space primitives: a squashed ellipsoid, a
// stretched and tilted ellipsoid, and a floor placed by a transform
func NewTransformScene() *Scene {
	s := NewScene(core.NewVec3(3.0, 2.0, 4.0), core.NewVec3(-1.0, 0.5, 0.0))

	s.AddTransformedPlane(material.Checkerboard, transform.Identity())

	// Wide, flat ellipsoid resting on the floor
	s.AddTransformedSphere(material.Shiny,
		transform.MustScale(1.2, 0.6, 1.2).
			Then(transform.Translate(0.0, 0.6, -0.25)))

	// Tall ellipsoid rotated about Y, then tilted toward the camera
	s.AddTransformedSphere(material.NewSolid(core.NewColor(0.9, 0.6, 0.2), core.Grey, 0.3, 50),
		transform.MustScale(0.3, 0.8, 0.5).
			Then(transform.RotateY(math.Pi/4)).
			Then(transform.RotateZ(-0.3)).
			Then(transform.Translate(-1.0, 0.8, 1.5)))

	s.AddLight(core.NewVec3(-2.0, 2.5, 0.0), core.NewColor(0.49, 0.07, 0.07))
	s.AddLight(core.NewVec3(1.5, 2.5, 1.5), core.NewColor(0.07, 0.07, 0.49))
	s.AddLight(core.NewVec3(1.5, 2.5, -1.5), core.NewColor(0.07, 0.49, 0.071))
	s.AddLight(core.NewVec3(0.0, 3.5, 0.0), core.NewColor(0.21, 0.21, 0.35))

	return s
}
