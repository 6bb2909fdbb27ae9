package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/transform"
)

// Scene contains all the elements needed for rendering.
// It must not be modified once a render has started.
type Scene struct {
	Camera     *geometry.Camera
	Shapes     []geometry.Shape    // Order decides ties between equally near hits
	Lights     []lights.PointLight // Order decides accumulation order
	Background core.Color          // Returned by rays that hit nothing
	Width      int                 // Suggested output width
	Height     int                 // Suggested output height
}

// NewScene creates an empty scene viewed from position toward lookAt
func NewScene(position, lookAt core.Vec3) *Scene {
	return &Scene{
		Camera:     geometry.NewCamera(position, lookAt),
		Shapes:     make([]geometry.Shape, 0),
		Lights:     make([]lights.PointLight, 0),
		Background: core.Background,
		Width:      800,
		Height:     600,
	}
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *geometry.Camera { return s.Camera }

// GetShapes returns the shapes in insertion order
func (s *Scene) GetShapes() []geometry.Shape { return s.Shapes }

// GetLights returns the lights in insertion order
func (s *Scene) GetLights() []lights.PointLight { return s.Lights }

// GetBackground returns the color of rays that escape the scene
func (s *Scene) GetBackground() core.Color { return s.Background }

// AddSphere adds a world-space sphere to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, surface *material.Surface) *geometry.Sphere {
	sphere := geometry.NewSphere(center, radius, surface)
	s.Shapes = append(s.Shapes, sphere)
	return sphere
}

// AddTransformedSphere adds a unit sphere placed by xform
func (s *Scene) AddTransformedSphere(surface *material.Surface, xform *transform.Transform) *geometry.Sphere {
	sphere := geometry.NewTransformedSphere(surface, xform)
	s.Shapes = append(s.Shapes, sphere)
	return sphere
}

// AddPlane adds a world-space plane to the scene
func (s *Scene) AddPlane(normal core.Vec3, offset float64, surface *material.Surface) *geometry.Plane {
	plane := geometry.NewPlane(normal, offset, surface)
	s.Shapes = append(s.Shapes, plane)
	return plane
}

// AddTransformedPlane adds the y = 0 plane placed by xform
func (s *Scene) AddTransformedPlane(surface *material.Surface, xform *transform.Transform) *geometry.Plane {
	plane := geometry.NewTransformedPlane(surface, xform)
	s.Shapes = append(s.Shapes, plane)
	return plane
}

// AddLight adds a point light to the scene
func (s *Scene) AddLight(position core.Vec3, color core.Color) {
	s.Lights = append(s.Lights, lights.NewPointLight(position, color))
}
