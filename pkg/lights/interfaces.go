package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// LightSample describes the light arriving at a shading point from one light
type LightSample struct {
	Direction core.Vec3  // Unit direction from shading point to light
	Distance  float64    // Distance to light; occluders must be strictly closer
	Color     core.Color // Light color and intensity
}
