package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Intersection tolerances shared by every shape and both coordinate modes.
const (
	// HitEpsilon is the smallest accepted hit distance. Rays leaving a
	// surface would otherwise re-hit it at distance ~0.
	HitEpsilon = 1e-6
	// ParallelEpsilon is the denominator magnitude below which a ray is
	// treated as parallel to a plane.
	ParallelEpsilon = 1e-9
)

// Shape is a primitive that rays can hit. The set is closed: only *Sphere
// and *Plane implement it.
type Shape interface {
	// Intersect returns the nearest forward distance along ray, in units of
	// the ray's direction, or false on a miss.
	Intersect(ray core.Ray) (float64, bool)
	// Normal returns the unit world-space surface normal at a point on the shape
	Normal(point core.Vec3) core.Vec3
	// Surface returns the shared material
	Surface() *material.Surface

	shape()
}

// Intersection records a ray hitting a shape
type Intersection struct {
	Shape Shape    // Shape that was hit
	Ray   core.Ray // Ray that produced the hit
	Dist  float64  // Distance along the ray
}

// Point returns the world-space hit position
func (i Intersection) Point() core.Vec3 {
	return i.Ray.At(i.Dist)
}

// Hit tests a single shape and wraps the result in an Intersection
func Hit(shape Shape, ray core.Ray) (Intersection, bool) {
	dist, ok := shape.Intersect(ray)
	if !ok {
		return Intersection{}, false
	}
	return Intersection{Shape: shape, Ray: ray, Dist: dist}, true
}
