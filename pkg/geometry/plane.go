package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/transform"
)

// Plane is either the world-space plane {p : Norm·p + Offset = 0} or, when
// Transform is set, the object-space plane y = 0 mapped into the world.
type Plane struct {
	Norm      core.Vec3 // Unit normal; the side it points to is the front
	Offset    float64
	Material  *material.Surface
	Transform *transform.Transform // nil means world-space coordinates
}

// NewPlane creates a world-space plane. The normal is normalized and the
// offset rescaled with it, so the plane itself does not move.
func NewPlane(normal core.Vec3, offset float64, surface *material.Surface) *Plane {
	length := normal.Length()
	if length == 0 {
		length = 1
	}
	return &Plane{
		Norm:     normal.Multiply(1 / length),
		Offset:   offset / length,
		Material: surface,
	}
}

// NewTransformedPlane creates the y = 0 plane placed by xform
func NewTransformedPlane(surface *material.Surface, xform *transform.Transform) *Plane {
	return &Plane{
		Norm:      core.NewVec3(0, 1, 0),
		Offset:    0,
		Material:  surface,
		Transform: xform,
	}
}

func (p *Plane) shape() {}

// Surface returns the plane's material
func (p *Plane) Surface() *material.Surface {
	return p.Material
}

// Intersect tests the ray against the plane
func (p *Plane) Intersect(ray core.Ray) (float64, bool) {
	if p.Transform != nil {
		return p.intersectTransformed(ray)
	}
	return p.intersectWorld(ray)
}

// intersectWorld only accepts rays approaching the front face; rays that are
// parallel or travelling along the normal miss.
func (p *Plane) intersectWorld(ray core.Ray) (float64, bool) {
	denom := p.Norm.Dot(ray.Direction)
	if denom > -ParallelEpsilon {
		return 0, false
	}

	dist := (p.Norm.Dot(ray.Origin) + p.Offset) / -denom
	if dist <= HitEpsilon {
		return 0, false
	}
	return dist, true
}

// intersectTransformed hits the object-space y = 0 plane from either side
func (p *Plane) intersectTransformed(ray core.Ray) (float64, bool) {
	origin := p.Transform.InversePoint(ray.Origin)
	dir := p.Transform.InverseVector(ray.Direction)

	if math.Abs(dir.Y) < ParallelEpsilon {
		return 0, false
	}

	dist := -origin.Y / dir.Y
	if dist <= HitEpsilon {
		return 0, false
	}
	return dist, true
}

// Normal returns the plane's unit normal; it is the same at every point
func (p *Plane) Normal(point core.Vec3) core.Vec3 {
	if p.Transform != nil {
		return p.Transform.Normal(core.NewVec3(0, 1, 0))
	}
	return p.Norm
}
