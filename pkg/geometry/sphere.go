package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/transform"
)

// Sphere is either a world-space sphere (Center, Radius) or, when Transform
// is set, the unit sphere at the origin mapped into the world by Transform.
type Sphere struct {
	Center    core.Vec3
	Radius    float64
	Material  *material.Surface
	Transform *transform.Transform // nil means world-space coordinates
}

// NewSphere creates a world-space sphere
func NewSphere(center core.Vec3, radius float64, surface *material.Surface) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: surface,
	}
}

// NewTransformedSphere creates a unit sphere placed by xform, which may
// scale it into an ellipsoid
func NewTransformedSphere(surface *material.Surface, xform *transform.Transform) *Sphere {
	return &Sphere{
		Center:    core.NewVec3(0, 0, 0),
		Radius:    1.0,
		Material:  surface,
		Transform: xform,
	}
}

func (s *Sphere) shape() {}

// Surface returns the sphere's material
func (s *Sphere) Surface() *material.Surface {
	return s.Material
}

// Intersect tests the ray against the sphere
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	if s.Transform != nil {
		return s.intersectTransformed(ray)
	}
	return s.intersectWorld(ray)
}

// intersectWorld solves against Center/Radius using the projection of the
// center onto the ray. Spheres whose center lies behind the origin are
// rejected before the discriminant is computed.
func (s *Sphere) intersectWorld(ray core.Ray) (float64, bool) {
	eo := s.Center.Subtract(ray.Origin)
	v := eo.Dot(ray.Direction)
	if v < 0 {
		return 0, false
	}

	disc := s.Radius*s.Radius - (eo.Dot(eo) - v*v)
	if disc < 0 {
		return 0, false
	}

	d := math.Sqrt(disc)
	return nearestRoot(v-d, v+d)
}

// intersectTransformed maps the ray into object space and solves against
// the unit sphere. The object-space direction keeps its length, so the
// root is already a distance along the world ray.
func (s *Sphere) intersectTransformed(ray core.Ray) (float64, bool) {
	origin := s.Transform.InversePoint(ray.Origin)
	dir := s.Transform.InverseVector(ray.Direction)

	// at² + bt + c = 0
	a := dir.Dot(dir)
	halfB := origin.Dot(dir)
	c := origin.Dot(origin) - 1.0

	disc := halfB*halfB - a*c
	if disc < 0 {
		return 0, false
	}

	sqrtD := math.Sqrt(disc)
	return nearestRoot((-halfB-sqrtD)/a, (-halfB+sqrtD)/a)
}

// nearestRoot picks the smaller root that clears HitEpsilon
func nearestRoot(near, far float64) (float64, bool) {
	if near > HitEpsilon {
		return near, true
	}
	if far > HitEpsilon {
		return far, true
	}
	return 0, false
}

// Normal returns the outward unit normal at point
func (s *Sphere) Normal(point core.Vec3) core.Vec3 {
	if s.Transform != nil {
		objectPoint := s.Transform.InversePoint(point)
		return s.Transform.Normal(objectPoint.Normalize())
	}
	return point.Subtract(s.Center).Normalize()
}
