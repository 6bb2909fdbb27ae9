// Package transform maps geometry between object space and world space.
//
// A Transform stores its forward matrix together with the inverse and the
// inverse-transpose of the linear block. All three are fixed when the
// transform is built, so intersection tests never invert a matrix.
package transform

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Transform is an affine object-to-world mapping with precomputed inverses.
// It is immutable once built and safe for concurrent use.
type Transform struct {
	forward      mgl64.Mat4
	inverse      mgl64.Mat4
	invTranspose mgl64.Mat3 // transpose of inverse's upper-left 3x3, for normals
}

// newTransform pairs a matrix with its known inverse and derives the normal matrix
func newTransform(forward, inverse mgl64.Mat4) *Transform {
	return &Transform{
		forward:      forward,
		inverse:      inverse,
		invTranspose: inverse.Mat3().Transpose(),
	}
}

// Identity returns the transform that leaves every point unchanged
func Identity() *Transform {
	return newTransform(mgl64.Ident4(), mgl64.Ident4())
}

// Translate returns a translation by (x, y, z)
func Translate(x, y, z float64) *Transform {
	return newTransform(mgl64.Translate3D(x, y, z), mgl64.Translate3D(-x, -y, -z))
}

// Scale returns a non-uniform scale. Every factor must be finite and nonzero;
// otherwise a *DomainError wrapping ErrZeroScale or ErrNonFiniteScale is returned.
func Scale(x, y, z float64) (*Transform, error) {
	for _, f := range [3]float64{x, y, z} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, &DomainError{Op: "scale", Err: ErrNonFiniteScale}
		}
		if f == 0 {
			return nil, &DomainError{Op: "scale", Err: ErrZeroScale}
		}
	}
	return newTransform(mgl64.Scale3D(x, y, z), mgl64.Scale3D(1/x, 1/y, 1/z)), nil
}

// MustScale is like Scale but panics on invalid factors.
// Intended for scenes written as literals.
func MustScale(x, y, z float64) *Transform {
	t, err := Scale(x, y, z)
	if err != nil {
		panic(err)
	}
	return t
}

// RotateX returns a rotation about the X axis by the given angle in radians
func RotateX(radians float64) *Transform {
	return newTransform(mgl64.HomogRotate3DX(radians), mgl64.HomogRotate3DX(-radians))
}

// RotateY returns a rotation about the Y axis by the given angle in radians
func RotateY(radians float64) *Transform {
	return newTransform(mgl64.HomogRotate3DY(radians), mgl64.HomogRotate3DY(-radians))
}

// RotateZ returns a rotation about the Z axis by the given angle in radians
func RotateZ(radians float64) *Transform {
	return newTransform(mgl64.HomogRotate3DZ(radians), mgl64.HomogRotate3DZ(-radians))
}

// Compose returns the transform that applies first and then second.
// Forward matrices multiply as second*first and inverses as first⁻¹*second⁻¹;
// the normal matrix is rebuilt from the composed inverse.
func Compose(first, second *Transform) *Transform {
	return newTransform(
		second.forward.Mul4(first.forward),
		first.inverse.Mul4(second.inverse),
	)
}

// Then returns the transform that applies t and then next
func (t *Transform) Then(next *Transform) *Transform {
	return Compose(t, next)
}

// Point maps an object-space position to world space
func (t *Transform) Point(p core.Vec3) core.Vec3 {
	return apply(t.forward, p, 1)
}

// Vector maps an object-space direction to world space (no translation)
func (t *Transform) Vector(v core.Vec3) core.Vec3 {
	return apply(t.forward, v, 0)
}

// InversePoint maps a world-space position to object space
func (t *Transform) InversePoint(p core.Vec3) core.Vec3 {
	return apply(t.inverse, p, 1)
}

// InverseVector maps a world-space direction to object space.
// The result is not renormalized: its length carries the scale.
func (t *Transform) InverseVector(v core.Vec3) core.Vec3 {
	return apply(t.inverse, v, 0)
}

// Normal maps an object-space surface normal to a unit world-space normal
func (t *Transform) Normal(n core.Vec3) core.Vec3 {
	r := t.invTranspose.Mul3x1(mgl64.Vec3{n.X, n.Y, n.Z})
	return core.NewVec3(r[0], r[1], r[2]).Normalize()
}

// Forward returns a copy of the forward matrix
func (t *Transform) Forward() mgl64.Mat4 {
	return t.forward
}

// Inverse returns a copy of the inverse matrix
func (t *Transform) Inverse() mgl64.Mat4 {
	return t.inverse
}

// NormalMatrix returns a copy of the inverse-transpose 3x3 block
func (t *Transform) NormalMatrix() mgl64.Mat3 {
	return t.invTranspose
}

func apply(m mgl64.Mat4, v core.Vec3, w float64) core.Vec3 {
	r := m.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, w})
	return core.NewVec3(r[0], r[1], r[2])
}
