package transform

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

const tolerance = 1e-9

func vecClose(a, b core.Vec3) bool {
	return a.Subtract(b).Length() < tolerance
}

// sampleTransforms covers each factory and a few compositions
func sampleTransforms() map[string]*Transform {
	return map[string]*Transform{
		"identity":          Identity(),
		"translate":         Translate(1, -2, 3.5),
		"scale":             MustScale(2, 0.5, -3),
		"rotate x":          RotateX(0.3),
		"rotate y":          RotateY(math.Pi / 3),
		"rotate z":          RotateZ(-1.1),
		"scale then move":   Compose(MustScale(1, 2, 1), Translate(0, 1, -4)),
		"rotate then scale": RotateY(0.7).Then(MustScale(3, 1, 0.25)),
		"three step chain":  Translate(1, 0, 0).Then(RotateZ(0.4)).Then(MustScale(1, 5, 2)),
	}
}

func TestTransform_RoundTrip(t *testing.T) {
	inputs := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 2, 3),
		core.NewVec3(-4.5, 0.25, 7),
	}

	for name, xf := range sampleTransforms() {
		t.Run(name, func(t *testing.T) {
			for _, v := range inputs {
				if got := xf.InversePoint(xf.Point(v)); !vecClose(got, v) {
					t.Errorf("point round trip of %v gave %v", v, got)
				}
				if got := xf.InverseVector(xf.Vector(v)); !vecClose(got, v) {
					t.Errorf("vector round trip of %v gave %v", v, got)
				}
			}
		})
	}
}

func TestTransform_InverseInvariant(t *testing.T) {
	for name, xf := range sampleTransforms() {
		t.Run(name, func(t *testing.T) {
			forward := xf.Forward()
			if !xf.Inverse().ApproxEqualThreshold(forward.Inv(), tolerance) {
				t.Errorf("stored inverse does not match computed inverse\nstored: %v\ncomputed: %v",
					xf.Inverse(), forward.Inv())
			}

			inverse := xf.Inverse()
			expectedNormal := inverse.Mat3().Transpose()
			if !xf.NormalMatrix().ApproxEqualThreshold(expectedNormal, tolerance) {
				t.Errorf("normal matrix is not the transpose of the inverse linear block")
			}
		})
	}
}

func TestTransform_ComposeLaw(t *testing.T) {
	a := RotateY(0.9).Then(Translate(2, 0, 1))
	b := MustScale(0.5, 2, 1).Then(RotateX(-0.4))
	ab := Compose(a, b)

	points := []core.Vec3{
		core.NewVec3(1, 1, 1),
		core.NewVec3(-3, 0.5, 2),
	}

	for _, p := range points {
		if got, want := ab.Point(p), b.Point(a.Point(p)); !vecClose(got, want) {
			t.Errorf("composed point %v = %v, want %v", p, got, want)
		}
		if got, want := ab.InversePoint(p), a.InversePoint(b.InversePoint(p)); !vecClose(got, want) {
			t.Errorf("composed inverse point %v = %v, want %v", p, got, want)
		}
		if got, want := ab.Vector(p), b.Vector(a.Vector(p)); !vecClose(got, want) {
			t.Errorf("composed vector %v = %v, want %v", p, got, want)
		}
	}
}

func TestTransform_Factories(t *testing.T) {
	tests := []struct {
		name     string
		xf       *Transform
		point    core.Vec3
		expected core.Vec3
	}{
		{"translate moves points", Translate(1, 2, 3), core.NewVec3(1, 1, 1), core.NewVec3(2, 3, 4)},
		{"scale stretches", MustScale(2, 3, 4), core.NewVec3(1, 1, 1), core.NewVec3(2, 3, 4)},
		{"rotate y quarter turn", RotateY(math.Pi / 2), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, -1)},
		{"rotate x quarter turn", RotateX(math.Pi / 2), core.NewVec3(0, 1, 0), core.NewVec3(0, 0, 1)},
		{"rotate z quarter turn", RotateZ(math.Pi / 2), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.xf.Point(tt.point); !vecClose(got, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestTransform_VectorIgnoresTranslation(t *testing.T) {
	xf := Translate(10, 20, 30)
	v := core.NewVec3(0, 1, 0)
	if got := xf.Vector(v); got != v {
		t.Errorf("Expected translation to leave direction unchanged, got %v", got)
	}
}

func TestTransform_NormalUnderNonUniformScale(t *testing.T) {
	xf := MustScale(2, 1, 1)

	// Surface x²/4 + y² = 1 at object normal (1,1,0)/√2 has world normal ∝ (1/2, 1, 0)
	objectNormal := core.NewVec3(1, 1, 0).Normalize()
	got := xf.Normal(objectNormal)
	want := core.NewVec3(0.5, 1, 0).Normalize()

	if !vecClose(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if math.Abs(got.Length()-1) > tolerance {
		t.Errorf("Expected unit normal, got length %f", got.Length())
	}

	naive := xf.Vector(objectNormal).Normalize()
	if vecClose(naive, want) {
		t.Error("forward-transformed normal should differ under non-uniform scale")
	}
}

func TestScale_Degenerate(t *testing.T) {
	tests := []struct {
		name    string
		x, y, z float64
		wantErr error
	}{
		{"zero x", 0, 1, 1, ErrZeroScale},
		{"zero z", 1, 1, 0, ErrZeroScale},
		{"NaN", math.NaN(), 1, 1, ErrNonFiniteScale},
		{"infinite", 1, math.Inf(-1), 1, ErrNonFiniteScale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xf, err := Scale(tt.x, tt.y, tt.z)
			if err == nil {
				t.Fatalf("Expected error, got transform %v", xf)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
			var domainErr *DomainError
			if !errors.As(err, &domainErr) {
				t.Errorf("Expected *DomainError, got %T", err)
			}
		})
	}
}

func TestMustScale_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected MustScale to panic on zero factor")
		}
	}()
	MustScale(1, 0, 1)
}
