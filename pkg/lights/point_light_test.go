package lights

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestPointLight_Sample(t *testing.T) {
	light := NewPointLight(core.NewVec3(0, 4, 3), core.NewColor(0.5, 0.25, 1))

	sample := light.Sample(core.NewVec3(0, 0, 0))

	if math.Abs(sample.Distance-5) > 1e-12 {
		t.Errorf("Expected distance 5, got %f", sample.Distance)
	}
	expected := core.NewVec3(0, 0.8, 0.6)
	if sample.Direction.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected direction %v, got %v", expected, sample.Direction)
	}
	if sample.Color != light.Color {
		t.Errorf("Expected color %v, got %v", light.Color, sample.Color)
	}
}

func TestPointLight_SampleAtLight(t *testing.T) {
	light := NewPointLight(core.NewVec3(1, 1, 1), core.White)

	sample := light.Sample(core.NewVec3(1, 1, 1))
	if sample.Distance != 0 {
		t.Errorf("Expected zero distance, got %f", sample.Distance)
	}
	if sample.Direction != (core.Vec3{}) {
		t.Errorf("Expected zero direction at the light itself, got %v", sample.Direction)
	}
}
