package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestInspectPixel(t *testing.T) {
	scene := createCheckerScene()
	rt := NewRaytracer(scene, 4, 4)

	info := rt.InspectPixel(2, 2)
	if !info.Hit {
		t.Fatal("Expected center pixel to hit the floor")
	}
	if info.Shape != scene.shapes[0] {
		t.Errorf("Expected floor shape, got %v", info.Shape)
	}

	expectedPoint := core.NewVec3(1.5, 0, 0.5)
	if info.Point.Subtract(expectedPoint).Length() > 1e-9 {
		t.Errorf("Expected hit point %v, got %v", expectedPoint, info.Point)
	}
	if info.Normal != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected up normal, got %v", info.Normal)
	}
	if math.Abs(info.Distance-math.Sqrt(9.01)) > 1e-9 {
		t.Errorf("Expected distance %f, got %f", math.Sqrt(9.01), info.Distance)
	}

	sink := newRecordingSink()
	rt.RenderSerial(sink)
	if sink.pixels[[2]int{2, 2}] != info.Color {
		t.Errorf("Expected inspected color %v to match render %v", info.Color, sink.pixels[[2]int{2, 2}])
	}
}

func TestInspectPixel_Miss(t *testing.T) {
	scene := &MockScene{
		camera:     createCheckerScene().camera,
		background: core.NewColor(0.2, 0.4, 0.6),
	}
	info := NewRaytracer(scene, 4, 4).InspectPixel(0, 0)

	if info.Hit || info.Shape != nil {
		t.Errorf("Expected miss, got %+v", info)
	}
	if info.Color != scene.background {
		t.Errorf("Expected background %v, got %v", scene.background, info.Color)
	}
}
