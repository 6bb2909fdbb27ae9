package renderer

import (
	"image"
	"image/color"
	"testing"
)

func TestCalculateAverageLuminance(t *testing.T) {
	// Red 0.2126, green 0.7152, blue 0.0722, black 0 average to 0.25
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(1, 1, color.RGBA{0, 0, 0, 255})

	avgLum := CalculateAverageLuminance(img)
	expected := 0.25
	tolerance := 0.0001

	if avgLum < expected-tolerance || avgLum > expected+tolerance {
		t.Errorf("Expected average luminosity %f, got %f", expected, avgLum)
	}
}

func TestCalculateAverageLuminance_Empty(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if got := CalculateAverageLuminance(img); got != 0 {
		t.Errorf("Expected 0 for empty image, got %f", got)
	}
}

func TestRayCounts_Add(t *testing.T) {
	a := RayCounts{PrimaryRays: 1, ShadowRays: 2, ReflectionRays: 3}
	b := RayCounts{PrimaryRays: 10, ShadowRays: 20, ReflectionRays: 30}

	sum := a.Add(b)
	if sum != (RayCounts{PrimaryRays: 11, ShadowRays: 22, ReflectionRays: 33}) {
		t.Errorf("Unexpected sum %+v", sum)
	}
	if sum.Total() != 66 {
		t.Errorf("Expected total 66, got %d", sum.Total())
	}
}
