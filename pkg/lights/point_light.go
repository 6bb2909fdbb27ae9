package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// PointLight emits from a single position with no distance falloff
type PointLight struct {
	Position core.Vec3
	Color    core.Color
}

// NewPointLight creates a new point light
func NewPointLight(position core.Vec3, color core.Color) PointLight {
	return PointLight{Position: position, Color: color}
}

// Sample returns the direction and distance from point to the light
func (l PointLight) Sample(point core.Vec3) LightSample {
	toLight := l.Position.Subtract(point)
	return LightSample{
		Direction: toLight.Normalize(),
		Distance:  toLight.Length(),
		Color:     l.Color,
	}
}
