package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Surface describes how a point on a shape responds to light.
// Every field is a pure function of the world-space shade point, so a
// Surface may be shared by any number of shapes and concurrent renders.
type Surface struct {
	Diffuse   func(point core.Vec3) core.Color // Lambertian color
	Specular  func(point core.Vec3) core.Color // Phong highlight color
	Reflect   func(point core.Vec3) float64    // Mirror reflection coefficient
	Shininess int                              // Phong exponent
}

// Built-in surfaces
var (
	Shiny = &Surface{
		Diffuse:   shinyDiffuse,
		Specular:  shinySpecular,
		Reflect:   shinyReflect,
		Shininess: 100,
	}

	Checkerboard = &Surface{
		Diffuse:   checkerboardDiffuse,
		Specular:  checkerboardSpecular,
		Reflect:   checkerboardReflect,
		Shininess: 1,
	}

	Mirror = &Surface{
		Diffuse:   blackColor,
		Specular:  blackColor,
		Reflect:   fullReflect,
		Shininess: 1,
	}
)

// NewSolid creates a surface with position-independent properties
func NewSolid(diffuse, specular core.Color, reflect float64, shininess int) *Surface {
	return &Surface{
		Diffuse:   func(core.Vec3) core.Color { return diffuse },
		Specular:  func(core.Vec3) core.Color { return specular },
		Reflect:   func(core.Vec3) float64 { return reflect },
		Shininess: shininess,
	}
}

func shinyDiffuse(core.Vec3) core.Color  { return core.White }
func shinySpecular(core.Vec3) core.Color { return core.Grey }
func shinyReflect(core.Vec3) float64     { return 0.7 }

// oddSquare reports whether the point lies on a square where floor(x)+floor(z) is odd
func oddSquare(point core.Vec3) bool {
	return (core.FloorInt(point.Z)+core.FloorInt(point.X))%2 != 0
}

func checkerboardDiffuse(point core.Vec3) core.Color {
	if oddSquare(point) {
		return core.White
	}
	return core.Black
}

func checkerboardSpecular(core.Vec3) core.Color { return core.White }

func checkerboardReflect(point core.Vec3) float64 {
	if oddSquare(point) {
		return 0.1
	}
	return 0.7
}

func blackColor(core.Vec3) core.Color { return core.Black }
func fullReflect(core.Vec3) float64   { return 1.0 }
