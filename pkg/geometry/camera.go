package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// viewScale widens the image plane so the default scenes fill the frame
const viewScale = 1.5

// Camera is a pinhole camera with a fixed orthogonal basis
type Camera struct {
	Position core.Vec3
	Forward  core.Vec3 // Unit view direction
	Right    core.Vec3 // Image-plane horizontal axis, length viewScale
	Up       core.Vec3 // Image-plane vertical axis, length viewScale
}

// NewCamera creates a camera at position looking toward lookAt.
// The basis is built against world down (0,-1,0), so lookAt must not lie
// directly above or below the camera.
func NewCamera(position, lookAt core.Vec3) *Camera {
	forward := lookAt.Subtract(position).Normalize()
	right := forward.Cross(core.NewVec3(0, -1, 0)).Normalize().Multiply(viewScale)
	up := forward.Cross(right).Normalize().Multiply(viewScale)

	return &Camera{
		Position: position,
		Forward:  forward,
		Right:    right,
		Up:       up,
	}
}

// GetRay returns the primary ray through pixel (x, y) of a width x height raster.
// Pixel (0, 0) is the top-left corner.
func (c *Camera) GetRay(x, y, width, height int) core.Ray {
	recenterX := (float64(x) - float64(width)/2.0) / 2.0 / float64(width)
	recenterY := -(float64(y) - float64(height)/2.0) / 2.0 / float64(height)

	direction := c.Forward.
		Add(c.Right.Multiply(recenterX)).
		Add(c.Up.Multiply(recenterY)).
		Normalize()

	return core.NewRay(c.Position, direction)
}
