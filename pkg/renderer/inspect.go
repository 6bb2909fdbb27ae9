package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// PixelInfo describes what the primary ray through a pixel sees
type PixelInfo struct {
	Ray      core.Ray
	Hit      bool
	Shape    geometry.Shape // nil on a miss
	Point    core.Vec3
	Normal   core.Vec3
	Distance float64
	Color    core.Color // Same value a render writes for the pixel
}

// InspectPixel traces the primary ray through (x, y) and reports the nearest
// hit along with the shaded color
func (rt *Raytracer) InspectPixel(x, y int) PixelInfo {
	t := rt.newTracer()
	ray := rt.scene.GetCamera().GetRay(x, y, rt.width, rt.height)

	info := PixelInfo{Ray: ray, Color: t.traceRay(ray, 0)}
	if isect, ok := t.intersections(ray); ok {
		info.Hit = true
		info.Shape = isect.Shape
		info.Point = isect.Point()
		info.Normal = isect.Shape.Normal(info.Point)
		info.Distance = isect.Dist
	}
	return info
}
