package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// MaxDepth is the number of reflection bounces traced before the grey
// placeholder is substituted for the reflected color
const MaxDepth = 5

// Scene is the read-only view of a scene that the raytracer needs
type Scene interface {
	GetCamera() *geometry.Camera
	GetShapes() []geometry.Shape
	GetLights() []lights.PointLight
	GetBackground() core.Color
}

// RaytracerConfig contains rendering configuration
type RaytracerConfig struct {
	TileSize   int // Side of the square tiles handed to workers
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultRaytracerConfig returns sensible default values
func DefaultRaytracerConfig() RaytracerConfig {
	return RaytracerConfig{
		TileSize:   32,
		NumWorkers: 0,
	}
}

// Raytracer renders a scene with recursive Whitted-style ray tracing
type Raytracer struct {
	scene  Scene
	width  int
	height int
	config RaytracerConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	return &Raytracer{
		scene:  scene,
		width:  width,
		height: height,
		config: DefaultRaytracerConfig(),
		logger: core.DiscardLogger{},
	}
}

// SetConfig updates the rendering configuration
func (rt *Raytracer) SetConfig(config RaytracerConfig) {
	rt.config = config
}

// SetLogger sets the logger used for progress output
func (rt *Raytracer) SetLogger(logger core.Logger) {
	rt.logger = logger
}

// tracer holds per-goroutine state for tracing rays through a scene.
// The scene slices are shared and never written.
type tracer struct {
	shapes     []geometry.Shape
	lights     []lights.PointLight
	background core.Color
	counts     RayCounts
}

func (rt *Raytracer) newTracer() *tracer {
	return &tracer{
		shapes:     rt.scene.GetShapes(),
		lights:     rt.scene.GetLights(),
		background: rt.scene.GetBackground(),
	}
}

// intersections finds the nearest hit. Ties keep the earliest shape in scene
// order because only a strictly smaller distance replaces the current best.
func (t *tracer) intersections(ray core.Ray) (geometry.Intersection, bool) {
	var closest geometry.Intersection
	closestDist := math.MaxFloat64
	found := false

	for _, shape := range t.shapes {
		if isect, ok := geometry.Hit(shape, ray); ok && isect.Dist < closestDist {
			closestDist = isect.Dist
			closest = isect
			found = true
		}
	}

	return closest, found
}

// testRay returns the distance to the nearest hit, for occlusion checks
func (t *tracer) testRay(ray core.Ray) (float64, bool) {
	if isect, ok := t.intersections(ray); ok {
		return isect.Dist, true
	}
	return 0, false
}

// traceRay returns the color seen along ray at the given recursion depth
func (t *tracer) traceRay(ray core.Ray, depth int) core.Color {
	if isect, ok := t.intersections(ray); ok {
		return t.shade(isect, depth)
	}
	return t.background
}

// shade computes background + direct light + reflection at a hit.
// The background is added at every hit, not only on misses.
func (t *tracer) shade(isect geometry.Intersection, depth int) core.Color {
	d := isect.Ray.Direction
	pos := isect.Point()
	normal := isect.Shape.Normal(pos)
	reflectDir := d.Reflect(normal)

	naturalColor := t.background.Add(t.naturalColor(isect.Shape, pos, normal, reflectDir))

	var reflectedColor core.Color
	if depth >= MaxDepth {
		reflectedColor = core.Grey
	} else {
		reflectedColor = t.reflectionColor(isect.Shape, pos, reflectDir, depth)
	}

	return naturalColor.Add(reflectedColor)
}

// reflectionColor traces the mirror ray and scales it by the surface's reflectivity
func (t *tracer) reflectionColor(shape geometry.Shape, pos, reflectDir core.Vec3, depth int) core.Color {
	t.counts.ReflectionRays++
	reflected := t.traceRay(core.NewRay(pos, reflectDir), depth+1)
	return reflected.Scale(shape.Surface().Reflect(pos))
}

// naturalColor sums the direct contribution of every light in scene order
func (t *tracer) naturalColor(shape geometry.Shape, pos, normal, reflectDir core.Vec3) core.Color {
	col := core.DefaultColor
	for _, light := range t.lights {
		col = t.addLight(shape, pos, normal, reflectDir, col, light)
	}
	return col
}

// addLight adds one light's Lambertian and Phong terms to col unless
// something lies strictly between pos and the light
func (t *tracer) addLight(shape geometry.Shape, pos, normal, reflectDir core.Vec3, col core.Color, light lights.PointLight) core.Color {
	sample := light.Sample(pos)

	t.counts.ShadowRays++
	if dist, hit := t.testRay(core.NewRay(pos, sample.Direction)); hit && dist < sample.Distance {
		return col
	}

	lightColor := core.DefaultColor
	if illum := sample.Direction.Dot(normal); illum > 0 {
		lightColor = sample.Color.Scale(illum)
	}

	surface := shape.Surface()
	specColor := core.DefaultColor
	if specular := sample.Direction.Dot(reflectDir.Normalize()); specular > 0 {
		specColor = sample.Color.Scale(core.PowInt(specular, surface.Shininess))
	}

	return col.
		Add(surface.Diffuse(pos).Mul(lightColor)).
		Add(surface.Specular(pos).Mul(specColor))
}
