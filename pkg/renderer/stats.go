package renderer

import (
	"image"
	"time"
)

// RayCounts tallies the rays cast while rendering
type RayCounts struct {
	PrimaryRays    int64 // One per pixel
	ShadowRays     int64 // One per light per shaded hit
	ReflectionRays int64 // One per shaded hit below MaxDepth
}

// Add returns the sum of two tallies
func (c RayCounts) Add(other RayCounts) RayCounts {
	return RayCounts{
		PrimaryRays:    c.PrimaryRays + other.PrimaryRays,
		ShadowRays:     c.ShadowRays + other.ShadowRays,
		ReflectionRays: c.ReflectionRays + other.ReflectionRays,
	}
}

// Total returns the number of rays of every kind
func (c RayCounts) Total() int64 {
	return c.PrimaryRays + c.ShadowRays + c.ReflectionRays
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	RayCounts
	TotalPixels int           // Total number of pixels rendered
	Tiles       int           // Number of tiles scheduled
	Workers     int           // Number of parallel workers
	Elapsed     time.Duration // Wall-clock render time
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of an image in [0, 1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			total += (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 0xffff
		}
	}
	return total / float64(pixels)
}
