package core

// Color is an unclamped RGB triple used to accumulate light contributions.
// Clamping to a displayable range happens in the pixel sink.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

var (
	White = Color{1.0, 1.0, 1.0}
	Grey  = Color{0.5, 0.5, 0.5}
	Black = Color{0, 0, 0}

	// Background is returned for rays that escape the scene
	Background = Black
	// DefaultColor is the starting value for light accumulation
	DefaultColor = Black
)

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Scale returns the color with every channel multiplied by k
func (c Color) Scale(k float64) Color {
	return Color{k * c.R, k * c.G, k * c.B}
}

// Mul returns the channel-wise product, used to filter light by a surface color
func (c Color) Mul(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Clamp returns a color with channels clamped to [min, max]
func (c Color) Clamp(minVal, maxVal float64) Color {
	return Color{
		R: max(minVal, min(maxVal, c.R)),
		G: max(minVal, min(maxVal, c.G)),
		B: max(minVal, min(maxVal, c.B)),
	}
}
