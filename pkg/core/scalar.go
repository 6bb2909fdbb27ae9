package core

import "math"

// Sqrt computes a square root with Newton-Raphson iteration using only
// arithmetic, so results are reproducible across platforms.
// Negative input yields NaN.
func Sqrt(x float64) float64 {
	if x < 0 || math.IsNaN(x) {
		return math.NaN()
	}
	if x == 0 || math.IsInf(x, 1) {
		return x
	}

	// Starting at or above the root makes the iterates strictly decreasing
	// until they stall, which is the stopping condition.
	curr := max(x, 1)
	for {
		next := 0.5 * (curr + x/curr)
		if next >= curr {
			return curr
		}
		curr = next
	}
}

// FloorInt returns the greatest integer less than or equal to x
func FloorInt(x float64) int {
	return int(math.Floor(x))
}

// PowInt raises base to a non-negative integer exponent by repeated multiplication.
// Exponents below zero are treated as zero.
func PowInt(base float64, exp int) float64 {
	result := 1.0
	for ; exp > 0; exp-- {
		result *= base
	}
	return result
}
