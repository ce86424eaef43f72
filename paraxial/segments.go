// Package paraxial: validated matrix constructors for the three segment
// kinds of a GRIN assembly — gradient rod, free-space run, flat interface.
package paraxial

import (
	"fmt"
	"math"

	"github.com/katalvlaran/grin/medium"
)

// FreeSpace returns the transfer matrix of a homogeneous run of length d:
//
//	[[1, d], [0, 1]]
//
// In the slope convention this form holds in any uniform medium, since a
// straight ray changes height by d·slope and keeps its slope.
//
// Errors: ErrNegativeDistance when d < 0 or non-finite.
// Complexity: O(1).
func FreeSpace(d float64) (Matrix, error) {
	if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
		return Matrix{}, fmt.Errorf("distance %v: %w", d, ErrNegativeDistance)
	}

	return Matrix{A: 1, B: d, C: 0, D: 1}, nil
}

// FlatInterface returns the matrix of a flat refracting boundary from a
// medium of index nBefore into one of index nAfter:
//
//	[[1, 0], [0, nBefore/nAfter]]
//
// Height is continuous; the paraxial Snell law n·θ = const rescales the
// slope. The element is zero-length: it bends the angle variable only.
//
// Errors: ErrNonPositiveIndex when either index is ≤ 0 or non-finite.
// Complexity: O(1).
func FlatInterface(nBefore, nAfter float64) (Matrix, error) {
	for _, n := range [...]float64{nBefore, nAfter} {
		if math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
			return Matrix{}, fmt.Errorf("index %v: %w", n, ErrNonPositiveIndex)
		}
	}

	return Matrix{A: 1, B: 0, C: 0, D: nBefore / nAfter}, nil
}

// Gradient returns the in-medium transfer matrix of a parabolic gradient
// rod from its front face to interior depth z ∈ [0, Length]:
//
//	[[  cos(g·z),  sin(g·z)/g ],
//	 [ −g·sin(g·z), cos(g·z)  ]]
//
// The matrix maps the ray state just inside the front face to the state
// at depth z, still inside the medium (slope convention; the entry and
// exit refractions are separate FlatInterface elements). A meridional ray
// obeys r'' = −g²·r inside the rod, so height and slope evolve as a
// harmonic oscillator in z.
//
// Degenerate gradient: g == 0 yields the exact free-space limit
// [[1, z], [0, 1]] — no division by zero.
//
// Errors: ErrDepthOutOfRange when z ∉ [0, Length] or non-finite.
// Complexity: O(1).
func Gradient(m medium.Medium, z float64) (Matrix, error) {
	if math.IsNaN(z) || z < 0 || z > m.Length {
		return Matrix{}, fmt.Errorf("depth %v of length %v: %w", z, m.Length, ErrDepthOutOfRange)
	}
	if m.Grad == 0 {
		// Homogeneous rod: straight-line propagation.
		return Matrix{A: 1, B: z, C: 0, D: 1}, nil
	}

	var (
		g   = m.Grad
		sin = math.Sin(g * z)
		cos = math.Cos(g * z)
	)

	return Matrix{A: cos, B: sin / g, C: -g * sin, D: cos}, nil
}

// GradientSegment returns the whole-rod matrix Gradient(m, m.Length).
func GradientSegment(m medium.Medium) (Matrix, error) {
	return Gradient(m, m.Length)
}
