// Package paraxial: core types and sentinel errors.
package paraxial

import "errors"

// Sentinel errors for matrix constructors.
var (
	// ErrNegativeDistance indicates a free-space run of negative or
	// non-finite length.
	ErrNegativeDistance = errors.New("paraxial: propagation distance must be ≥ 0 and finite")
	// ErrNonPositiveIndex indicates a refractive index ≤ 0 or non-finite.
	ErrNonPositiveIndex = errors.New("paraxial: refractive index must be > 0 and finite")
	// ErrDepthOutOfRange indicates an axial depth outside [0, Length] of
	// the gradient medium.
	ErrDepthOutOfRange = errors.New("paraxial: axial depth outside the gradient segment")
)

// DefaultEpsilon is the absolute tolerance used by IsUnimodular and by
// determinant checks in tests.
const DefaultEpsilon = 1e-9

// Ray is a meridional ray state at one axial plane.
//
// Height is the signed distance from the optical axis; Angle is the
// geometric paraxial slope dr/dz (tangent of the physical angle), signed,
// positive when the ray climbs away from the axis in +z. Ray is an
// immutable value: every propagation step produces a fresh one.
type Ray struct {
	Height float64
	Angle  float64
}
