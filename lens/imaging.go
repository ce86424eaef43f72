// SPDX-License-Identifier: MIT
// Package lens: imaging conjugates through the rod.
package lens

import (
	"fmt"
	"math"

	"github.com/katalvlaran/grin/medium"
	"github.com/katalvlaran/grin/paraxial"
)

// ImageDistance returns the image position for an object s in front of
// the rod: the distance from the back vertex to the image plane, positive
// beyond the lens (a negative result is a virtual image).
//
// Derivation: with the air-to-air system matrix M, the object-to-image
// chain FreeSpace(s′)·M·FreeSpace(s) images when its B entry vanishes,
// giving s′ = −(A·s + B)/(C·s + D).
//
// Errors: medium.ErrInvalidParameter when s < 0 or non-finite;
// ErrSingular when the object sits on the front focal plane
// (|C·s + D| ≤ SingularTol — the image is at infinity).
// Complexity: O(1).
func ImageDistance(m medium.Medium, s float64) (float64, error) {
	sys, denom, err := conjugate(m, s)
	if err != nil {
		return 0, err
	}

	return -(sys.A*s + sys.B) / denom, nil
}

// Magnification returns the transverse magnification of an object s in
// front of the rod: 1/(C·s + D), negative for an inverted real image.
//
// For imaging conjugates this equals the A entry of the full
// object-to-image matrix (unit determinant: A_total = 1/D_total).
//
// Errors: same as ImageDistance.
// Complexity: O(1).
func Magnification(m medium.Medium, s float64) (float64, error) {
	_, denom, err := conjugate(m, s)
	if err != nil {
		return 0, err
	}

	return 1 / denom, nil
}

// conjugate validates the object distance and guards the shared imaging
// denominator C·s + D.
func conjugate(m medium.Medium, s float64) (paraxial.Matrix, float64, error) {
	if math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
		return paraxial.Matrix{}, 0, fmt.Errorf("object distance %v: %w", s, medium.ErrInvalidParameter)
	}
	sys, err := SystemMatrix(m)
	if err != nil {
		return paraxial.Matrix{}, 0, err
	}
	denom := sys.C*s + sys.D
	if math.Abs(denom) <= SingularTol {
		return paraxial.Matrix{}, 0, ErrSingular
	}

	return sys, denom, nil
}
