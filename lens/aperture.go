// SPDX-License-Identifier: MIT
// Package lens: closed-form acceptance of the apertured rod in air.
package lens

import (
	"math"

	"github.com/katalvlaran/grin/medium"
)

// MaxAngle returns the maximum acceptance half-angle of the rod in air,
// in radians:
//
//	maxAngle = n0 · tanh(g·D/2)
//
// the classic closed-form acceptance of a gradient rod quoted on GRIN
// datasheets (≈ 0.476 rad, full cone ≈ 54.5°, for the worked rod). For
// the paraxial marginal-ray figure see AcceptanceAngle.
//
// Errors: medium.ErrMissingDiameter when no aperture is set.
// Complexity: O(1).
func MaxAngle(m medium.Medium) (float64, error) {
	r, err := m.Radius()
	if err != nil {
		return 0, err
	}

	return m.N0 * math.Tanh(m.Grad*r), nil
}

// NA returns the numerical aperture of the rod in air: sin(MaxAngle)
// (≈ 0.458 for the worked rod). A zero-gradient rod guides nothing and
// has NA 0.
//
// Errors: medium.ErrMissingDiameter when no aperture is set.
// Complexity: O(1).
func NA(m medium.Medium) (float64, error) {
	angle, err := MaxAngle(m)
	if err != nil {
		return 0, err
	}

	return math.Sin(angle), nil
}
