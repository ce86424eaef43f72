// SPDX-License-Identifier: MIT
// Package lens: focal lengths, principal planes and cardinal points,
// all derived from the air-to-air system matrix.
package lens

import (
	"math"

	"github.com/katalvlaran/grin/medium"
	"github.com/katalvlaran/grin/paraxial"
)

// SystemMatrix returns the air-to-air transfer matrix of the whole rod:
// flat entry refraction, gradient segment, flat exit refraction, composed
// in traversal order. For a valid Medium the entries are
//
//	A = D = cos(g·L), B = sin(g·L)/(g·n0), C = −n0·g·sin(g·L)
//
// with the g = 0 limit A = D = 1, B = L/n0, C = 0.
// Complexity: O(1).
func SystemMatrix(m medium.Medium) (paraxial.Matrix, error) {
	enter, err := paraxial.FlatInterface(1, m.N0)
	if err != nil {
		return paraxial.Matrix{}, err
	}
	rod, err := paraxial.GradientSegment(m)
	if err != nil {
		return paraxial.Matrix{}, err
	}
	exit, err := paraxial.FlatInterface(m.N0, 1)
	if err != nil {
		return paraxial.Matrix{}, err
	}

	return paraxial.Compose(enter, rod, exit), nil
}

// Period returns the axial distance of one full sinusoidal ray
// oscillation inside the rod: 2π/g. It depends on the gradient alone —
// not on rod length or aperture.
//
// Errors: ErrSingular for a zero gradient (a homogeneous rod has no
// finite period; ±Inf is never returned).
// Complexity: O(1).
func Period(m medium.Medium) (float64, error) {
	if m.Grad <= SingularTol {
		return 0, ErrSingular
	}

	return 2 * math.Pi / m.Grad, nil
}

// Pitch returns the dimensionless pitch fraction L·g/(2π) — the share of
// a full oscillation the rod covers (0.29 for the worked SELFOC rod).
func Pitch(m medium.Medium) float64 {
	return m.Pitch()
}

// systemC extracts the system matrix and guards its C entry against the
// afocal singularity shared by every focal-length derivation.
func systemC(m medium.Medium) (paraxial.Matrix, error) {
	sys, err := SystemMatrix(m)
	if err != nil {
		return paraxial.Matrix{}, err
	}
	if math.Abs(sys.C) <= SingularTol {
		return paraxial.Matrix{}, ErrSingular
	}

	return sys, nil
}

// EFL returns the effective focal length −1/C = 1/(n0·g·sin(g·L)),
// measured from the principal planes.
//
// Errors: ErrSingular when the rod is afocal (g·L ≡ 0 mod π, including
// the zero-gradient rod).
// Complexity: O(1).
func EFL(m medium.Medium) (float64, error) {
	sys, err := systemC(m)
	if err != nil {
		return 0, err
	}

	return -1 / sys.C, nil
}

// FFL returns the front focal length D/C: the axial coordinate of the
// front focal point relative to the front vertex. Negative values place
// the focal point in front of the lens (the usual case below a quarter
// pitch); past a quarter pitch the point moves inside the rod and FFL
// turns positive, as in the worked rod (≈ +0.468 mm).
//
// Errors: ErrSingular on afocal configurations.
// Complexity: O(1).
func FFL(m medium.Medium) (float64, error) {
	sys, err := systemC(m)
	if err != nil {
		return 0, err
	}

	return sys.D / sys.C, nil
}

// BFL returns the back focal length −A/C: the distance from the back
// vertex to the rear focal point, positive beyond the lens.
//
// Errors: ErrSingular on afocal configurations.
// Complexity: O(1).
func BFL(m medium.Medium) (float64, error) {
	sys, err := systemC(m)
	if err != nil {
		return 0, err
	}

	return -sys.A / sys.C, nil
}

// PrincipalPlanes returns the offsets of the front and back principal
// planes from their respective vertices, both positive INTO the lens:
//
//	front = (D−1)/C   (from the front vertex, toward the back)
//	back  = (A−1)/C   (from the back vertex, toward the front)
//
// They tie the focal lengths together identically:
//
//	FFL = front − EFL,  BFL = EFL − back
//
// Errors: ErrSingular on afocal configurations.
// Complexity: O(1).
func PrincipalPlanes(m medium.Medium) (front, back float64, err error) {
	sys, err := systemC(m)
	if err != nil {
		return 0, 0, err
	}

	return (sys.D - 1) / sys.C, (sys.A - 1) / sys.C, nil
}

// WorkingDistance returns EFL − FFL: the gap between the front vertex
// region and the effective focus that a datasheet quotes as the working
// distance (≈ 1.43 mm for the worked rod).
//
// Errors: ErrSingular on afocal configurations.
func WorkingDistance(m medium.Medium) (float64, error) {
	sys, err := systemC(m)
	if err != nil {
		return 0, err
	}

	// EFL − FFL = −(1+D)/C, one guard instead of two calls.
	return -(1 + sys.D) / sys.C, nil
}

// CardinalPoints holds the six cardinal axial coordinates of the rod,
// all measured in the same frame: the front vertex sits at the supplied
// offset and +z runs toward the image side.
type CardinalPoints struct {
	FrontFocal     float64 // front focal point F
	FrontVertex    float64 // first lens surface
	FrontPrincipal float64 // first principal plane H
	BackPrincipal  float64 // second principal plane H'
	BackVertex     float64 // second lens surface
	BackFocal      float64 // back focal point F'
}

// Cardinal returns the cardinal points of the rod with its front vertex
// placed at offset.
//
// Errors: ErrSingular on afocal configurations.
// Complexity: O(1).
func Cardinal(m medium.Medium, offset float64) (CardinalPoints, error) {
	sys, err := systemC(m)
	if err != nil {
		return CardinalPoints{}, err
	}

	var (
		efl   = -1 / sys.C
		ffl   = sys.D / sys.C
		bfl   = -sys.A / sys.C
		front = ffl + efl // (D−1)/C
		back  = efl - bfl // (A−1)/C
	)

	return CardinalPoints{
		FrontFocal:     offset + ffl,
		FrontVertex:    offset,
		FrontPrincipal: offset + front,
		BackPrincipal:  offset + m.Length - back,
		BackVertex:     offset + m.Length,
		BackFocal:      offset + m.Length + bfl,
	}, nil
}
