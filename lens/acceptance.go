// SPDX-License-Identifier: MIT
// Package lens: the marginal-ray acceptance-angle solver.
//
// Problem: a ray enters on-axis at the front face with launch slope θ and
// oscillates as r(z) = θ·sin(g·z)/g inside the rod. Find the largest θ
// whose height never exceeds the aperture radius D/2 over z ∈ [0, L].
//
// The peak of |r| over the rod sits either at the interior turning point
// z = π/(2g), when that falls inside [0, L], or at the back face z = L.
// The peak height is linear in θ, so the marginal angle follows in closed
// form; a sampled bisection covers the ill-conditioned small-g·L regime
// (and serves as an independent cross-check via ForceBisection).
package lens

import (
	"math"

	"github.com/katalvlaran/grin/medium"
	"github.com/katalvlaran/grin/paraxial"
)

// AcceptanceAngle returns the marginal launch angle θ_max ≥ 0, in
// radians: the largest slope of an on-axis ray at the front face (just
// inside the rod) that keeps the ray within the aperture for the whole
// rod length. opts == nil selects DefaultSolverOptions.
//
// Algorithm:
//  1. Closed form — peak height per unit slope is 1/g when π/(2g) ≤ L,
//     else sin(g·L)/g (and exactly L for a zero gradient); the marginal
//     angle is (D/2) divided by that peak.
//  2. Bisection fallback — when 0 < g·L is too small for the closed-form
//     branch selection to be trustworthy (or ForceBisection is set), the
//     per-unit-slope peak is taken as the maximum of |B(z)| over sampled
//     in-rod matrices and θ is bisected against it to AngleTol within
//     MaxIterations, else ErrNoConvergence.
//
// Errors: medium.ErrMissingDiameter without an aperture;
// ErrNoConvergence from the bisection path.
// Complexity: O(1) closed form; O(Samples + MaxIterations) bisection.
func AcceptanceAngle(m medium.Medium, opts *SolverOptions) (float64, error) {
	radius, err := m.Radius()
	if err != nil {
		return 0, err
	}

	o := DefaultSolverOptions()
	if opts != nil {
		o = *opts
		if o.AngleTol <= 0 {
			o.AngleTol = DefaultAngleTol
		}
		if o.MaxIterations <= 0 {
			o.MaxIterations = DefaultMaxIterations
		}
		if o.Samples <= 1 {
			o.Samples = DefaultSamples
		}
	}

	if !o.ForceBisection {
		if peak, ok := closedFormPeak(m); ok {
			return radius / peak, nil
		}
	}

	return bisectAngle(m, radius, o)
}

// MarginalNA returns n0·sin(AcceptanceAngle): the numerical aperture of
// the paraxial marginal ray. It exceeds the datasheet NA by a few percent
// because the parabolic-profile marginal ray ignores the index drop at
// the aperture edge.
//
// Errors: as AcceptanceAngle.
func MarginalNA(m medium.Medium, opts *SolverOptions) (float64, error) {
	angle, err := AcceptanceAngle(m, opts)
	if err != nil {
		return 0, err
	}

	return m.N0 * math.Sin(angle), nil
}

// closedFormPeak returns the peak in-rod height per unit launch slope,
// when the closed form is well conditioned.
func closedFormPeak(m medium.Medium) (float64, bool) {
	if m.Grad == 0 {
		// Straight ray: the height grows linearly and peaks at the back face.
		return m.Length, true
	}
	if m.Phase() < closedFormTol {
		// sin(g·L)/g ≈ L here, but the turning-point comparison is noise.
		return 0, false
	}
	if math.Pi/(2*m.Grad) <= m.Length {
		// Interior turning point: sin reaches 1.
		return 1 / m.Grad, true
	}

	return math.Sin(m.Phase()) / m.Grad, true
}

// bisectAngle brackets the marginal slope and bisects to AngleTol.
// The constraint function is linear in θ, so bisection converges
// unconditionally once bracketed; the iteration budget still bounds the
// loop and trips ErrNoConvergence for pathological tolerances.
func bisectAngle(m medium.Medium, radius float64, o SolverOptions) (float64, error) {
	// Peak |height| per unit slope over the sampled rod.
	var peak float64
	for i := 0; i <= o.Samples; i++ {
		z := m.Length * float64(i) / float64(o.Samples)
		mat, err := paraxial.Gradient(m, z)
		if err != nil {
			return 0, err
		}
		if b := math.Abs(mat.B); b > peak {
			peak = b
		}
	}

	// Bracket: grow hi until the sampled peak height violates the radius.
	lo, hi := 0.0, radius/peak/2
	for math.Abs(hi*peak) <= radius {
		hi *= 2
	}

	// Bisect.
	for i := 0; i < o.MaxIterations; i++ {
		mid := (lo + hi) / 2
		if math.Abs(mid*peak) <= radius {
			lo = mid
		} else {
			hi = mid
		}
		if hi-lo <= o.AngleTol {
			return lo, nil
		}
	}

	return 0, ErrNoConvergence
}
