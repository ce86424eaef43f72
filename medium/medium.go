// Package medium: the GRIN medium value type, constructors and profile
// index formulas. All constructors validate eagerly and return sentinel
// errors from types.go; a zero-gradient medium (homogeneous rod) is valid
// and degenerates to free-space propagation downstream.
package medium

import (
	"fmt"
	"math"
)

// Medium describes one parabolic gradient-index rod.
//
// Fields are exported for read access but a Medium should be built via
// New / NewWithAperture / FromPitch so that invariants hold. Medium is a
// plain value: copy freely, never shared mutable state.
type Medium struct {
	// N0 is the refractive index on the optical axis (dimensionless, > 0).
	N0 float64
	// Grad is the gradient constant g in inverse length units (≥ 0).
	// Grad == 0 describes a homogeneous rod.
	Grad float64
	// Length is the axial length L of the rod (> 0).
	Length float64
	// Diameter is the clear aperture D (> 0 when set, 0 = unset).
	// Only aperture-dependent quantities require it.
	Diameter float64
}

// New constructs a Medium from the axial index n0, the gradient constant
// g [1/length] and the rod length L, without an aperture.
//
// Errors: ErrInvalidParameter when n0 ≤ 0, g < 0, L ≤ 0, or any input is
// NaN/Inf.
// Complexity: O(1).
func New(n0, grad, length float64) (Medium, error) {
	m := Medium{N0: n0, Grad: grad, Length: length}
	if err := m.validate(); err != nil {
		return Medium{}, err
	}

	return m, nil
}

// NewWithAperture is New plus a clear-aperture diameter D > 0.
//
// Errors: ErrInvalidParameter on any non-positive or non-finite input.
// Complexity: O(1).
func NewWithAperture(n0, grad, length, diameter float64) (Medium, error) {
	if diameter <= 0 {
		return Medium{}, fmt.Errorf("diameter %v: %w", diameter, ErrInvalidParameter)
	}
	m := Medium{N0: n0, Grad: grad, Length: length, Diameter: diameter}
	if err := m.validate(); err != nil {
		return Medium{}, err
	}

	return m, nil
}

// FromPitch constructs a Medium from the dimensionless pitch fraction
// instead of the gradient constant, using g = 2π·pitch/L. A pitch of 1
// means the rod is exactly one full ray oscillation long.
//
// Errors: ErrInvalidParameter when pitch < 0 or the derived Medium is
// invalid.
// Complexity: O(1).
func FromPitch(n0, pitch, length float64) (Medium, error) {
	if math.IsNaN(pitch) || math.IsInf(pitch, 0) || pitch < 0 {
		return Medium{}, fmt.Errorf("pitch %v: %w", pitch, ErrInvalidParameter)
	}
	if length <= 0 {
		// Validate length before dividing by it.
		return Medium{}, fmt.Errorf("length %v: %w", length, ErrInvalidParameter)
	}

	return New(n0, 2*math.Pi*pitch/length, length)
}

// WithDiameter returns a copy of m with the aperture diameter set.
//
// Errors: ErrInvalidParameter when d ≤ 0 or non-finite.
func (m Medium) WithDiameter(d float64) (Medium, error) {
	if d <= 0 {
		return Medium{}, fmt.Errorf("diameter %v: %w", d, ErrInvalidParameter)
	}
	m.Diameter = d
	if err := m.validate(); err != nil {
		return Medium{}, err
	}

	return m, nil
}

// validate checks every field of m against the Medium invariants.
// Diameter 0 is "unset", not invalid.
func (m Medium) validate() error {
	for _, f := range [...]struct {
		name string
		v    float64
	}{
		{"axial index", m.N0},
		{"gradient constant", m.Grad},
		{"length", m.Length},
		{"diameter", m.Diameter},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s %v: %w", f.name, f.v, ErrInvalidParameter)
		}
	}
	if m.N0 <= 0 {
		return fmt.Errorf("axial index %v: %w", m.N0, ErrInvalidParameter)
	}
	if m.Grad < 0 {
		return fmt.Errorf("gradient constant %v: %w", m.Grad, ErrInvalidParameter)
	}
	if m.Length <= 0 {
		return fmt.Errorf("length %v: %w", m.Length, ErrInvalidParameter)
	}
	if m.Diameter < 0 {
		return fmt.Errorf("diameter %v: %w", m.Diameter, ErrInvalidParameter)
	}

	return nil
}

// HasAperture reports whether the clear-aperture diameter was supplied.
func (m Medium) HasAperture() bool { return m.Diameter > 0 }

// Radius returns the clear-aperture radius D/2.
//
// Errors: ErrMissingDiameter when no aperture was supplied.
func (m Medium) Radius() (float64, error) {
	if !m.HasAperture() {
		return 0, ErrMissingDiameter
	}

	return m.Diameter / 2, nil
}

// Pitch returns the dimensionless fraction of a full ray oscillation the
// rod length covers: pitch = L·g/(2π). Zero for a homogeneous rod.
// Complexity: O(1).
func (m Medium) Pitch() float64 {
	return m.Length * m.Grad / (2 * math.Pi)
}

// Phase returns the accumulated ray phase g·L in radians. Rays repeat
// every 2π of phase; phase π/2 is the classic quarter-pitch lens.
func (m Medium) Phase() float64 {
	return m.Grad * m.Length
}

// Index returns the parabolic profile index at radius r:
//
//	n(r) = n0 · (1 − (g·r)²/2)
//
// The formula is the paraxial parabolic approximation and goes non-physical
// (≤ 0) far outside the aperture; callers sample it only within the rod.
// Complexity: O(1).
func (m Medium) Index(r float64) float64 {
	gr := m.Grad * r

	return m.N0 * (1 - gr*gr/2)
}

// HyperbolicSecantIndex returns the index at radius r of a hyperbolic
// secant profile with shape parameter alpha [1/length]:
//
//	n(r) = sqrt(1 + (n0² − 1)/cosh²(α·r))
//
// The sech profile is the aberration-free cousin of the parabolic one and
// shares its small-r behaviour; it backs the closed-form acceptance-angle
// formulas in package lens.
func HyperbolicSecantIndex(n0, alpha, r float64) float64 {
	sech := 1 / math.Cosh(alpha*r)

	return math.Sqrt(1 + (n0*n0-1)*sech*sech)
}
