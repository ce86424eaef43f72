// Package medium defines the value type describing a parabolic
// gradient-index (GRIN) medium and its radial index profile.
//
// 🚀 What is a GRIN medium?
//
//	A glass rod whose refractive index is highest on the optical axis and
//	falls off parabolically with radius:
//
//	  n(r) = n0 · (1 − (g·r)²/2)
//
//	where n0 is the axial index and g the gradient constant [1/length].
//	Meridional rays inside such a rod follow sinusoids of spatial period
//	2π/g, which is what makes GRIN rods usable as lenses.
//
// ✨ Key features:
//   - Medium is an immutable value; constructors validate once, methods
//     never mutate
//   - two equivalent parameterizations: the gradient constant g directly
//     (New) or the dimensionless pitch fraction (FromPitch, g = 2π·pitch/L)
//   - optional aperture diameter, required only by aperture-dependent
//     quantities in package lens
//   - parabolic and hyperbolic-secant profile index formulas
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/grin/medium"
//
//	// SELFOC-style rod: n0=1.608, g=0.339 mm⁻¹, L=5.37 mm, ⌀1.8 mm
//	m, err := medium.NewWithAperture(1.608, 0.339, 5.37, 1.8)
//	if err != nil { ... }
//	fmt.Println(m.Pitch()) // ≈ 0.29 of a full ray oscillation
//
// All lengths share one unit (millimeters in the examples); indices and
// pitch are dimensionless.
package medium
