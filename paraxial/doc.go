// Package paraxial provides the 2×2 ray-transfer (ABCD) machinery for
// meridional rays: the ray vector, matrices for gradient segments,
// free-space runs and flat refracting interfaces, and their composition.
//
// 🚀 What is a ray-transfer matrix?
//
//	In the paraxial regime a meridional ray at an axial plane is fully
//	described by its height r and slope θ = dr/dz. Crossing an optical
//	element maps (r, θ) linearly:
//
//	  | r_out |   | A B |   | r_in |
//	  | θ_out | = | C D | · | θ_in |
//
//	and a chain of elements is the matrix product of its parts.
//
// 📐 Conventions (fixed, used by every caller in this module):
//   - Ray.Angle is the geometric paraxial slope dr/dz (tangent of the
//     physical ray angle), NOT the reduced angle n·θ. Refraction at a flat
//     boundary therefore scales Angle by n_before/n_after.
//   - Rays travel left→right in +z. Apply computes out = M·in, so the
//     matrix of a whole system is the product of per-segment matrices in
//     REVERSE traversal order; Compose takes segments in traversal order
//     (first crossed first) and multiplies right-to-left for you.
//   - Lossless systems satisfy det = A·D − B·C = n_in/n_out; for matched
//     end media the determinant is exactly 1 (see IsUnimodular).
//
// ✨ Key features:
//   - gradient-segment matrices at any interior depth z, with an exact
//     free-space fallback at zero gradient (no division by zero)
//   - validated constructors returning sentinel errors, never panics
//   - tiny immutable values, safe for unsynchronized concurrent use
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/grin/medium"
//	  "github.com/katalvlaran/grin/paraxial"
//	)
//
//	m, _ := medium.New(1.608, 0.339, 5.37)
//	enter, _ := paraxial.FlatInterface(1, m.N0)   // air → rod
//	rod, _ := paraxial.GradientSegment(m)         // inside the rod
//	exit, _ := paraxial.FlatInterface(m.N0, 1)    // rod → air
//	sys := paraxial.Compose(enter, rod, exit)     // air-to-air system
//
//	out := sys.Apply(paraxial.Ray{Height: 0, Angle: 0.1})
package paraxial
