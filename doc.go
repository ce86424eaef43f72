// Package grin computes the paraxial optics of gradient-index (GRIN)
// lenses — rods whose refractive index falls off parabolically with
// distance from the optical axis — from closed-form ray-transfer
// matrices to meridional ray traces.
//
// 🚀 What is grin?
//
//	A small, pure-computation library that brings together:
//		• Medium model: axial index, gradient constant, length, aperture
//		• Paraxial primitives: ray vectors & 2×2 ABCD transfer matrices
//		• Lens parameters: pitch, EFL/FFL/BFL, principal & cardinal points
//		• Aperture analysis: numerical aperture & marginal-ray acceptance
//		• Ray tracing: lazy meridional traces through segment chains
//
// ✨ Why choose grin?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Value semantics – every input and result is an immutable value
//   - Pure Go – no cgo, no hidden deps, safe for concurrent use
//   - Honest errors – degenerate optics surface as sentinels, never ±Inf
//
// Under the hood, everything is organized under four subpackages:
//
//	medium/   — the parabolic-index medium value type & profile formulas
//	paraxial/ — ray vectors, ABCD matrices, composition & determinants
//	lens/     — focal lengths, cardinal points, imaging, acceptance angle
//	trace/    — meridional ray tracer over gradient/free-space/interface chains
//
// Quick ASCII example:
//
//	          ___________________
//	object   /      GRIN rod      \      image
//	  *---->|  n(r)=n0(1-(gr)²/2) |----->*
//	         \___________________/
//
//	a ray oscillates sinusoidally inside the rod with period 2π/g.
//
// The Example functions in each subpackage walk through the worked
// SELFOC lens (n0=1.608, g=0.339 mm⁻¹, L=5.37 mm, ⌀1.8 mm).
//
//	go get github.com/katalvlaran/grin
package grin
