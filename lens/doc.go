// Package lens derives the scalar optical parameters of a parabolic
// gradient-index rod lens — pitch, focal lengths, principal and cardinal
// points, numerical aperture, imaging conjugates — and solves for the
// marginal-ray acceptance angle of an apertured rod.
//
// 🚀 What does lens compute?
//
//	Everything a datasheet quotes for a GRIN rod, from four scalars
//	(axial index n0, gradient g, length L, aperture ⌀):
//	  • Period & pitch: 2π/g and L·g/2π
//	  • EFL / FFL / BFL, principal-plane offsets, cardinal points
//	  • Numerical aperture & maximum acceptance angle
//	  • Image distance & transverse magnification for a given object
//	  • Marginal-ray acceptance via a closed form with bisection fallback
//
// 📐 Conventions (derived once from the system matrix, used everywhere):
//   - The system matrix is the air-to-air chain
//     FlatInterface(1,n0) → GradientSegment → FlatInterface(n0,1),
//     composed via paraxial.Compose; its entries are
//     A = D = cos(gL), B = sin(gL)/(g·n0), C = −n0·g·sin(gL).
//   - EFL = −1/C.
//   - FFL = D/C is the axial coordinate of the front focal point relative
//     to the front vertex (negative ⇒ in front of the lens); BFL = −A/C is
//     the distance from the back vertex to the rear focal point.
//   - Principal-plane offsets (D−1)/C and (A−1)/C are measured from their
//     vertices positive INTO the lens, so FFL = front − EFL and
//     BFL = EFL − back hold identically.
//   - Afocal configurations (|C| ≤ SingularTol, i.e. g·L ≡ 0 mod π) are
//     reported as ErrSingular — never returned as ±Inf.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/grin/lens"
//	  "github.com/katalvlaran/grin/medium"
//	)
//
//	m, _ := medium.NewWithAperture(1.608, 0.339, 5.37, 1.8)
//	efl, _ := lens.EFL(m)             // ≈ 1.893 mm
//	ffl, _ := lens.FFL(m)             // ≈ 0.468 mm
//	na, _ := lens.NA(m)               // ≈ 0.458
//	theta, _ := lens.AcceptanceAngle(m, nil) // marginal launch angle
//
// Two acceptance figures:
//
//	NA/MaxAngle quote the classic closed-form acceptance of the rod in
//	air; AcceptanceAngle/MarginalNA solve the paraxial marginal-ray
//	problem (largest on-axis launch staying inside the aperture). They
//	answer slightly different physical questions and differ by a few
//	percent; see each function's doc for which to use.
package lens
