// Package paraxial: the 2×2 ABCD matrix value and its algebra.
package paraxial

import "math"

// Matrix is a 2×2 real ray-transfer matrix [[A, B], [C, D]] mapping an
// input-plane Ray to an output-plane Ray via Apply (out = M·in).
// For lossless systems between matched end media, A·D − B·C == 1.
type Matrix struct {
	A, B, C, D float64
}

// Identity returns the do-nothing transfer matrix.
func Identity() Matrix {
	return Matrix{A: 1, B: 0, C: 0, D: 1}
}

// Apply propagates r through the element: out = M·in.
// Complexity: O(1).
func (m Matrix) Apply(r Ray) Ray {
	return Ray{
		Height: m.A*r.Height + m.B*r.Angle,
		Angle:  m.C*r.Height + m.D*r.Angle,
	}
}

// Mul returns the ordinary matrix product m·n. Note the order: m·n first
// applies n, then m — use Compose to assemble systems in traversal order.
// Complexity: O(1).
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.B*n.C,
		B: m.A*n.B + m.B*n.D,
		C: m.C*n.A + m.D*n.C,
		D: m.C*n.B + m.D*n.D,
	}
}

// Compose assembles a whole-system matrix from per-segment matrices given
// in TRAVERSAL order: ms[0] is the first segment the ray crosses. Because
// Apply computes out = M·in, the system matrix is the right-to-left
// product ms[n-1]·…·ms[1]·ms[0]; Compose performs that reversal so
// callers never re-derive the ordering convention.
//
// Compose of zero matrices is the identity.
// Complexity: O(len(ms)).
func Compose(ms ...Matrix) Matrix {
	sys := Identity()
	for _, m := range ms {
		sys = m.Mul(sys)
	}

	return sys
}

// Det returns the determinant A·D − B·C.
func (m Matrix) Det() float64 {
	return m.A*m.D - m.B*m.C
}

// IsUnimodular reports whether |det − 1| ≤ eps; eps ≤ 0 selects
// DefaultEpsilon. Unimodularity is the losslessness invariant for systems
// whose entry and exit media match, and the cheapest sanity check on any
// composed chain.
func (m Matrix) IsUnimodular(eps float64) bool {
	if eps <= 0 {
		eps = DefaultEpsilon
	}

	return math.Abs(m.Det()-1) <= eps
}
