// SPDX-License-Identifier: MIT
// Package lens: sentinel error set, numeric policy and solver options.
// All functions return these sentinels (or medium.ErrMissingDiameter /
// medium.ErrInvalidParameter forwarded from the model) and tests match
// them via errors.Is. No function panics on user input.
package lens

import "errors"

var (
	// ErrSingular indicates an afocal or otherwise degenerate imaging
	// configuration: the system matrix C entry (or an imaging denominator)
	// is zero within SingularTol, e.g. g·L a multiple of π, a zero
	// gradient, or an object sitting on the front focal plane. The
	// offending quantity has no finite value and none is returned.
	ErrSingular = errors.New("lens: singular (afocal) configuration")

	// ErrNoConvergence indicates the acceptance-angle bisection failed to
	// reach AngleTol within MaxIterations.
	ErrNoConvergence = errors.New("lens: acceptance-angle solver did not converge")
)

// Numeric policy - single source of truth for tolerances.
const (
	// SingularTol is the absolute threshold below which a focal-length
	// denominator is treated as zero and reported via ErrSingular.
	SingularTol = 1e-9

	// DefaultAngleTol is the absolute convergence tolerance on the
	// acceptance angle, in radians.
	DefaultAngleTol = 1e-9

	// DefaultMaxIterations bounds the bisection loop of the acceptance
	// solver.
	DefaultMaxIterations = 50

	// DefaultSamples is the per-rod sampling resolution used by the
	// bisection fallback when the closed-form peak is ill-conditioned.
	DefaultSamples = 256

	// closedFormTol is the g·L threshold below which the closed-form peak
	// position is considered ill-conditioned and the solver falls back to
	// sampled bisection. A zero gradient is always handled exactly.
	closedFormTol = 1e-6
)

// SolverOptions configures the acceptance-angle solver.
//
// Fields:
//   - AngleTol       — absolute tolerance on the returned angle [rad].
//   - MaxIterations  — bisection iteration budget.
//   - Samples        — axial sampling resolution of the bisection path.
//   - ForceBisection — skip the closed form and always bisect (testing
//     and cross-validation; the two paths agree within AngleTol).
type SolverOptions struct {
	AngleTol       float64
	MaxIterations  int
	Samples        int
	ForceBisection bool
}

// DefaultSolverOptions returns the documented defaults: AngleTol 1e-9,
// MaxIterations 50, Samples 256, closed form preferred.
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		AngleTol:      DefaultAngleTol,
		MaxIterations: DefaultMaxIterations,
		Samples:       DefaultSamples,
	}
}
