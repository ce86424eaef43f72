// Package medium: sentinel error set.
// All constructors MUST return these sentinels (wrapped with field
// context via fmt.Errorf("...: %w", ErrX)) and tests match them with
// errors.Is. No function in this package panics on user input.
package medium

import "errors"

var (
	// ErrInvalidParameter indicates a non-positive or non-finite physical
	// parameter (axial index, gradient constant, length, or diameter).
	ErrInvalidParameter = errors.New("medium: invalid physical parameter")

	// ErrMissingDiameter indicates an aperture-dependent quantity was
	// requested on a Medium constructed without a diameter.
	ErrMissingDiameter = errors.New("medium: aperture diameter not set")
)
