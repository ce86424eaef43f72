// Package trace: core types, options and sentinel errors.
package trace

import (
	"errors"

	"github.com/katalvlaran/grin/paraxial"
)

// Sentinel errors for tracer construction and the curve helpers.
var (
	// ErrNoSegments indicates an empty segment chain.
	ErrNoSegments = errors.New("trace: segment chain must be non-empty")
	// ErrBadResolution indicates a sampling resolution below 1 point per
	// spanned segment.
	ErrBadResolution = errors.New("trace: points per segment must be ≥ 1")
	// ErrBadSegment indicates a segment with invalid physical parameters.
	ErrBadSegment = errors.New("trace: invalid segment parameters")
)

// Sample is one point of a traced ray path: the axial position Z and the
// full ray state there. Consecutive samples sharing one Z bracket a flat
// interface (pre- and post-refraction states).
type Sample struct {
	Z   float64
	Ray paraxial.Ray
}

// Options configures sampling resolution.
//
// PointsPerSegment is the number of samples each spanned segment
// (gradient rod or free-space run) contributes beyond its entry plane;
// flat interfaces always contribute exactly one (the post-refraction
// state). A whole trace therefore starts with the launch sample and
// grows by PointsPerSegment per spanned segment.
type Options struct {
	PointsPerSegment int
}

// DefaultPointsPerSegment is enough resolution for a smooth plot of a
// few sinusoidal periods.
const DefaultPointsPerSegment = 40

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{PointsPerSegment: DefaultPointsPerSegment}
}
