// Package trace: the meridional ray tracer.
package trace

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/grin/paraxial"
)

// Tracer pushes ray states through a validated segment chain. It holds
// no per-trace state: one Tracer may serve any number of concurrent
// traces over independent launch rays.
type Tracer struct {
	segs []Segment
	pts  int
}

// NewTracer validates the chain eagerly and returns a reusable Tracer.
// opts == nil selects DefaultOptions.
//
// Errors: ErrNoSegments for an empty chain; ErrBadSegment (with context)
// for any invalid segment; ErrBadResolution for a non-positive sampling
// resolution.
// Complexity: O(len(segs)).
func NewTracer(segs []Segment, opts *Options) (*Tracer, error) {
	if len(segs) == 0 {
		return nil, ErrNoSegments
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.PointsPerSegment < 1 {
		return nil, fmt.Errorf("%d points: %w", o.PointsPerSegment, ErrBadResolution)
	}
	for i, s := range segs {
		if s == nil {
			return nil, fmt.Errorf("segment %d is nil: %w", i, ErrBadSegment)
		}
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
	}

	// Copy the chain so later caller mutations cannot race a live trace.
	own := make([]Segment, len(segs))
	copy(own, segs)

	return &Tracer{segs: own, pts: o.PointsPerSegment}, nil
}

// Samples returns the lazy sample sequence of one ray launched at the
// chain entrance (z = 0) with the given state. The sequence is finite
// and restartable: ranging over it again re-traces from the same launch
// state, and breaking out early stops all further propagation work.
//
// The first sample is the launch state itself; spanned segments then
// contribute PointsPerSegment samples each and interfaces one
// post-refraction sample at an unchanged z.
// Complexity per full pass: O(len(segs)·PointsPerSegment).
func (t *Tracer) Samples(start paraxial.Ray) iter.Seq[Sample] {
	return func(yield func(Sample) bool) {
		if !yield(Sample{Z: 0, Ray: start}) {
			return
		}
		var (
			z   float64
			ray = start
			ok  bool
		)
		for _, s := range t.segs {
			if z, ray, ok = s.emit(z, ray, t.pts, yield); !ok {
				return
			}
		}
	}
}

// Trace collects the full sample sequence eagerly.
// Complexity: O(len(segs)·PointsPerSegment) time and memory.
func (t *Tracer) Trace(start paraxial.Ray) []Sample {
	out := make([]Sample, 0, 1+len(t.segs)*t.pts)
	for s := range t.Samples(start) {
		out = append(out, s)
	}

	return out
}
