// Package trace: the three concrete segment kinds of an optical chain.
package trace

import (
	"fmt"
	"math"

	"github.com/katalvlaran/grin/medium"
	"github.com/katalvlaran/grin/paraxial"
)

// Segment is one element of an optical chain: a gradient rod, a
// free-space run, or a zero-length flat interface. Implementations are
// small values; the set is closed (the tracer's sampling rules are
// per-kind), so Segment is implemented only inside this package.
type Segment interface {
	// validate reports ErrBadSegment (wrapped with context) for
	// physically meaningless parameters.
	validate() error

	// emit yields this segment's samples after its entry plane at z0 and
	// returns the exit position and ray. A false yield aborts the trace.
	emit(z0 float64, in paraxial.Ray, pts int, yield func(Sample) bool) (z1 float64, out paraxial.Ray, ok bool)
}

// Gradient is a parabolic gradient rod segment. The entering ray must
// already be in-medium (put an Interface in front for the air-side
// refraction).
type Gradient struct {
	Med medium.Medium
}

func (g Gradient) validate() error {
	if _, err := paraxial.GradientSegment(g.Med); err != nil {
		return fmt.Errorf("gradient rod: %v: %w", err, ErrBadSegment)
	}

	return nil
}

func (g Gradient) emit(z0 float64, in paraxial.Ray, pts int, yield func(Sample) bool) (float64, paraxial.Ray, bool) {
	var out paraxial.Ray
	for i := 1; i <= pts; i++ {
		depth := g.Med.Length * float64(i) / float64(pts)
		// Depth stays in range by construction; the matrix cannot fail.
		mat, err := paraxial.Gradient(g.Med, depth)
		if err != nil {
			return z0, in, false
		}
		out = mat.Apply(in)
		if !yield(Sample{Z: z0 + depth, Ray: out}) {
			return z0, out, false
		}
	}

	return z0 + g.Med.Length, out, true
}

// FreeSpace is a straight homogeneous run of the given length.
type FreeSpace struct {
	Length float64
}

func (f FreeSpace) validate() error {
	if math.IsNaN(f.Length) || math.IsInf(f.Length, 0) || f.Length <= 0 {
		return fmt.Errorf("free-space length %v: %w", f.Length, ErrBadSegment)
	}

	return nil
}

func (f FreeSpace) emit(z0 float64, in paraxial.Ray, pts int, yield func(Sample) bool) (float64, paraxial.Ray, bool) {
	var out paraxial.Ray
	for i := 1; i <= pts; i++ {
		d := f.Length * float64(i) / float64(pts)
		out = paraxial.Ray{Height: in.Height + d*in.Angle, Angle: in.Angle}
		if !yield(Sample{Z: z0 + d, Ray: out}) {
			return z0, out, false
		}
	}

	return z0 + f.Length, out, true
}

// Interface is a zero-length flat refracting boundary between media of
// the given indices. It contributes a single post-refraction sample at
// the same z as the preceding sample, so consumers see the slope jump.
type Interface struct {
	Before, After float64
}

func (r Interface) validate() error {
	if _, err := paraxial.FlatInterface(r.Before, r.After); err != nil {
		return fmt.Errorf("interface: %v: %w", err, ErrBadSegment)
	}

	return nil
}

func (r Interface) emit(z0 float64, in paraxial.Ray, _ int, yield func(Sample) bool) (float64, paraxial.Ray, bool) {
	mat, err := paraxial.FlatInterface(r.Before, r.After)
	if err != nil {
		return z0, in, false
	}
	out := mat.Apply(in)
	if !yield(Sample{Z: z0, Ray: out}) {
		return z0, out, false
	}

	return z0, out, true
}
