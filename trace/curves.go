// Package trace: plotting-oriented curve helpers — one ray inside one
// rod, and the full object-to-image path.
package trace

import (
	"fmt"
	"math"

	"github.com/katalvlaran/grin/lens"
	"github.com/katalvlaran/grin/medium"
	"github.com/katalvlaran/grin/paraxial"
)

// MeridionalCurve samples the path of one ray inside a gradient rod.
// The ray enters the front face at height r0 with the in-medium
// geometric angle theta0 [rad]; the launch slope is its direction sine.
// opts == nil selects DefaultOptions; the curve holds
// 1 + PointsPerSegment samples from z = 0 to z = L.
//
// Errors: those of NewTracer (invalid rod or resolution).
// Complexity: O(PointsPerSegment).
func MeridionalCurve(m medium.Medium, r0, theta0 float64, opts *Options) ([]Sample, error) {
	tr, err := NewTracer([]Segment{Gradient{Med: m}}, opts)
	if err != nil {
		return nil, err
	}

	return tr.Trace(paraxial.Ray{Height: r0, Angle: math.Sin(theta0)}), nil
}

// FullMeridionalCurve samples the complete path of a ray from an object
// point to its image: the straight object-space run, the refraction pair
// at the front face (using the local profile index at the entry height),
// the sinusoidal arc inside the rod, the refraction pair at the back
// face, and the image point from the rod's imaging conjugates.
//
// The object sits at axial coordinate zObj < 0 (the front vertex is at
// z = 0) and height rObj; the ray meets the front face at height rLens.
//
// Errors: medium.ErrInvalidParameter for zObj ≥ 0 or non-finite inputs;
// lens.ErrSingular when the object sits on the front focal plane; plus
// NewTracer errors.
// Complexity: O(PointsPerSegment).
func FullMeridionalCurve(m medium.Medium, zObj, rObj, rLens float64, opts *Options) ([]Sample, error) {
	for _, v := range [...]float64{zObj, rObj, rLens} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("object geometry %v: %w", v, medium.ErrInvalidParameter)
		}
	}
	if zObj >= 0 {
		return nil, fmt.Errorf("object coordinate %v must be < 0: %w", zObj, medium.ErrInvalidParameter)
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	// Conjugates first: a singular configuration has no image to draw.
	v, err := lens.ImageDistance(m, -zObj)
	if err != nil {
		return nil, err
	}
	mag, err := lens.Magnification(m, -zObj)
	if err != nil {
		return nil, err
	}

	// Object-space slope and the in-medium launch angle at the entry
	// height (local profile index, paraxial Snell).
	slopeAir := (rLens - rObj) / (0 - zObj)
	nLocal := m.Index(rLens)
	if nLocal <= 0 {
		return nil, fmt.Errorf("entry height %v outside profile validity: %w", rLens, medium.ErrInvalidParameter)
	}
	thetaAir := math.Atan(slopeAir)
	thetaRod := math.Asin(math.Sin(thetaAir) / nLocal)
	slopeRod := math.Sin(thetaRod)

	samples := make([]Sample, 0, o.PointsPerSegment+5)
	samples = append(samples,
		Sample{Z: zObj, Ray: paraxial.Ray{Height: rObj, Angle: slopeAir}},
		Sample{Z: 0, Ray: paraxial.Ray{Height: rLens, Angle: slopeAir}},
		Sample{Z: 0, Ray: paraxial.Ray{Height: rLens, Angle: slopeRod}},
	)

	// Interior arc.
	curve, err := MeridionalCurve(m, rLens, thetaRod, &o)
	if err != nil {
		return nil, err
	}
	samples = append(samples, curve[1:]...)

	// Back face: refraction pair at the local exit index, then the image
	// point connected by the straight image-space ray.
	exit := samples[len(samples)-1]
	nExit := m.Index(exit.Ray.Height)
	slopeOut := exit.Ray.Angle * nExit
	if v != 0 {
		// The chord to the image point is what a plot needs; it agrees
		// with the refracted slope up to paraxial error.
		slopeOut = (mag*rObj - exit.Ray.Height) / v
	}
	samples = append(samples,
		Sample{Z: m.Length, Ray: paraxial.Ray{Height: exit.Ray.Height, Angle: slopeOut}},
		Sample{Z: m.Length + v, Ray: paraxial.Ray{Height: mag * rObj, Angle: slopeOut}},
	)

	return samples, nil
}

// Fan traces one ray per entry height through a single rod, all launched
// at the same in-medium angle — the classic fan plot of a gradient rod.
// Each trace is independent; results are returned one curve
// per input height, in order.
//
// Errors: those of MeridionalCurve.
// Complexity: O(len(heights)·PointsPerSegment).
func Fan(m medium.Medium, heights []float64, theta float64, opts *Options) ([][]Sample, error) {
	curves := make([][]Sample, len(heights))
	for i, r0 := range heights {
		c, err := MeridionalCurve(m, r0, theta, opts)
		if err != nil {
			return nil, fmt.Errorf("ray %d: %w", i, err)
		}
		curves[i] = c
	}

	return curves, nil
}
