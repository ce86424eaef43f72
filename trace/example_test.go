// File: trace/example_test.go
package trace_test

import (
	"fmt"

	"github.com/katalvlaran/grin/medium"
	"github.com/katalvlaran/grin/paraxial"
	"github.com/katalvlaran/grin/trace"
)

////////////////////////////////////////////////////////////////////////////////
// Example: a collimated ray through an air / rod / air chain
////////////////////////////////////////////////////////////////////////////////

// ExampleTracer_Samples traces a collimated edge ray through a
// fifth-pitch rod between two flat air interfaces. The duplicate-z
// sample pairs mark the refractions at the faces.
func ExampleTracer_Samples() {
	m, err := medium.FromPitch(1.5, 0.2, 10)
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	opts := trace.Options{PointsPerSegment: 2}
	tr, err := trace.NewTracer([]trace.Segment{
		trace.Interface{Before: 1, After: m.N0},
		trace.Gradient{Med: m},
		trace.Interface{Before: m.N0, After: 1},
	}, &opts)
	if err != nil {
		fmt.Println("tracer:", err)
		return
	}

	for s := range tr.Samples(paraxial.Ray{Height: 1, Angle: 0}) {
		fmt.Printf("z=%5.2f r=%6.4f slope=%7.4f\n", s.Z, s.Ray.Height, s.Ray.Angle)
	}

	// Output:
	// z= 0.00 r=1.0000 slope= 0.0000
	// z= 0.00 r=1.0000 slope= 0.0000
	// z= 5.00 r=0.8090 slope=-0.0739
	// z=10.00 r=0.3090 slope=-0.1195
	// z=10.00 r=0.3090 slope=-0.1793
}

////////////////////////////////////////////////////////////////////////////////
// Example: the sinusoidal arc of an axial launch
////////////////////////////////////////////////////////////////////////////////

// ExampleMeridionalCurve samples an axial 0.05 rad launch through the
// worked rod; the height follows sin(g·z)·sin θ / g.
func ExampleMeridionalCurve() {
	m, err := medium.New(1.608, 0.339, 5.37)
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	opts := trace.Options{PointsPerSegment: 4}
	curve, err := trace.MeridionalCurve(m, 0, 0.05, &opts)
	if err != nil {
		fmt.Println("trace:", err)
		return
	}

	for _, s := range curve {
		fmt.Printf("z=%.2f r=%.4f\n", s.Z, s.Ray.Height)
	}

	// Output:
	// z=0.00 r=0.0000
	// z=1.34 r=0.0648
	// z=2.69 r=0.1164
	// z=4.03 r=0.1443
	// z=5.37 r=0.1429
}

////////////////////////////////////////////////////////////////////////////////
// Example: the full object-to-image path
////////////////////////////////////////////////////////////////////////////////

// ExampleFullMeridionalCurve draws the complete ray from an object
// 10 mm in front of the worked rod to its conjugate image point.
func ExampleFullMeridionalCurve() {
	m, err := medium.New(1.608, 0.339, 5.37)
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	curve, err := trace.FullMeridionalCurve(m, -10, 0.5, 1.0, nil)
	if err != nil {
		fmt.Println("trace:", err)
		return
	}

	obj, img := curve[0], curve[len(curve)-1]
	fmt.Printf("object: z=%.2f r=%.4f\n", obj.Z, obj.Ray.Height)
	fmt.Printf("image:  z=%.2f r=%.4f\n", img.Z, img.Ray.Height)

	// Output:
	// object: z=-10.00 r=0.5000
	// image:  z=5.24 r=-0.0904
}
