// Package trace produces meridional ray paths through chains of optical
// segments — gradient rods, free-space runs and flat interfaces — as
// lazy, finite, restartable sample sequences.
//
// 🚀 What is a meridional trace?
//
//	A ray confined to a plane through the optical axis is fully described
//	by (height, slope) at every axial position z. The tracer pushes one
//	ray state through an ordered segment chain, emitting (z, ray) samples
//	along the way: sinusoidal arcs inside gradient rods, straight runs in
//	free space, and slope jumps at flat interfaces.
//
// ✨ Key features:
//   - lazy iteration (iter.Seq) — stop consuming at any sample; restart
//     re-traces from the same launch state
//   - interfaces are zero-length and emit a pre/post sample pair at the
//     same z, so plots show the slope discontinuity instead of
//     interpolating across it
//   - eager validation at construction; sentinel errors, no panics
//   - pure values throughout — one Tracer may serve many goroutines,
//     each tracing its own rays
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/grin/medium"
//	  "github.com/katalvlaran/grin/paraxial"
//	  "github.com/katalvlaran/grin/trace"
//	)
//
//	m, _ := medium.New(1.608, 0.339, 5.37)
//	tr, _ := trace.NewTracer([]trace.Segment{
//	  trace.FreeSpace{Length: 2},
//	  trace.Interface{Before: 1, After: m.N0},
//	  trace.Gradient{Med: m},
//	  trace.Interface{Before: m.N0, After: 1},
//	}, nil)
//
//	for s := range tr.Samples(paraxial.Ray{Height: 0, Angle: 0.05}) {
//	  fmt.Println(s.Z, s.Ray.Height)
//	}
//
// The package also carries three plotting conveniences: MeridionalCurve
// (one ray inside one rod), FullMeridionalCurve (object → rod → image,
// refraction pairs and image point included) and Fan (one curve per
// entry height).
package trace
