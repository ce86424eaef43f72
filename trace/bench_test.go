package trace_test

import (
	"testing"

	"github.com/katalvlaran/grin/medium"
	"github.com/katalvlaran/grin/paraxial"
	"github.com/katalvlaran/grin/trace"
)

func benchRod(b *testing.B) medium.Medium {
	b.Helper()
	m, err := medium.New(1.608, 0.339, 5.37)
	if err != nil {
		b.Fatalf("medium: %v", err)
	}

	return m
}

// BenchmarkTrace measures one eager pass through a five-segment chain at
// the default resolution.
func BenchmarkTrace(b *testing.B) {
	m := benchRod(b)
	tr, err := trace.NewTracer([]trace.Segment{
		trace.FreeSpace{Length: 2},
		trace.Interface{Before: 1, After: m.N0},
		trace.Gradient{Med: m},
		trace.Interface{Before: m.N0, After: 1},
		trace.FreeSpace{Length: 3},
	}, nil)
	if err != nil {
		b.Fatalf("tracer: %v", err)
	}
	in := paraxial.Ray{Height: 0.1, Angle: 0.04}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tr.Trace(in)
	}
}

// BenchmarkFullMeridionalCurve measures the object-to-image helper,
// conjugate solving included.
func BenchmarkFullMeridionalCurve(b *testing.B) {
	m := benchRod(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := trace.FullMeridionalCurve(m, -10, 0.5, 1.0, nil); err != nil {
			b.Fatalf("trace: %v", err)
		}
	}
}
