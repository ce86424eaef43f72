package lens_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grin/lens"
	"github.com/katalvlaran/grin/medium"
	"github.com/katalvlaran/grin/paraxial"
)

// TestImaging_ConjugateProperty: for several rods and object distances,
// the full object-to-image chain FreeSpace(s) → system → FreeSpace(s′)
// must have B ≈ 0 (imaging condition) and A equal to the magnification.
func TestImaging_ConjugateProperty(t *testing.T) {
	rods := []struct {
		name              string
		n0, pitch, length float64
	}{
		{"tenth pitch", 1.5, 0.1, 10},
		{"fifth pitch", 1.6, 0.2, 8},
		{"worked rod", selfocN0, 0.2897, selfocLen},
	}
	for _, rc := range rods {
		t.Run(rc.name, func(t *testing.T) {
			m, err := medium.FromPitch(rc.n0, rc.pitch, rc.length)
			require.NoError(t, err)
			sys, err := lens.SystemMatrix(m)
			require.NoError(t, err)

			for _, s := range []float64{0, 5, 20, 100} {
				v, err := lens.ImageDistance(m, s)
				require.NoError(t, err, "s=%v", s)
				mag, err := lens.Magnification(m, s)
				require.NoError(t, err, "s=%v", s)

				// Rebuild the chain; a virtual image (v < 0) still satisfies
				// the matrix identity, so compose with the raw translation.
				obj := paraxial.Matrix{A: 1, B: s, C: 0, D: 1}
				img := paraxial.Matrix{A: 1, B: v, C: 0, D: 1}
				total := paraxial.Compose(obj, sys, img)

				assert.InDelta(t, 0, total.B, 1e-9, "imaging condition at s=%v", s)
				assert.InDelta(t, mag, total.A, 1e-9, "magnification at s=%v", s)
				assert.True(t, total.IsUnimodular(0))
			}
		})
	}
}

// TestImaging_ObjectAtFrontFocalPlane: an object on the front focal plane
// images at infinity — ErrSingular, not ±Inf.
func TestImaging_ObjectAtFrontFocalPlane(t *testing.T) {
	m, err := medium.FromPitch(1.5, 0.1, 10)
	require.NoError(t, err)

	// FFL < 0 here; the front focal point sits |FFL| in front of the rod.
	ffl, err := lens.FFL(m)
	require.NoError(t, err)
	require.Negative(t, ffl)

	_, err = lens.ImageDistance(m, -ffl)
	require.ErrorIs(t, err, lens.ErrSingular)
	_, err = lens.Magnification(m, -ffl)
	require.ErrorIs(t, err, lens.ErrSingular)
}

// TestImaging_InvalidObjectDistance rejects negative and non-finite s.
func TestImaging_InvalidObjectDistance(t *testing.T) {
	m := selfoc(t)
	for _, s := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := lens.ImageDistance(m, s)
		require.ErrorIs(t, err, medium.ErrInvalidParameter, "s=%v", s)
		_, err = lens.Magnification(m, s)
		require.ErrorIs(t, err, medium.ErrInvalidParameter, "s=%v", s)
	}
}

// TestImaging_InvertedRealImage: a distant object through a sub-quarter
// pitch rod forms an inverted (negative magnification) real image.
func TestImaging_InvertedRealImage(t *testing.T) {
	m, err := medium.FromPitch(1.5, 0.1, 10)
	require.NoError(t, err)

	v, err := lens.ImageDistance(m, 20)
	require.NoError(t, err)
	assert.Positive(t, v, "real image beyond the back vertex")

	mag, err := lens.Magnification(m, 20)
	require.NoError(t, err)
	assert.Negative(t, mag, "real image is inverted")
}
