// File: lens/example_test.go
package lens_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/grin/lens"
	"github.com/katalvlaran/grin/medium"
)

////////////////////////////////////////////////////////////////////////////////
// Example: the worked SELFOC-style rod datasheet
////////////////////////////////////////////////////////////////////////////////

// Example_datasheet derives every datasheet figure of the worked rod
// (n0 = 1.608, g = 0.339 mm⁻¹, L = 5.37 mm, ⌀ 1.8 mm): pitch, focal
// lengths, working distance and acceptance.
func Example_datasheet() {
	m, err := medium.NewWithAperture(1.608, 0.339, 5.37, 1.8)
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	efl, _ := lens.EFL(m)
	ffl, _ := lens.FFL(m)
	wd, _ := lens.WorkingDistance(m)
	na, _ := lens.NA(m)
	angle, _ := lens.MaxAngle(m)

	fmt.Printf("pitch:            %.4f\n", lens.Pitch(m))
	fmt.Printf("EFL:              %.3f mm\n", efl)
	fmt.Printf("FFL:              %.3f mm\n", ffl)
	fmt.Printf("working distance: %.3f mm\n", wd)
	fmt.Printf("NA:               %.3f\n", na)
	fmt.Printf("acceptance cone:  %.1f°\n", 2*angle*180/math.Pi)

	// Output:
	// pitch:            0.2897
	// EFL:              1.893 mm
	// FFL:              0.468 mm
	// working distance: 1.425 mm
	// NA:               0.458
	// acceptance cone:  54.5°
}

////////////////////////////////////////////////////////////////////////////////
// Example: cardinal points
////////////////////////////////////////////////////////////////////////////////

// ExampleCardinal places a tenth-pitch rod at the frame origin and
// prints where its principal planes land inside the rod.
func ExampleCardinal() {
	m, _ := medium.FromPitch(1.5, 0.1, 10.0)

	cp, err := lens.Cardinal(m, 0)
	if err != nil {
		fmt.Println("cardinal:", err)
		return
	}

	fmt.Printf("H:  %.4f\n", cp.FrontPrincipal)
	fmt.Printf("H': %.4f\n", cp.BackPrincipal)

	// Output:
	// H:  3.4475
	// H': 6.5525
}

////////////////////////////////////////////////////////////////////////////////
// Example: degenerate configuration
////////////////////////////////////////////////////////////////////////////////

// ExampleEFL_singular shows the afocal guard: a half-pitch relay rod has
// no finite focal length and reports an error instead of ±Inf.
func ExampleEFL_singular() {
	m, _ := medium.FromPitch(1.5, 0.5, 10.0)

	if _, err := lens.EFL(m); err != nil {
		fmt.Println(err)
	}

	// Output:
	// lens: singular (afocal) configuration
}
