package geometry

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestSuperformulaFirstPoint(t *testing.T) {
	// At t=0 and φ=0 the superformula base is exactly 1, so r = 1^(-1/n1) = 1
	// whatever the exponents are; the first point lands on (1, 0, 0).
	s := superformula(Params{Time: 0, Mult: 1})
	x, y, z := s[0], s[1], s[2]
	if math32.Abs(x-1) > 1e-6 || math32.Abs(y) > 1e-6 || z != 0 {
		t.Fatalf("first superformula point = (%v, %v, %v), want (1, 0, 0)", x, y, z)
	}
	// The color ramp at r=1, φ=0, t=0: (0.5+0.5r, 0.3+0.7(1-r), 0.5+0.5 sin 0).
	r, g, b := s[3], s[4], s[5]
	if math32.Abs(r-1) > 1e-6 || math32.Abs(g-0.3) > 1e-6 || math32.Abs(b-0.5) > 1e-6 {
		t.Fatalf("first superformula color = (%v, %v, %v), want (1, 0.3, 0.5)", r, g, b)
	}
}

func TestPlanarCurvesStayInPlane(t *testing.T) {
	planar := map[Mode]generator{
		Hypotrochoid: hypotrochoid,
		Superformula: superformula,
		Phyllotaxis:  phyllotaxis,
	}
	for mode, gen := range planar {
		s := gen(Params{Time: 4.2, Mult: 1})
		for i := 0; i < s.Count(); i++ {
			if z := s[i*6+2]; z != 0 {
				t.Fatalf("%v vertex %d has z = %v, want 0", mode, i, z)
			}
		}
	}
}

func TestHypotrochoidRollingRadiusBound(t *testing.T) {
	// The rolling radius 0.3 + 0.1·cos(0.7t) must stay well clear of zero,
	// or the diff/r term divides by zero.
	for tm := float32(0); tm < 50; tm += 0.05 {
		r := 0.3 + 0.1*math32.Cos(tm*0.7)
		if r < 0.19 {
			t.Fatalf("rolling radius %v at t=%v breaks the 0.2 lower bound", r, tm)
		}
	}
}

func TestHelixRisesMonotonically(t *testing.T) {
	s := helix(Params{Time: 1.5, Mult: 1})
	prev := s[1]
	for i := 1; i < s.Count(); i++ {
		y := s[i*6+1]
		if y < prev {
			t.Fatalf("helix y dropped from %v to %v at vertex %d", prev, y, i)
		}
		prev = y
	}
}
