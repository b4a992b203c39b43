package geometry

import "github.com/chewxy/math32"

// Spacetime curvature constants. The grid density is deliberately
// independent of the quality level: three sweeps over the sheet per frame
// already cost enough, and the well reads fine at fixed resolution. The
// surface side is adjustable through Params.WellGrid instead.
const (
	wellDefaultGrid = 80
	wellExtent      = 4.0
	wellGridLines   = 15
	wellLineStep    = 3

	// maxDeformation scales the well depth together with the central mass.
	maxDeformation = 0.5

	// wellLineLift keeps the wireframe overlay just above the sheet.
	wellLineLift = 0.01
)

// wellDepth returns the Y displacement of the deformed sheet at planar
// radius r: a Lorentzian core blended into a parabolic rim, the blend
// falling off exponentially from the center. Outside the extent the sheet
// is flat. This is a stylized well, not a solved field equation.
func wellDepth(r, mass float32) float32 {
	if r >= wellExtent {
		return 0
	}
	u := r / wellExtent
	depth := mass * maxDeformation
	steepness := 4 * mass
	well := 1 / (1 + steepness*u*u)
	parabolic := 1 - u*u
	blend := math32.Exp(-3 * u)
	return -depth * (blend*well + (1-blend)*parabolic)
}

// spacetime emits the deformed sheet in grey, then two wireframe passes
// (every wellLineStep-th row and column of each of the wellGridLines lines)
// in white as visual deformation cues.
func spacetime(p Params) Stream {
	side := p.WellGrid
	if side <= 0 {
		side = wellDefaultGrid
	}
	mass := p.Mass

	perLine := (side + wellLineStep - 1) / wellLineStep
	s := make(Stream, 0, (side*side+2*wellGridLines*perLine)*6)

	for i := 0; i < side; i++ {
		x := float32(i)/float32(side-1)*2*wellExtent - wellExtent
		for j := 0; j < side; j++ {
			z := float32(j)/float32(side-1)*2*wellExtent - wellExtent
			y := wellDepth(math32.Sqrt(x*x+z*z), mass)
			s.push(x, y, z, 0.6, 0.6, 0.6)
		}
	}

	for line := 0; line < wellGridLines; line++ {
		coord := float32(line)/float32(wellGridLines-1)*2*wellExtent - wellExtent

		for j := 0; j < side; j += wellLineStep {
			z := float32(j)/float32(side-1)*2*wellExtent - wellExtent
			y := wellDepth(math32.Sqrt(coord*coord+z*z), mass) + wellLineLift
			s.push(coord, y, z, 1, 1, 1)
		}
		for i := 0; i < side; i += wellLineStep {
			x := float32(i)/float32(side-1)*2*wellExtent - wellExtent
			y := wellDepth(math32.Sqrt(x*x+coord*coord), mass) + wellLineLift
			s.push(x, y, coord, 1, 1, 1)
		}
	}
	return s
}
