package geometry

import "github.com/chewxy/math32"

// sineWaveSurface samples ripples traveling outward from the origin. The
// exp term damps the amplitude with radius so the rim settles flat.
func sineWaveSurface(p Params) Stream {
	side := gridSide(80, p.Mult)
	s := make(Stream, 0, side*side*6)
	t := p.Time
	const scale = 3.0

	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			x := float32(i)/float32(side)*scale - scale/2
			z := float32(j)/float32(side)*scale - scale/2

			dist := math32.Sqrt(x*x + z*z)
			y := 0.6 * math32.Sin(dist*2.5-t*3) * math32.Exp(-dist*0.4)

			height := (y+0.6)*0.8 + 0.2
			s.push(x, y, z,
				0.3+0.7*height,
				0.2+0.6*math32.Sin(dist*0.5+t),
				0.8+0.2*math32.Cos(dist*0.3+t*1.2))
		}
	}
	return s
}

// torus is the standard parametrization with a pulsing minor radius; the
// major angle is phase-shifted by t so the whole ring rotates.
func torus(p Params) Stream {
	major := 60 * p.Mult
	minor := 40 * p.Mult
	s := make(Stream, 0, major*minor*6)
	t := p.Time

	const majorRadius = 1.2
	minorRadius := 0.4 + 0.2*math32.Sin(t*2)

	for i := 0; i < major; i++ {
		for j := 0; j < minor; j++ {
			u := 2*math32.Pi*float32(i)/float32(major) + t
			v := 2 * math32.Pi * float32(j) / float32(minor)

			x := (majorRadius + minorRadius*math32.Cos(v)) * math32.Cos(u)
			y := minorRadius * math32.Sin(v)
			z := (majorRadius + minorRadius*math32.Cos(v)) * math32.Sin(u)

			s.push(x, y, z,
				0.6+0.4*math32.Cos(u+t),
				0.6+0.4*math32.Sin(v+t*1.3),
				0.6+0.4*math32.Sin(u+v+t*0.7))
		}
	}
	return s
}

// kleinBottle samples the figure-eight immersion of the Klein bottle,
// scaled down to fit the default camera framing.
func kleinBottle(p Params) Stream {
	uSeg := 100 * p.Mult
	vSeg := 50 * p.Mult
	s := make(Stream, 0, uSeg*vSeg*6)
	t := p.Time

	r := 1.5 + 0.3*math32.Sin(t)

	for iu := 0; iu < uSeg; iu++ {
		for iv := 0; iv < vSeg; iv++ {
			u := float32(iu) / float32(uSeg) * 2 * math32.Pi
			v := float32(iv) / float32(vSeg) * 2 * math32.Pi

			ring := r + math32.Cos(u/2)*math32.Sin(v) - math32.Sin(u/2)*math32.Sin(2*v)
			x := ring * math32.Cos(u)
			y := ring * math32.Sin(u)
			z := math32.Sin(u/2)*math32.Sin(v) + math32.Cos(u/2)*math32.Sin(2*v)

			s.push(x*0.3, y*0.3, z*0.3,
				0.5+0.5*math32.Sin(u+t),
				0.5+0.5*math32.Cos(v+t*1.2),
				0.5+0.5*math32.Sin(u+v+t*0.7))
		}
	}
	return s
}

// legendreApprox stands in for the associated Legendre polynomial with a
// sine of the polar angle. Close enough for a lobed, animated sphere; not a
// physically exact harmonic.
func legendreApprox(l, m int, x float32) float32 {
	return math32.Sin(float32(l)*math32.Acos(x) + float32(m)*0.5)
}

// sphericalHarmonic displaces a sphere by an approximate Y_l^m, with the
// degree and the displacement strength both animated. Loop bounds are
// inclusive so the seam closes.
func sphericalHarmonic(p Params) Stream {
	latSeg := 40 * p.Mult
	lonSeg := 80 * p.Mult
	s := make(Stream, 0, (latSeg+1)*(lonSeg+1)*6)
	t := p.Time

	l := 2 + int(2*math32.Abs(math32.Sin(t*0.3)))
	m := l / 2
	eps := 0.2 + 0.3*math32.Abs(math32.Cos(t*0.4))

	for i := 0; i <= latSeg; i++ {
		theta := math32.Pi * float32(i) / float32(latSeg)
		for j := 0; j <= lonSeg; j++ {
			phi := 2 * math32.Pi * float32(j) / float32(lonSeg)

			harm := legendreApprox(l, m, math32.Cos(theta)) * math32.Cos(float32(m)*phi)
			rad := 1 + eps*harm

			s.push(rad*math32.Sin(theta)*math32.Cos(phi),
				rad*math32.Sin(theta)*math32.Sin(phi),
				rad*math32.Cos(theta),
				0.5+0.5*harm,
				0.5-0.5*harm,
				0.3+0.7*math32.Abs(math32.Sin(t+phi)))
		}
	}
	return s
}

// waveInterference superposes two traveling plane waves, one along X and
// one along Z, with animated wavenumbers and frequencies.
func waveInterference(p Params) Stream {
	side := gridSide(100, p.Mult)
	s := make(Stream, 0, side*side*6)
	t := p.Time
	const size = 4.0

	k1 := 2 + math32.Sin(t*0.3)
	k2 := 3 + math32.Cos(t*0.4)
	w1 := 1.5 + math32.Cos(t*0.5)
	w2 := 1 + math32.Sin(t*0.6)

	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			x := (float32(i)/float32(side) - 0.5) * size
			z := (float32(j)/float32(side) - 0.5) * size
			y := 0.5 * (math32.Sin(k1*x-w1*t) + math32.Sin(k2*z-w2*t))

			h := (y + 1) * 0.5
			s.push(x, y, z, h, 1-h, 0.5+0.5*math32.Sin(t))
		}
	}
	return s
}
