package geometry

import "github.com/chewxy/math32"

// parametricSpiral winds ten half-turns whose radius breathes along the
// parameter, with a small vertical wobble.
func parametricSpiral(p Params) Stream {
	n := 1000 * p.Mult
	s := make(Stream, 0, n*6)
	t := p.Time

	for i := 0; i < n; i++ {
		theta := float32(i) / float32(n) * 10 * math32.Pi
		radius := 0.8 + 0.4*math32.Sin(theta*0.1+t)

		x := radius * math32.Cos(theta+t)
		y := math32.Sin(theta*0.3+t*0.5) * 0.5
		z := radius * math32.Sin(theta+t)

		r := 0.6 + 0.4*math32.Sin(theta*0.2+t)
		g := 0.6 + 0.4*math32.Cos(theta*0.15+t*1.5)
		b := 0.6 + 0.4*math32.Sin(theta*0.3+t*0.8)
		s.push(x, y, z, r, g, b)
	}
	return s
}

// lissajous sums three sines at the 3:2:5 frequency ratio, each phase
// drifting at its own rate so the knot slowly tumbles.
func lissajous(p Params) Stream {
	n := 2000 * p.Mult
	s := make(Stream, 0, n*6)
	t := p.Time

	for i := 0; i < n; i++ {
		param := float32(i) / float32(n) * 4 * math32.Pi

		x := 1.2 * math32.Sin(3*param+t)
		y := math32.Sin(2*param + t*0.7)
		z := 0.8 * math32.Sin(5*param+t*1.3)

		r := 0.7 + 0.3*math32.Sin(param+t)
		g := 0.7 + 0.3*math32.Sin(param+t+2*math32.Pi/3)
		b := 0.7 + 0.3*math32.Sin(param+t+4*math32.Pi/3)
		s.push(x, y, z, r, g, b)
	}
	return s
}

// helix rises linearly along Y over six full turns while its radius pulses.
func helix(p Params) Stream {
	n := 1500 * p.Mult
	s := make(Stream, 0, n*6)
	t := p.Time

	for i := 0; i < n; i++ {
		param := float32(i) / float32(n) * 12 * math32.Pi
		amplitude := 1 + 0.3*math32.Sin(t*2)

		x := amplitude * math32.Cos(param+t)
		y := (param/(6*math32.Pi) - 1) * 1.5
		z := amplitude * math32.Sin(param+t)

		intensity := float32(i) / float32(n)
		s.push(x, y, z,
			0.8*intensity+0.2,
			0.8*(1-intensity)+0.2,
			0.7+0.3*math32.Sin(t+param))
	}
	return s
}

// hypotrochoid traces a planar trochoid whose three shape parameters drift
// on separate time scales. The rolling radius stays in [0.2, 0.4], so the
// diff/r term below never divides by zero; keep that bound if the formula
// is ever retuned.
func hypotrochoid(p Params) Stream {
	n := 2000 * p.Mult
	s := make(Stream, 0, n*6)
	t := p.Time

	R := 1 + 0.3*math32.Sin(t*0.5)
	r := 0.3 + 0.1*math32.Cos(t*0.7)
	d := 0.5 + 0.2*math32.Sin(t*1.3)
	diff := R - r

	for i := 0; i < n; i++ {
		theta := float32(i) / float32(n) * 2 * math32.Pi
		x := diff*math32.Cos(theta) + d*math32.Cos(diff/r*theta)
		y := diff*math32.Sin(theta) - d*math32.Sin(diff/r*theta)

		hue := math32.Mod(theta+t, 2*math32.Pi) / (2 * math32.Pi)
		s.push(x, y, 0,
			0.5+0.5*math32.Sin(2*math32.Pi*hue),
			0.5+0.5*math32.Sin(2*math32.Pi*hue+2),
			0.5+0.5*math32.Sin(2*math32.Pi*hue+4))
	}
	return s
}

// superformula draws the Gielis superformula with all four parameters
// time-varying. Taking Abs before each Pow keeps the bases non-negative, and
// n1 stays at or above 0.3 so the -1/n1 exponent stays finite.
func superformula(p Params) Stream {
	n := 1000 * p.Mult
	s := make(Stream, 0, n*6)
	t := p.Time

	m := 6 + 4*math32.Sin(t*0.4)
	n1 := 0.3 + 1.2*math32.Abs(math32.Sin(t*0.6))
	n2 := 1 + 2*math32.Abs(math32.Cos(t*0.5))
	n3 := 1 + 2*math32.Abs(math32.Sin(t*0.8))
	const a, b = 1, 1

	for i := 0; i < n; i++ {
		phi := float32(i) / float32(n) * 2 * math32.Pi
		cosM := math32.Cos(m*phi/4) / a
		sinM := math32.Sin(m*phi/4) / b
		r := math32.Pow(math32.Pow(math32.Abs(cosM), n2)+math32.Pow(math32.Abs(sinM), n3), -1/n1)

		s.push(r*math32.Cos(phi), r*math32.Sin(phi), 0,
			0.5+0.5*r,
			0.3+0.7*(1-r),
			0.5+0.5*math32.Sin(t+phi))
	}
	return s
}

// phyllotaxis places seeds at the golden angle, radius growing with the
// square root of the index; the angle itself is perturbed slightly so the
// head appears to twist.
func phyllotaxis(p Params) Stream {
	seeds := 1000 * p.Mult
	s := make(Stream, 0, seeds*6)
	t := p.Time

	angle := (1.6180339887 + 0.1*math32.Sin(t*0.5)) * math32.Pi

	for i := 0; i < seeds; i++ {
		theta := float32(i) * angle
		r := 0.02 * math32.Sqrt(float32(i))

		s.push(r*math32.Cos(theta), r*math32.Sin(theta), 0,
			0.5+0.5*math32.Sin(theta+t),
			0.5+0.5*math32.Cos(theta+t*1.2),
			0.5+0.5*math32.Sin(t))
	}
	return s
}
