package geometry

import "github.com/chewxy/math32"

// tesseract projects the 16 corners of a unit hypercube after a rotation in
// the x-w plane. Output size is fixed; quality has nothing to refine here.
// The perspective denominator dist-w stays positive: dist = 3+sin(0.5t) is at
// least 2, and the rotated w = sin*x + cos*w with x, w = ±1 is bounded by
// sqrt(2), so the denominator never drops below 2-sqrt(2) and the divide
// needs no guard.
func tesseract(p Params) Stream {
	s := make(Stream, 0, 16*6)
	t := p.Time

	c := math32.Cos(t * 0.3)
	sn := math32.Sin(t * 0.3)
	dist := 3 + math32.Sin(t*0.5)

	for i := 0; i < 16; i++ {
		var v [4]float32
		for d := 0; d < 4; d++ {
			if i&(1<<d) != 0 {
				v[d] = 1
			} else {
				v[d] = -1
			}
		}

		x, w := v[0], v[3]
		v[0] = c*x - sn*w
		v[3] = sn*x + c*w

		inv := 1 / (dist - v[3])
		s.push(v[0]*inv, v[1]*inv, v[2]*inv,
			0.5+0.5*v[3],
			1-0.5*v[3],
			0.5+0.5*math32.Sin(t))
	}
	return s
}
