package geometry

import "github.com/chewxy/math32"

// lorenzAttractor integrates the Lorenz system with fixed-step explicit
// Euler. The trajectory restarts from the same seed point on every call, so
// each frame recomputes the whole butterfly and the output depends only on
// the frame time, which drives σ and ρ. Divergence is bounded by the step
// count alone; σ and ρ stay inside ranges where the flow is well behaved.
func lorenzAttractor(p Params) Stream {
	steps := 5000 * p.Mult
	s := make(Stream, 0, steps*6)
	t := p.Time

	const dt = 0.005
	const beta = 8.0 / 3.0
	sigma := 10 + 5*math32.Sin(t*0.3)
	rho := 28 + 10*math32.Cos(t*0.5)

	x, y, z := float32(0.1), float32(0), float32(0)

	for i := 0; i < steps; i++ {
		dx := sigma * (y - x)
		dy := x*(rho-z) - y
		dz := x*y - beta*z
		x += dx * dt
		y += dy * dt
		z += dz * dt

		speed := math32.Sqrt(dx*dx + dy*dy + dz*dz)
		s.push(x*0.1, y*0.1-0.5, z*0.1-0.5,
			math32.Min(1, speed*0.05),
			0.2+0.8*math32.Abs(math32.Sin(speed+t)),
			1-math32.Min(1, speed*0.05))
	}
	return s
}
