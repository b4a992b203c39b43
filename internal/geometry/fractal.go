package geometry

import "github.com/chewxy/math32"

// fractalMaxIter bounds the escape-time loop; the escape ratio doubles as
// the point's height, so deeper iteration also means a taller column.
const fractalMaxIter = 100

// fractalZoom renders Mandelbrot escape times over an animated window as a
// height field: the XZ grid is the sample plane, Y is the escape ratio.
func fractalZoom(p Params) Stream {
	res := gridSide(200, p.Mult)
	s := make(Stream, 0, res*res*6)
	t := p.Time

	zoom := 1.5 + 0.5*math32.Sin(t*0.2)
	cx := -0.5 + 0.2*math32.Cos(t*0.3)
	cy := 0.2 * math32.Sin(t*0.4)

	for i := 0; i < res; i++ {
		for j := 0; j < res; j++ {
			x0 := (float32(i)/float32(res)-0.5)*zoom + cx
			y0 := (float32(j)/float32(res)-0.5)*zoom + cy

			var x, y float32
			iter := 0
			for x*x+y*y < 4 && iter < fractalMaxIter {
				x, y = x*x-y*y+x0, 2*x*y+y0
				iter++
			}

			h := float32(iter) / fractalMaxIter
			s.push(float32(i)/float32(res)-0.5, h-0.5, float32(j)/float32(res)-0.5,
				h, 0.5*h, 1-h)
		}
	}
	return s
}
