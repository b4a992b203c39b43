package geometry

import "github.com/chewxy/math32"

// gyroidMaxGrid caps the lattice side regardless of quality. The voxel scan
// is cubic in the side; Ultra uncapped would be 400³ cells, far past
// interactive, so this mode alone has a density ceiling.
const gyroidMaxGrid = 120

func gyroidGrid(mult int) int {
	side := 50 * mult
	if side > gyroidMaxGrid {
		side = gyroidMaxGrid
	}
	return side
}

// gyroid extracts a thin shell of the gyroid implicit surface
// sin x cos y + sin y cos z + sin z cos x = level by testing every cell of a
// cubic lattice, with the iso level oscillating over time. The vertex count
// varies with how many cells pass the threshold.
func gyroid(p Params) Stream {
	side := gyroidGrid(p.Mult)
	level := math32.Sin(p.Time*0.6) * 0.5

	var s Stream
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			for k := 0; k < side; k++ {
				x := (float32(i)/float32(side) - 0.5) * 4
				y := (float32(j)/float32(side) - 0.5) * 4
				z := (float32(k)/float32(side) - 0.5) * 4
				v := math32.Sin(x)*math32.Cos(y) + math32.Sin(y)*math32.Cos(z) + math32.Sin(z)*math32.Cos(x)

				if math32.Abs(v-level) < 0.05 {
					c := (v - level + 0.05) / 0.1
					s.push(x, y, z, c, 1-c, 0.5+0.5*math32.Sin(p.Time))
				}
			}
		}
	}
	return s
}
