package render

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/architmishra-15/manimation/internal/geometry"
)

// spinRate is the slow model rotation applied to every object, in radians
// per second about the slightly tilted Y axis below.
const spinRate = 0.3

var spinAxis = rl.NewVector3(0.1, 1, 0)

// channel saturates a generator color channel to [0, 1] and converts it to
// 8 bits. Generators emit unclamped values; clamping is this adapter's job.
func channel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}

func vertexAt(s geometry.Stream, i int) (rl.Vector3, rl.Color) {
	base := i * 6
	pos := rl.NewVector3(s[base], s[base+1], s[base+2])
	col := rl.NewColor(channel(s[base+3]), channel(s[base+4]), channel(s[base+5]), 255)
	return pos, col
}

// Draw renders one frame's vertex stream. Point clouds draw each vertex on
// its own; line strips connect consecutive vertices in emission order, each
// segment taking the color of its first endpoint. Must be called between
// BeginDrawing and EndDrawing.
func Draw(cam rl.Camera3D, s geometry.Stream, topo geometry.Topology, time float32) {
	rl.BeginMode3D(cam)
	rl.PushMatrix()
	rl.Rotatef(time*spinRate*180/math32.Pi, spinAxis.X, spinAxis.Y, spinAxis.Z)

	n := s.Count()
	if topo == geometry.Points {
		for i := 0; i < n; i++ {
			pos, col := vertexAt(s, i)
			rl.DrawPoint3D(pos, col)
		}
	} else if n > 1 {
		prev, prevCol := vertexAt(s, 0)
		for i := 1; i < n; i++ {
			pos, col := vertexAt(s, i)
			rl.DrawLine3D(prev, pos, prevCol)
			prev, prevCol = pos, col
		}
	}

	rl.PopMatrix()
	rl.EndMode3D()
}
