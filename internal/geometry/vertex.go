package geometry

// Stream is a flat sequence of interleaved vertices: six floats each,
// position (x, y, z) followed by color (r, g, b). A stream is rebuilt from
// scratch every frame and handed to the render adapter as-is. Generators do
// not clamp color channels; the adapter saturates them on conversion.
type Stream []float32

// Count returns the number of vertices in the stream.
func (s Stream) Count() int { return len(s) / 6 }

func (s *Stream) push(x, y, z, r, g, b float32) {
	*s = append(*s, x, y, z, r, g, b)
}
