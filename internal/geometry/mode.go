package geometry

// Topology tells the render adapter how to draw a stream: as isolated
// points, or as one continuous line strip in emission order.
type Topology int

const (
	LineStrip Topology = iota
	Points
)

// Mode selects one of the sixteen animated mathematical objects.
type Mode int

const (
	ParametricSpiral Mode = iota
	Lissajous
	Helix
	SineWaveSurface
	Torus
	Hypotrochoid
	Superformula
	LorenzAttractor
	KleinBottle
	Gyroid
	SphericalHarmonic
	FractalZoom
	Phyllotaxis
	Tesseract
	WaveInterference
	SpacetimeCurvature
)

// ModeCount is the number of selectable modes.
const ModeCount = 16

// Params carries the per-frame inputs shared by all generators. Mass and
// WellGrid are only read by the spacetime curvature mode; WellGrid == 0
// selects its default grid side.
type Params struct {
	Time     float32
	Mult     int
	Mass     float32
	WellGrid int
}

type generator func(Params) Stream

// modeInfo binds a mode to its display name, draw topology, and generator.
// Surface-sampling modes that emit unordered grids draw as point clouds;
// everything else is a path, so emission order matters there.
type modeInfo struct {
	name     string
	topology Topology
	generate generator
}

var modes = [ModeCount]modeInfo{
	ParametricSpiral:   {"Parametric Spiral", LineStrip, parametricSpiral},
	Lissajous:          {"Lissajous Curve", LineStrip, lissajous},
	Helix:              {"3D Helix", LineStrip, helix},
	SineWaveSurface:    {"Sine Wave Surface", Points, sineWaveSurface},
	Torus:              {"Animated Torus", LineStrip, torus},
	Hypotrochoid:       {"Hypotrochoid", LineStrip, hypotrochoid},
	Superformula:       {"Superformula", LineStrip, superformula},
	LorenzAttractor:    {"Lorenz Attractor", LineStrip, lorenzAttractor},
	KleinBottle:        {"Klein Bottle", LineStrip, kleinBottle},
	Gyroid:             {"Gyroid Surface", Points, gyroid},
	SphericalHarmonic:  {"Spherical Harmonic", LineStrip, sphericalHarmonic},
	FractalZoom:        {"Fractal Zoom", Points, fractalZoom},
	Phyllotaxis:        {"Phyllotaxis", LineStrip, phyllotaxis},
	Tesseract:          {"Tesseract 4D Projection", LineStrip, tesseract},
	WaveInterference:   {"Wave Interference", Points, waveInterference},
	SpacetimeCurvature: {"Gravitational Spacetime Curvature", LineStrip, spacetime},
}

func (m Mode) valid() bool { return m >= 0 && m < ModeCount }

func (m Mode) String() string {
	if !m.valid() {
		return "Unknown"
	}
	return modes[m].name
}

// Topology returns the draw-topology hint for the mode.
func (m Mode) Topology() Topology {
	if !m.valid() {
		return LineStrip
	}
	return modes[m].topology
}

// Generate builds the vertex stream for the mode. Generation is total: it
// never fails and never emits a partial vertex.
func (m Mode) Generate(p Params) Stream {
	if !m.valid() {
		m = ParametricSpiral
	}
	return modes[m].generate(p)
}
