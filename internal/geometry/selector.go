package geometry

import "fmt"

const (
	initialMass = 0.5
	massStep    = 0.2
	massMin     = 0.1
	massMax     = 5.0
)

// Reporter receives one-line diagnostics such as mass changes.
// *logger.Logger satisfies it.
type Reporter interface {
	Log(line string)
}

// Selector holds the active animation mode and the central-mass parameter
// and dispatches per-frame generation to the mode's generator.
type Selector struct {
	mode Mode
	mass float32

	// WellGrid overrides the spacetime curvature grid side; 0 keeps the
	// default. That mode's density does not follow the quality level, so
	// this is the only way to change it.
	WellGrid int

	report Reporter
}

// NewSelector returns a selector at mode 0 with the initial central mass.
// report may be nil.
func NewSelector(report Reporter) *Selector {
	return &Selector{mode: ParametricSpiral, mass: initialMass, report: report}
}

func (s *Selector) Mode() Mode    { return s.mode }
func (s *Selector) Mass() float32 { return s.mass }

// SetMode switches the active mode. Out-of-range values are ignored; the
// input layer only produces values from the fixed key map, so this never
// triggers in practice.
func (s *Selector) SetMode(m Mode) {
	if !m.valid() {
		return
	}
	s.mode = m
}

// IncreaseMass raises the central mass by one step, saturating at 5.0, and
// reports the new value.
func (s *Selector) IncreaseMass() {
	s.mass += massStep
	if s.mass > massMax {
		s.mass = massMax
	}
	s.logf("Central Mass: %.1f", s.mass)
}

// DecreaseMass lowers the central mass by one step, saturating at 0.1, and
// reports the new value.
func (s *Selector) DecreaseMass() {
	s.mass -= massStep
	if s.mass < massMin {
		s.mass = massMin
	}
	s.logf("Central Mass: %.1f", s.mass)
}

// ResetMass restores the initial central mass.
func (s *Selector) ResetMass() {
	s.mass = initialMass
	s.logf("Reset Mass: %.1f", s.mass)
}

// Generate builds this frame's vertex stream for the active mode and
// returns it with the mode's draw-topology hint.
func (s *Selector) Generate(time float32, level Level) (Stream, Topology) {
	p := Params{
		Time:     time,
		Mult:     level.Multiplier(),
		Mass:     s.mass,
		WellGrid: s.WellGrid,
	}
	return s.mode.Generate(p), s.mode.Topology()
}

func (s *Selector) logf(format string, args ...any) {
	if s.report != nil {
		s.report.Log(fmt.Sprintf(format, args...))
	}
}
