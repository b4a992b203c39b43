package geometry

import (
	"strings"
	"testing"
)

type captureReporter struct {
	lines []string
}

func (c *captureReporter) Log(line string) { c.lines = append(c.lines, line) }

func TestIncreaseMassSaturates(t *testing.T) {
	s := NewSelector(nil)
	if s.Mass() != 0.5 {
		t.Fatalf("initial mass = %v, want 0.5", s.Mass())
	}
	for i := 0; i < 22; i++ {
		s.IncreaseMass()
	}
	if s.Mass() >= 5.0 {
		t.Fatalf("mass reached %v after 22 increases; should not be saturated yet", s.Mass())
	}
	s.IncreaseMass()
	if s.Mass() != 5.0 {
		t.Fatalf("mass = %v after 23 increases, want exactly 5.0", s.Mass())
	}
	s.IncreaseMass()
	if s.Mass() != 5.0 {
		t.Fatalf("mass = %v after saturation, want to stay at 5.0", s.Mass())
	}
}

func TestDecreaseMassSaturates(t *testing.T) {
	s := NewSelector(nil)
	for i := 0; i < 30; i++ {
		s.DecreaseMass()
	}
	if s.Mass() != 0.1 {
		t.Fatalf("mass = %v after repeated decreases, want exactly 0.1", s.Mass())
	}
}

func TestResetMass(t *testing.T) {
	s := NewSelector(nil)
	s.IncreaseMass()
	s.IncreaseMass()
	s.ResetMass()
	if s.Mass() != 0.5 {
		t.Fatalf("mass = %v after reset, want 0.5", s.Mass())
	}
}

func TestMassChangesAreReported(t *testing.T) {
	rep := &captureReporter{}
	s := NewSelector(rep)
	s.IncreaseMass()
	s.DecreaseMass()
	if len(rep.lines) != 2 {
		t.Fatalf("got %d diagnostic lines, want 2", len(rep.lines))
	}
	for _, line := range rep.lines {
		if !strings.Contains(line, "Central Mass") {
			t.Errorf("diagnostic %q does not mention the mass", line)
		}
	}
}

func TestSetModeIgnoresOutOfRange(t *testing.T) {
	s := NewSelector(nil)
	s.SetMode(Gyroid)
	s.SetMode(Mode(16))
	s.SetMode(Mode(-1))
	if s.Mode() != Gyroid {
		t.Fatalf("mode = %v, want Gyroid after invalid SetMode calls", s.Mode())
	}
}

func TestSelectorGenerate(t *testing.T) {
	s := NewSelector(nil)
	s.SetMode(Torus)
	stream, topo := s.Generate(1.0, Low)
	if topo != LineStrip {
		t.Errorf("torus topology = %v, want LineStrip", topo)
	}
	if got := stream.Count(); got != 60*40 {
		t.Errorf("torus at Low has %d vertices, want %d", got, 60*40)
	}
}

func TestSelectorWellGridOverride(t *testing.T) {
	s := NewSelector(nil)
	s.SetMode(SpacetimeCurvature)
	s.WellGrid = 40

	stream, _ := s.Generate(0, High)
	perLine := (40 + wellLineStep - 1) / wellLineStep
	want := 40*40 + 2*wellGridLines*perLine
	if got := stream.Count(); got != want {
		t.Errorf("overridden well grid: %d vertices, want %d", got, want)
	}
}
