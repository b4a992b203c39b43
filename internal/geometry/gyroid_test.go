package geometry

import "testing"

func TestGyroidGridCap(t *testing.T) {
	cases := []struct {
		mult, want int
	}{
		{1, 50},
		{2, 100},
		{4, 120},
		{8, 120},
	}
	for _, c := range cases {
		if got := gyroidGrid(c.mult); got != c.want {
			t.Errorf("gyroidGrid(%d) = %d, want %d", c.mult, got, c.want)
		}
	}
}

func TestGyroidUltraStaysWithinCap(t *testing.T) {
	// Every emitted point comes from one lattice cell, so the vertex count
	// can never exceed the capped cell count.
	s := gyroid(Params{Time: 0.5, Mult: Ultra.Multiplier()})
	if max := gyroidMaxGrid * gyroidMaxGrid * gyroidMaxGrid; s.Count() > max {
		t.Fatalf("gyroid at Ultra emitted %d points, more than %d cells", s.Count(), max)
	}
	if s.Count() == 0 {
		t.Fatal("gyroid at Ultra emitted no points")
	}
}

func TestGyroidPointsSitNearIsoLevel(t *testing.T) {
	// c = (v-level+0.05)/0.1 is stored in the red channel; it must be in
	// (0,1) for every emitted point since |v-level| < 0.05.
	s := gyroid(Params{Time: 2.0, Mult: 1})
	for i := 0; i < s.Count(); i++ {
		c := s[i*6+3]
		if c <= 0 || c >= 1 {
			t.Fatalf("point %d has threshold coordinate %v outside (0,1)", i, c)
		}
	}
}
