package palette

import "testing"

func TestDefaults(t *testing.T) {
	if len(defaults) != 7 {
		t.Fatalf("built-in palette has %d backgrounds, want 7", len(defaults))
	}
	if defaults[1] != (Background{0, 0, 0}) {
		t.Errorf("second background = %+v, want pure black", defaults[1])
	}
}

func TestParseValidYAML(t *testing.T) {
	doc := []byte("- r: 0.1\n  g: 0.2\n  b: 0.3\n- r: 1\n  g: 1\n  b: 1\n")
	got := parse(doc)
	if len(got) != 2 {
		t.Fatalf("parsed %d backgrounds, want 2", len(got))
	}
	if got[0] != (Background{0.1, 0.2, 0.3}) {
		t.Errorf("first background = %+v", got[0])
	}
}

func TestParseFallsBackOnGarbage(t *testing.T) {
	for _, doc := range []string{"", "not: [valid", "[]"} {
		got := parse([]byte(doc))
		if len(got) != len(defaults) {
			t.Errorf("parse(%q) returned %d backgrounds, want the %d defaults", doc, len(got), len(defaults))
		}
	}
}

func TestBackgroundColorSaturates(t *testing.T) {
	c := Background{-1, 0.5, 3}.Color()
	if c.R != 0 || c.G != 127 || c.B != 255 || c.A != 255 {
		t.Errorf("color = %+v, want saturated (0, 127, 255, 255)", c)
	}
}

func TestAccentsDiffer(t *testing.T) {
	a, b := Accent(0), Accent(8)
	if a == b {
		t.Error("modes 0 and 8 share an accent color")
	}
}
