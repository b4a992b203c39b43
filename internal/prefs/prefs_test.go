package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	p := loadFrom(filepath.Join(t.TempDir(), "nope.json"))
	if p != Default() {
		t.Errorf("got %+v, want defaults %+v", p, Default())
	}
}

func TestLoadInvalidFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}
	if p := loadFrom(path); p != Default() {
		t.Errorf("got %+v, want defaults", p)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "manimation.json")
	want := Prefs{
		Quality:      3,
		TargetFPS:    144,
		Background:   5,
		ShowHUD:      true,
		ShowFPS:      true,
		ShowMemAlloc: true,
		WellGrid:     120,
	}
	if err := saveTo(path, want); err != nil {
		t.Fatalf("saveTo: %v", err)
	}
	if got := loadFrom(path); got != want {
		t.Errorf("round trip: got %+v, want %+v", got, want)
	}
}
