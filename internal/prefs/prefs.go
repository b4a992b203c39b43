package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Path is the preferences file, relative to the process working directory.
const Path = "config/manimation.json"

// Prefs holds the settings that persist across runs: quality level, frame
// rate target, background index, overlay toggles, and the curvature-mode
// grid override. The visualization itself keeps no durable state.
type Prefs struct {
	Quality      int  `json:"quality"`
	TargetFPS    int  `json:"target_fps"`
	Background   int  `json:"background"`
	ShowHUD      bool `json:"show_hud"`
	ShowFPS      bool `json:"show_fps"`
	ShowMemAlloc bool `json:"show_memalloc"`
	// WellGrid overrides the spacetime-curvature grid side; 0 keeps the
	// built-in 80. That mode is the only one whose density ignores the
	// quality level, so this is its only density control.
	WellGrid int `json:"well_grid,omitempty"`
}

// Default returns the startup preferences: High quality at 60 FPS with the
// HUD on and debug overlays off.
func Default() Prefs {
	return Prefs{
		Quality:   2,
		TargetFPS: 60,
		ShowHUD:   true,
	}
}

// Load reads preferences from config/manimation.json. A missing or invalid
// file yields Default(); it does not create a file.
func Load() Prefs {
	return loadFrom(Path)
}

func loadFrom(path string) Prefs {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default()
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default()
	}
	return p
}

// Save writes preferences to config/manimation.json, creating the config
// directory if needed.
func Save(p Prefs) error {
	return saveTo(Path, p)
}

func saveTo(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
