package config

import (
	"path/filepath"
	"testing"
)

func TestLoadSaveRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Radii = []float64{0.5, 0.5}
	cfg.Coords = []float64{0, 0, 0, 1.05, 0, 0}
	cfg.Frozen = []int{0, 1, 2}

	path := filepath.Join(t.TempDir(), "system.yaml")
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.Model != cfg.Model || loaded.NDim != cfg.NDim || loaded.Eps != cfg.Eps {
		t.Errorf("scalars lost in round trip: %+v", loaded)
	}
	if len(loaded.Coords) != 6 || len(loaded.Radii) != 2 || len(loaded.Frozen) != 3 {
		t.Errorf("arrays lost in round trip: %+v", loaded)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Radii = []float64{0.5, 0.5}
	cfg.Coords = []float64{0, 0, 0, 1.05, 0}
	if err := cfg.Validate(); err == nil {
		t.Error("ragged coords accepted")
	}

	cfg.Coords = []float64{0, 0, 0, 1.05, 0, 0}
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	cfg.Radii = []float64{0.5}
	if err := cfg.Validate(); err == nil {
		t.Error("radii/atom mismatch accepted")
	}
	cfg.Radii = []float64{0.5, 0.5}

	cfg.Box = []float64{5, 5}
	if err := cfg.Validate(); err == nil {
		t.Error("wrong box length accepted")
	}
}

func TestPresetsBuild(t *testing.T) {
	for _, name := range ListPresets() {
		cfg := GetPreset(name)
		if cfg == nil {
			t.Fatalf("preset %s missing", name)
		}
		pot, err := cfg.Build()
		if err != nil {
			t.Fatalf("preset %s does not build: %v", name, err)
		}
		if _, err := pot.Energy(cfg.InitialCoords()); err != nil {
			t.Fatalf("preset %s does not evaluate: %v", name, err)
		}
	}
}

func TestInitialCoordsReduced(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Radii = []float64{0.5, 0.5}
	cfg.Coords = []float64{0, 0, 0, 1.05, 0, 0}
	cfg.Frozen = []int{0, 1, 2}

	x := cfg.InitialCoords()
	if len(x) != 3 {
		t.Fatalf("reduced length: got %d, want 3", len(x))
	}
	if x[0] != 1.05 {
		t.Errorf("mobile values wrong: %v", x)
	}
}

func TestUnknownPreset(t *testing.T) {
	if GetPreset("nope") != nil {
		t.Error("unknown preset returned a config")
	}
}
