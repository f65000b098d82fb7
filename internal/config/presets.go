package config

import "math/rand"

// Presets are ready-made systems for the CLI demos.
var presets = map[string]func() *Config{
	"pair":    pairPreset,
	"lattice": latticePreset,
	"packed":  packedPreset,
}

func ListPresets() []string {
	return []string{"pair", "lattice", "packed"}
}

func GetPreset(name string) *Config {
	fn, ok := presets[name]
	if !ok {
		return nil
	}
	return fn()
}

// pairPreset is two unit-diameter spheres just inside the WCA shell.
func pairPreset() *Config {
	cfg := DefaultConfig()
	cfg.Radii = []float64{0.5, 0.5}
	cfg.Coords = []float64{0, 0, 0, 1.05, 0, 0}
	return cfg
}

// latticePreset is a 3x3x3 simple cubic arrangement at slight compression.
func latticePreset() *Config {
	cfg := DefaultConfig()
	const n = 3
	const spacing = 1.15
	for ix := 0; ix < n; ix++ {
		for iy := 0; iy < n; iy++ {
			for iz := 0; iz < n; iz++ {
				cfg.Coords = append(cfg.Coords,
					float64(ix)*spacing, float64(iy)*spacing, float64(iz)*spacing)
				cfg.Radii = append(cfg.Radii, 0.5)
			}
		}
	}
	return cfg
}

// packedPreset is a jittered periodic box near jamming density, relaxed
// with the inverse-power model.
func packedPreset() *Config {
	cfg := DefaultConfig()
	cfg.Model = "inversepower"
	rng := rand.New(rand.NewSource(42))
	const n = 16
	const L = 3.2
	cfg.Box = []float64{L, L, L}
	for i := 0; i < n; i++ {
		cfg.Coords = append(cfg.Coords, rng.Float64()*L, rng.Float64()*L, rng.Float64()*L)
		cfg.Radii = append(cfg.Radii, 0.5)
	}
	return cfg
}
