package config

import "github.com/rayannott/flipmap/internal/pendulum"

var Presets = map[string]*Config{
	"quick": {
		N: 25, Workers: 4, Tolerance: 1e-5,
		Constants: pendulum.Constants{G: 9.8, L1: 1, L2: 1, M1: 1, M2: 1, TFinal: 5},
	},
	"standard": {
		N: 101, Workers: 4, Tolerance: 1e-6,
		Constants: pendulum.Constants{G: 9.8, L1: 1, L2: 1, M1: 1, M2: 1, TFinal: 10},
	},
	"poster": {
		N: 301, Workers: 8, Tolerance: 1e-6,
		Constants: pendulum.Constants{G: 9.8, L1: 1, L2: 1, M1: 1, M2: 1, TFinal: 10},
	},
	"longrun": {
		N: 101, Workers: 4, Tolerance: 1e-6,
		Constants: pendulum.Constants{G: 9.8, L1: 1, L2: 1, M1: 1, M2: 1, TFinal: 30},
	},
	"heavy_second": {
		N: 101, Workers: 4, Tolerance: 1e-6,
		Constants: pendulum.Constants{G: 9.8, L1: 1, L2: 1, M1: 1, M2: 3, TFinal: 10},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	// callers may mutate the result; hand out a copy
	cp := *cfg
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
