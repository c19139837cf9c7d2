package config

import "github.com/san-kum/qsim/internal/accel"

// Presets are named backend profiles covering the dispatch modes:
// pure software, emulated hardware, a flaky device, a deterministic
// fallback demonstration and a real XRT target.
var Presets = map[string]*Config{
	"software": {
		Qubits: 2, Wires: []int{0, 1},
		Accel: accel.Config{Bitstream: accel.DefaultBitstream, Emulate: false},
	},
	"emulated": {
		Qubits: 2, Wires: []int{0, 1},
		Accel: accel.Config{
			Bitstream: accel.DefaultBitstream, Emulate: true,
			Emulator: accel.EmulatorConfig{LatencyMicros: 1000, Seed: 1},
		},
	},
	"flaky": {
		Qubits: 3, Wires: []int{0, 1, 2},
		Accel: accel.Config{
			Bitstream: accel.DefaultBitstream, Emulate: true,
			Emulator: accel.EmulatorConfig{LatencyMicros: 1000, FailRate: 0.01},
		},
	},
	"demo-fallback": {
		Qubits: 2, Wires: []int{0, 1},
		Accel: accel.Config{
			Bitstream: accel.DefaultBitstream, Emulate: true,
			Emulator: accel.EmulatorConfig{LatencyMicros: 1000, FailAt: 2, Seed: 1},
		},
	},
	"hardware": {
		Qubits: 2, Wires: []int{0, 1},
		Accel: accel.Config{Bitstream: accel.DefaultBitstream, Emulate: false},
	},
}

// GetPreset returns a copy of the named profile, nil if unknown.
// Copying keeps callers from mutating the shared table through the
// returned pointer.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	c.Wires = append([]int(nil), cfg.Wires...)
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
