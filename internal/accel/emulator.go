package accel

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/san-kum/qsim/internal/quantum"
)

// EmulatorConfig controls the mock accelerator. Fault injection is
// deterministic with FailAt (the Nth run fails, 1-based) or random
// with FailRate; both default off.
type EmulatorConfig struct {
	LatencyMicros int     `yaml:"latency_us"`
	FailAt        int     `yaml:"fail_at"`
	FailRate      float64 `yaml:"fail_rate"`
	Seed          int64   `yaml:"seed"`
}

func DefaultEmulatorConfig() EmulatorConfig {
	return EmulatorConfig{
		LatencyMicros: 1000,
		Seed:          1,
	}
}

// EmulatorStatus mirrors the health report a real device shim exposes.
type EmulatorStatus struct {
	Device      string
	MemoryMB    int
	Temperature float64
	Utilization float64
}

// Emulator is a software stand-in for the accelerator. It runs the
// same kernel the hardware image implements, at complex64 precision,
// with configurable latency and fault injection.
type Emulator struct {
	cfg  EmulatorConfig
	rng  *rand.Rand
	runs int
}

func NewEmulator(cfg EmulatorConfig) *Emulator {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Emulator{cfg: cfg, rng: rand.New(rand.NewSource(seed))}
}

func (e *Emulator) Name() string {
	return "emulator (mock fpga)"
}

func (e *Emulator) Available() bool {
	return true
}

// Runs reports how many executions were attempted, including injected
// failures.
func (e *Emulator) Runs() int {
	return e.runs
}

func (e *Emulator) Run(kind quantum.GateKind, wire, qubits int, in []complex64) ([]complex64, error) {
	e.runs++

	if kind != quantum.KindHadamard {
		return nil, fmt.Errorf("%w: %s not in accelerator image", quantum.ErrUnsupportedOperation, kind)
	}
	if len(in) != quantum.Dim(qubits) {
		return nil, fmt.Errorf("input length %d, expected %d", len(in), quantum.Dim(qubits))
	}
	if wire < 0 || wire >= qubits {
		return nil, fmt.Errorf("wire %d outside register of %d", wire, qubits)
	}

	if e.cfg.FailAt > 0 && e.runs == e.cfg.FailAt {
		return nil, fmt.Errorf("injected fault on run %d", e.runs)
	}
	if e.cfg.FailRate > 0 && e.rng.Float64() < e.cfg.FailRate {
		return nil, fmt.Errorf("transient device fault on run %d", e.runs)
	}

	if e.cfg.LatencyMicros > 0 {
		time.Sleep(time.Duration(e.cfg.LatencyMicros) * time.Microsecond)
	}

	return hadamard64(in, wire), nil
}

// Status returns a synthetic health report in the shape a real shim
// would produce.
func (e *Emulator) Status() EmulatorStatus {
	return EmulatorStatus{
		Device:      "mock fpga device",
		MemoryMB:    8192,
		Temperature: 45 + 20*e.rng.Float64(),
		Utilization: 20 + 60*e.rng.Float64(),
	}
}

func (e *Emulator) Close() error {
	return nil
}

// hadamard64 applies the butterfly on wire t at device precision.
// Every index belongs to exactly one (i, i^bit) pair, so writing both
// members while visiting the smaller index covers the whole vector.
func hadamard64(in []complex64, t int) []complex64 {
	out := make([]complex64, len(in))
	bit := 1 << t
	inv := complex(float32(1/math.Sqrt2), 0)
	for i := range in {
		j := i ^ bit
		if i < j {
			a, b := in[i], in[j]
			out[i] = (a + b) * inv
			out[j] = (a - b) * inv
		}
	}
	return out
}
