package accel

import (
	"fmt"

	"github.com/san-kum/qsim/internal/quantum"
)

// BridgeState tracks the operational mode of the accelerator bridge.
type BridgeState int

const (
	// Unavailable means no session was acquired at construction.
	Unavailable BridgeState = iota

	// Available means the session is accepting work.
	Available

	// Degraded means a hardware run failed. The bridge stays degraded
	// for the rest of its lifetime.
	Degraded
)

func (s BridgeState) String() string {
	switch s {
	case Available:
		return "available"
	case Degraded:
		return "degraded"
	default:
		return "unavailable"
	}
}

// DefaultBitstream is the accelerator image loaded when configuration
// names none.
const DefaultBitstream = "libadf.xclbin"

// Config selects and parameterizes the accelerator session. The
// config is read once at construction and never consulted again.
type Config struct {
	Bitstream string         `yaml:"bitstream"`
	Emulate   bool           `yaml:"emulate"`
	Emulator  EmulatorConfig `yaml:"emulator"`
}

func DefaultConfig() Config {
	return Config{
		Bitstream: DefaultBitstream,
		Emulate:   true,
		Emulator:  DefaultEmulatorConfig(),
	}
}

// Bridge mediates between the dispatcher and a session. It narrows
// amplitudes on the way in, widens them on the way out, and degrades
// permanently on the first failure.
type Bridge struct {
	cfg     Config
	session Session
	state   BridgeState
}

// NewBridge wraps a session. A nil or unavailable session yields an
// Unavailable bridge, which is a working object that simply never
// accepts work.
func NewBridge(cfg Config, session Session) *Bridge {
	b := &Bridge{cfg: cfg, session: session}
	if session != nil && session.Available() {
		b.state = Available
	}
	return b
}

func (b *Bridge) State() BridgeState {
	return b.state
}

// Session exposes the underlying target for status display. May be nil.
func (b *Bridge) Session() Session {
	return b.session
}

func (b *Bridge) Bitstream() string {
	if b.cfg.Bitstream == "" {
		return DefaultBitstream
	}
	return b.cfg.Bitstream
}

// Execute runs one gate on the accelerator from an immutable snapshot
// and returns the widened result vector. Any failure degrades the
// bridge and reports ErrHardwareExecution; the caller is expected to
// rerun the gate in software.
func (b *Bridge) Execute(kind quantum.GateKind, wire, qubits int, snapshot quantum.Vector) (quantum.Vector, error) {
	if b.state != Available {
		return nil, fmt.Errorf("%w: bridge %s", quantum.ErrConfigurationUnavailable, b.state)
	}

	out, err := b.session.Run(kind, wire, qubits, Narrow(snapshot))
	if err != nil {
		b.state = Degraded
		return nil, &quantum.HardwareError{Stage: "run", Wrapped: err}
	}
	if len(out) != len(snapshot) {
		b.state = Degraded
		err := fmt.Errorf("result length %d, state %d", len(out), len(snapshot))
		return nil, &quantum.HardwareError{Stage: "readback", Wrapped: err}
	}

	return Widen(out), nil
}

func (b *Bridge) Close() error {
	if b.session == nil {
		return nil
	}
	return b.session.Close()
}
