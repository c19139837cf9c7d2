package accel

import "github.com/san-kum/qsim/internal/quantum"

// Session is a single accelerator execution target. Run consumes and
// produces narrowed complex64 amplitudes; the bridge owns the
// conversion from and to the simulator's complex128 vectors. Run
// blocks until the kernel completes or fails; there is no
// cancellation path, so a hung device stalls the calling gate.
type Session interface {
	Name() string
	Available() bool
	Run(kind quantum.GateKind, wire, qubits int, in []complex64) ([]complex64, error)
	Close() error
}

// AutoSession selects the best available session: a probed XRT device
// first, the emulator when enabled, otherwise nil.
func AutoSession(cfg Config) Session {
	if x, err := NewXRTSession(cfg); err == nil && x.Available() {
		return x
	}
	if cfg.Emulate {
		return NewEmulator(cfg.Emulator)
	}
	return nil
}
