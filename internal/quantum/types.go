package quantum

import (
	"fmt"
	"math"
	"math/cmplx"
	"time"
)

// QubitHandle identifies an allocated wire. Handles are assigned
// sequentially from zero and remain dense: releasing any qubit shrinks
// the register from the top and resets it, so handle k always refers
// to wire k of the current register.
type QubitHandle int

// Vector holds the amplitudes of a register over the computational
// basis. A register of n qubits uses a vector of length 1<<n.
type Vector []complex128

func (v Vector) Clone() Vector {
	c := make(Vector, len(v))
	copy(c, v)
	return c
}

func (v Vector) IsValid() bool {
	for _, a := range v {
		if cmplx.IsNaN(a) || cmplx.IsInf(a) {
			return false
		}
	}
	return true
}

// Norm returns the Euclidean norm of the vector. A physical state
// has norm 1 up to rounding.
func (v Vector) Norm() float64 {
	sum := 0.0
	for _, a := range v {
		sum += real(a)*real(a) + imag(a)*imag(a)
	}
	return math.Sqrt(sum)
}

// Probabilities returns |a_i|^2 for every basis index.
func (v Vector) Probabilities() []float64 {
	p := make([]float64, len(v))
	for i, a := range v {
		p[i] = real(a)*real(a) + imag(a)*imag(a)
	}
	return p
}

// Dim returns the vector length for a register of n qubits.
// A register of zero qubits occupies the single scalar basis state.
func Dim(qubits int) int {
	return 1 << qubits
}

// NewBasisVector returns the all-zeros basis state |0...0> for a
// register of n qubits.
func NewBasisVector(qubits int) Vector {
	v := make(Vector, Dim(qubits))
	v[0] = 1
	return v
}

// GateKind is the closed set of gate operations the dispatcher
// understands. Unknown names never enter the system as a kind.
type GateKind int

const (
	KindInvalid GateKind = iota
	KindHadamard
)

func (k GateKind) String() string {
	switch k {
	case KindHadamard:
		return "Hadamard"
	default:
		return "Invalid"
	}
}

// ParseGate maps an operation name to its kind. Names outside the
// supported set report ErrUnsupportedOperation.
func ParseGate(name string) (GateKind, error) {
	switch name {
	case "Hadamard":
		return KindHadamard, nil
	default:
		return KindInvalid, fmt.Errorf("%w: %q", ErrUnsupportedOperation, name)
	}
}

// Request describes one gate application as received from the device
// interface. The dispatcher validates every field before touching the
// state vector.
type Request struct {
	Kind          GateKind
	Wires         []int
	Params        []float64
	Inverse       bool
	ControlWires  []int
	ControlValues []bool
}

// Path records which execution route carried a dispatch.
type Path int

const (
	PathSoftware Path = iota
	PathHardware
)

func (p Path) String() string {
	if p == PathHardware {
		return "hardware"
	}
	return "software"
}

// Observer receives lifecycle and dispatch events. Implementations
// must be cheap; hooks run synchronously inside device calls.
type Observer interface {
	// OnConstruct fires once when a device finishes construction.
	OnConstruct(hardware bool, bitstream string)

	// OnAllocate and OnRelease fire after the register resizes.
	OnAllocate(count int)
	OnRelease(count int)

	// OnDispatch fires after a gate lands, on either path.
	OnDispatch(path Path, wire int, qubits int)

	// OnFallback fires when a hardware attempt fails and the gate is
	// rerouted to software within the same call.
	OnFallback(err error)
}

// Result captures the outcome of a completed scenario run.
type Result struct {
	Qubits        int
	Wires         []int
	Shots         int
	Amplitudes    Vector
	Probabilities []float64
	Elapsed       time.Duration
}
