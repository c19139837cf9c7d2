package quantum

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

func TestVector_Clone(t *testing.T) {
	v := Vector{1, complex(0, 1)}
	c := v.Clone()

	c[0] = 42
	if v[0] == 42 {
		t.Error("Clone did not create independent copy")
	}
	if c[1] != complex(0, 1) {
		t.Errorf("Clone lost amplitude: got %v", c[1])
	}
}

func TestVector_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		v     Vector
		valid bool
	}{
		{"empty", Vector{}, true},
		{"basis", Vector{1, 0}, true},
		{"superposition", Vector{complex(0.7071, 0), complex(0, 0.7071)}, true},
		{"with NaN", Vector{1, cmplx.NaN()}, false},
		{"with Inf", Vector{1, cmplx.Inf()}, false},
		{"real NaN component", Vector{complex(math.NaN(), 0)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestVector_Norm(t *testing.T) {
	tests := []struct {
		v        Vector
		expected float64
	}{
		{Vector{1, 0}, 1.0},
		{Vector{complex(0, 1)}, 1.0},
		{Vector{0.5, 0.5, 0.5, 0.5}, 1.0},
		{Vector{3, complex(0, 4)}, 5.0},
		{Vector{0, 0}, 0.0},
	}

	for _, tt := range tests {
		if got := tt.v.Norm(); math.Abs(got-tt.expected) > 1e-10 {
			t.Errorf("Norm(%v) = %v, want %v", tt.v, got, tt.expected)
		}
	}
}

func TestVector_Probabilities(t *testing.T) {
	v := Vector{complex(math.Sqrt2/2, 0), complex(0, math.Sqrt2/2)}
	p := v.Probabilities()

	if len(p) != 2 {
		t.Fatalf("Probabilities length = %d, want 2", len(p))
	}
	for i, got := range p {
		if math.Abs(got-0.5) > 1e-12 {
			t.Errorf("p[%d] = %v, want 0.5", i, got)
		}
	}
}

func TestNewBasisVector(t *testing.T) {
	tests := []struct {
		qubits int
		length int
	}{
		{0, 1},
		{1, 2},
		{3, 8},
		{10, 1024},
	}

	for _, tt := range tests {
		v := NewBasisVector(tt.qubits)
		if len(v) != tt.length {
			t.Errorf("NewBasisVector(%d) length = %d, want %d", tt.qubits, len(v), tt.length)
		}
		if v[0] != 1 {
			t.Errorf("NewBasisVector(%d)[0] = %v, want 1", tt.qubits, v[0])
		}
		for i := 1; i < len(v); i++ {
			if v[i] != 0 {
				t.Errorf("NewBasisVector(%d)[%d] = %v, want 0", tt.qubits, i, v[i])
			}
		}
	}
}

func TestParseGate(t *testing.T) {
	kind, err := ParseGate("Hadamard")
	if err != nil {
		t.Fatalf("ParseGate(Hadamard) error: %v", err)
	}
	if kind != KindHadamard {
		t.Errorf("ParseGate(Hadamard) = %v, want KindHadamard", kind)
	}

	for _, name := range []string{"PauliX", "CNOT", "hadamard", ""} {
		kind, err := ParseGate(name)
		if err == nil {
			t.Errorf("ParseGate(%q) expected error, got nil", name)
		}
		if !errors.Is(err, ErrUnsupportedOperation) {
			t.Errorf("ParseGate(%q) error = %v, want ErrUnsupportedOperation", name, err)
		}
		if kind != KindInvalid {
			t.Errorf("ParseGate(%q) = %v, want KindInvalid", name, kind)
		}
	}
}

func TestGateKind_String(t *testing.T) {
	if KindHadamard.String() != "Hadamard" {
		t.Errorf("KindHadamard.String() = %q", KindHadamard.String())
	}
	if KindInvalid.String() != "Invalid" {
		t.Errorf("KindInvalid.String() = %q", KindInvalid.String())
	}
}

func TestPath_String(t *testing.T) {
	if PathSoftware.String() != "software" {
		t.Errorf("PathSoftware.String() = %q", PathSoftware.String())
	}
	if PathHardware.String() != "hardware" {
		t.Errorf("PathHardware.String() = %q", PathHardware.String())
	}
}

func TestHardwareError(t *testing.T) {
	inner := errors.New("graph wait timed out")
	err := &HardwareError{Stage: "run", Wrapped: inner}

	if !errors.Is(err, ErrHardwareExecution) {
		t.Error("HardwareError should match ErrHardwareExecution")
	}
	if !errors.Is(err, inner) {
		t.Error("HardwareError should unwrap to the inner error")
	}
	expected := "hardware run: graph wait timed out"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}
