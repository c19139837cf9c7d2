package gate

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/qsim/internal/accel"
	"github.com/san-kum/qsim/internal/quantum"
	"github.com/san-kum/qsim/internal/state"
)

// hookRecorder counts observer callbacks for assertions.
type hookRecorder struct {
	hardware  int
	software  int
	fallbacks int
	lastErr   error
}

func (h *hookRecorder) OnConstruct(hardware bool, bitstream string) {}
func (h *hookRecorder) OnAllocate(count int)                        {}
func (h *hookRecorder) OnRelease(count int)                         {}

func (h *hookRecorder) OnDispatch(path quantum.Path, wire, qubits int) {
	if path == quantum.PathHardware {
		h.hardware++
	} else {
		h.software++
	}
}

func (h *hookRecorder) OnFallback(err error) {
	h.fallbacks++
	h.lastErr = err
}

func softwareDispatcher(qubits int) (*Dispatcher, *state.Store) {
	s := state.NewStore()
	s.Resize(qubits)
	return NewDispatcher(s, nil, nil), s
}

func request(wire int) quantum.Request {
	return quantum.Request{Kind: quantum.KindHadamard, Wires: []int{wire}}
}

func TestDispatcher_SoftwarePath(t *testing.T) {
	d, s := softwareDispatcher(1)

	if err := d.Apply(request(0)); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	want := 1 / math.Sqrt2
	for i, a := range s.Amplitudes() {
		if math.Abs(real(a)-want) > 1e-12 {
			t.Errorf("amplitude[%d] = %v, want %v", i, a, want)
		}
	}
}

func TestDispatcher_TwiceIsIdentity(t *testing.T) {
	d, s := softwareDispatcher(3)

	for i := 0; i < 2; i++ {
		if err := d.Apply(request(1)); err != nil {
			t.Fatalf("Apply %d: %v", i, err)
		}
	}

	for i, a := range s.Amplitudes() {
		want := 0.0
		if i == 0 {
			want = 1.0
		}
		if math.Abs(real(a)-want) > 1e-9 || math.Abs(imag(a)) > 1e-9 {
			t.Errorf("amplitude[%d] = %v, want %v", i, a, want)
		}
	}
}

func TestDispatcher_TargetWireLocality(t *testing.T) {
	d, s := softwareDispatcher(2)

	// Prepare |01> so the transform on wire 1 spreads over indices
	// 1 and 3, leaving 0 and 2 alone.
	v := quantum.NewBasisVector(2)
	v[0], v[1] = 0, 1
	if err := s.Replace(v); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	if err := d.Apply(request(1)); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	amps := s.Amplitudes()
	want := 1 / math.Sqrt2
	if math.Abs(real(amps[1])-want) > 1e-12 || math.Abs(real(amps[3])-want) > 1e-12 {
		t.Errorf("paired amplitudes = %v, %v, want %v each", amps[1], amps[3], want)
	}
	if amps[0] != 0 || amps[2] != 0 {
		t.Errorf("amplitudes outside the wire-1 pairs changed: %v", amps)
	}
}

func TestDispatcher_RejectionLeavesStateUntouched(t *testing.T) {
	tests := []struct {
		name string
		req  quantum.Request
		want error
	}{
		{"unknown kind", quantum.Request{Kind: quantum.KindInvalid, Wires: []int{0}}, quantum.ErrUnsupportedOperation},
		{"with params", quantum.Request{Kind: quantum.KindHadamard, Wires: []int{0}, Params: []float64{0.5}}, quantum.ErrUnsupportedOperation},
		{"controlled", quantum.Request{Kind: quantum.KindHadamard, Wires: []int{0}, ControlWires: []int{1}, ControlValues: []bool{true}}, quantum.ErrUnsupportedOperation},
		{"inverse", quantum.Request{Kind: quantum.KindHadamard, Wires: []int{0}, Inverse: true}, quantum.ErrUnsupportedOperation},
		{"two wires", quantum.Request{Kind: quantum.KindHadamard, Wires: []int{0, 1}}, quantum.ErrUnsupportedOperation},
		{"no wires", quantum.Request{Kind: quantum.KindHadamard}, quantum.ErrUnsupportedOperation},
		{"wire out of range", quantum.Request{Kind: quantum.KindHadamard, Wires: []int{2}}, quantum.ErrWireOutOfRange},
		{"negative wire", quantum.Request{Kind: quantum.KindHadamard, Wires: []int{-1}}, quantum.ErrWireOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, s := softwareDispatcher(2)
			before := s.Snapshot()

			err := d.Apply(tt.req)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}

			after := s.Amplitudes()
			for i := range before {
				if before[i] != after[i] {
					t.Errorf("rejected request mutated amplitude[%d]: %v -> %v", i, before[i], after[i])
				}
			}
		})
	}
}

func TestDispatcher_HardwarePath(t *testing.T) {
	s := state.NewStore()
	s.Resize(1)
	em := accel.NewEmulator(accel.EmulatorConfig{Seed: 1})
	bridge := accel.NewBridge(accel.DefaultConfig(), em)
	rec := &hookRecorder{}
	d := NewDispatcher(s, bridge, []quantum.Observer{rec})

	if err := d.Apply(request(0)); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	// Device precision is float32, so the hardware path gets the
	// wider tolerance.
	want := 1 / math.Sqrt2
	for i, a := range s.Amplitudes() {
		if math.Abs(real(a)-want) > 1e-6 {
			t.Errorf("amplitude[%d] = %v, want %v", i, a, want)
		}
	}
	if rec.hardware != 1 || rec.software != 0 || rec.fallbacks != 0 {
		t.Errorf("hooks = %+v, want one hardware dispatch", rec)
	}
	if bridge.State() != accel.Available {
		t.Errorf("bridge state = %v, want Available", bridge.State())
	}
}

func TestDispatcher_FallbackProducesCorrectResult(t *testing.T) {
	s := state.NewStore()
	s.Resize(1)
	em := accel.NewEmulator(accel.EmulatorConfig{Seed: 1, FailAt: 1})
	bridge := accel.NewBridge(accel.DefaultConfig(), em)
	rec := &hookRecorder{}
	d := NewDispatcher(s, bridge, []quantum.Observer{rec})

	// The hardware attempt fails; the caller still sees success and a
	// full-precision software result.
	if err := d.Apply(request(0)); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	want := 1 / math.Sqrt2
	for i, a := range s.Amplitudes() {
		if math.Abs(real(a)-want) > 1e-12 {
			t.Errorf("amplitude[%d] = %v, want %v", i, a, want)
		}
	}

	if rec.fallbacks != 1 {
		t.Errorf("fallbacks = %d, want 1", rec.fallbacks)
	}
	if !errors.Is(rec.lastErr, quantum.ErrHardwareExecution) {
		t.Errorf("fallback error = %v, want ErrHardwareExecution", rec.lastErr)
	}
	if rec.software != 1 || rec.hardware != 0 {
		t.Errorf("hooks = %+v, want one software dispatch", rec)
	}
	if bridge.State() != accel.Degraded {
		t.Errorf("bridge state = %v, want Degraded", bridge.State())
	}

	// Subsequent calls skip hardware without another fallback event.
	if err := d.Apply(request(0)); err != nil {
		t.Fatalf("Apply after degrade: %v", err)
	}
	if rec.fallbacks != 1 || em.Runs() != 1 {
		t.Errorf("degraded bridge reached hardware again: fallbacks=%d runs=%d", rec.fallbacks, em.Runs())
	}
}

func TestDispatcher_PathsAgree(t *testing.T) {
	sw, swStore := softwareDispatcher(4)

	hwStore := state.NewStore()
	hwStore.Resize(4)
	bridge := accel.NewBridge(accel.DefaultConfig(), accel.NewEmulator(accel.EmulatorConfig{Seed: 1}))
	hw := NewDispatcher(hwStore, bridge, nil)

	for _, wire := range []int{0, 2, 3, 2} {
		if err := sw.Apply(request(wire)); err != nil {
			t.Fatalf("software Apply(%d): %v", wire, err)
		}
		if err := hw.Apply(request(wire)); err != nil {
			t.Fatalf("hardware Apply(%d): %v", wire, err)
		}
	}

	a, b := swStore.Amplitudes(), hwStore.Amplitudes()
	for i := range a {
		if math.Abs(real(a[i]-b[i])) > 1e-6 || math.Abs(imag(a[i]-b[i])) > 1e-6 {
			t.Errorf("paths diverge at %d: software %v, hardware %v", i, a[i], b[i])
		}
	}
}
