package gate

import (
	"fmt"

	"github.com/san-kum/qsim/internal/accel"
	"github.com/san-kum/qsim/internal/quantum"
	"github.com/san-kum/qsim/internal/state"
)

// Dispatcher validates gate requests and commits results to the
// store. State never mutates unless validation passes and a complete
// output vector is ready to swap in.
type Dispatcher struct {
	store     *state.Store
	bridge    *accel.Bridge
	observers []quantum.Observer
}

func NewDispatcher(store *state.Store, bridge *accel.Bridge, observers []quantum.Observer) *Dispatcher {
	return &Dispatcher{store: store, bridge: bridge, observers: observers}
}

// Apply routes one request. With an Available bridge the hardware
// path goes first; if it fails, the same call reruns the transform in
// software and still reports success. An Unavailable or Degraded
// bridge is skipped entirely.
func (d *Dispatcher) Apply(req quantum.Request) error {
	if err := d.validate(req); err != nil {
		return err
	}

	wire := req.Wires[0]
	qubits := d.store.Qubits()

	snapshot := d.store.Borrow()
	defer d.store.Return(snapshot)

	if d.bridge != nil && d.bridge.State() == accel.Available {
		out, err := d.bridge.Execute(req.Kind, wire, qubits, snapshot)
		if err == nil {
			if err := d.store.Replace(out); err != nil {
				return err
			}
			d.dispatched(quantum.PathHardware, wire, qubits)
			return nil
		}
		for _, o := range d.observers {
			o.OnFallback(err)
		}
	}

	if err := d.store.Replace(Hadamard(snapshot, wire)); err != nil {
		return err
	}
	d.dispatched(quantum.PathSoftware, wire, qubits)
	return nil
}

func (d *Dispatcher) validate(req quantum.Request) error {
	if req.Kind != quantum.KindHadamard {
		return fmt.Errorf("%w: %s", quantum.ErrUnsupportedOperation, req.Kind)
	}
	if len(req.Params) != 0 {
		return fmt.Errorf("%w: %s takes no parameters", quantum.ErrUnsupportedOperation, req.Kind)
	}
	if len(req.ControlWires) != 0 || len(req.ControlValues) != 0 {
		return fmt.Errorf("%w: controlled %s", quantum.ErrUnsupportedOperation, req.Kind)
	}
	if req.Inverse {
		return fmt.Errorf("%w: inverse %s", quantum.ErrUnsupportedOperation, req.Kind)
	}
	if len(req.Wires) != 1 {
		return fmt.Errorf("%w: %s expects one wire, got %d", quantum.ErrUnsupportedOperation, req.Kind, len(req.Wires))
	}
	if wire := req.Wires[0]; wire < 0 || wire >= d.store.Qubits() {
		return fmt.Errorf("%w: wire %d, register %d", quantum.ErrWireOutOfRange, wire, d.store.Qubits())
	}
	return nil
}

func (d *Dispatcher) dispatched(path quantum.Path, wire, qubits int) {
	for _, o := range d.observers {
		o.OnDispatch(path, wire, qubits)
	}
}
