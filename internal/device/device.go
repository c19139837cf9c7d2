package device

import (
	"fmt"

	"github.com/san-kum/qsim/internal/accel"
	"github.com/san-kum/qsim/internal/gate"
	"github.com/san-kum/qsim/internal/quantum"
	"github.com/san-kum/qsim/internal/state"
)

// Config assembles a device. The zero value is usable: default
// capabilities, no accelerator, no observers.
type Config struct {
	// Capabilities advertised to the host. Empty operations list
	// falls back to DefaultCapabilities.
	Capabilities Capabilities

	// Accel selects the accelerator session at construction.
	Accel accel.Config

	// Session overrides automatic session selection when non-nil.
	// Used by tests and by callers that keep a handle on the target.
	Session accel.Session

	// Observers receive lifecycle and dispatch events.
	Observers []quantum.Observer
}

// Device implements the host-facing capability contract over the
// state store, lifecycle manager, accelerator bridge and dispatcher.
type Device struct {
	caps       Capabilities
	store      *state.Store
	lifecycle  *state.Lifecycle
	bridge     *accel.Bridge
	dispatcher *gate.Dispatcher
	observers  []quantum.Observer
	shots      int
}

// New constructs a device. Construction never fails: a missing or
// unusable accelerator leaves the bridge Unavailable and every
// operation on the software path.
func New(cfg Config) *Device {
	caps := cfg.Capabilities
	if len(caps.Operations) == 0 {
		caps = DefaultCapabilities()
	}

	store := state.NewStore()
	session := cfg.Session
	if session == nil {
		session = accel.AutoSession(cfg.Accel)
	}
	bridge := accel.NewBridge(cfg.Accel, session)

	d := &Device{
		caps:       caps,
		store:      store,
		lifecycle:  state.NewLifecycle(store),
		bridge:     bridge,
		dispatcher: gate.NewDispatcher(store, bridge, cfg.Observers),
		observers:  cfg.Observers,
	}

	for _, o := range d.observers {
		o.OnConstruct(bridge.State() == accel.Available, bridge.Bitstream())
	}
	return d
}

// AllocateQubit grows the register by one and resets it to |0...0>.
func (d *Device) AllocateQubit() quantum.QubitHandle {
	h := d.lifecycle.AllocateOne()
	d.allocated()
	return h
}

// AllocateQubits grows the register by n and resets it. Zero is a
// no-op returning an empty handle list.
func (d *Device) AllocateQubits(n int) []quantum.QubitHandle {
	handles := d.lifecycle.AllocateMany(n)
	if len(handles) > 0 {
		d.allocated()
	}
	return handles
}

// ReleaseQubit shrinks the register by one and resets it. The handle
// identifies the request only; release always drops the highest wire,
// which is observationally identical under the reset-on-release rule.
// A no-op when nothing is allocated.
func (d *Device) ReleaseQubit(h quantum.QubitHandle) {
	if d.lifecycle.Count() == 0 {
		return
	}
	d.lifecycle.ReleaseOne(h)
	d.released()
}

// ReleaseAllQubits empties the register. A no-op when already empty.
func (d *Device) ReleaseAllQubits() {
	if d.lifecycle.Count() == 0 {
		return
	}
	d.lifecycle.ReleaseAll()
	d.released()
}

func (d *Device) GetNumQubits() int {
	return d.lifecycle.Count()
}

// NamedOperation applies a gate by name. Names outside the advertised
// capability set, unknown names, parameters, control wires and the
// inverse flag all reject with ErrUnsupportedOperation before any
// state mutation.
func (d *Device) NamedOperation(name string, params []float64, wires []int, inverse bool, controlWires []int, controlValues []bool) error {
	if !d.caps.Supports(name) {
		return fmt.Errorf("%w: %q not advertised by device", quantum.ErrUnsupportedOperation, name)
	}
	kind, err := quantum.ParseGate(name)
	if err != nil {
		return err
	}
	return d.dispatcher.Apply(quantum.Request{
		Kind:          kind,
		Params:        params,
		Wires:         wires,
		Inverse:       inverse,
		ControlWires:  controlWires,
		ControlValues: controlValues,
	})
}

// State copies the amplitudes into out. The buffer length must equal
// the current dimension exactly.
func (d *Device) State(out quantum.Vector) error {
	return d.store.Read(out)
}

// StateVector returns a fresh copy of the amplitudes sized to the
// current register.
func (d *Device) StateVector() quantum.Vector {
	return d.store.Snapshot()
}

// SetDeviceShots records a shot count. The value round-trips through
// GetDeviceShots but has no sampling semantics in this core.
func (d *Device) SetDeviceShots(n int) {
	d.shots = n
}

func (d *Device) GetDeviceShots() int {
	return d.shots
}

// Measure returns a fixed placeholder result. Real sampling is the
// host framework's concern.
func (d *Device) Measure(wire int) bool {
	return true
}

func (d *Device) Capabilities() Capabilities {
	return d.caps
}

func (d *Device) BridgeState() accel.BridgeState {
	return d.bridge.State()
}

func (d *Device) Close() error {
	return d.bridge.Close()
}

func (d *Device) allocated() {
	for _, o := range d.observers {
		o.OnAllocate(d.lifecycle.Count())
	}
}

func (d *Device) released() {
	for _, o := range d.observers {
		o.OnRelease(d.lifecycle.Count())
	}
}
