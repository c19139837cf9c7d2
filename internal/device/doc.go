// Package device implements the capability contract a host runtime
// drives the simulator through.
//
// A [Device] maps contract calls onto the underlying components:
// qubit allocation and release onto the lifecycle manager, named
// operations onto the gate dispatcher, and state reads onto the
// vector store. Construction wires everything together from a single
// [Config]:
//
//	dev := device.New(device.Config{Accel: accel.DefaultConfig()})
//	dev.AllocateQubits(2)
//	dev.NamedOperation("Hadamard", nil, []int{0}, false, nil, nil)
//
// # Shots and Measurement
//
// The device is a pure state-vector core. Shot counts round-trip
// through [Device.SetDeviceShots] but carry no sampling semantics,
// and [Device.Measure] returns a fixed placeholder; the host's
// measurement model is an external concern.
//
// # Thread Safety
//
// Device instances are NOT thread-safe. Every call runs to completion
// on the caller's goroutine; concurrent use requires external
// synchronization.
package device
