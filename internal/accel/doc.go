// Package accel provides the hardware accelerator bridge and its
// execution sessions.
//
// The package separates two concerns:
//
//   - [Session]: a concrete execution target (XRT device or emulator)
//     that runs single-qubit kernels on complex64 amplitudes
//   - [Bridge]: the state machine that owns a session, performs the
//     complex128/complex64 narrowing at the boundary and degrades
//     permanently after the first hardware failure
//
// # Session Selection
//
// [AutoSession] picks the best available target: a probed XRT device
// when built with the xrt tag, the software emulator when enabled by
// configuration, or nothing at all. A bridge over a nil session
// reports [Unavailable] and never receives work.
//
// Build with XRT support:
//
//	go build -tags xrt ./...
//
// # Degradation
//
// A bridge never retries hardware. The first failed run moves it from
// [Available] to [Degraded] for the rest of its lifetime; callers
// reroute to the software path and keep going.
package accel
