// Package quantum provides core primitives for state-vector simulation.
//
// The package defines the fundamental types shared by the state store,
// the gate dispatcher and the accelerator bridge:
//
//   - [Vector]: complex amplitude vector over the computational basis
//   - [GateKind]: closed enumeration of supported gate operations
//   - [Request]: a fully-described gate application
//   - [Observer]: hook interface for lifecycle and dispatch events
//
// # Basis Ordering
//
// Amplitude index bit k corresponds to qubit k, so for a register of n
// qubits the basis state |q_{n-1} ... q_1 q_0> lives at index
// q_0 + 2*q_1 + ... + 2^(n-1)*q_{n-1}. The partner of index i under a
// single-qubit gate on wire t is i XOR (1 << t).
//
// # Thread Safety
//
// Vectors and requests are plain values and carry no synchronization.
// Concurrent use of a single device must be coordinated by the caller.
package quantum
