// Package state owns the simulator state vector and the qubit
// register lifecycle built on top of it.
//
// The [Store] is the single writer-owned home of the amplitudes. Any
// register resize, in either direction, discards the old amplitudes
// and reinitializes to |0...0>. Gate application never mutates the
// stored vector in place: the dispatcher reads a snapshot, computes a
// fresh vector and swaps it in with [Store.Replace].
package state

import (
	"fmt"

	"github.com/san-kum/qsim/internal/quantum"
)

// Store holds the amplitude vector for the current register size.
type Store struct {
	amps      quantum.Vector
	qubits    int
	snapshots *SnapshotPool
}

// NewStore returns a store holding the zero-qubit register, a single
// scalar basis state of amplitude 1.
func NewStore() *Store {
	return &Store{
		amps:      quantum.NewBasisVector(0),
		snapshots: NewSnapshotPool(quantum.Dim(0)),
	}
}

// Resize sets the register to n qubits and resets it to |0...0>.
// Resizing to the current size still resets.
func (s *Store) Resize(qubits int) {
	if qubits < 0 {
		qubits = 0
	}
	s.qubits = qubits
	s.amps = quantum.NewBasisVector(qubits)
	s.snapshots = NewSnapshotPool(len(s.amps))
}

func (s *Store) Qubits() int {
	return s.qubits
}

func (s *Store) Len() int {
	return len(s.amps)
}

// Snapshot returns an independent copy of the current amplitudes. The
// caller owns the copy indefinitely.
func (s *Store) Snapshot() quantum.Vector {
	return s.amps.Clone()
}

// Borrow returns a pooled copy of the current amplitudes for transient
// read-before-write use. Pair with Return; keep nothing pooled past
// the gate application that borrowed it.
func (s *Store) Borrow() quantum.Vector {
	return s.snapshots.GetAndCopy(s.amps)
}

// Return hands a borrowed snapshot back to the pool.
func (s *Store) Return(v quantum.Vector) {
	s.snapshots.Put(v)
}

// Amplitudes returns the live vector. Callers must treat it as
// read-only; use Replace to install a new state.
func (s *Store) Amplitudes() quantum.Vector {
	return s.amps
}

// Read copies the current amplitudes into out. The buffer length must
// match the state dimension exactly.
func (s *Store) Read(out quantum.Vector) error {
	if len(out) != len(s.amps) {
		return fmt.Errorf("%w: buffer %d, state %d", quantum.ErrSizeMismatch, len(out), len(s.amps))
	}
	copy(out, s.amps)
	return nil
}

// Replace installs v as the new state vector. The length must match
// the current dimension; the store takes ownership of v.
func (s *Store) Replace(v quantum.Vector) error {
	if len(v) != len(s.amps) {
		return fmt.Errorf("%w: replacement %d, state %d", quantum.ErrSizeMismatch, len(v), len(s.amps))
	}
	s.amps = v
	return nil
}
