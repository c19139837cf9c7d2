package state

import "github.com/san-kum/qsim/internal/quantum"

// Lifecycle manages qubit allocation and release against a store.
// Handles are dense wire indices; see [quantum.QubitHandle].
type Lifecycle struct {
	store *Store
}

func NewLifecycle(store *Store) *Lifecycle {
	return &Lifecycle{store: store}
}

func (l *Lifecycle) Count() int {
	return l.store.Qubits()
}

// AllocateOne grows the register by one qubit and resets it.
func (l *Lifecycle) AllocateOne() quantum.QubitHandle {
	n := l.store.Qubits()
	l.store.Resize(n + 1)
	return quantum.QubitHandle(n)
}

// AllocateMany grows the register by n qubits and resets it. A request
// for zero qubits returns an empty handle list and leaves the register
// untouched.
func (l *Lifecycle) AllocateMany(n int) []quantum.QubitHandle {
	if n <= 0 {
		return []quantum.QubitHandle{}
	}
	base := l.store.Qubits()
	l.store.Resize(base + n)
	handles := make([]quantum.QubitHandle, n)
	for i := range handles {
		handles[i] = quantum.QubitHandle(base + i)
	}
	return handles
}

// ReleaseOne shrinks the register by one qubit and resets the rest to
// |0...0>. The handle identifies the request, not a position: since
// every release resets the register, dropping the highest wire is
// indistinguishable from dropping any other. Releasing with an empty
// register is a no-op.
func (l *Lifecycle) ReleaseOne(h quantum.QubitHandle) {
	n := l.store.Qubits()
	if n == 0 {
		return
	}
	l.store.Resize(n - 1)
}

// ReleaseAll empties the register. A no-op when already empty.
func (l *Lifecycle) ReleaseAll() {
	if l.store.Qubits() == 0 {
		return
	}
	l.store.Resize(0)
}
