package analysis

import "github.com/san-kum/qsim/internal/quantum"

// WireOrdered permutes a device-order state vector into wire order for
// display. The device stores amplitudes with index bit k addressing
// wire k, so wire 0 is the least significant bit. Host frameworks
// print basis labels with wire 0 leftmost, which makes it the most
// significant bit instead. The two conventions are related by
// reversing the index bits.
//
// A Hadamard on wire 0 of a two-qubit register reads
// (r, r, 0, 0) in device order and (r, 0, r, 0) in wire order.
func WireOrdered(v quantum.Vector, qubits int) quantum.Vector {
	if qubits <= 0 || len(v) != quantum.Dim(qubits) {
		return v.Clone()
	}
	out := make(quantum.Vector, len(v))
	for i := range v {
		out[bitReverse(i, qubits)] = v[i]
	}
	return out
}

// bitReverse reverses the low n bits of i.
func bitReverse(i, n int) int {
	var r int
	for k := 0; k < n; k++ {
		r = r<<1 | (i>>k)&1
	}
	return r
}
