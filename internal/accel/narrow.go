package accel

import "github.com/san-kum/qsim/internal/quantum"

// Narrow converts simulator amplitudes to the accelerator's complex64
// representation. The conversion is lossy below float32 precision.
func Narrow(v quantum.Vector) []complex64 {
	out := make([]complex64, len(v))
	for i, a := range v {
		out[i] = complex64(a)
	}
	return out
}

// Widen converts accelerator output back to complex128 amplitudes.
// Precision lost by Narrow is not recovered.
func Widen(v []complex64) quantum.Vector {
	out := make(quantum.Vector, len(v))
	for i, a := range v {
		out[i] = complex128(a)
	}
	return out
}
