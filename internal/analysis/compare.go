package analysis

import (
	"math"
	"math/cmplx"

	"github.com/san-kum/qsim/internal/quantum"
)

// Fidelity computes the squared overlap |<a|b>|^2 of two state vectors.
// Identical normalized states give 1, orthogonal states give 0.
// Vectors of different length have no overlap and give 0.
func Fidelity(a, b quantum.Vector) float64 {
	if len(a) != len(b) {
		return 0
	}
	var overlap complex128
	for i := range a {
		overlap += cmplx.Conj(a[i]) * b[i]
	}
	m := cmplx.Abs(overlap)
	return m * m
}

// MaxDeviation returns the largest per-amplitude distance between two
// state vectors. Vectors of different length deviate maximally and
// give +Inf.
func MaxDeviation(a, b quantum.Vector) float64 {
	if len(a) != len(b) {
		return math.Inf(1)
	}
	var max float64
	for i := range a {
		if d := cmplx.Abs(a[i] - b[i]); d > max {
			max = d
		}
	}
	return max
}
