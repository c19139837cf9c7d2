package gate

import (
	"math"

	"github.com/san-kum/qsim/internal/quantum"
)

var sqrt2Inv = complex(1/math.Sqrt2, 0)

// parallelThreshold is the dimension above which the butterfly runs
// on worker goroutines. Small registers are cheaper serial.
const parallelThreshold = 1 << 12

// Hadamard computes the transform of snapshot on wire t into a fresh
// vector, leaving the snapshot untouched. Each unordered index pair
// {i, i XOR 1<<t} is processed exactly once from its smaller member,
// so neither output of a pair observes the other's update and chunked
// parallel writes never overlap.
func Hadamard(snapshot quantum.Vector, t int) quantum.Vector {
	out := make(quantum.Vector, len(snapshot))
	bit := 1 << t

	butterfly := func(start, end int) {
		for i := start; i < end; i++ {
			j := i ^ bit
			if i < j {
				a, b := snapshot[i], snapshot[j]
				out[i] = (a + b) * sqrt2Inv
				out[j] = (a - b) * sqrt2Inv
			}
		}
	}

	if len(snapshot) <= parallelThreshold {
		butterfly(0, len(snapshot))
	} else {
		quantum.ParallelFor(len(snapshot), parallelThreshold, butterfly)
	}
	return out
}
