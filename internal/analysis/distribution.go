package analysis

import "math"

// TotalVariation returns the total variation distance between two
// probability distributions, half the L1 distance. Distributions of
// different length are treated as disjoint and give 1.
func TotalVariation(p, q []float64) float64 {
	if len(p) != len(q) {
		return 1
	}
	var sum float64
	for i := range p {
		sum += math.Abs(p[i] - q[i])
	}
	return sum / 2
}

// ShannonEntropy returns the entropy of a measurement distribution in
// bits. A basis state gives 0, the uniform distribution over 2^n
// outcomes gives n.
func ShannonEntropy(p []float64) float64 {
	var h float64
	for _, pi := range p {
		if pi > 0 {
			h -= pi * math.Log2(pi)
		}
	}
	return h
}
