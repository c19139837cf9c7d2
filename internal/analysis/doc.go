// Package analysis provides state-vector comparison and measurement
// distribution helpers.
//
// The package includes tools for characterizing run output:
//
//   - [Fidelity]: squared overlap of two states
//   - [MaxDeviation]: largest per-amplitude distance
//   - [TotalVariation]: distance between probability distributions
//   - [ShannonEntropy]: entropy of the measurement distribution
//   - [WireOrdered]: device-order to wire-order display permutation
//
// # Path Comparison
//
// Hardware and software results for the same input should agree to
// single precision:
//
//	dev := analysis.MaxDeviation(software, hardware)
//	if dev > 1e-6 {
//	    // Paths diverged beyond the narrowing boundary
//	}
package analysis
