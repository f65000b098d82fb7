// Package interact defines the pairwise interaction contract and the
// concrete closed-form laws. A law converts a squared center-to-center
// separation plus the two atom indices (for per-atom parameter lookup) into
// an energy and derivative scalars.
package interact

// HardCoreOverlap is the finite sentinel returned for separations at or
// inside the hard core. It stands in for infinity while staying
// arithmetic-safe in downstream sums; callers detect infeasible
// configurations by thresholding against it.
const HardCoreOverlap = 1e50

// Law is the pairwise interaction contract.
//
// The gradient scalar gij is -(1/r)*dE/dr, so callers obtain the cartesian
// force contribution by multiplying gij with the displacement vector, with
// no extra division by r. The Hessian scalar hij is the matching
// second-derivative term, likewise expressed per unit r2. Downstream
// accumulation depends on this exact convention.
//
// The three accessors must agree on the energy for identical inputs.
type Law interface {
	Energy(r2 float64, i, j int) float64
	EnergyGradient(r2 float64, i, j int) (e, gij float64)
	EnergyGradientHessian(r2 float64, i, j int) (e, gij, hij float64)

	// NumAtoms reports the length of the per-atom parameter array.
	NumAtoms() int
}
