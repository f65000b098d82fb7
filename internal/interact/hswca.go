package interact

import "math"

// HSWCA is the hard-sphere Weeks-Chandler-Andersen interaction: an infinite
// hard core of radius radii[i]+radii[j] surrounded by a soft WCA shell of
// relative thickness sca, truncated smoothly at r0*(1+sca).
type HSWCA struct {
	eps   float64
	sca   float64
	prfac float64
	radii []float64
}

// NewHSWCA builds the interaction with well depth eps, shell thickness
// fraction sca and per-atom hard-core radii. The radii are copied in and
// never mutated afterwards.
func NewHSWCA(eps, sca float64, radii []float64) *HSWCA {
	r := make([]float64, len(radii))
	copy(r, radii)
	return &HSWCA{
		eps:   eps,
		sca:   sca,
		prfac: math.Pow(2*sca+sca*sca, 3) / math.Sqrt2,
		radii: r,
	}
}

func (w *HSWCA) NumAtoms() int { return len(w.radii) }

// Energy evaluates the pair energy from the squared separation r2.
func (w *HSWCA) Energy(r2 float64, i, j int) float64 {
	r0 := w.radii[i] + w.radii[j]
	r02 := r0 * r0
	coff := r0 * (1 + w.sca)

	if r2 <= r02 {
		return HardCoreOverlap
	}
	if r2 > coff*coff {
		return 0
	}

	// dr is a difference of squares, not of distances
	dr := r2 - r02
	ir2 := 1.0 / (dr * dr)
	ir6 := ir2 * ir2 * ir2
	ir12 := ir6 * ir6
	c3 := w.prfac * r02 * r02 * r02
	c6 := c3 * c3
	c12 := c6 * c6
	return 4*w.eps*(-c6*ir6+c12*ir12) + w.eps
}

// EnergyGradient evaluates the pair energy and the gradient scalar gij.
func (w *HSWCA) EnergyGradient(r2 float64, i, j int) (float64, float64) {
	r0 := w.radii[i] + w.radii[j]
	r02 := r0 * r0
	coff := r0 * (1 + w.sca)

	if r2 <= r02 {
		return HardCoreOverlap, HardCoreOverlap
	}
	if r2 > coff*coff {
		return 0, 0
	}

	dr := r2 - r02
	ir2 := 1.0 / (dr * dr)
	ir6 := ir2 * ir2 * ir2
	ir12 := ir6 * ir6
	c3 := w.prfac * r02 * r02 * r02
	c6 := c3 * c3
	c12 := c6 * c6
	e := 4*w.eps*(-c6*ir6+c12*ir12) + w.eps
	// extra 1/dr because the powers must be 7 and 13
	gij := w.eps * (-48*c6*ir6 + 96*c12*ir12) / dr
	return e, gij
}

// EnergyGradientHessian evaluates the pair energy and both derivative
// scalars.
func (w *HSWCA) EnergyGradientHessian(r2 float64, i, j int) (float64, float64, float64) {
	r0 := w.radii[i] + w.radii[j]
	r02 := r0 * r0
	coff := r0 * (1 + w.sca)

	if r2 <= r02 {
		return HardCoreOverlap, HardCoreOverlap, HardCoreOverlap
	}
	if r2 > coff*coff {
		return 0, 0, 0
	}

	dr := r2 - r02
	ir2 := 1.0 / (dr * dr)
	ir6 := ir2 * ir2 * ir2
	ir12 := ir6 * ir6
	c3 := w.prfac * r02 * r02 * r02
	c6 := c3 * c3
	c12 := c6 * c6
	e := 4*w.eps*(-c6*ir6+c12*ir12) + w.eps
	gij := w.eps * (-48*c6*ir6 + 96*c12*ir12) / dr
	hij := -gij + w.eps*(-672*c6*ir6+2496*c12*ir12)*r2*ir2
	return e, gij, hij
}
