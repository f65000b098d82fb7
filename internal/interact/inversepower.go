package interact

import "math"

// InversePower is a finite-range power-law repulsion: overlapping soft
// spheres feel E = eps/pow * (1 - r/r0)^pow for r < r0 and nothing beyond.
// The exponent is a runtime parameter.
type InversePower struct {
	eps   float64
	pow   float64
	radii []float64
}

func NewInversePower(eps, pow float64, radii []float64) *InversePower {
	r := make([]float64, len(radii))
	copy(r, radii)
	return &InversePower{eps: eps, pow: pow, radii: r}
}

func (p *InversePower) NumAtoms() int { return len(p.radii) }

func (p *InversePower) Energy(r2 float64, i, j int) float64 {
	r0 := p.radii[i] + p.radii[j]
	r := math.Sqrt(r2)
	if r >= r0 {
		return 0
	}
	return math.Pow(1-r/r0, p.pow) * p.eps / p.pow
}

func (p *InversePower) EnergyGradient(r2 float64, i, j int) (float64, float64) {
	r0 := p.radii[i] + p.radii[j]
	r := math.Sqrt(r2)
	if r >= r0 {
		return 0, 0
	}
	factor := math.Pow(1-r/r0, p.pow) * p.eps
	gij := -factor / ((r - r0) * r)
	return factor / p.pow, gij
}

func (p *InversePower) EnergyGradientHessian(r2 float64, i, j int) (float64, float64, float64) {
	r0 := p.radii[i] + p.radii[j]
	r := math.Sqrt(r2)
	if r >= r0 {
		return 0, 0, 0
	}
	factor := math.Pow(1-r/r0, p.pow) * p.eps
	gij := -factor / ((r - r0) * r)
	hij := factor * (p.pow - 1) / ((r - r0) * (r - r0))
	return factor / p.pow, gij, hij
}
