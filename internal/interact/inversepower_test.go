package interact

import (
	"math"
	"testing"
)

func TestInversePowerEnergy(t *testing.T) {
	p := NewInversePower(1.0, 2.5, []float64{0.5, 0.5})

	// r0 = 1: overlap at r = 0.8
	r := 0.8
	got := p.Energy(r*r, 0, 1)
	want := math.Pow(1-r, 2.5) / 2.5
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("overlap energy: got %g, want %g", got, want)
	}

	// at and beyond contact
	if e := p.Energy(1.0, 0, 1); e != 0 {
		t.Errorf("contact energy: got %g, want 0", e)
	}
	if e := p.Energy(1.5*1.5, 0, 1); e != 0 {
		t.Errorf("separated energy: got %g, want 0", e)
	}
}

func TestInversePowerAccessorConsistency(t *testing.T) {
	p := NewInversePower(2.0, 3.0, []float64{0.4, 0.6})

	for _, r := range []float64{0.5, 0.8, 0.99, 1.0, 1.2} {
		r2 := r * r
		e0 := p.Energy(r2, 0, 1)
		e1, g1 := p.EnergyGradient(r2, 0, 1)
		e2, g2, _ := p.EnergyGradientHessian(r2, 0, 1)

		if e0 != e1 || e0 != e2 {
			t.Errorf("r=%g: energies disagree: %g %g %g", r, e0, e1, e2)
		}
		if g1 != g2 {
			t.Errorf("r=%g: gradients disagree: %g %g", r, g1, g2)
		}
	}
}

func TestInversePowerGradientScalar(t *testing.T) {
	p := NewInversePower(1.0, 2.5, []float64{0.5, 0.5})

	// analytic: gij = -(1/r)dE/dr with dE/dr = -(1/r0)(1-r/r0)^(pow-1)*eps
	r := 0.8
	_, gij := p.EnergyGradient(r*r, 0, 1)
	dEdr := -math.Pow(1-r, 1.5)
	want := -dEdr / r
	if math.Abs(gij-want) > 1e-12 {
		t.Errorf("gradient scalar: got %g, want %g", gij, want)
	}
	if gij <= 0 {
		t.Errorf("repulsive overlap must push apart: gij = %g", gij)
	}
}
