package interact

import (
	"math"
	"testing"
)

// the worked example from two unit-diameter spheres: r0=1, coff=1.2
func testHSWCA() *HSWCA {
	return NewHSWCA(1.0, 0.2, []float64{0.5, 0.5})
}

func TestHSWCARegimes(t *testing.T) {
	w := testHSWCA()

	// inside the hard core
	if e := w.Energy(0.9*0.9, 0, 1); e != HardCoreOverlap {
		t.Errorf("core energy: got %g, want sentinel", e)
	}
	// exactly at the core boundary
	if e := w.Energy(1.0, 0, 1); e != HardCoreOverlap {
		t.Errorf("boundary energy: got %g, want sentinel", e)
	}
	// inside the shell
	e := w.Energy(1.05*1.05, 0, 1)
	if e <= 0 || e >= HardCoreOverlap || math.IsInf(e, 0) || math.IsNaN(e) {
		t.Errorf("shell energy not finite positive: %g", e)
	}
	// beyond the cutoff
	if e := w.Energy(1.5*1.5, 0, 1); e != 0 {
		t.Errorf("cutoff energy: got %g, want 0", e)
	}
}

func TestHSWCASentinelIndependentOfParams(t *testing.T) {
	for _, eps := range []float64{0.1, 1, 10} {
		for _, sca := range []float64{0.05, 0.2, 0.5} {
			w := NewHSWCA(eps, sca, []float64{0.5, 0.5})
			if e := w.Energy(1.0, 0, 1); e != HardCoreOverlap {
				t.Errorf("eps=%g sca=%g: boundary energy %g, want sentinel", eps, sca, e)
			}
		}
	}
}

func TestHSWCAAccessorConsistency(t *testing.T) {
	w := testHSWCA()

	for _, r := range []float64{0.9, 1.0, 1.05, 1.1, 1.19, 1.3} {
		r2 := r * r
		e0 := w.Energy(r2, 0, 1)
		e1, g1 := w.EnergyGradient(r2, 0, 1)
		e2, g2, _ := w.EnergyGradientHessian(r2, 0, 1)

		if e0 != e1 || e0 != e2 {
			t.Errorf("r=%g: energies disagree: %g %g %g", r, e0, e1, e2)
		}
		if g1 != g2 {
			t.Errorf("r=%g: gradients disagree: %g %g", r, g1, g2)
		}
	}
}

func TestHSWCAZeroBeyondCutoff(t *testing.T) {
	w := testHSWCA()

	e, g, h := w.EnergyGradientHessian(1.25*1.25, 0, 1)
	if e != 0 || g != 0 || h != 0 {
		t.Errorf("beyond cutoff: got e=%g g=%g h=%g, want zeros", e, g, h)
	}
}

func TestHSWCAVanishesAtCutoff(t *testing.T) {
	w := testHSWCA()

	// the closed form is constructed to reach zero energy and zero force
	// exactly at coff
	e, g := w.EnergyGradient(1.2*1.2, 0, 1)
	if math.Abs(e) > 1e-10 {
		t.Errorf("energy at coff: got %g, want ~0", e)
	}
	if math.Abs(g) > 1e-8 {
		t.Errorf("gradient at coff: got %g, want ~0", g)
	}
}

func TestHSWCAGradientSignInShell(t *testing.T) {
	w := testHSWCA()

	// repulsive region: gij = -(1/r)dE/dr must be positive
	_, g := w.EnergyGradient(1.05*1.05, 0, 1)
	if g <= 0 {
		t.Errorf("shell gradient scalar: got %g, want > 0", g)
	}
}

func TestHSWCAPerAtomRadii(t *testing.T) {
	w := NewHSWCA(1.0, 0.2, []float64{0.3, 0.7, 0.5})

	// r0 = 1.0 for pair (0,1): same regime boundaries as equal radii
	if e := w.Energy(0.99, 0, 1); e != HardCoreOverlap {
		t.Errorf("pair (0,1) inside core: got %g, want sentinel", e)
	}
	// r0 = 0.8 for pair (0,2): r=0.9 is outside that core
	if e := w.Energy(0.81, 0, 2); e == HardCoreOverlap {
		t.Error("pair (0,2) should be outside its hard core")
	}
}

func TestHSWCARadiiCopiedIn(t *testing.T) {
	radii := []float64{0.5, 0.5}
	w := NewHSWCA(1.0, 0.2, radii)
	before := w.Energy(1.05*1.05, 0, 1)

	radii[0] = 100
	after := w.Energy(1.05*1.05, 0, 1)
	if before != after {
		t.Error("mutating the caller's radii changed the interaction")
	}
}
