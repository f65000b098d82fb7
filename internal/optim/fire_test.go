package optim

import (
	"context"
	"testing"

	"github.com/jdf43/pele/internal/distance"
	"github.com/jdf43/pele/internal/interact"
	"github.com/jdf43/pele/internal/landscape"
	"github.com/jdf43/pele/internal/pairwise"
)

func TestFIRERelaxesOverlappingSpheres(t *testing.T) {
	pot := pairwise.NewAllPairs(
		interact.NewInversePower(1.0, 2.5, []float64{0.5, 0.5}),
		distance.Cartesian3{})

	x0 := landscape.Coords{0, 0, 0, 0.8, 0, 0}
	e0, err := pot.Energy(x0)
	if err != nil {
		t.Fatal(err)
	}

	fire := NewFIRE()
	res, err := fire.Run(context.Background(), pot, x0)
	if err != nil {
		t.Fatal(err)
	}

	if !res.Converged {
		t.Error("expected convergence")
	}
	if res.Energy >= e0 {
		t.Errorf("energy did not decrease: %g -> %g", e0, res.Energy)
	}
	if res.Energy > 1e-7 {
		t.Errorf("residual energy too large: %g", res.Energy)
	}
	// the caller's start point is untouched
	if x0[3] != 0.8 {
		t.Error("minimizer mutated the input coords")
	}
}

func TestFIREPushesWCAPairBeyondCutoff(t *testing.T) {
	pot := pairwise.NewAllPairs(
		interact.NewHSWCA(1.0, 0.2, []float64{0.5, 0.5}),
		distance.Cartesian3{})

	res, err := NewFIRE().Run(context.Background(), pot, landscape.Coords{0, 0, 0, 1.05, 0, 0})
	if err != nil {
		t.Fatal(err)
	}

	if !res.Converged {
		t.Error("expected convergence")
	}
	// the gradient vanishes continuously at the cutoff, so convergence can
	// land a hair inside it with a negligible residual
	if res.Energy > 1e-7 {
		t.Errorf("relaxed WCA pair energy: got %g, want ~0", res.Energy)
	}

	dx := res.Coords[3] - res.Coords[0]
	if dx < 1.19 {
		t.Errorf("pair did not separate toward the cutoff: dx = %g", dx)
	}
}

func TestFIREObserver(t *testing.T) {
	pot := pairwise.NewAllPairs(
		interact.NewInversePower(1.0, 2.5, []float64{0.5, 0.5}),
		distance.Cartesian3{})

	fire := NewFIRE()
	calls := 0
	lastIter := 0
	fire.OnStep = func(iter int, energy, gradRMS float64) {
		calls++
		lastIter = iter
	}

	res, err := fire.Run(context.Background(), pot, landscape.Coords{0, 0, 0, 0.8, 0, 0})
	if err != nil {
		t.Fatal(err)
	}
	if calls == 0 {
		t.Fatal("observer never called")
	}
	if lastIter != res.Iterations {
		t.Errorf("last observed iter %d, result iter %d", lastIter, res.Iterations)
	}
}

func TestFIRECancellation(t *testing.T) {
	pot := pairwise.NewAllPairs(
		interact.NewInversePower(1.0, 2.5, []float64{0.5, 0.5}),
		distance.Cartesian3{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFIRE().Run(ctx, pot, landscape.Coords{0, 0, 0, 0.8, 0, 0})
	if err == nil {
		t.Error("expected a cancellation error")
	}
}
