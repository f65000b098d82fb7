package physics

import (
	"testing"

	"github.com/jdf43/pele/internal/landscape"
)

func pairSpec(model string) Spec {
	return Spec{
		Model: model,
		NDim:  3,
		Eps:   1.0,
		Sca:   0.2,
		Pow:   2.5,
		Radii: []float64{0.5, 0.5},
	}
}

func TestBuildVariants(t *testing.T) {
	x := landscape.Coords{0, 0, 0, 1.05, 0, 0}

	cases := []struct {
		name string
		spec Spec
		dof  int
	}{
		{"hswca", pairSpec("hswca"), 6},
		{"inversepower", pairSpec("inversepower"), 6},
		{"hswca periodic", func() Spec {
			s := pairSpec("hswca")
			s.Box = []float64{10, 10, 10}
			return s
		}(), 6},
		{"hswca neighbor list", func() Spec {
			s := pairSpec("hswca")
			s.Pairs = []int{1, 0}
			return s
		}(), 6},
	}

	for _, tc := range cases {
		pot, err := Build(tc.spec)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		_, grad, err := pot.EnergyGradient(x)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if len(grad) != tc.dof {
			t.Errorf("%s: gradient length %d, want %d", tc.name, len(grad), tc.dof)
		}
	}
}

func TestBuildFrozen(t *testing.T) {
	s := pairSpec("hswca")
	s.Frozen = []int{0, 1, 2}
	s.Reference = landscape.Coords{0, 0, 0, 1.05, 0, 0}

	pot, err := Build(s)
	if err != nil {
		t.Fatal(err)
	}
	_, grad, err := pot.EnergyGradient(landscape.Coords{1.05, 0, 0})
	if err != nil {
		t.Fatal(err)
	}
	if len(grad) != 3 {
		t.Errorf("frozen gradient length: got %d, want 3", len(grad))
	}
}

func TestBuildRejectsUnknown(t *testing.T) {
	if _, err := Build(Spec{Model: "lj", NDim: 3}); err == nil {
		t.Error("unknown model accepted")
	}
	if _, err := Build(Spec{Model: "hswca", NDim: 4}); err == nil {
		t.Error("unsupported dimensionality accepted")
	}
}

func Test2DConstructors(t *testing.T) {
	pot := NewHSWCA2D(1.0, 0.2, []float64{0.5, 0.5})
	e, err := pot.Energy(landscape.Coords{0, 0, 1.5, 0})
	if err != nil {
		t.Fatal(err)
	}
	if e != 0 {
		t.Errorf("separated 2d pair: got %g, want 0", e)
	}
}
