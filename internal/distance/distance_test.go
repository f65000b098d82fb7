package distance

import (
	"math"
	"testing"

	"github.com/jdf43/pele/internal/landscape"
)

func TestCartesianDisplacement(t *testing.T) {
	var dr [3]float64
	Cartesian3{}.Rij(dr[:], []float64{1, 2, 3}, []float64{0.5, 0, -1})

	want := [3]float64{0.5, 2, 4}
	for k := range want {
		if dr[k] != want[k] {
			t.Errorf("component %d: got %f, want %f", k, dr[k], want[k])
		}
	}

	if got := SquaredNorm(dr[:]); math.Abs(got-20.25) > 1e-12 {
		t.Errorf("squared norm: got %f, want 20.25", got)
	}
}

func TestCartesian2Displacement(t *testing.T) {
	var dr [2]float64
	Cartesian2{}.Rij(dr[:], []float64{3, 1}, []float64{1, 2})
	if dr[0] != 2 || dr[1] != -1 {
		t.Errorf("got (%f, %f), want (2, -1)", dr[0], dr[1])
	}
}

func TestPeriodicMinimumImage(t *testing.T) {
	p, err := NewPeriodic3([]float64{10, 10, 10})
	if err != nil {
		t.Fatal(err)
	}

	var dr [3]float64
	p.Rij(dr[:], []float64{0.5, 0, 0}, []float64{9.45, 0, 0})

	// the image through the boundary is closer than the direct separation
	if math.Abs(dr[0]-1.05) > 1e-12 {
		t.Errorf("wrapped displacement: got %f, want 1.05", dr[0])
	}
	if dr[1] != 0 || dr[2] != 0 {
		t.Errorf("untouched components changed: %v", dr)
	}
}

func TestPeriodicNoWrapInsideHalfBox(t *testing.T) {
	p, err := NewPeriodic2([]float64{6, 8})
	if err != nil {
		t.Fatal(err)
	}

	var dr [2]float64
	p.Rij(dr[:], []float64{2, 3}, []float64{0, 0})
	if dr[0] != 2 || dr[1] != 3 {
		t.Errorf("got (%f, %f), want (2, 3)", dr[0], dr[1])
	}
}

func TestPeriodicBoxLengthValidation(t *testing.T) {
	if _, err := NewPeriodic3([]float64{1, 2}); err != landscape.ErrBoxLength {
		t.Errorf("expected ErrBoxLength, got %v", err)
	}
	if _, err := NewPeriodic2([]float64{1, 2, 3}); err != landscape.ErrBoxLength {
		t.Errorf("expected ErrBoxLength, got %v", err)
	}
}

func TestPeriodicMatchesCartesianForSmallSeparation(t *testing.T) {
	p, err := NewPeriodic3([]float64{20, 20, 20})
	if err != nil {
		t.Fatal(err)
	}

	xi := []float64{1.2, -0.7, 3.3}
	xj := []float64{0.9, 0.1, 2.8}

	var got, want [3]float64
	p.Rij(got[:], xi, xj)
	Cartesian3{}.Rij(want[:], xi, xj)

	for k := range want {
		if got[k] != want[k] {
			t.Errorf("component %d: periodic %f, cartesian %f", k, got[k], want[k])
		}
	}
}
