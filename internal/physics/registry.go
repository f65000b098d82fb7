package physics

import (
	"fmt"

	"github.com/jdf43/pele/internal/frozen"
	"github.com/jdf43/pele/internal/landscape"
)

// Spec names a concrete potential and carries every construction parameter
// a variant can need. Unused fields are ignored by the chosen model.
type Spec struct {
	Model     string  // "hswca" or "inversepower"
	NDim      int     // 2 or 3
	Eps       float64
	Sca       float64 // hswca shell thickness fraction
	Pow       float64 // inversepower exponent
	Radii     []float64
	Box       []float64 // periodic cell edges; empty means open boundary
	Pairs     []int     // flattened neighbor list; empty means all pairs
	Frozen    []int     // frozen coordinate indices; empty means none
	Reference landscape.Coords
}

// Build assembles the potential described by s.
func Build(s Spec) (landscape.Potential, error) {
	ndim := s.NDim
	if ndim == 0 {
		ndim = 3
	}
	if ndim != 2 && ndim != 3 {
		return nil, fmt.Errorf("physics: unsupported dimensionality %d", ndim)
	}

	var pot landscape.Potential
	var err error

	switch s.Model {
	case "hswca":
		pot, err = buildHSWCA(s, ndim)
	case "inversepower":
		pot, err = buildInversePower(s, ndim)
	default:
		return nil, fmt.Errorf("physics: unknown model: %s", s.Model)
	}
	if err != nil {
		return nil, err
	}

	if len(s.Frozen) > 0 {
		pot, err = frozenWrap(pot, s)
		if err != nil {
			return nil, err
		}
	}
	return pot, nil
}

func buildHSWCA(s Spec, ndim int) (landscape.Potential, error) {
	if len(s.Pairs) > 0 {
		if len(s.Box) > 0 {
			return nil, fmt.Errorf("physics: neighbor list with periodic box is not supported")
		}
		if ndim != 3 {
			return nil, fmt.Errorf("physics: neighbor list variant is 3D only")
		}
		return NewHSWCANeighborList(s.Eps, s.Sca, s.Radii, s.Pairs)
	}
	if len(s.Box) > 0 {
		if ndim == 2 {
			return NewHSWCAPeriodic2D(s.Eps, s.Sca, s.Radii, s.Box)
		}
		return NewHSWCAPeriodic(s.Eps, s.Sca, s.Radii, s.Box)
	}
	if ndim == 2 {
		return NewHSWCA2D(s.Eps, s.Sca, s.Radii), nil
	}
	return NewHSWCA(s.Eps, s.Sca, s.Radii), nil
}

func buildInversePower(s Spec, ndim int) (landscape.Potential, error) {
	if len(s.Box) > 0 {
		if ndim != 3 {
			return nil, fmt.Errorf("physics: periodic inverse power is 3D only")
		}
		return NewInversePowerPeriodic(s.Eps, s.Pow, s.Radii, s.Box)
	}
	if ndim == 2 {
		return NewInversePower2D(s.Eps, s.Pow, s.Radii), nil
	}
	return NewInversePower(s.Eps, s.Pow, s.Radii), nil
}

func frozenWrap(pot landscape.Potential, s Spec) (landscape.Potential, error) {
	return frozen.NewWrapper(pot, s.Reference, s.Frozen)
}

// Models lists the registered model names.
func Models() []string {
	return []string{"hswca", "inversepower"}
}
