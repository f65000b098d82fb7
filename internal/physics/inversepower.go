package physics

import (
	"github.com/jdf43/pele/internal/distance"
	"github.com/jdf43/pele/internal/frozen"
	"github.com/jdf43/pele/internal/interact"
	"github.com/jdf43/pele/internal/landscape"
	"github.com/jdf43/pele/internal/pairwise"
)

// NewInversePower builds the 3D open-boundary inverse-power potential.
func NewInversePower(eps, pow float64, radii []float64) *pairwise.AllPairs {
	return pairwise.NewAllPairs(interact.NewInversePower(eps, pow, radii), distance.Cartesian3{})
}

// NewInversePower2D builds the 2D open-boundary inverse-power potential.
func NewInversePower2D(eps, pow float64, radii []float64) *pairwise.AllPairs {
	return pairwise.NewAllPairs(interact.NewInversePower(eps, pow, radii), distance.Cartesian2{})
}

// NewInversePowerPeriodic builds the 3D periodic inverse-power potential.
func NewInversePowerPeriodic(eps, pow float64, radii, box []float64) (*pairwise.AllPairs, error) {
	dist, err := distance.NewPeriodic3(box)
	if err != nil {
		return nil, err
	}
	return pairwise.NewAllPairs(interact.NewInversePower(eps, pow, radii), dist), nil
}

// NewInversePowerFrozen builds the 3D inverse-power potential with frozen
// coordinates.
func NewInversePowerFrozen(eps, pow float64, radii []float64, reference landscape.Coords, frozenDOF []int) (*frozen.Wrapper, error) {
	return frozen.NewWrapper(NewInversePower(eps, pow, radii), reference, frozenDOF)
}
