package physics

import (
	"github.com/jdf43/pele/internal/distance"
	"github.com/jdf43/pele/internal/frozen"
	"github.com/jdf43/pele/internal/interact"
	"github.com/jdf43/pele/internal/landscape"
	"github.com/jdf43/pele/internal/pairwise"
)

// NewHSWCA builds the 3D open-boundary hard-sphere WCA potential.
func NewHSWCA(eps, sca float64, radii []float64) *pairwise.AllPairs {
	return pairwise.NewAllPairs(interact.NewHSWCA(eps, sca, radii), distance.Cartesian3{})
}

// NewHSWCA2D builds the 2D open-boundary hard-sphere WCA potential.
func NewHSWCA2D(eps, sca float64, radii []float64) *pairwise.AllPairs {
	return pairwise.NewAllPairs(interact.NewHSWCA(eps, sca, radii), distance.Cartesian2{})
}

// NewHSWCAPeriodic builds the 3D hard-sphere WCA potential in a rectangular
// periodic box.
func NewHSWCAPeriodic(eps, sca float64, radii, box []float64) (*pairwise.AllPairs, error) {
	dist, err := distance.NewPeriodic3(box)
	if err != nil {
		return nil, err
	}
	return pairwise.NewAllPairs(interact.NewHSWCA(eps, sca, radii), dist), nil
}

// NewHSWCAPeriodic2D builds the 2D periodic hard-sphere WCA potential.
func NewHSWCAPeriodic2D(eps, sca float64, radii, box []float64) (*pairwise.AllPairs, error) {
	dist, err := distance.NewPeriodic2(box)
	if err != nil {
		return nil, err
	}
	return pairwise.NewAllPairs(interact.NewHSWCA(eps, sca, radii), dist), nil
}

// NewHSWCAFrozen builds the 3D hard-sphere WCA potential with a subset of
// coordinates held fixed at reference values.
func NewHSWCAFrozen(eps, sca float64, radii []float64, reference landscape.Coords, frozenDOF []int) (*frozen.Wrapper, error) {
	return frozen.NewWrapper(NewHSWCA(eps, sca, radii), reference, frozenDOF)
}

// NewHSWCAPeriodicFrozen builds the periodic 3D variant with frozen
// coordinates.
func NewHSWCAPeriodicFrozen(eps, sca float64, radii, box []float64, reference landscape.Coords, frozenDOF []int) (*frozen.Wrapper, error) {
	inner, err := NewHSWCAPeriodic(eps, sca, radii, box)
	if err != nil {
		return nil, err
	}
	return frozen.NewWrapper(inner, reference, frozenDOF)
}

// NewHSWCANeighborList builds the 3D hard-sphere WCA potential summed over
// an explicit pair list.
func NewHSWCANeighborList(eps, sca float64, radii []float64, pairs []int) (*pairwise.NeighborList, error) {
	return pairwise.NewNeighborList(interact.NewHSWCA(eps, sca, radii), distance.Cartesian3{}, pairs)
}
