// Package pairwise implements the generic summation engines that turn an
// interaction law and a distance metric into a full potential. Two
// enumeration strategies exist: all unordered pairs, and an explicit
// neighbor index list. The per-pair accumulation is shared between them;
// the pair loop is the only difference.
package pairwise

import (
	"github.com/jdf43/pele/internal/distance"
	"github.com/jdf43/pele/internal/interact"
	"github.com/jdf43/pele/internal/landscape"
)

// summation holds the immutable collaborators and the shared per-pair
// accumulation logic. Engines embed it and supply only the pair loop.
type summation struct {
	law  interact.Law
	dist distance.Metric
	ndim int
}

// natoms validates x against the dimensionality and the law's parameter
// array and returns the atom count.
func (s *summation) natoms(x landscape.Coords) (int, error) {
	if len(x)%s.ndim != 0 {
		return 0, landscape.ErrCoordsLength
	}
	n := len(x) / s.ndim
	if n != s.law.NumAtoms() {
		return 0, landscape.ErrAtomCount
	}
	return n, nil
}

// pairEnergy adds the (i,j) contribution to the energy. dr is caller-owned
// scratch of length ndim.
func (s *summation) pairEnergy(x landscape.Coords, i, j int, dr []float64) float64 {
	s.dist.Rij(dr, x[i*s.ndim:(i+1)*s.ndim], x[j*s.ndim:(j+1)*s.ndim])
	return s.law.Energy(distance.SquaredNorm(dr), i, j)
}

// pairGradient adds the (i,j) contribution to grad and returns the pair
// energy. The force on i is minus the force on j.
func (s *summation) pairGradient(x landscape.Coords, grad landscape.Coords, i, j int, dr []float64) float64 {
	i1 := i * s.ndim
	j1 := j * s.ndim
	s.dist.Rij(dr, x[i1:i1+s.ndim], x[j1:j1+s.ndim])
	e, gij := s.law.EnergyGradient(distance.SquaredNorm(dr), i, j)
	for k := 0; k < s.ndim; k++ {
		grad[i1+k] -= gij * dr[k]
		grad[j1+k] += gij * dr[k]
	}
	return e
}

// pairHessian adds the (i,j) contribution to grad and hess and returns the
// pair energy. Positive terms accumulate on the diagonal blocks; the cross
// blocks carry their negation.
func (s *summation) pairHessian(x landscape.Coords, grad landscape.Coords, hess *landscape.Hessian, i, j int, dr []float64) float64 {
	i1 := i * s.ndim
	j1 := j * s.ndim
	s.dist.Rij(dr, x[i1:i1+s.ndim], x[j1:j1+s.ndim])
	r2 := distance.SquaredNorm(dr)
	e, gij, hij := s.law.EnergyGradientHessian(r2, i, j)
	for k := 0; k < s.ndim; k++ {
		grad[i1+k] -= gij * dr[k]
		grad[j1+k] += gij * dr[k]
	}
	for k := 0; k < s.ndim; k++ {
		diag := (hij+gij)*dr[k]*dr[k]/r2 - gij
		hess.Add(i1+k, i1+k, diag)
		hess.Add(j1+k, j1+k, diag)
		hess.Add(i1+k, j1+k, -diag)
		hess.Add(j1+k, i1+k, -diag)
		for l := k + 1; l < s.ndim; l++ {
			off := (hij + gij) * dr[k] * dr[l] / r2
			hess.Add(i1+k, i1+l, off)
			hess.Add(i1+l, i1+k, off)
			hess.Add(j1+k, j1+l, off)
			hess.Add(j1+l, j1+k, off)
			hess.Add(i1+k, j1+l, -off)
			hess.Add(i1+l, j1+k, -off)
			hess.Add(j1+k, i1+l, -off)
			hess.Add(j1+l, i1+k, -off)
		}
	}
	return e
}

// AllPairs sums the interaction over every unordered atom pair.
type AllPairs struct {
	summation
}

func NewAllPairs(law interact.Law, dist distance.Metric) *AllPairs {
	return &AllPairs{summation{law: law, dist: dist, ndim: dist.NDim()}}
}

// NDim reports the fixed spatial dimensionality.
func (p *AllPairs) NDim() int { return p.ndim }

func (p *AllPairs) Energy(x landscape.Coords) (float64, error) {
	n, err := p.natoms(x)
	if err != nil {
		return 0, err
	}
	var buf [3]float64
	dr := buf[:p.ndim]
	e := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			e += p.pairEnergy(x, i, j, dr)
		}
	}
	return e, nil
}

func (p *AllPairs) EnergyGradient(x landscape.Coords) (float64, landscape.Coords, error) {
	n, err := p.natoms(x)
	if err != nil {
		return 0, nil, err
	}
	var buf [3]float64
	dr := buf[:p.ndim]
	grad := make(landscape.Coords, len(x))
	e := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			e += p.pairGradient(x, grad, i, j, dr)
		}
	}
	return e, grad, nil
}

func (p *AllPairs) EnergyGradientHessian(x landscape.Coords) (float64, landscape.Coords, *landscape.Hessian, error) {
	n, err := p.natoms(x)
	if err != nil {
		return 0, nil, nil, err
	}
	var buf [3]float64
	dr := buf[:p.ndim]
	grad := make(landscape.Coords, len(x))
	hess := landscape.NewHessian(len(x))
	e := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			e += p.pairHessian(x, grad, hess, i, j, dr)
		}
	}
	return e, grad, hess, nil
}

// NeighborList sums the interaction over an externally supplied pair set.
// The list is flattened as alternating (i,j) indices and is immutable for
// the lifetime of the potential. List construction and refresh happen
// elsewhere.
type NeighborList struct {
	summation
	pairs []int
}

func NewNeighborList(law interact.Law, dist distance.Metric, pairs []int) (*NeighborList, error) {
	if len(pairs)%2 != 0 {
		return nil, landscape.ErrNeighborListShape
	}
	n := law.NumAtoms()
	for _, idx := range pairs {
		if idx < 0 || idx >= n {
			return nil, landscape.ErrNeighborIndex
		}
	}
	ps := make([]int, len(pairs))
	copy(ps, pairs)
	return &NeighborList{
		summation: summation{law: law, dist: dist, ndim: dist.NDim()},
		pairs:     ps,
	}, nil
}

// NumPairs reports the number of (i,j) entries in the list.
func (p *NeighborList) NumPairs() int { return len(p.pairs) / 2 }

func (p *NeighborList) Energy(x landscape.Coords) (float64, error) {
	if _, err := p.natoms(x); err != nil {
		return 0, err
	}
	var buf [3]float64
	dr := buf[:p.ndim]
	e := 0.0
	for k := 0; k < len(p.pairs); k += 2 {
		e += p.pairEnergy(x, p.pairs[k], p.pairs[k+1], dr)
	}
	return e, nil
}

func (p *NeighborList) EnergyGradient(x landscape.Coords) (float64, landscape.Coords, error) {
	if _, err := p.natoms(x); err != nil {
		return 0, nil, err
	}
	var buf [3]float64
	dr := buf[:p.ndim]
	grad := make(landscape.Coords, len(x))
	e := 0.0
	for k := 0; k < len(p.pairs); k += 2 {
		e += p.pairGradient(x, grad, p.pairs[k], p.pairs[k+1], dr)
	}
	return e, grad, nil
}

func (p *NeighborList) EnergyGradientHessian(x landscape.Coords) (float64, landscape.Coords, *landscape.Hessian, error) {
	if _, err := p.natoms(x); err != nil {
		return 0, nil, nil, err
	}
	var buf [3]float64
	dr := buf[:p.ndim]
	grad := make(landscape.Coords, len(x))
	hess := landscape.NewHessian(len(x))
	e := 0.0
	for k := 0; k < len(p.pairs); k += 2 {
		e += p.pairHessian(x, grad, hess, p.pairs[k], p.pairs[k+1], dr)
	}
	return e, grad, hess, nil
}
