package pairwise

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/jdf43/pele/internal/landscape"
)

// Parallel evaluates an AllPairs potential with the pair set partitioned
// across workers. Each worker reduces into private buffers which are summed
// afterwards, so results differ from the serial engine only by
// floating-point summation order. Hessian evaluation stays serial; its
// per-worker buffers would dwarf the work saved.
type Parallel struct {
	inner   *AllPairs
	workers int
}

// NewParallel wraps inner with the given worker count. A count below one
// selects runtime.NumCPU.
func NewParallel(inner *AllPairs, workers int) *Parallel {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Parallel{inner: inner, workers: workers}
}

func (p *Parallel) Energy(x landscape.Coords) (float64, error) {
	n, err := p.inner.natoms(x)
	if err != nil {
		return 0, err
	}
	if p.workers == 1 || n < 2*p.workers {
		return p.inner.Energy(x)
	}

	partial := make([]float64, p.workers)
	var g errgroup.Group
	for w := 0; w < p.workers; w++ {
		g.Go(func() error {
			var buf [3]float64
			dr := buf[:p.inner.ndim]
			e := 0.0
			// stride over the outer index to balance the triangle
			for i := w; i < n; i += p.workers {
				for j := 0; j < i; j++ {
					e += p.inner.pairEnergy(x, i, j, dr)
				}
			}
			partial[w] = e
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	e := 0.0
	for _, v := range partial {
		e += v
	}
	return e, nil
}

func (p *Parallel) EnergyGradient(x landscape.Coords) (float64, landscape.Coords, error) {
	n, err := p.inner.natoms(x)
	if err != nil {
		return 0, nil, err
	}
	if p.workers == 1 || n < 2*p.workers {
		return p.inner.EnergyGradient(x)
	}

	partialE := make([]float64, p.workers)
	partialG := make([]landscape.Coords, p.workers)
	var g errgroup.Group
	for w := 0; w < p.workers; w++ {
		g.Go(func() error {
			var buf [3]float64
			dr := buf[:p.inner.ndim]
			grad := make(landscape.Coords, len(x))
			e := 0.0
			for i := w; i < n; i += p.workers {
				for j := 0; j < i; j++ {
					e += p.inner.pairGradient(x, grad, i, j, dr)
				}
			}
			partialE[w] = e
			partialG[w] = grad
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, nil, err
	}
	e := 0.0
	grad := make(landscape.Coords, len(x))
	for w := 0; w < p.workers; w++ {
		e += partialE[w]
		for i, v := range partialG[w] {
			grad[i] += v
		}
	}
	return e, grad, nil
}

func (p *Parallel) EnergyGradientHessian(x landscape.Coords) (float64, landscape.Coords, *landscape.Hessian, error) {
	return p.inner.EnergyGradientHessian(x)
}
