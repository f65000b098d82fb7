// Package optim relaxes configurations on a potential-energy surface. It
// consumes only the three evaluation calls of landscape.Potential, so any
// composed potential works unchanged.
package optim

import (
	"context"
	"math"

	"github.com/jdf43/pele/internal/landscape"
)

// FIRE is the fast-inertial-relaxation-engine minimizer: damped dynamics
// with an adaptive timestep, accelerating while the velocity keeps pointing
// downhill and resetting when it turns uphill.
type FIRE struct {
	DtStart float64
	DtMax   float64
	MaxStep float64 // largest single-coordinate move per iteration
	Tol     float64 // convergence threshold on the gradient RMS
	MaxIter int
	NMin    int
	FInc    float64
	FDec    float64
	AStart  float64
	FA      float64

	// OnStep, when set, observes every iteration.
	OnStep func(iter int, energy, gradRMS float64)
}

// NewFIRE returns a minimizer with the conventional parameter set.
func NewFIRE() *FIRE {
	return &FIRE{
		DtStart: 0.01,
		DtMax:   0.1,
		MaxStep: 0.1,
		Tol:     1e-5,
		MaxIter: 10000,
		NMin:    5,
		FInc:    1.1,
		FDec:    0.5,
		AStart:  0.1,
		FA:      0.99,
	}
}

// Result reports the outcome of a relaxation.
type Result struct {
	Coords     landscape.Coords
	Energy     float64
	GradRMS    float64
	Iterations int
	Converged  bool
}

// Run minimizes pot starting from x0. It stops when the gradient RMS drops
// below Tol, MaxIter is exhausted, or ctx is canceled.
func (f *FIRE) Run(ctx context.Context, pot landscape.Potential, x0 landscape.Coords) (*Result, error) {
	x := x0.Clone()
	v := make(landscape.Coords, len(x))

	e, grad, err := pot.EnergyGradient(x)
	if err != nil {
		return nil, err
	}

	dt := f.DtStart
	a := f.AStart
	downhill := 0

	res := &Result{Coords: x, Energy: e, GradRMS: gradRMS(grad)}
	for iter := 1; iter <= f.MaxIter; iter++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		// P > 0 while the velocity points downhill
		p := 0.0
		for i := range v {
			p -= grad[i] * v[i]
		}
		if p > 0 {
			downhill++
			if downhill > f.NMin {
				dt = math.Min(dt*f.FInc, f.DtMax)
				a *= f.FA
			}
			vnorm := v.Norm()
			gnorm := grad.Norm()
			if gnorm > 0 {
				for i := range v {
					v[i] = (1-a)*v[i] - a*vnorm*grad[i]/gnorm
				}
			}
		} else {
			downhill = 0
			dt *= f.FDec
			a = f.AStart
			for i := range v {
				v[i] = 0
			}
		}

		for i := range v {
			v[i] -= grad[i] * dt
		}
		step := dt
		if vmax := v.MaxAbs(); vmax*dt > f.MaxStep {
			step = f.MaxStep / vmax
		}
		for i := range x {
			x[i] += v[i] * step
		}

		e, grad, err = pot.EnergyGradient(x)
		if err != nil {
			return nil, err
		}

		res.Energy = e
		res.GradRMS = gradRMS(grad)
		res.Iterations = iter
		if f.OnStep != nil {
			f.OnStep(iter, res.Energy, res.GradRMS)
		}
		if res.GradRMS < f.Tol {
			res.Converged = true
			break
		}
	}
	res.Coords = x
	return res, nil
}

func gradRMS(grad landscape.Coords) float64 {
	if len(grad) == 0 {
		return 0
	}
	return grad.Norm() / math.Sqrt(float64(len(grad)))
}
