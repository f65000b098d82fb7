// Package distance provides the displacement metrics used by pairwise
// potentials: open-boundary cartesian separation and periodic minimum-image
// separation, in two and three dimensions. Dimensionality is fixed per type
// so the hot loop never branches on it.
package distance

import (
	"math"

	"github.com/jdf43/pele/internal/landscape"
)

// Metric computes the displacement vector between two atom positions.
// Implementations are deterministic and side-effect free.
type Metric interface {
	NDim() int
	// Rij writes xi - xj into dr, applying any boundary correction.
	// All three slices have length NDim.
	Rij(dr, xi, xj []float64)
}

// Cartesian2 is the open-boundary metric in two dimensions.
type Cartesian2 struct{}

func (Cartesian2) NDim() int { return 2 }

func (Cartesian2) Rij(dr, xi, xj []float64) {
	dr[0] = xi[0] - xj[0]
	dr[1] = xi[1] - xj[1]
}

// Cartesian3 is the open-boundary metric in three dimensions.
type Cartesian3 struct{}

func (Cartesian3) NDim() int { return 3 }

func (Cartesian3) Rij(dr, xi, xj []float64) {
	dr[0] = xi[0] - xj[0]
	dr[1] = xi[1] - xj[1]
	dr[2] = xi[2] - xj[2]
}

// Periodic2 wraps displacements into a rectangular 2D cell by the
// minimum-image convention. The box vector is immutable.
type Periodic2 struct {
	box [2]float64
}

func NewPeriodic2(box []float64) (Periodic2, error) {
	if len(box) != 2 {
		return Periodic2{}, landscape.ErrBoxLength
	}
	return Periodic2{box: [2]float64{box[0], box[1]}}, nil
}

func (p Periodic2) NDim() int { return 2 }

func (p Periodic2) Rij(dr, xi, xj []float64) {
	dr[0] = wrap(xi[0]-xj[0], p.box[0])
	dr[1] = wrap(xi[1]-xj[1], p.box[1])
}

// Box returns a copy of the cell edge lengths.
func (p Periodic2) Box() []float64 { return []float64{p.box[0], p.box[1]} }

// Periodic3 wraps displacements into a rectangular 3D cell by the
// minimum-image convention.
type Periodic3 struct {
	box [3]float64
}

func NewPeriodic3(box []float64) (Periodic3, error) {
	if len(box) != 3 {
		return Periodic3{}, landscape.ErrBoxLength
	}
	return Periodic3{box: [3]float64{box[0], box[1], box[2]}}, nil
}

func (p Periodic3) NDim() int { return 3 }

func (p Periodic3) Rij(dr, xi, xj []float64) {
	dr[0] = wrap(xi[0]-xj[0], p.box[0])
	dr[1] = wrap(xi[1]-xj[1], p.box[1])
	dr[2] = wrap(xi[2]-xj[2], p.box[2])
}

func (p Periodic3) Box() []float64 { return []float64{p.box[0], p.box[1], p.box[2]} }

// wrap maps d into (-L/2, L/2].
func wrap(d, L float64) float64 {
	return d - L*math.Round(d/L)
}

// SquaredNorm sums the squares of dr's components.
func SquaredNorm(dr []float64) float64 {
	sum := 0.0
	for _, v := range dr {
		sum += v * v
	}
	return sum
}
