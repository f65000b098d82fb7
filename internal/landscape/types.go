package landscape

import "math"

// Coords is a flat coordinate vector: ndim contiguous components per atom.
type Coords []float64

func (c Coords) Clone() Coords {
	out := make(Coords, len(c))
	copy(out, c)
	return out
}

func (c Coords) IsValid() bool {
	for _, v := range c {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (c Coords) Norm() float64 {
	sum := 0.0
	for _, v := range c {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (c Coords) MaxAbs() float64 {
	max := 0.0
	for _, v := range c {
		if a := math.Abs(v); a > max {
			max = a
		}
	}
	return max
}

// Hessian is a dense row-major matrix of second derivatives. Its dimension
// equals the coordinate vector length it was built for.
type Hessian struct {
	n    int
	data []float64
}

func NewHessian(n int) *Hessian {
	return &Hessian{n: n, data: make([]float64, n*n)}
}

func (h *Hessian) Dim() int { return h.n }

func (h *Hessian) At(r, c int) float64 { return h.data[r*h.n+c] }

func (h *Hessian) Set(r, c int, v float64) { h.data[r*h.n+c] = v }

func (h *Hessian) Add(r, c int, v float64) { h.data[r*h.n+c] += v }

// Data exposes the underlying row-major buffer.
func (h *Hessian) Data() []float64 { return h.data }

// Potential is the contract consumed by optimizers and samplers. The three
// accessors must report identical energies for identical inputs; the
// derivative accessors are strict supersets of the energy computation.
type Potential interface {
	Energy(x Coords) (float64, error)
	EnergyGradient(x Coords) (float64, Coords, error)
	EnergyGradientHessian(x Coords) (float64, Coords, *Hessian, error)
}
