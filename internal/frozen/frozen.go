// Package frozen reduces a potential to a mobile subset of its degrees of
// freedom. A Converter splices reduced coordinates into a full-length
// reference vector and projects gradients and Hessians back onto the mobile
// subspace; a Wrapper applies the conversion around any inner potential,
// which is reused unmodified.
package frozen

import (
	"sort"

	"github.com/jdf43/pele/internal/landscape"
)

// Converter maps between full-length and mobile-only coordinate vectors.
// The frozen index set, its mobile complement and the reference values for
// frozen slots are fixed at construction.
type Converter struct {
	reference landscape.Coords
	frozen    []int
	mobile    []int
}

// NewConverter validates the frozen degree-of-freedom indices against the
// reference vector, deduplicates and sorts them, and builds the ascending
// mobile complement.
func NewConverter(reference landscape.Coords, frozenDOF []int) (*Converter, error) {
	n := len(reference)
	seen := make(map[int]bool, len(frozenDOF))
	frozen := make([]int, 0, len(frozenDOF))
	for _, idx := range frozenDOF {
		if idx < 0 || idx >= n {
			return nil, landscape.ErrFrozenIndex
		}
		if !seen[idx] {
			seen[idx] = true
			frozen = append(frozen, idx)
		}
	}
	sort.Ints(frozen)

	mobile := make([]int, 0, n-len(frozen))
	for i := 0; i < n; i++ {
		if !seen[i] {
			mobile = append(mobile, i)
		}
	}

	return &Converter{
		reference: reference.Clone(),
		frozen:    frozen,
		mobile:    mobile,
	}, nil
}

// NumMobile reports the reduced dimensionality.
func (c *Converter) NumMobile() int { return len(c.mobile) }

// NumFull reports the full dimensionality.
func (c *Converter) NumFull() int { return len(c.reference) }

// ToFull expands reduced into a full-length vector: reduced values fill the
// mobile slots, reference values fill the frozen slots.
func (c *Converter) ToFull(reduced landscape.Coords) (landscape.Coords, error) {
	if len(reduced) != len(c.mobile) {
		return nil, landscape.ErrReducedLength
	}
	full := c.reference.Clone()
	for k, idx := range c.mobile {
		full[idx] = reduced[k]
	}
	return full, nil
}

// ToReduced reads the mobile entries of a full-length vector, in mobile
// index order. Together with ToFull it is an exact round trip on the
// mobile subspace.
func (c *Converter) ToReduced(full landscape.Coords) landscape.Coords {
	reduced := make(landscape.Coords, len(c.mobile))
	for k, idx := range c.mobile {
		reduced[k] = full[idx]
	}
	return reduced
}

// ReduceGradient drops the frozen entries of a full-length gradient.
func (c *Converter) ReduceGradient(full landscape.Coords) landscape.Coords {
	return c.ToReduced(full)
}

// ReduceHessian extracts the mobile-row, mobile-column submatrix.
func (c *Converter) ReduceHessian(full *landscape.Hessian) *landscape.Hessian {
	m := len(c.mobile)
	out := landscape.NewHessian(m)
	for r, ri := range c.mobile {
		for s, ci := range c.mobile {
			out.Set(r, s, full.At(ri, ci))
		}
	}
	return out
}

// Wrapper exposes an inner potential over reduced coordinates only.
type Wrapper struct {
	inner landscape.Potential
	conv  *Converter
}

// NewWrapper freezes the given degrees of freedom of inner, with reference
// supplying the values for the frozen slots.
func NewWrapper(inner landscape.Potential, reference landscape.Coords, frozenDOF []int) (*Wrapper, error) {
	conv, err := NewConverter(reference, frozenDOF)
	if err != nil {
		return nil, err
	}
	return &Wrapper{inner: inner, conv: conv}, nil
}

// Converter exposes the coordinate conversion for callers that need to
// translate between the two representations.
func (w *Wrapper) Converter() *Converter { return w.conv }

func (w *Wrapper) Energy(reduced landscape.Coords) (float64, error) {
	full, err := w.conv.ToFull(reduced)
	if err != nil {
		return 0, err
	}
	return w.inner.Energy(full)
}

func (w *Wrapper) EnergyGradient(reduced landscape.Coords) (float64, landscape.Coords, error) {
	full, err := w.conv.ToFull(reduced)
	if err != nil {
		return 0, nil, err
	}
	e, grad, err := w.inner.EnergyGradient(full)
	if err != nil {
		return 0, nil, err
	}
	return e, w.conv.ReduceGradient(grad), nil
}

func (w *Wrapper) EnergyGradientHessian(reduced landscape.Coords) (float64, landscape.Coords, *landscape.Hessian, error) {
	full, err := w.conv.ToFull(reduced)
	if err != nil {
		return 0, nil, nil, err
	}
	e, grad, hess, err := w.inner.EnergyGradientHessian(full)
	if err != nil {
		return 0, nil, nil, err
	}
	return e, w.conv.ReduceGradient(grad), w.conv.ReduceHessian(hess), nil
}
