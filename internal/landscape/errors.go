package landscape

import "errors"

// Domain errors for potential evaluation.
var (
	// ErrCoordsLength indicates a coordinate vector whose length is not a
	// multiple of the potential's dimensionality.
	ErrCoordsLength = errors.New("landscape: coords length not a multiple of ndim")

	// ErrAtomCount indicates a coordinate vector inconsistent with the
	// per-atom parameter array held by the interaction law.
	ErrAtomCount = errors.New("landscape: atom count does not match parameter array")

	// ErrBoxLength indicates a periodic box vector of the wrong dimension.
	ErrBoxLength = errors.New("landscape: box vector length does not match ndim")

	// ErrNeighborIndex indicates a neighbor list entry outside the atom range.
	ErrNeighborIndex = errors.New("landscape: neighbor index out of range")

	// ErrNeighborListShape indicates a flattened pair list of odd length.
	ErrNeighborListShape = errors.New("landscape: neighbor list must hold (i,j) pairs")

	// ErrFrozenIndex indicates a frozen degree of freedom outside the
	// reference coordinate range.
	ErrFrozenIndex = errors.New("landscape: frozen index out of range")

	// ErrReducedLength indicates a reduced coordinate vector whose length
	// does not equal the mobile degree-of-freedom count.
	ErrReducedLength = errors.New("landscape: reduced coords length does not match mobile dof count")
)
