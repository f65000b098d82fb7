// Package landscape provides the core types for potential-energy surfaces.
//
// The package defines the fundamental vocabulary shared by every concrete
// potential:
//
//   - [Coords]: flat coordinate vector, ndim components per atom
//   - [Hessian]: dense second-derivative matrix
//   - [Potential]: the three evaluation calls consumed by optimizers
//
// # Example
//
//	pot := physics.NewHSWCA(1.0, 0.2, radii)
//	e, grad, _ := pot.EnergyGradient(x)
//
// # Thread Safety
//
// Potential instances hold only immutable construction-time parameters and
// allocate fresh output buffers per call, so concurrent evaluations against
// the same instance are safe.
package landscape
