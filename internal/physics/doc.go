// Package physics assembles the concrete potentials from their parts: an
// interaction law, a distance metric, a summation engine and optionally a
// frozen-coordinate wrapper. Constructors here are thin; all behavior lives
// in the composed packages.
package physics
