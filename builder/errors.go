// SPDX-License-Identifier: MIT
// Package: lvlcentrality/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Constructors add context with fmt.Errorf("%s: ...: %w", method, ...).

package builder

import "errors"

var (
	// ErrTooFewVertices is returned when a size parameter is below the
	// minimum of the requested topology.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrInvalidProbability is returned when an edge probability lies
	// outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource is returned when a stochastic constructor runs
	// without WithSeed or WithRand.
	ErrNeedRandSource = errors.New("builder: random source required")

	// ErrConstructFailed is returned for a nil constructor or when the
	// assembled blueprint is rejected by core.NewGraph.
	ErrConstructFailed = errors.New("builder: construction failed")
)
