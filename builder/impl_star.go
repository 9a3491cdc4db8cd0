// SPDX-License-Identifier: MIT
// Package: lvlcentrality/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Node 0 is the center; leaves are 1..n-1.
//   - Emits 0 → i for i=1..n-1.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
	// StarCenter is the index of the hub in Star and Wheel.
	StarCenter = 0
)

// Star returns a Constructor that builds a star with n-1 leaves.
func Star(n int) Constructor {
	return func(b *Blueprint, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		b.grow(n)
		for i := 1; i < n; i++ {
			b.edge(cfg, StarCenter, i)
		}

		return nil
	}
}
