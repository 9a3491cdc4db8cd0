// SPDX-License-Identifier: MIT
// Package: lvlcentrality/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges (i-1) → i for i=1..n-1 in increasing order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n over nodes 0..n-1.
func Path(n int) Constructor {
	return func(b *Blueprint, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		b.grow(n)
		for i := 1; i < n; i++ {
			b.edge(cfg, i-1, i)
		}

		return nil
	}
}
