// SPDX-License-Identifier: MIT
// Package: lvlcentrality/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); K_1 is a single isolated node.
//   - Emits i → j for every i < j, i ascending then j ascending.
//
// Complexity: O(n²) time, O(1) extra space.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(b *Blueprint, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		b.grow(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				b.edge(cfg, i, j)
			}
		}

		return nil
	}
}
