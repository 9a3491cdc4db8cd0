// SPDX-License-Identifier: MIT
// Package: lvlcentrality/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2).
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   - Left side is 0..n1-1, right side is n1..n1+n2-1.
//   - Emits every left → right edge, left ascending then right ascending.
//
// Complexity: O(n1·n2) time, O(1) extra space.

package builder

import "fmt"

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartition            = 1
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(b *Blueprint, cfg builderConfig) error {
		if n1 < minPartition || n2 < minPartition {
			return fmt.Errorf("%s: n1=%d, n2=%d < min=%d: %w",
				methodCompleteBipartite, n1, n2, minPartition, ErrTooFewVertices)
		}
		b.grow(n1 + n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				b.edge(cfg, i, n1+j)
			}
		}

		return nil
	}
}
