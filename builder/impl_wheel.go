// SPDX-License-Identifier: MIT
// Package: lvlcentrality/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices): hub plus a rim cycle of n-1 ≥ 3 nodes.
//   - Node 0 (StarCenter) is the hub; rim nodes are 1..n-1.
//   - Emits the rim cycle 1→2→…→(n-1)→1 first, then spokes 0 → i.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(b *Blueprint, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		b.grow(n)
		rim := n - 1
		for i := 0; i < rim; i++ {
			b.edge(cfg, 1+i, 1+(i+1)%rim)
		}
		for i := 1; i < n; i++ {
			b.edge(cfg, StarCenter, i)
		}

		return nil
	}
}
