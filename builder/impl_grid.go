// SPDX-License-Identifier: MIT
// Package: lvlcentrality/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Cell (r,c) is node r*cols + c (row-major); GridIDFn labels it "r,c".
//   - For each cell in row-major order emits the right neighbor edge, then
//     the down neighbor edge (4-neighborhood).
//
// Complexity: O(rows·cols) time, O(1) extra space.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(b *Blueprint, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		b.grow(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					b.edge(cfg, u, u+1)
				}
				if r+1 < rows {
					b.edge(cfg, u, u+cols)
				}
			}
		}

		return nil
	}
}
