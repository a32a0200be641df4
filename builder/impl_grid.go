// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Vertices in row-major order at (c·spacing, -r·spacing), so row 0 is on top.
//   • For each (r,c): link Right (r,c+1) then Bottom (r+1,c) where present.
//
// Complexity: O(rows·cols) vertices and links.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphwalk/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		layout := make([]core.Position, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				layout = append(layout, core.Position{
					X: float64(c) * cfg.spacing,
					Y: -float64(r) * cfg.spacing,
				})
			}
		}
		p, err := place(g, cfg, methodGrid, layout)
		if err != nil {
			return err
		}

		at := func(r, c int) core.VertexID { return p.id(r*cols + c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err = link(g, cfg, methodGrid, at(r, c), at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = link(g, cfg, methodGrid, at(r, c), at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
