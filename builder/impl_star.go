// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The first vertex is the hub at the center; leaves 1..n-1 sit on a
//     circle of radius spacing around it.
//   - Links hub—leaf in leaf order.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphwalk/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		layout := append([]core.Position{{}}, spokes(n-1, cfg.spacing)...)
		p, err := place(g, cfg, methodStar, layout)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = link(g, cfg, methodStar, p.id(0), p.id(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// spokes lays out k points on a circle of radius r around the origin.
func spokes(k int, r float64) []core.Position {
	pts := ring(k, 1)
	if k == 1 {
		return []core.Position{{Y: r}}
	}
	scale := r / pts[0].Distance(core.Position{})
	for i := range pts {
		pts[i] = core.Position{X: pts[i].X * scale, Y: pts[i].Y * scale}
	}

	return pts
}
