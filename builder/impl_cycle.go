// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Vertices on a circle, clockwise from the top.
//   - Links i—(i+1) for i = 0..n-2, then the closing link (n-1)—0.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphwalk/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		p, err := place(g, cfg, methodCycle, ring(n, cfg.spacing))
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = link(g, cfg, methodCycle, p.id(i), p.id((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}
