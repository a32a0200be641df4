// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertices at (i·spacing, 0) for i = 0..n-1.
//   - Links (i-1)—i for i = 1..n-1 in increasing order.
//
// Complexity: O(n) time, O(n) layout buffer.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphwalk/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		layout := make([]core.Position, n)
		for i := range layout {
			layout[i] = core.Position{X: float64(i) * cfg.spacing}
		}
		p, err := place(g, cfg, methodPath, layout)
		if err != nil {
			return err
		}

		// Emit links 0—1—2—...—(n-1) in stable order.
		for i := 1; i < n; i++ {
			if err = link(g, cfg, methodPath, p.id(i-1), p.id(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
