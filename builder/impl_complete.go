// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices). K_1 is a single isolated vertex.
//   - Vertices on a circle; links every pair i<j in lexicographic order.
//
// Complexity: O(n) vertices + O(n²) links.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphwalk/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		p, err := place(g, cfg, methodComplete, ring(n, cfg.spacing))
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = link(g, cfg, methodComplete, p.id(i), p.id(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
