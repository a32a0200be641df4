// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices).
//   - The first vertex is the hub; vertices 1..n-1 form the rim.
//   - Links: rim cycle first (1—2, …, (n-1)—1), then spokes hub—rim.
//
// Complexity: O(n) vertices + O(2n-2) links.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphwalk/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		rim := n - 1
		r := ring(rim, cfg.spacing)
		layout := append([]core.Position{{}}, r...)
		p, err := place(g, cfg, methodWheel, layout)
		if err != nil {
			return err
		}

		for i := 0; i < rim; i++ {
			if err = link(g, cfg, methodWheel, p.id(1+i), p.id(1+(i+1)%rim)); err != nil {
				return err
			}
		}
		for i := 1; i <= rim; i++ {
			if err = link(g, cfg, methodWheel, p.id(0), p.id(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
