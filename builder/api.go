// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Factories are declared here and implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same options, seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return wrapped sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphwalk/core"
)

// Constructor adds one topology to g using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters before touching g and return sentinel errors.
//   - Key vertices via cfg.idFn on global indices (g.Len() onwards).
//   - Declare adjacency in a stable order, through link.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order. A constructor error is
// wrapped as "BuildGraph: %w" and returned immediately.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs cons against an existing graph, for callers that mix builder
// fixtures with hand-added vertices.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================

// Path builds a path P_n along the X axis (n ≥ 2).
// Complexity: O(n) vertices + O(n-1) links.
//func Path(n int) Constructor

// Cycle builds a cycle C_n on a circle (n ≥ 3).
// Complexity: O(n) vertices + O(n) links.
//func Cycle(n int) Constructor

// Star builds a hub (first vertex) with n-1 leaves around it (n ≥ 2).
// Complexity: O(n) vertices + O(n-1) links.
//func Star(n int) Constructor

// Wheel builds a hub plus a rim cycle of n-1 vertices (n ≥ 4).
// Complexity: O(n) vertices + O(2n-2) links.
//func Wheel(n int) Constructor

// Complete builds K_n on a circle (n ≥ 1).
// Complexity: O(n) vertices + O(n²) links.
//func Complete(n int) Constructor

// Grid builds a rows×cols 4-neighborhood lattice, row-major (rows, cols ≥ 1).
// Complexity: O(rows·cols) vertices and links.
//func Grid(rows, cols int) Constructor

// RandomSparse links each unordered pair with probability p (n ≥ 1).
// Requires an RNG for 0 < p < 1. Complexity: O(n²) trials.
//func RandomSparse(n int, p float64) Constructor
