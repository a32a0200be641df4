// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn       = DefaultIDFn   ("0","1","2",...)
//   • rng        = nil           (deterministic unless seeded)
//   • spacing    = 4.0           (scene units between neighbors)
//   • named      = true          (names mirror keys)
//   • symmetric  = true          (links declared from both ends)
//   • priorityFn = nil           (every priority is 0)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex key strategy: global index -> key.
	idFn IDFn
	// RNG for stochastic constructors; nil means no randomness.
	rng *rand.Rand
	// Distance between adjacent vertices in the layout.
	spacing float64
	// When false, names are left blank for ordinal naming at initialization.
	named bool
	// When true, every link is declared from both endpoints.
	symmetric bool
	// Priority of the vertex at a global index; nil means 0.
	priorityFn func(int) int
}

// defaultSpacing keeps neighbors apart on a terminal canvas.
const defaultSpacing = 4.0

// newBuilderConfig returns the defaults with opts applied in order
// (later options override earlier ones).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:      DefaultIDFn,
		spacing:   defaultSpacing,
		named:     true,
		symmetric: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// priority returns the configured priority for global index i.
func (c builderConfig) priority(i int) int {
	if c.priorityFn == nil {
		return 0
	}

	return c.priorityFn(i)
}
