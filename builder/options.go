// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex key generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed attaches a new RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithSpacing sets the layout distance between neighbors. Panics if d <= 0.
func WithSpacing(d float64) BuilderOption {
	if d <= 0 {
		panic("builder: WithSpacing(d<=0)")
	}
	return func(c *builderConfig) { c.spacing = d }
}

// WithUnnamed leaves vertex names blank so the walker assigns ordinal
// names ("Vertex 1", …) on initialization.
func WithUnnamed() BuilderOption {
	return func(c *builderConfig) { c.named = false }
}

// WithSymmetric selects whether links are declared from both endpoints
// (true, the default) or only from the endpoint that comes first in the
// constructor's link order.
func WithSymmetric(on bool) BuilderOption {
	return func(c *builderConfig) { c.symmetric = on }
}

// WithPriorityFn sets vertex priorities by global index. Panics on nil.
func WithPriorityFn(fn func(idx int) int) BuilderOption {
	if fn == nil {
		panic("builder: WithPriorityFn(nil)")
	}
	return func(c *builderConfig) { c.priorityFn = fn }
}
