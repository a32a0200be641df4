// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Constructors attach context with %w: "<Method>: <detail>: <sentinel>".

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (use WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a vertex or link could not be added, or
// that BuildGraph received a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownShape is returned by Shape for an unrecognized name.
var ErrUnknownShape = errors.New("builder: unknown shape")
