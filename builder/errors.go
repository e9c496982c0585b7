// SPDX-License-Identifier: MIT
// Package: lvlca/builder
//
// errors.go - sentinel errors for the builder package.
// Callers branch with errors.Is; constructors attach context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadSize indicates a size that is negative or would overflow the generator.
var ErrBadSize = errors.New("builder: invalid size")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnsupportedGraphMode indicates the target graph is not directed.
// Hierarchies need one-way parent → child edges.
var ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

// ErrConstructFailed indicates a construction step failed (nil constructor,
// or a core insertion error such as a rejected parallel edge).
var ErrConstructFailed = errors.New("builder: construction failed")
