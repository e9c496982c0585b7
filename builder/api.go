// SPDX-License-Identifier: MIT
// Package: lvlca/builder
//
// api.go - the BuildGraph orchestrator and the Constructor contract.
// Same options, seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlca/core"
)

// Constructor applies a deterministic mutation to g using the resolved config.
// Constructors validate parameters before touching g and return sentinel
// errors wrapped with their name.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph from gopts, resolves bopts, and applies cons
// in order. The first constructor error is returned wrapped as "BuildGraph: %w";
// no partial cleanup is attempted.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
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
