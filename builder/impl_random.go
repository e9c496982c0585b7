// SPDX-License-Identifier: MIT
// Package: lvlca/builder
//
// impl_random.go - seeded random hierarchies: RandomTree and RandomDAG.
//
// Every vertex i ≥ 1 draws its parents among 0..i-1, so the result is acyclic
// and vertex 0 is its only root. Draw order is fixed (i ascending), so a fixed
// seed reproduces the same graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlca/core"
)

const (
	methodRandomTree = "RandomTree"
	methodRandomDAG  = "RandomDAG"

	minRandomNodes = 1
)

// RandomTree builds a random rooted tree on n vertices (n ≥ 1).
// Requires WithSeed or WithRand.
func RandomTree(n int) Constructor {
	return randomHierarchy(methodRandomTree, n, 0)
}

// RandomDAG builds a random rooted DAG on n vertices (n ≥ 1): every vertex
// i ≥ 1 gets one tree parent plus up to extra further distinct parents, which
// create diamond merges. extra must be ≥ 0. Requires WithSeed or WithRand.
func RandomDAG(n, extra int) Constructor {
	return randomHierarchy(methodRandomDAG, n, extra)
}

func randomHierarchy(method string, n, extra int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minRandomNodes, ErrTooFewVertices)
		}
		if extra < 0 {
			return fmt.Errorf("%s: extra=%d is negative: %w", method, extra, ErrBadSize)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
		}
		if err := requireDirected(method, g); err != nil {
			return err
		}
		if err := addVertices(method, g, cfg, n); err != nil {
			return err
		}

		rng := cfg.rng
		parents := make(map[int]struct{}, extra+1)
		for i := 1; i < n; i++ {
			clear(parents)
			// one draw for the tree parent, then extra draws that may repeat and are skipped
			for k := 0; k <= extra; k++ {
				p := rng.Intn(i)
				if _, dup := parents[p]; dup {
					continue
				}
				parents[p] = struct{}{}
				if err := link(method, g, cfg, p, i); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
