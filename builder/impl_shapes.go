// SPDX-License-Identifier: MIT
// Package: lvlca/builder
//
// impl_shapes.go - fixed hierarchy shapes: Chain, Star, Tree, Cycle.
// Vertices are added in ascending index order, edges in ascending child order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlca/core"
)

const (
	methodChain = "Chain"
	methodStar  = "Star"
	methodTree  = "Tree"
	methodCycle = "Cycle"

	minChainNodes = 1
	minStarNodes  = 1
	minCycleNodes = 2
	minTreeArity  = 1
	minTreeLevels = 1

	// maxTreeVertices caps Tree so the size arithmetic cannot overflow.
	maxTreeVertices = 1 << 24
)

// Chain builds the path 0 → 1 → ... → n-1 (n ≥ 1); vertex n-1 is the deepest leaf.
func Chain(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainNodes, ErrTooFewVertices)
		}
		if err := requireDirected(methodChain, g); err != nil {
			return err
		}
		if err := addVertices(methodChain, g, cfg, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := link(methodChain, g, cfg, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds root 0 with children 1..n-1 (n ≥ 1).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := requireDirected(methodStar, g); err != nil {
			return err
		}
		if err := addVertices(methodStar, g, cfg, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := link(methodStar, g, cfg, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// TreeSize returns the vertex count of Tree(arity, levels), or -1 when the
// parameters are invalid or the tree would exceed the generator's cap.
func TreeSize(arity, levels int) int {
	if arity < minTreeArity || levels < minTreeLevels {
		return -1
	}
	total, width := 0, 1
	for l := 0; l < levels; l++ {
		total += width
		if total > maxTreeVertices {
			return -1
		}
		if width > maxTreeVertices/arity {
			width = maxTreeVertices + 1
		} else {
			width *= arity
		}
	}

	return total
}

// Tree builds the complete arity-ary tree with the given number of levels
// (levels == 1 is the root alone) in heap numbering: the children of i are
// arity*i+1 .. arity*i+arity. The leaves are the last arity^(levels-1) indexes.
func Tree(arity, levels int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if arity < minTreeArity {
			return fmt.Errorf("%s: arity=%d < min=%d: %w", methodTree, arity, minTreeArity, ErrTooFewVertices)
		}
		if levels < minTreeLevels {
			return fmt.Errorf("%s: levels=%d < min=%d: %w", methodTree, levels, minTreeLevels, ErrTooFewVertices)
		}
		n := TreeSize(arity, levels)
		if n < 0 {
			return fmt.Errorf("%s: %d-ary tree of %d levels exceeds %d vertices: %w",
				methodTree, arity, levels, maxTreeVertices, ErrBadSize)
		}
		if err := requireDirected(methodTree, g); err != nil {
			return err
		}
		if err := addVertices(methodTree, g, cfg, n); err != nil {
			return err
		}
		for child := 1; child < n; child++ {
			if err := link(methodTree, g, cfg, (child-1)/arity, child); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds the directed ring 0 → 1 → ... → n-1 → 0 (n ≥ 2).
// Every vertex of the ring lies on a cycle of parent edges.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := requireDirected(methodCycle, g); err != nil {
			return err
		}
		if err := addVertices(methodCycle, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := link(methodCycle, g, cfg, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
