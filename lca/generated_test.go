package lca_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlca/builder"
	"github.com/katalvlaran/lvlca/core"
	"github.com/katalvlaran/lvlca/lca"
)

var directed = []core.GraphOption{core.WithDirected(true)}

// TestGenerated_RandomTreesRootedMatchesRootless compares both modes on seeded random trees.
func TestGenerated_RandomTreesRootedMatchesRootless(t *testing.T) {
	ctx := context.Background()
	for seed := int64(1); seed <= 4; seed++ {
		g, err := builder.BuildGraph(directed, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomTree(30))
		require.NoError(t, err)
		e, err := lca.New[string](g)
		require.NoError(t, err)

		vs := g.Vertices()
		for _, a := range vs {
			for _, b := range vs {
				rootless, err := e.LCA(ctx, a, b, lca.Rootless[string]())
				require.NoError(t, err)
				rooted, err := e.LCA(ctx, a, b, lca.Rooted("0"))
				require.NoError(t, err)
				require.True(t, rootless.Found, "seed %d: %s/%s", seed, a, b)
				assert.Equal(t, rootless, rooted, "seed %d: %s/%s", seed, a, b)
			}
		}
	}
}

// TestGenerated_RandomDAGsLowestCommonAncestor checks the rootless answer on
// DAGs with diamond merges against brute force over the ancestor sets: the
// answer has no common ancestor below it and the smallest hop sum among those
// that do not either.
func TestGenerated_RandomDAGsLowestCommonAncestor(t *testing.T) {
	ctx := context.Background()
	for seed := int64(1); seed <= 4; seed++ {
		g, err := builder.BuildGraph(directed, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomDAG(25, 2))
		require.NoError(t, err)
		e, err := lca.New[string](g)
		require.NoError(t, err)
		sets := ancestorSets(t, e, g)

		vs := g.Vertices()
		for _, a := range vs {
			for _, b := range vs {
				ans, err := e.LCA(ctx, a, b, lca.Rootless[string]())
				require.NoError(t, err)
				// every vertex descends from 0, so some common ancestor exists
				require.True(t, ans.Found, "seed %d: %s/%s", seed, a, b)

				label := fmt.Sprintf("seed %d: %s/%s → %s", seed, a, b, ans.Node)
				d1, ok1 := sets[a].Cost(ans.Node)
				d2, ok2 := sets[b].Cost(ans.Node)
				require.True(t, ok1 && ok2, label)
				assert.Equal(t, d1, ans.Cost1, label)
				assert.Equal(t, d2, ans.Cost2, label)

				lowest := lowestCommon(sets, a, b)
				require.Contains(t, lowest, ans.Node, "%s has a common ancestor below it", label)
				for _, x := range lowest {
					c1, _ := sets[a].Cost(x)
					c2, _ := sets[b].Cost(x)
					assert.GreaterOrEqual(t, c1+c2, d1+d2, "%s beaten by %s", label, x)
				}
			}
		}
	}
}

// TestGenerated_ShortcutChain hangs a long chain under one side of a diamond,
// so the nearest common ancestor by hop sum is not the lowest one.
func TestGenerated_ShortcutChain(t *testing.T) {
	// 0 → 1 → ... → 6 and 0 → 6: 1 is an ancestor of 6 and the answer for (6, 1)
	g, err := builder.BuildGraph(directed, nil, builder.Chain(7))
	require.NoError(t, err)
	_, err = g.AddEdge("0", "6", 0)
	require.NoError(t, err)
	e, err := lca.New[string](g)
	require.NoError(t, err)
	sets := ancestorSets(t, e, g)

	for _, tb := range []lca.TieBreak{lca.TieBreakMinSum, lca.TieBreakSecond} {
		e, err := lca.New[string](g, lca.WithTieBreak(tb))
		require.NoError(t, err)
		ans, err := e.LCA(context.Background(), "6", "1", lca.Rootless[string]())
		require.NoError(t, err)
		assert.Equal(t, lca.Answer[string]{Node: "1", Found: true, Cost1: 5, Cost2: 0}, ans, tb.String())
		assert.Equal(t, []string{"1"}, lowestCommon(sets, "6", "1"))
	}
}

// TestGenerated_TreeWithCycleOnTop overlays a ring on the top of a tree.
func TestGenerated_TreeWithCycleOnTop(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true), core.WithMultiEdges()},
		nil,
		builder.Tree(2, 4), builder.Cycle(3),
	)
	require.NoError(t, err)
	ctx := context.Background()

	e, err := lca.New[string](g)
	require.NoError(t, err)
	for _, v := range []string{"0", "1", "2"} {
		on, err := e.HasCycleThrough(ctx, v)
		require.NoError(t, err)
		assert.True(t, on, v)
	}

	ans, err := e.LCA(ctx, "3", "4", lca.Rootless[string]())
	require.NoError(t, err)
	assert.Equal(t, lca.Answer[string]{Node: "1", Found: true, Cost1: 1, Cost2: 1}, ans)

	ans, err = e.LCA(ctx, "1", "5", lca.Rootless[string]())
	require.NoError(t, err)
	assert.Equal(t, lca.ReasonCycle, ans.Reason)

	strict, err := lca.New[string](g, lca.WithCyclePolicy(lca.CycleReachable))
	require.NoError(t, err)
	ans, err = strict.LCA(ctx, "3", "4", lca.Rootless[string]())
	require.NoError(t, err)
	assert.Equal(t, lca.ReasonCycle, ans.Reason)

	// leaves below the ring never walk forward into it
	ans, err = e.LCA(ctx, "7", "9", lca.Rooted("0"))
	require.NoError(t, err)
	assert.Equal(t, lca.Answer[string]{Node: "1", Found: true, Cost1: 2, Cost2: 2}, ans)

	// 1 walks forward 1 → 2 → 0
	ans, err = e.LCA(ctx, "1", "5", lca.Rooted("0"))
	require.NoError(t, err)
	assert.Equal(t, lca.ReasonCycleToRoot, ans.Reason)
}
