package lca_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlca/core"
	"github.com/katalvlaran/lvlca/fixture"
	"github.com/katalvlaran/lvlca/lca"
)

// loadGraph builds the core.Graph of testdata/<name>.yaml.
func loadGraph(t testing.TB, name string) *core.Graph {
	t.Helper()
	f, err := fixture.Load(filepath.Join("testdata", name+".yaml"))
	require.NoError(t, err)
	g, err := f.Graph()
	require.NoError(t, err)

	return g
}

// ancestorSets collects Ancestors for every vertex of g.
func ancestorSets(t testing.TB, e *lca.Engine[string], g *core.Graph) map[string]lca.AncestorSet[string] {
	t.Helper()
	sets := make(map[string]lca.AncestorSet[string])
	for _, v := range g.Vertices() {
		s, err := e.Ancestors(context.Background(), v)
		require.NoError(t, err)
		sets[v] = s
	}

	return sets
}

// lowestCommon lists the common ancestors of a and b with no other common
// ancestor strictly below them. Nodes sharing a cycle are not below each other.
func lowestCommon(sets map[string]lca.AncestorSet[string], a, b string) []string {
	var common []string
	for _, r := range sets[a].Records() {
		if sets[b].Contains(r.Node) {
			common = append(common, r.Node)
		}
	}

	var out []string
	for _, x := range common {
		lowest := true
		for _, y := range common {
			if y != x && sets[y].Contains(x) && !sets[x].Contains(y) {
				lowest = false
				break
			}
		}
		if lowest {
			out = append(out, x)
		}
	}

	return out
}

// intGraph is a map-backed host graph over int nodes that keeps duplicates.
type intGraph struct {
	down map[int][]int
	up   map[int][]int
}

func newIntGraph(edges ...[2]int) intGraph {
	g := intGraph{down: map[int][]int{}, up: map[int][]int{}}
	for _, e := range edges {
		g.down[e[0]] = append(g.down[e[0]], e[1])
		g.up[e[1]] = append(g.up[e[1]], e[0])
	}

	return g
}

func (g intGraph) Successors(n int) []int   { return g.down[n] }
func (g intGraph) Predecessors(n int) []int { return g.up[n] }
