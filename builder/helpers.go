package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlca/core"
)

// requireDirected rejects undirected targets, where parent and child would be indistinguishable.
func requireDirected(method string, g *core.Graph) error {
	if !g.Directed() {
		return fmt.Errorf("%s: graph must be directed: %w", method, ErrUnsupportedGraphMode)
	}

	return nil
}

// addVertices inserts vertices 0..n-1 through cfg.idFn. Existing vertices are kept.
func addVertices(method string, g *core.Graph, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// link adds the parent → child edge between indexes u and v with zero weight.
func link(method string, g *core.Graph, cfg builderConfig, u, v int) error {
	from, to := cfg.idFn(u), cfg.idFn(v)
	if _, err := g.AddEdge(from, to, 0); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %w: %w", method, from, to, ErrConstructFailed, err)
	}

	return nil
}
