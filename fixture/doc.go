// Package fixture loads YAML graph fixtures: a graph plus the LCA queries
// expected to hold on it. The lca tests are driven by files in lca/testdata.
//
// Format:
//
//	name: diamond
//	directed: true        # optional, default true
//	vertices: ["x"]       # optional, isolated vertices
//	edges:
//	  - ["1", "2"]        # parent, child
//	queries:
//	  - {node1: "8", node2: "4", want: "4"}
//	  - {node1: "4", node2: "6", reason: disconnected}
//	  - {root: "r", node1: "1", node2: "5", want: "r"}
//	  - {node1: "6", node2: "7", policy: reachable, reason: cycle}
//
// A query with root is rooted, otherwise rootless. want implies reason
// found; without want, reason must name a not-found Reason. policy and
// tiebreak select lca.WithCyclePolicy and lca.WithTieBreak. Unknown keys
// are rejected.
package fixture
