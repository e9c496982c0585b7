package lca

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors. Graph-shape problems are never errors; see Reason.
var (
	// ErrGraphNil is returned when New or Find receives a nil graph.
	ErrGraphNil = errors.New("lca: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("lca: invalid option supplied")

	// ErrVisitBudgetExceeded is returned when a walk expands more nodes than
	// WithMaxVisits allows. The answer is unknown, so it is not "not found".
	ErrVisitBudgetExceeded = errors.New("lca: visit budget exceeded")
)

// Graph is the read-only capability the engine needs from a host graph.
// Successors walks parent → child, Predecessors walks child → parent.
// Unknown nodes must yield no neighbors. Duplicates are tolerated.
type Graph[N cmp.Ordered] interface {
	Successors(n N) []N
	Predecessors(n N) []N
}

type modeKind uint8

const (
	modeRootless modeKind = iota
	modeRooted
)

// Mode selects how a query is resolved. Build one with Rootless or Rooted.
// The zero value is Rootless.
type Mode[N cmp.Ordered] struct {
	kind modeKind
	root N
}

// Rootless resolves queries by comparing ancestor sets with hop costs.
func Rootless[N cmp.Ordered]() Mode[N] {
	return Mode[N]{kind: modeRootless}
}

// Rooted resolves queries by comparing shortest forward paths from root.
func Rooted[N cmp.Ordered](root N) Mode[N] {
	return Mode[N]{kind: modeRooted, root: root}
}

// Root returns the root of a Rooted mode; ok is false for Rootless.
func (m Mode[N]) Root() (root N, ok bool) {
	return m.root, m.kind == modeRooted
}

// String returns "rootless" or "rooted", the value used in metric labels.
func (m Mode[N]) String() string {
	if m.kind == modeRooted {
		return "rooted"
	}
	return "rootless"
}

// Reason explains an Answer.
type Reason uint8

const (
	// ReasonFound marks a successful answer.
	ReasonFound Reason = iota
	// ReasonDisconnected: the ancestor sets share no node.
	ReasonDisconnected
	// ReasonCycle: a queried node was rejected by the cycle policy.
	ReasonCycle
	// ReasonUnreachable: a queried node cannot be reached from the root.
	ReasonUnreachable
	// ReasonCycleToRoot: a queried node reachable from the root walks forward back to it.
	ReasonCycleToRoot
)

var reasonNames = [...]string{
	ReasonFound:        "found",
	ReasonDisconnected: "disconnected",
	ReasonCycle:        "cycle",
	ReasonUnreachable:  "unreachable",
	ReasonCycleToRoot:  "cycle_to_root",
}

func (r Reason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return "unknown"
}

// Answer is the outcome of one query. Node is meaningful only when Found.
// Cost1 and Cost2 are the hops from node1 and node2 up to Node.
type Answer[N cmp.Ordered] struct {
	Node   N
	Found  bool
	Reason Reason
	Cost1  int
	Cost2  int
}

// PathRecord is a node paired with the hop cost of reaching it.
type PathRecord[N cmp.Ordered] struct {
	Node N
	Cost int
}

// AncestorSet maps every node backward-reachable from a start node,
// the start included at cost 0, to its minimal hop cost.
type AncestorSet[N cmp.Ordered] struct {
	costs map[N]int
}

// Contains reports whether n is an ancestor (or the start itself).
func (s AncestorSet[N]) Contains(n N) bool {
	_, ok := s.costs[n]
	return ok
}

// Cost returns the minimal hop cost of n.
func (s AncestorSet[N]) Cost(n N) (int, bool) {
	c, ok := s.costs[n]
	return c, ok
}

// Len returns the number of recorded nodes.
func (s AncestorSet[N]) Len() int {
	return len(s.costs)
}

// Records returns the set ordered by cost, then node.
func (s AncestorSet[N]) Records() []PathRecord[N] {
	out := make([]PathRecord[N], 0, len(s.costs))
	for n, c := range s.costs {
		out = append(out, PathRecord[N]{Node: n, Cost: c})
	}
	slices.SortFunc(out, func(a, b PathRecord[N]) int {
		if a.Cost != b.Cost {
			return cmp.Compare(a.Cost, b.Cost)
		}
		return cmp.Compare(a.Node, b.Node)
	})

	return out
}

// Nodes returns the recorded nodes in Records order.
func (s AncestorSet[N]) Nodes() []N {
	recs := s.Records()
	out := make([]N, len(recs))
	for i, r := range recs {
		out[i] = r.Node
	}

	return out
}

// CyclePolicy decides which cycles make a rootless query fail.
type CyclePolicy uint8

const (
	// CycleThrough rejects a queried node that itself lies on a cycle.
	CycleThrough CyclePolicy = iota
	// CycleReachable rejects a queried node with any cycle among its ancestors.
	CycleReachable
)

func (p CyclePolicy) String() string {
	switch p {
	case CycleThrough:
		return "through"
	case CycleReachable:
		return "reachable"
	default:
		return "unknown"
	}
}

// TieBreak orders the common ancestors of a rootless query.
type TieBreak uint8

const (
	// TieBreakMinSum picks minimal cost1+cost2, then minimal max(cost1, cost2),
	// then the smallest node. Symmetric in its arguments.
	TieBreakMinSum TieBreak = iota
	// TieBreakSecond picks minimal cost2, then minimal cost1, then the smallest node.
	TieBreakSecond
)

func (t TieBreak) String() string {
	switch t {
	case TieBreakMinSum:
		return "min_sum"
	case TieBreakSecond:
		return "second"
	default:
		return "unknown"
	}
}

// Query is one entry of a Batch.
type Query[N cmp.Ordered] struct {
	Node1 N
	Node2 N
	Mode  Mode[N]
}

// Result pairs a batched Query with its Answer or error.
type Result[N cmp.Ordered] struct {
	Query  Query[N]
	Answer Answer[N]
	Err    error
}

// ParseReason maps a Reason name ("found", "cycle", ...) back to its value.
func ParseReason(s string) (Reason, error) {
	for r, name := range reasonNames {
		if name == s {
			return Reason(r), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown reason %q", ErrOptionViolation, s)
}

// ParseCyclePolicy maps "through" or "reachable" to a CyclePolicy.
func ParseCyclePolicy(s string) (CyclePolicy, error) {
	for _, p := range []CyclePolicy{CycleThrough, CycleReachable} {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown cycle policy %q", ErrOptionViolation, s)
}

// ParseTieBreak maps "min_sum" or "second" to a TieBreak.
func ParseTieBreak(s string) (TieBreak, error) {
	for _, t := range []TieBreak{TieBreakMinSum, TieBreakSecond} {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown tie-break %q", ErrOptionViolation, s)
}
