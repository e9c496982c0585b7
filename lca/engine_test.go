package lca_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlca/lca"
)

func TestNew_Errors(t *testing.T) {
	_, err := lca.New[string](nil)
	assert.ErrorIs(t, err, lca.ErrGraphNil)

	_, _, err = lca.Find[string](nil, "a", "b", lca.Rootless[string]())
	assert.ErrorIs(t, err, lca.ErrGraphNil)

	g := loadGraph(t, "diamond")
	for name, opt := range map[string]lca.Option{
		"max visits":  lca.WithMaxVisits(-1),
		"concurrency": lca.WithConcurrency(0),
		"policy":      lca.WithCyclePolicy(lca.CyclePolicy(9)),
		"tie-break":   lca.WithTieBreak(lca.TieBreak(7)),
	} {
		_, err := lca.New[string](g, opt)
		assert.ErrorIs(t, err, lca.ErrOptionViolation, name)
	}

	// nil logger and tracer keep the defaults
	_, err = lca.New[string](g, lca.WithLogger(nil), lca.WithTracer(nil), lca.WithMetrics(nil))
	assert.NoError(t, err)
}

func TestMode(t *testing.T) {
	m := lca.Rootless[string]()
	_, ok := m.Root()
	assert.False(t, ok)
	assert.Equal(t, "rootless", m.String())

	var zero lca.Mode[string]
	assert.Equal(t, m, zero)

	r := lca.Rooted("top")
	root, ok := r.Root()
	assert.True(t, ok)
	assert.Equal(t, "top", root)
	assert.Equal(t, "rooted", r.String())
}

func TestParseEnums(t *testing.T) {
	for _, r := range []lca.Reason{lca.ReasonFound, lca.ReasonDisconnected, lca.ReasonCycle, lca.ReasonUnreachable, lca.ReasonCycleToRoot} {
		got, err := lca.ParseReason(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}
	_, err := lca.ParseReason("lost")
	assert.ErrorIs(t, err, lca.ErrOptionViolation)
	assert.Equal(t, "unknown", lca.Reason(42).String())

	p, err := lca.ParseCyclePolicy("reachable")
	require.NoError(t, err)
	assert.Equal(t, lca.CycleReachable, p)
	_, err = lca.ParseCyclePolicy("never")
	assert.Error(t, err)

	tb, err := lca.ParseTieBreak("second")
	require.NoError(t, err)
	assert.Equal(t, lca.TieBreakSecond, tb)
	_, err = lca.ParseTieBreak("coin")
	assert.Error(t, err)
}

func TestEngine_ForwardBackward(t *testing.T) {
	g := loadGraph(t, "diamond")
	e, err := lca.New[string](g)
	require.NoError(t, err)

	assert.Equal(t, []lca.PathRecord[string]{{Node: "3", Cost: 1}, {Node: "4", Cost: 1}}, e.Forward("2"))
	assert.Equal(t, []lca.PathRecord[string]{{Node: "5", Cost: 1}, {Node: "6", Cost: 1}}, e.Backward("7"))
	assert.Empty(t, e.Backward("1"))
	assert.Empty(t, e.Forward("ghost"))
}

// TestEngine_GenericHostWithDuplicates runs over a non-core host that repeats edges.
func TestEngine_GenericHostWithDuplicates(t *testing.T) {
	g := newIntGraph([2]int{1, 2}, [2]int{1, 2}, [2]int{2, 3}, [2]int{2, 4}, [2]int{1, 5})
	e, err := lca.New[int](g)
	require.NoError(t, err)

	assert.Equal(t, []lca.PathRecord[int]{{Node: 1, Cost: 1}}, e.Backward(2))

	ans, err := e.LCA(context.Background(), 3, 4, lca.Rootless[int]())
	require.NoError(t, err)
	assert.Equal(t, lca.Answer[int]{Node: 2, Found: true, Cost1: 1, Cost2: 1}, ans)

	ans, err = e.LCA(context.Background(), 3, 5, lca.Rooted(1))
	require.NoError(t, err)
	assert.Equal(t, lca.Answer[int]{Node: 1, Found: true, Cost1: 2, Cost2: 1}, ans)

	node, ok, err := lca.Find[int](g, 4, 9, lca.Rootless[int]())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, node)
}

func TestEngine_Ancestors(t *testing.T) {
	g := loadGraph(t, "diamond")
	e, err := lca.New[string](g)
	require.NoError(t, err)
	ctx := context.Background()

	set, err := e.Ancestors(ctx, "8")
	require.NoError(t, err)
	assert.Equal(t, 8, set.Len())
	assert.Equal(t, []string{"8", "7", "5", "6", "3", "4", "2", "1"}, set.Nodes())
	assert.True(t, set.Contains("4"))
	c, ok := set.Cost("1")
	assert.True(t, ok)
	assert.Equal(t, 5, c)
	assert.Equal(t, lca.PathRecord[string]{Node: "8", Cost: 0}, set.Records()[0])

	set, err = e.Ancestors(ctx, "ghost")
	require.NoError(t, err)
	assert.Equal(t, []string{"ghost"}, set.Nodes())

	// cyclic ancestors still terminate, each node recorded once
	cyc := loadGraph(t, "structure")
	ec, err := lca.New[string](cyc)
	require.NoError(t, err)
	set, err = ec.Ancestors(ctx, "6")
	require.NoError(t, err)
	assert.Equal(t, []string{"6", "3", "1", "5", "2"}, set.Nodes())
}

func TestEngine_PathToAncestor(t *testing.T) {
	g := loadGraph(t, "diamond")
	e, err := lca.New[string](g)
	require.NoError(t, err)
	ctx := context.Background()

	path, ok, err := e.PathToAncestor(ctx, "8", "1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"8", "7", "5", "3", "2", "1"}, path)

	path, ok, err = e.PathToAncestor(ctx, "4", "8")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, path)
}

func TestEngine_Cycles(t *testing.T) {
	g := loadGraph(t, "structure")
	e, err := lca.New[string](g)
	require.NoError(t, err)
	ctx := context.Background()

	for id, want := range map[string]bool{"1": true, "2": true, "5": true, "3": false, "4": false, "6": false} {
		on, err := e.HasCycleThrough(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, on, id)
	}

	cycle, err := e.FindCycle(ctx, "4")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1", "5", "2"}, cycle)

	cycle, err = e.FindCycle(ctx, "6")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "5", "2", "1"}, cycle)

	tree := loadGraph(t, "binary_tree")
	et, err := lca.New[string](tree)
	require.NoError(t, err)
	cycle, err = et.FindCycle(ctx, "6")
	require.NoError(t, err)
	assert.Nil(t, cycle)
}

func TestEngine_VisitBudget(t *testing.T) {
	g := loadGraph(t, "diamond")
	ctx := context.Background()

	e, err := lca.New[string](g, lca.WithMaxVisits(2))
	require.NoError(t, err)
	_, err = e.LCA(ctx, "8", "4", lca.Rootless[string]())
	assert.ErrorIs(t, err, lca.ErrVisitBudgetExceeded)
	_, err = e.LCA(ctx, "8", "4", lca.Rooted("1"))
	assert.ErrorIs(t, err, lca.ErrVisitBudgetExceeded)
	_, err = e.Ancestors(ctx, "8")
	assert.ErrorIs(t, err, lca.ErrVisitBudgetExceeded)
	_, err = e.HasCycleThrough(ctx, "8")
	assert.ErrorIs(t, err, lca.ErrVisitBudgetExceeded)

	// enough budget for the largest single walk of the diamond
	e, err = lca.New[string](g, lca.WithMaxVisits(8))
	require.NoError(t, err)
	ans, err := e.LCA(ctx, "8", "4", lca.Rootless[string]())
	require.NoError(t, err)
	assert.Equal(t, "4", ans.Node)
}

func TestEngine_ContextCancelled(t *testing.T) {
	g := loadGraph(t, "diamond")
	e, err := lca.New[string](g)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = e.LCA(ctx, "8", "4", lca.Rootless[string]())
	assert.ErrorIs(t, err, context.Canceled)
	_, err = e.Ancestors(ctx, "8")
	assert.ErrorIs(t, err, context.Canceled)
	_, _, err = e.PathToAncestor(ctx, "8", "1")
	assert.ErrorIs(t, err, context.Canceled)
}

// TestEngine_TieBreakCosts pins the costs reported under each tie-break.
func TestEngine_TieBreakCosts(t *testing.T) {
	g := loadGraph(t, "tiebreak")
	ctx := context.Background()

	e, err := lca.New[string](g)
	require.NoError(t, err)
	ans, err := e.LCA(ctx, "n1", "n2", lca.Rootless[string]())
	require.NoError(t, err)
	assert.Equal(t, lca.Answer[string]{Node: "A", Found: true, Cost1: 1, Cost2: 3}, ans)

	e, err = lca.New[string](g, lca.WithTieBreak(lca.TieBreakSecond))
	require.NoError(t, err)
	ans, err = e.LCA(ctx, "n1", "n2", lca.Rootless[string]())
	require.NoError(t, err)
	assert.Equal(t, lca.Answer[string]{Node: "B", Found: true, Cost1: 3, Cost2: 2}, ans)
}

func TestEngine_LowestBeatsNearest(t *testing.T) {
	g := loadGraph(t, "shortcut")
	ctx := context.Background()

	// 1 has the smaller hop sum (1+1) but 3 lies below it and is common too
	for _, tb := range []lca.TieBreak{lca.TieBreakMinSum, lca.TieBreakSecond} {
		e, err := lca.New[string](g, lca.WithTieBreak(tb))
		require.NoError(t, err)

		ans, err := e.LCA(ctx, "2", "3", lca.Rootless[string]())
		require.NoError(t, err)
		assert.Equal(t, lca.Answer[string]{Node: "3", Found: true, Cost1: 3, Cost2: 0}, ans, tb.String())

		ans, err = e.LCA(ctx, "3", "2", lca.Rootless[string]())
		require.NoError(t, err)
		assert.Equal(t, lca.Answer[string]{Node: "3", Found: true, Cost1: 0, Cost2: 3}, ans, tb.String())
	}
}

func TestEngine_RootedAncestorOfRoot(t *testing.T) {
	g := loadGraph(t, "diamond")
	ctx := context.Background()
	e, err := lca.New[string](g)
	require.NoError(t, err)

	// 1 reaches 2 going forward, but 2 never reaches 1: no cycle
	ans, err := e.LCA(ctx, "1", "8", lca.Rooted("2"))
	require.NoError(t, err)
	assert.Equal(t, lca.ReasonUnreachable, ans.Reason)
	ans, err = e.LCA(ctx, "8", "1", lca.Rooted("2"))
	require.NoError(t, err)
	assert.Equal(t, lca.ReasonUnreachable, ans.Reason)

	// on a real cycle through the root the reason stays
	s := loadGraph(t, "structure")
	e, err = lca.New[string](s)
	require.NoError(t, err)
	ans, err = e.LCA(ctx, "5", "6", lca.Rooted("1"))
	require.NoError(t, err)
	assert.Equal(t, lca.ReasonCycleToRoot, ans.Reason)
}
