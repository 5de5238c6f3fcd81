package reach_test

import (
	"testing"

	"github.com/katalvlaran/pcg/dfa"
	"github.com/katalvlaran/pcg/internal/dfatest"
	"github.com/katalvlaran/pcg/internal/topotest"
	"github.com/katalvlaran/pcg/pcg"
	"github.com/katalvlaran/pcg/reach"
	"github.com/stretchr/testify/require"
)

func buildFixture(t *testing.T) *pcg.T {
	t.Helper()
	topology := topotest.Line(map[string]bool{"A": true, "C": true}, "A", "B", "C")
	locs := []string{"A", "B", "C"}
	d1 := dfatest.EndsWith(locs, "A")
	cg, err := pcg.BuildFromAutomata(topology, []*dfa.DFA{d1})
	require.NoError(t, err)

	return cg
}

func TestDFSCoversAcceptingStates(t *testing.T) {
	cg := buildFixture(t)
	reachable := reach.DFS(cg, cg.Start, reach.Down)
	for id, s := range cg.States {
		if !s.Accept.IsEmpty() {
			_, ok := reachable[id]
			require.True(t, ok, "accepting state %d must be forward reachable", id)
		}
	}
}

func TestPostOrderVisitsChildrenFirst(t *testing.T) {
	cg := buildFixture(t)
	order := reach.PostOrder(cg, cg.Start, reach.Down)
	pos := make(map[int]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	for _, e := range cg.Graph.Edges() {
		from, to := e[0], e[1]
		if from == to {
			continue // self-loop
		}
		if _, ok := pos[from]; !ok {
			continue
		}
		if _, ok := pos[to]; !ok {
			continue
		}
		if pos[to] > pos[from] {
			// Only an edge back to a depth-first ancestor may point
			// later in postorder, and such an ancestor reaches from.
			_, closesCycle := reach.DFS(cg, to, reach.Down)[from]
			require.True(t, closesCycle, "edge %d->%d: child must precede parent in postorder unless the edge closes a cycle", from, to)
		}
	}
}

func TestSrcAcceptingUnion(t *testing.T) {
	cg := buildFixture(t)
	acc := reach.SrcAccepting(cg, cg.Start, reach.Down)
	require.Equal(t, []int{1}, acc.Members())
}
