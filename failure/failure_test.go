package failure_test

import (
	"testing"

	"github.com/katalvlaran/pcg/dfa"
	"github.com/katalvlaran/pcg/failure"
	"github.com/katalvlaran/pcg/internal/dfatest"
	"github.com/katalvlaran/pcg/internal/topotest"
	"github.com/katalvlaran/pcg/pcg"
	"github.com/stretchr/testify/require"
)

func buildLine(t *testing.T) *pcg.T {
	t.Helper()
	topology := topotest.Line(map[string]bool{"A": true, "C": true}, "A", "B", "C")
	locs := []string{"A", "B", "C"}
	d1 := dfatest.EndsWith(locs, "A")
	d2 := dfatest.EndsWith(locs, "C")
	cg, err := pcg.BuildFromAutomata(topology, []*dfa.DFA{d1, d2})
	require.NoError(t, err)

	return cg
}

func TestAllFailuresSizeZeroIsSingleEmptyCombo(t *testing.T) {
	topology := topotest.Line(map[string]bool{"A": true, "C": true}, "A", "B", "C")
	combos := failure.AllFailures(0, topology)
	require.Len(t, combos, 1)
	require.Empty(t, combos[0])
}

func TestAllFailuresCountsInsideNodesAndLinks(t *testing.T) {
	topology := topotest.Line(map[string]bool{"A": true, "C": true}, "A", "B", "C")
	// 3 inside nodes + 2 links, all inside-touching: universe size 5.
	combos := failure.AllFailures(1, topology)
	require.Len(t, combos, 5)
}

func TestAllFailuresOutOfRange(t *testing.T) {
	topology := topotest.Line(map[string]bool{"A": true, "C": true}, "A", "B", "C")
	require.Nil(t, failure.AllFailures(6, topology))
	require.Nil(t, failure.AllFailures(-1, topology))
}

func TestFailedGraphRemovesFailedNode(t *testing.T) {
	cg := buildLine(t)
	failed := failure.FailedGraph(cg, []failure.Item{{Kind: failure.NodeKind, Loc: "B"}})

	for id, s := range failed.States {
		require.NotEqual(t, "B", s.Loc(), "state %d at B survived failure", id)
	}
	require.NotEmpty(t, failed.States)
}

// TestDisconnectLocsSinglePathTakesOneElimination checks that
// disconnecting A-states from location C on the original (unminimized)
// line PCG takes exactly one shortest-path elimination, so the derived
// metric is 0: there is exactly one edge-disjoint path to cut.
func TestDisconnectLocsSinglePathTakesOneElimination(t *testing.T) {
	cg := buildLine(t)

	var aStates []int
	for id, s := range cg.States {
		if id == cg.Start || id == cg.End {
			continue
		}
		if s.Loc() == "A" {
			aStates = append(aStates, id)
		}
	}
	require.NotEmpty(t, aStates)

	summary, ok := failure.DisconnectLocs(cg, aStates, "C")
	require.True(t, ok)
	require.Equal(t, "A", summary.SrcLoc)
	require.Equal(t, "C", summary.DstLoc)
	require.Equal(t, 0, summary.Metric)
}

func TestDisconnectLocsEmptySides(t *testing.T) {
	cg := buildLine(t)
	_, ok := failure.DisconnectLocs(cg, nil, "C")
	require.False(t, ok)

	_, ok = failure.DisconnectLocs(cg, []int{cg.Start}, "nonexistent-loc")
	require.False(t, ok)
}
