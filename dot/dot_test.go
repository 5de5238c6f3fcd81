package dot_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/pcg/dfa"
	"github.com/katalvlaran/pcg/dot"
	"github.com/katalvlaran/pcg/internal/dfatest"
	"github.com/katalvlaran/pcg/internal/topotest"
	"github.com/katalvlaran/pcg/pcg"
	"github.com/stretchr/testify/require"
)

func TestToDotContainsStartEndAndAcceptingNodes(t *testing.T) {
	topology := topotest.Line(map[string]bool{"A": true, "C": true}, "A", "B", "C")
	locs := []string{"A", "B", "C"}
	d1 := dfatest.EndsWith(locs, "A")
	cg, err := pcg.BuildFromAutomata(topology, []*dfa.DFA{d1})
	require.NoError(t, err)

	out := dot.ToDot(cg)
	require.True(t, strings.HasPrefix(out, "digraph PCG {"))
	require.Contains(t, out, "label=\"Start\"")
	require.Contains(t, out, "label=\"End\"")
	require.Contains(t, out, "doublecircle")
	require.Contains(t, out, "lightyellow")
}
