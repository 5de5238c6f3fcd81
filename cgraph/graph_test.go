package cgraph_test

import (
	"testing"

	"github.com/katalvlaran/pcg/cgraph"
	"github.com/stretchr/testify/require"
)

func TestAddEdgeIdempotent(t *testing.T) {
	g := cgraph.New()
	require.True(t, g.AddEdge(1, 2))
	require.False(t, g.AddEdge(1, 2))
	require.Equal(t, 1, g.NumEdges())
	require.Equal(t, 2, g.NumVertices())
}

func TestRemoveVerticesWhereCascadesEdges(t *testing.T) {
	g := cgraph.New()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)

	removed := g.RemoveVerticesWhere(func(id int) bool { return id == 2 })
	require.Equal(t, []int{2}, removed)
	require.Equal(t, 0, g.NumEdges())
	require.False(t, g.HasVertex(2))
}

func TestOutInDegree(t *testing.T) {
	g := cgraph.New()
	g.AddEdge(1, 2)
	g.AddEdge(1, 3)
	g.AddEdge(3, 2)

	require.Equal(t, 2, g.OutDegree(1))
	require.Equal(t, 2, g.InDegree(2))
	require.Equal(t, []int{2, 3}, g.OutNeighbors(1))
	require.Equal(t, []int{1, 3}, g.InNeighbors(2))
}

func TestCloneIndependence(t *testing.T) {
	g := cgraph.New()
	g.AddEdge(1, 2)
	clone := g.Clone()
	clone.AddEdge(2, 3)

	require.Equal(t, 1, g.NumEdges())
	require.Equal(t, 2, clone.NumEdges())
}

func TestReverse(t *testing.T) {
	g := cgraph.New()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)

	rev := g.Reverse()
	require.True(t, rev.HasEdge(2, 1))
	require.True(t, rev.HasEdge(3, 2))
	require.False(t, rev.HasEdge(1, 2))
}

func TestWeaklyConnectedComponents(t *testing.T) {
	g := cgraph.New()
	g.AddEdge(1, 2)
	g.AddVertex(3)

	labels := g.WeaklyConnectedComponents()
	require.Equal(t, labels[1], labels[2])
	require.NotEqual(t, labels[1], labels[3])
}

func TestShortestPath(t *testing.T) {
	g := cgraph.New()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(1, 3) // shorter diagonal, but BFS should still find shortest by edges

	path, ok := g.ShortestPath(1, 3)
	require.True(t, ok)
	require.Equal(t, []int{1, 3}, path)

	_, ok = g.ShortestPath(3, 1)
	require.False(t, ok)
}

func TestSizeMonovariant(t *testing.T) {
	g := cgraph.New()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	require.Equal(t, 3+2, g.Size())
}
