package cgraph

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// WeaklyConnectedComponents labels every vertex with the index of its
// weakly-connected component (edges treated as undirected). Labels
// are dense integers starting at 0, assigned in the order
// topo.ConnectedComponents discovers them.
//
// Delegates to gonum's graph/topo.ConnectedComponents: the graph is
// materialized as a simple.UndirectedGraph view of g's edge set.
func (g *Graph) WeaklyConnectedComponents() map[int]int {
	ug := simple.NewUndirectedGraph()
	for id := range g.vertices {
		ug.AddNode(simple.Node(id))
	}
	for from, tos := range g.out {
		for to := range tos {
			if from == to {
				continue // self-loops carry no connectivity information
			}
			ug.SetEdge(simple.Edge{F: simple.Node(from), T: simple.Node(to)})
		}
	}

	labels := make(map[int]int, len(g.vertices))
	for label, comp := range topo.ConnectedComponents(ug) {
		for _, n := range comp {
			labels[int(n.ID())] = label
		}
	}

	return labels
}

// ShortestPath returns the sequence of vertex ids on a shortest
// (unit-weight, fewest-edges) path from src to dst, inclusive of both
// endpoints, via breadth-first search. Returns (nil, false) if dst is
// unreachable from src.
func (g *Graph) ShortestPath(src, dst int) ([]int, bool) {
	if src == dst {
		if g.HasVertex(src) {
			return []int{src}, true
		}

		return nil, false
	}

	parent := map[int]int{src: src}
	queue := []int{src}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range g.OutNeighbors(cur) {
			if _, seen := parent[next]; seen {
				continue
			}
			parent[next] = cur
			if next == dst {
				return reconstruct(parent, src, dst), true
			}
			queue = append(queue, next)
		}
	}

	return nil, false
}

func reconstruct(parent map[int]int, src, dst int) []int {
	var rev []int
	for cur := dst; ; {
		rev = append(rev, cur)
		if cur == src {
			break
		}
		cur = parent[cur]
	}
	path := make([]int, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}

	return path
}
