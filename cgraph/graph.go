// Package cgraph implements the directed graph container shared by
// the PCG builder, minimizer, consistency engine, regex extractor and
// failure analyzer.
//
// Vertices are plain integer ids: a systems implementation would back
// this with a dense arena indexed by a numeric NodeId; Go's
// map-of-slices here is the same shape with garbage collection
// instead of an arena. Vertex payload (CgState, topology node, ...)
// lives outside this package, keyed by the same id — Graph itself
// only knows about structure: which ids exist and which directed
// edges connect them.
//
// Graph is not safe for concurrent use without external
// synchronization; each top-level PCG operation owns its Graph
// exclusively for the duration of one call.
package cgraph

import "sort"

// Graph is a directed graph over integer vertex ids.
type Graph struct {
	vertices map[int]struct{}
	out      map[int]map[int]struct{}
	in       map[int]map[int]struct{}
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{
		vertices: make(map[int]struct{}),
		out:      make(map[int]map[int]struct{}),
		in:       make(map[int]map[int]struct{}),
	}
}

// AddVertex inserts id if missing. Idempotent.
func (g *Graph) AddVertex(id int) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.out[id] = make(map[int]struct{})
	g.in[id] = make(map[int]struct{})
}

// HasVertex reports whether id is present.
func (g *Graph) HasVertex(id int) bool {
	_, ok := g.vertices[id]

	return ok
}

// AddEdge inserts the directed edge from->to, adding either endpoint
// if missing. Returns false if the edge already existed (no
// multi-edges; the PCG builder never needs to add the same directed
// pair twice).
func (g *Graph) AddEdge(from, to int) bool {
	g.AddVertex(from)
	g.AddVertex(to)
	if _, ok := g.out[from][to]; ok {
		return false
	}
	g.out[from][to] = struct{}{}
	g.in[to][from] = struct{}{}

	return true
}

// HasEdge reports whether the directed edge from->to exists.
func (g *Graph) HasEdge(from, to int) bool {
	_, ok := g.out[from][to]

	return ok
}

// RemoveEdge deletes the directed edge from->to if present. Returns
// true if an edge was removed.
func (g *Graph) RemoveEdge(from, to int) bool {
	if _, ok := g.out[from][to]; !ok {
		return false
	}
	delete(g.out[from], to)
	delete(g.in[to], from)

	return true
}

// RemoveEdgesWhere removes every edge (from,to) for which pred
// returns true. Returns the count removed.
func (g *Graph) RemoveEdgesWhere(pred func(from, to int) bool) int {
	var toRemove [][2]int
	for from, tos := range g.out {
		for to := range tos {
			if pred(from, to) {
				toRemove = append(toRemove, [2]int{from, to})
			}
		}
	}
	for _, e := range toRemove {
		g.RemoveEdge(e[0], e[1])
	}

	return len(toRemove)
}

// RemoveVerticesWhere removes every vertex id for which pred returns
// true, together with all incident edges. Returns the removed ids.
func (g *Graph) RemoveVerticesWhere(pred func(id int) bool) []int {
	var victims []int
	for id := range g.vertices {
		if pred(id) {
			victims = append(victims, id)
		}
	}
	for _, id := range victims {
		g.removeVertex(id)
	}

	return victims
}

func (g *Graph) removeVertex(id int) {
	for to := range g.out[id] {
		delete(g.in[to], id)
	}
	for from := range g.in[id] {
		delete(g.out[from], id)
	}
	delete(g.out, id)
	delete(g.in, id)
	delete(g.vertices, id)
}

// OutNeighbors returns the ids reachable by one outgoing edge from
// id, sorted ascending for deterministic iteration.
func (g *Graph) OutNeighbors(id int) []int { return sortedKeys(g.out[id]) }

// InNeighbors returns the ids with an outgoing edge into id, sorted
// ascending.
func (g *Graph) InNeighbors(id int) []int { return sortedKeys(g.in[id]) }

// OutDegree reports the number of outgoing edges from id.
func (g *Graph) OutDegree(id int) int { return len(g.out[id]) }

// InDegree reports the number of incoming edges into id.
func (g *Graph) InDegree(id int) int { return len(g.in[id]) }

// Vertices returns every vertex id, sorted ascending.
func (g *Graph) Vertices() []int { return sortedKeys(g.vertices) }

// Edges returns every directed edge as a [from,to] pair, sorted
// lexicographically.
func (g *Graph) Edges() [][2]int {
	var out [][2]int
	for from, tos := range g.out {
		for to := range tos {
			out = append(out, [2]int{from, to})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}

		return out[i][1] < out[j][1]
	})

	return out
}

// NumVertices reports |V|.
func (g *Graph) NumVertices() int { return len(g.vertices) }

// NumEdges reports |E|.
func (g *Graph) NumEdges() int {
	n := 0
	for _, tos := range g.out {
		n += len(tos)
	}

	return n
}

// Size returns |V|+|E|, the monovariant the minimizer tracks for
// fixpoint detection.
func (g *Graph) Size() int { return g.NumVertices() + g.NumEdges() }

// Clone returns a structurally equal, independent copy: same vertex
// ids and the same edge set, sharing no backing storage with g.
func (g *Graph) Clone() *Graph {
	clone := New()
	for id := range g.vertices {
		clone.AddVertex(id)
	}
	for from, tos := range g.out {
		for to := range tos {
			clone.AddEdge(from, to)
		}
	}

	return clone
}

// Reverse returns a new Graph with the same vertex set and every edge
// direction flipped: (u,v) in g iff (v,u) in Reverse(g).
func (g *Graph) Reverse() *Graph {
	rev := New()
	for id := range g.vertices {
		rev.AddVertex(id)
	}
	for from, tos := range g.out {
		for to := range tos {
			rev.AddEdge(to, from)
		}
	}

	return rev
}

func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}
