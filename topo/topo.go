// Package topo provides the network topology graph the PCG builder
// consumes: locations (router names) joined by physical adjacency,
// each tagged with a NodeType describing its role relative to the
// network under compilation.
//
// Loading a topology from a config file or a policy AST is outside
// this package's scope; topo only has to model the data the builder,
// minimizer and failure analyzer read.
package topo

import (
	"sort"

	"github.com/katalvlaran/pcg/cgraph"
	"github.com/katalvlaran/pcg/reindex"
)

// NodeType classifies a topology node's role.
type NodeType int

const (
	// Inside is a router inside the network under compilation that
	// cannot itself originate traffic.
	Inside NodeType = iota
	// InsideOriginates is an inside router that can originate traffic
	// (a source of routes).
	InsideOriginates
	// Outside is a router outside the network (a peer AS).
	Outside
	// Unknown stands for any unmodeled external AS; it is the
	// "repeated-out" node type.
	Unknown
	// Start is the synthetic PCG start node type.
	Start
	// End is the synthetic PCG end node type.
	End
)

// String renders a NodeType for diagnostics and DOT labels.
func (t NodeType) String() string {
	switch t {
	case Inside:
		return "Inside"
	case InsideOriginates:
		return "InsideOriginates"
	case Outside:
		return "Outside"
	case Unknown:
		return "Unknown"
	case Start:
		return "Start"
	case End:
		return "End"
	default:
		return "NodeType(?)"
	}
}

// Node is a single topology location.
type Node struct {
	Loc string
	Typ NodeType
}

// Topology is an undirected adjacency graph over Node, read-only once
// built and shared (without copying) across every PCG derived from it.
type Topology struct {
	nodes map[string]Node
	adj   map[string]map[string]struct{}
}

// New returns an empty, mutable builder for a Topology. Use AddNode
// and AddEdge to populate it, then treat the result as immutable.
func New() *Topology {
	return &Topology{
		nodes: make(map[string]Node),
		adj:   make(map[string]map[string]struct{}),
	}
}

// AddNode inserts a node, or replaces its type if the location already
// exists (the locations in a topology are unique by construction, but
// re-adding with a different Typ is allowed to let callers refine a
// previously-stubbed node).
func (t *Topology) AddNode(n Node) {
	t.nodes[n.Loc] = n
	if _, ok := t.adj[n.Loc]; !ok {
		t.adj[n.Loc] = make(map[string]struct{})
	}
}

// AddEdge inserts an undirected physical link between two existing
// locations. Both locations must already have been added with
// AddNode.
func (t *Topology) AddEdge(a, b string) {
	t.adj[a][b] = struct{}{}
	t.adj[b][a] = struct{}{}
}

// Node returns the node at loc and whether it exists.
func (t *Topology) Node(loc string) (Node, bool) {
	n, ok := t.nodes[loc]

	return n, ok
}

// Vertices returns every location, sorted for determinism.
func (t *Topology) Vertices() []Node {
	out := make([]Node, 0, len(t.nodes))
	for _, n := range t.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Loc < out[j].Loc })

	return out
}

// Edges returns every undirected link as an ordered pair (Loc, Loc)
// with lexicographically smaller endpoint first, deduplicated.
func (t *Topology) Edges() [][2]string {
	seen := make(map[[2]string]struct{})
	for a, nbrs := range t.adj {
		for b := range nbrs {
			key := [2]string{a, b}
			if a > b {
				key = [2]string{b, a}
			}
			seen[key] = struct{}{}
		}
	}
	out := make([][2]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}

		return out[i][1] < out[j][1]
	})

	return out
}

// Neighbors returns the locations physically adjacent to loc, sorted.
func (t *Topology) Neighbors(loc string) []string {
	nbrs := t.adj[loc]
	out := make([]string, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}

// HasEdge reports whether a and b are directly linked.
func (t *Topology) HasEdge(a, b string) bool {
	_, ok := t.adj[a][b]

	return ok
}

// IsInside reports whether n is Inside or InsideOriginates.
func (t *Topology) IsInside(n Node) bool {
	return n.Typ == Inside || n.Typ == InsideOriginates
}

// IsOutside reports whether n is Outside or Unknown.
func (t *Topology) IsOutside(n Node) bool {
	return n.Typ == Outside || n.Typ == Unknown
}

// CanOriginateTraffic reports whether n can be the source of a route.
func (t *Topology) CanOriginateTraffic(n Node) bool {
	return n.Typ == InsideOriginates
}

// IsTopoNode reports whether n is a real topology location (i.e. not
// the synthetic Start/End used by the PCG).
func (t *Topology) IsTopoNode(n Node) bool {
	return n.Typ != Start && n.Typ != End
}

// IsWellFormed reports whether the topology is weakly connected (one
// component over all its locations). Delegates to cgraph.Graph's own
// gonum-backed WeaklyConnectedComponents rather than hand-rolling a
// second connectivity check: locations are reindexed to the dense
// integer ids cgraph needs, each undirected link added as a pair of
// directed edges, and the result accepted iff every location shares
// one component label.
func (t *Topology) IsWellFormed() bool {
	if len(t.nodes) == 0 {
		return true
	}

	ids := reindex.New[string]()
	g := cgraph.New()
	for loc := range t.nodes {
		g.AddVertex(ids.Index(loc))
	}
	for a, nbrs := range t.adj {
		for b := range nbrs {
			g.AddEdge(ids.Index(a), ids.Index(b))
		}
	}

	labels := g.WeaklyConnectedComponents()
	var want int
	first := true
	for loc := range t.nodes {
		label := labels[ids.Index(loc)]
		if first {
			want = label
			first = false

			continue
		}
		if label != want {
			return false
		}
	}

	return true
}

// Alphabet returns the set of inside locations and outside locations,
// in that order, each sorted — the location alphabet a DFA is defined
// over.
func (t *Topology) Alphabet() (inside, outside []string) {
	for _, n := range t.Vertices() {
		if t.IsInside(n) {
			inside = append(inside, n.Loc)
		} else if t.IsOutside(n) {
			outside = append(outside, n.Loc)
		}
	}

	return inside, outside
}

// OriginatingNodes returns every node that can originate traffic,
// sorted by Loc.
func (t *Topology) OriginatingNodes() []Node {
	var out []Node
	for _, n := range t.Vertices() {
		if t.CanOriginateTraffic(n) {
			out = append(out, n)
		}
	}

	return out
}
