// Package failure implements failure enumeration, failed-graph
// materialization, and minimum-cut approximation over a PCG.
package failure

import (
	"github.com/katalvlaran/pcg/pcg"
	"github.com/katalvlaran/pcg/topo"
	"gonum.org/v1/gonum/stat/combin"
)

// Kind discriminates a node failure from a link failure.
type Kind int

const (
	// NodeKind marks an inside-node failure.
	NodeKind Kind = iota
	// LinkKind marks a link failure between two locations, at least
	// one of them inside.
	LinkKind
)

// Item is a single failure: either a node (Loc set) or a link (A, B
// set), depending on Kind.
type Item struct {
	Kind Kind
	Loc  string
	A, B string
}

// AllFailures produces every combination of size n drawn from the
// union of inside-node failures and inside-touching link failures.
// Returns nil if n is out of [0, len(universe)].
func AllFailures(n int, topology *topo.Topology) [][]Item {
	universe := failureUniverse(topology)
	if n < 0 || n > len(universe) {
		return nil
	}

	combos := combin.Combinations(len(universe), n)
	out := make([][]Item, len(combos))
	for i, c := range combos {
		items := make([]Item, len(c))
		for j, idx := range c {
			items[j] = universe[idx]
		}
		out[i] = items
	}

	return out
}

func failureUniverse(topology *topo.Topology) []Item {
	var universe []Item
	for _, n := range topology.Vertices() {
		if topology.IsInside(n) {
			universe = append(universe, Item{Kind: NodeKind, Loc: n.Loc})
		}
	}
	for _, e := range topology.Edges() {
		a, _ := topology.Node(e[0])
		b, _ := topology.Node(e[1])
		if topology.IsInside(a) || topology.IsInside(b) {
			universe = append(universe, Item{Kind: LinkKind, A: e[0], B: e[1]})
		}
	}

	return universe
}

// FailedGraph clones cg, removes every state whose location failed,
// and removes every edge whose endpoint-location pair (in either
// direction) matches a failed link.
func FailedGraph(cg *pcg.T, failures []Item) *pcg.T {
	failedNodes := make(map[string]bool)
	failedLinks := make(map[[2]string]bool)
	for _, f := range failures {
		switch f.Kind {
		case NodeKind:
			failedNodes[f.Loc] = true
		case LinkKind:
			failedLinks[normalize(f.A, f.B)] = true
		}
	}

	failed := cg.Clone()
	failed.Graph.RemoveVerticesWhere(func(id int) bool {
		if id == failed.Start || id == failed.End {
			return false
		}

		return failedNodes[failed.State(id).Loc()]
	})
	failed.Prune()

	failed.Graph.RemoveEdgesWhere(func(u, v int) bool {
		return failedLinks[normalize(failed.State(u).Loc(), failed.State(v).Loc())]
	})

	return failed
}

func normalize(a, b string) [2]string {
	if a > b {
		return [2]string{b, a}
	}

	return [2]string{a, b}
}
