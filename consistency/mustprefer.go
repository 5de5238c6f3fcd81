package consistency

import (
	"github.com/katalvlaran/pcg/pcg"
	"github.com/katalvlaran/pcg/reach"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

type mustPreferPair struct {
	loc   string
	d, dp int
}

// mustPrefer computes the hard-preference safety obligations: for
// each location with duplicate states that share a weakly-connected
// component of the real-inside subgraph (i.e. are not isolated from
// each other by construction), every shadow pair (d,d') with d'
// reachable downward from d must satisfy d ≻ d' under protect.
func mustPrefer(cg *pcg.T) []mustPreferPair {
	wcc := insideWCC(cg)

	byLoc := make(map[string][]int)
	for id, s := range cg.States {
		if id == cg.Start || id == cg.End {
			continue
		}
		if !cg.Topo.IsInside(s.Node) {
			continue
		}
		byLoc[s.Loc()] = append(byLoc[s.Loc()], id)
	}

	var out []mustPreferPair
	for loc, ids := range byLoc {
		if len(ids) < 2 {
			continue
		}
		for _, d := range ids {
			down := reach.DFS(cg, d, reach.Down)
			for _, dp := range ids {
				if d == dp {
					continue
				}
				if wcc[d] != wcc[dp] {
					continue
				}
				if _, reachable := down[dp]; !reachable {
					continue
				}
				out = append(out, mustPreferPair{loc: loc, d: d, dp: dp})
			}
		}
	}

	return out
}

// insideWCC labels every real, inside PCG state with its weakly-
// connected-component index over the subgraph of real inside nodes.
func insideWCC(cg *pcg.T) map[int]int {
	ug := simple.NewUndirectedGraph()
	inside := make(map[int]bool)
	for id, s := range cg.States {
		if id == cg.Start || id == cg.End {
			continue
		}
		if cg.Topo.IsInside(s.Node) {
			inside[id] = true
			ug.AddNode(simple.Node(id))
		}
	}
	for _, e := range cg.Graph.Edges() {
		if inside[e[0]] && inside[e[1]] && e[0] != e[1] {
			ug.SetEdge(simple.Edge{F: simple.Node(e[0]), T: simple.Node(e[1])})
		}
	}

	labels := make(map[int]int, len(inside))
	for label, comp := range topo.ConnectedComponents(ug) {
		for _, n := range comp {
			labels[int(n.ID())] = label
		}
	}

	return labels
}
