package consistency

import (
	"sort"

	"github.com/katalvlaran/pcg/dom"
	"github.com/katalvlaran/pcg/pcg"
	"github.com/katalvlaran/pcg/reach"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// FindOrderingConservative computes, for every internal location, a
// total preference order over its PCG states consistent with protect
// (a location with a single state maps to that one state); or returns
// the first *ConflictError discovered.
func FindOrderingConservative(cg *pcg.T) (map[string][]pcg.CgState, error) {
	byLoc := make(map[string][]pcg.CgState)
	for id, s := range cg.States {
		if id == cg.Start || id == cg.End {
			continue
		}
		if !cg.Topo.IsInside(s.Node) {
			continue
		}
		byLoc[s.Loc()] = append(byLoc[s.Loc()], s)
	}

	fwd := dom.Build(cg, cg.Start, reach.Down)
	cache := make(map[pairKey]bool)
	required := mustPrefer(cg)

	result := make(map[string][]pcg.CgState, len(byLoc))
	for loc, states := range byLoc {
		sort.Slice(states, func(i, j int) bool { return states[i].Id < states[j].Id })

		if len(states) == 1 {
			result[loc] = states

			continue
		}

		g := simple.NewDirectedGraph()
		for _, s := range states {
			g.AddNode(simple.Node(s.Id))
		}

		edge := make(map[pairKey]bool)
		for _, x := range states {
			for _, y := range states {
				if x.Id == y.Id {
					continue
				}
				if ok, _, _ := protect(cg, fwd, x, y, cache); ok {
					edge[pairKey{x.Id, y.Id}] = true
					g.SetEdge(simple.Edge{F: simple.Node(x.Id), T: simple.Node(y.Id)})
				}
			}
		}

		for _, x := range states {
			for _, y := range states {
				if x.Id >= y.Id {
					continue
				}
				if !edge[pairKey{x.Id, y.Id}] && !edge[pairKey{y.Id, x.Id}] {
					return nil, &ConflictError{Kind: KindInconsistent, X: x, Y: y}
				}
			}
		}

		for _, req := range required {
			if req.loc != loc {
				continue
			}
			if !edge[pairKey{req.d, req.dp}] {
				return nil, &ConflictError{Kind: KindSimplePath, X: cg.State(req.d), Y: cg.State(req.dp)}
			}
		}

		// Strip symmetric equivalences: an edge present in both
		// directions carries no ordering information.
		for k := range edge {
			rev := pairKey{k.b, k.a}
			if edge[rev] {
				g.RemoveEdge(int64(k.a), int64(k.b))
			}
		}

		ordered, err := topo.Sort(g)
		if err != nil {
			return nil, &ConflictError{Kind: KindInconsistent, X: states[0], Y: states[1]}
		}

		seq := make([]pcg.CgState, 0, len(ordered))
		for _, n := range ordered {
			seq = append(seq, cg.State(int(n.ID())))
		}
		result[loc] = seq
	}

	return result, nil
}
