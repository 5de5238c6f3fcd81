package regexextract

import (
	"sort"

	"github.com/katalvlaran/pcg/pcg"
	"github.com/katalvlaran/pcg/reach"
)

type pair struct{ u, v int }

// ConstructRegex computes the regex describing every path from s to
// End in cg, by state elimination: every vertex other than s and End
// is removed in turn, folding its self-loop and its transit edges into
// the regexes between its remaining neighbors.
//
// Each retained edge u→v is labeled by u's location — Start carries
// no location of its own, so edges leaving it are labeled ε — so that
// concatenating labels along a path spells the path's location word
// in traversal order (e.g. the three-hop path C→B→A→End spells
// "C.B.A").
func ConstructRegex(cg *pcg.T, s int) Regex {
	if s == cg.End {
		return Eps{}
	}

	canReachEnd := reach.DFS(cg, cg.End, reach.Up)
	fromS := reach.DFS(cg, s, reach.Down)

	relevant := make(map[int]struct{})
	for id := range fromS {
		if _, ok := canReachEnd[id]; ok {
			relevant[id] = struct{}{}
		}
	}
	relevant[s] = struct{}{}
	relevant[cg.End] = struct{}{}

	r := make(map[pair]Regex)
	for id := range relevant {
		for _, to := range cg.Graph.OutNeighbors(id) {
			if _, ok := relevant[to]; !ok {
				continue
			}
			label := labelOf(cg, id)
			r[pair{id, to}] = label
		}
	}

	var order []int
	for id := range relevant {
		if id == s || id == cg.End {
			continue
		}
		order = append(order, id)
	}
	sort.Ints(order)

	for _, q := range order {
		self := get(r, q, q)
		loop := star(self)

		var ins, outs []int
		for v := range relevant {
			if v == q {
				continue
			}
			if _, ok := r[pair{v, q}]; ok {
				ins = append(ins, v)
			}
			if _, ok := r[pair{q, v}]; ok {
				outs = append(outs, v)
			}
		}

		for _, q1 := range ins {
			for _, q2 := range outs {
				through := concat(concat(get(r, q1, q), loop), get(r, q, q2))
				r[pair{q1, q2}] = union(get(r, q1, q2), through)
			}
		}

		for k := range r {
			if k.u == q || k.v == q {
				delete(r, k)
			}
		}
		delete(relevant, q)
	}

	return get(r, s, cg.End)
}

func get(r map[pair]Regex, u, v int) Regex {
	if re, ok := r[pair{u, v}]; ok {
		return re
	}

	return Empty{}
}

func labelOf(cg *pcg.T, u int) Regex {
	if u == cg.Start {
		return Eps{}
	}

	return Lit{Loc: cg.State(u).Loc()}
}
