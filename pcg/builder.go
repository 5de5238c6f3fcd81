package pcg

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/pcg/bitset"
	"github.com/katalvlaran/pcg/cgraph"
	"github.com/katalvlaran/pcg/dfa"
	"github.com/katalvlaran/pcg/reindex"
	"github.com/katalvlaran/pcg/topo"
)

// seenKey dedups (composite state, location) pairs during the build,
// so a composite/location pair already queued is never reprocessed.
type seenKey struct {
	composite string
	loc       string
}

type frontier struct {
	id        int
	composite []int
	node      topo.Node
}

// BuildFromAutomata performs the product construction: given a
// topology and up to 31 per-preference-level DFAs, build the PCG
// recognizing exactly the router-location words accepted by at least
// one DFA, labeling each state with the preference levels it satisfies.
func BuildFromAutomata(topology *topo.Topology, autos []*dfa.DFA) (*T, error) {
	if len(autos) > bitset.MaxPreference {
		return nil, ErrTooManyPreferences
	}
	if !topology.IsWellFormed() {
		return nil, ErrMalformedTopology
	}

	inside, outside := topology.Alphabet()
	alphabet := make([]string, 0, len(inside)+len(outside))
	alphabet = append(alphabet, inside...)
	alphabet = append(alphabet, outside...)

	garbage := make([]map[int]struct{}, len(autos))
	for i, a := range autos {
		garbage[i] = a.GarbageStates(alphabet)
	}

	g := cgraph.New()
	states := make(map[int]CgState)
	composite := reindex.New[string]()
	seen := make(map[seenKey]int)
	nextID := 2

	startNode := topo.Node{Typ: topo.Start}
	startComposite := make([]int, len(autos))
	for i, a := range autos {
		startComposite[i] = a.Q0
	}
	g.AddVertex(StartID)
	states[StartID] = CgState{
		Id:     StartID,
		State:  composite.Index(compositeKey(startComposite)),
		Accept: bitset.Empty(),
		Node:   startNode,
	}

	g.AddVertex(EndID)
	states[EndID] = CgState{Id: EndID, Accept: bitset.Empty(), Node: topo.Node{Typ: topo.End}}

	queue := []frontier{{id: StartID, composite: startComposite, node: startNode}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		var adj []topo.Node
		if cur.node.Typ == topo.Start {
			adj = topology.OriginatingNodes()
		} else {
			for _, loc := range topology.Neighbors(cur.node.Loc) {
				n, _ := topology.Node(loc)
				adj = append(adj, n)
			}
		}
		if cur.node.Typ == topo.Unknown {
			adj = append(adj, cur.node) // repeated-out self-loop
		}

		for _, c := range adj {
			next := make([]int, len(autos))
			dead := len(autos) > 0
			for i, a := range autos {
				n, ok := a.Step(cur.composite[i], c.Loc)
				if !ok {
					n = -1
				}
				next[i] = n
				if _, isGarbage := garbage[i][n]; !isGarbage {
					dead = false
				}
			}
			if dead {
				continue
			}

			ck := compositeKey(next)
			sk := seenKey{composite: ck, loc: c.Loc}
			if vid, ok := seen[sk]; ok {
				g.AddEdge(cur.id, vid)

				continue
			}

			vid := nextID
			nextID++
			accept := bitset.Empty()
			if topology.CanOriginateTraffic(c) {
				for i, a := range autos {
					if a.Accepts(next[i]) {
						accept = accept.With(i + 1)
					}
				}
			}
			g.AddVertex(vid)
			states[vid] = CgState{
				Id:     vid,
				State:  composite.Index(ck),
				Accept: accept,
				Node:   c,
			}
			seen[sk] = vid
			g.AddEdge(cur.id, vid)
			queue = append(queue, frontier{id: vid, composite: next, node: c})
		}
	}

	for id, s := range states {
		if id == EndID {
			continue
		}
		if !s.Accept.IsEmpty() {
			g.AddEdge(id, EndID)
		}
	}

	return &T{Start: StartID, End: EndID, Graph: g, States: states, Topo: topology}, nil
}

func compositeKey(states []int) string {
	var b strings.Builder
	for i, s := range states {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(s))
	}

	return b.String()
}
