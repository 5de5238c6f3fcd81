// Package pcg implements the Product Construction Graph: the product
// of a network topology with an ordered array of per-preference-level
// DFAs.
package pcg

import (
	"errors"

	"github.com/katalvlaran/pcg/bitset"
	"github.com/katalvlaran/pcg/cgraph"
	"github.com/katalvlaran/pcg/topo"
)

// StartID and EndID are the fixed ids of the synthetic Start/End
// states: Start is always 0, End is always 1.
const (
	StartID = 0
	EndID   = 1
)

// ErrTooManyPreferences is returned when more than bitset.MaxPreference
// automata are supplied to BuildFromAutomata.
var ErrTooManyPreferences = errors.New("pcg: more than 31 preference levels")

// ErrMalformedTopology is returned when the topology is not weakly
// connected.
var ErrMalformedTopology = errors.New("pcg: topology is not well-formed (not weakly connected)")

// CgState is one PCG state: a composite-DFA state paired with the
// topology location it sits at.
//
// Identity and ordering are by Id alone: two CgState values with the
// same Id denote the same state even if compared across
// independently-obtained copies.
type CgState struct {
	Id     int
	State  int
	Accept bitset.BitSet31
	Node   topo.Node
}

// Loc returns the state's topology location.
func (s CgState) Loc() string { return s.Node.Loc }

// T is a Product Construction Graph: a directed graph over CgState,
// plus the Start/End ids and the shared, read-only topology it was
// built from.
type T struct {
	Start int
	End   int
	Graph *cgraph.Graph
	States map[int]CgState
	Topo   *topo.Topology
}

// State returns the CgState for id.
func (t *T) State(id int) CgState { return t.States[id] }

// Clone returns a structural copy: the same CgState values keyed by
// the same ids, and an independent cgraph.Graph with the same edge
// set.
func (t *T) Clone() *T {
	states := make(map[int]CgState, len(t.States))
	for id, s := range t.States {
		states[id] = s
	}

	return &T{
		Start:  t.Start,
		End:    t.End,
		Graph:  t.Graph.Clone(),
		States: states,
		Topo:   t.Topo,
	}
}

// CloneReverse returns a copy whose graph has every edge reversed:
// edge (u,v) exists in the copy iff (v,u) exists in t.
func (t *T) CloneReverse() *T {
	states := make(map[int]CgState, len(t.States))
	for id, s := range t.States {
		states[id] = s
	}

	return &T{
		Start:  t.Start,
		End:    t.End,
		Graph:  t.Graph.Reverse(),
		States: states,
		Topo:   t.Topo,
	}
}

// IsEmpty reports whether the PCG has no path from Start to End. An
// unreachable End is not an error on its own; callers decide whether
// that makes the PCG unusable for their purpose.
func (t *T) IsEmpty() bool {
	_, ok := t.Graph.ShortestPath(t.Start, t.End)

	return !ok
}

// Shadows reports whether x and y are distinct states sharing a
// topology location (GLOSSARY "Shadow").
func Shadows(x, y CgState) bool {
	return x.Id != y.Id && x.Node.Loc == y.Node.Loc
}

// IsRepeatedOut reports whether v is an Unknown-typed node with a
// self-loop (GLOSSARY "Repeated-out").
func (t *T) IsRepeatedOut(id int) bool {
	s, ok := t.States[id]
	if !ok || s.Node.Typ != topo.Unknown {
		return false
	}

	return t.Graph.HasEdge(id, id)
}

// Prune drops every States entry whose id is no longer present in
// Graph — callers that remove vertices via Graph.RemoveVerticesWhere
// must call this afterward to keep States consistent with Graph.
func (t *T) Prune() {
	for id := range t.States {
		if !t.Graph.HasVertex(id) {
			delete(t.States, id)
		}
	}
}

// Preferences returns the union of Accept across every state — every
// preference level satisfied anywhere in the PCG.
func (t *T) Preferences() bitset.BitSet31 {
	acc := bitset.Empty()
	for _, s := range t.States {
		acc = acc.Union(s.Accept)
	}

	return acc
}

// AcceptingLocations returns the set of locations with at least one
// accepting state.
func (t *T) AcceptingLocations() map[string]struct{} {
	out := make(map[string]struct{})
	for _, s := range t.States {
		if !s.Accept.IsEmpty() {
			out[s.Node.Loc] = struct{}{}
		}
	}

	return out
}
