// Package topotest builds small fixture topologies for tests, the
// way builder.Path(n) builds a fixture core.Graph in the teacher
// repo: deterministic vertex order, deterministic edge emission.
package topotest

import "github.com/katalvlaran/pcg/topo"

// Line builds a path topology loc[0]—loc[1]—...—loc[n-1], all Inside
// unless named in originating, in which case InsideOriginates.
//
// Requires at least two locations.
func Line(originating map[string]bool, locs ...string) *topo.Topology {
	if len(locs) < 2 {
		panic("topotest: Line requires at least two locations")
	}

	t := topo.New()
	for _, loc := range locs {
		typ := topo.Inside
		if originating[loc] {
			typ = topo.InsideOriginates
		}
		t.AddNode(topo.Node{Loc: loc, Typ: typ})
	}
	for i := 1; i < len(locs); i++ {
		t.AddEdge(locs[i-1], locs[i])
	}

	return t
}

// Star builds a hub-and-spoke topology: hub connected to every spoke,
// spokes not connected to each other.
func Star(originating map[string]bool, hub string, spokes ...string) *topo.Topology {
	t := topo.New()
	hubTyp := topo.Inside
	if originating[hub] {
		hubTyp = topo.InsideOriginates
	}
	t.AddNode(topo.Node{Loc: hub, Typ: hubTyp})
	for _, s := range spokes {
		typ := topo.Inside
		if originating[s] {
			typ = topo.InsideOriginates
		}
		t.AddNode(topo.Node{Loc: s, Typ: typ})
		t.AddEdge(hub, s)
	}

	return t
}
