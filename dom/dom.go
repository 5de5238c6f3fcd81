// Package dom computes dominator trees over a pcg.T using the
// iterative algorithm of Cooper, Harvey & Kennedy ("A Simple, Fast
// Dominance Algorithm"), in either edge direction (forward from
// Start, backward from End) — both directions are needed to drive
// the minimizer's dominance-based reductions.
//
// A recursive, Lengauer-Tarjan-style dominator computation would
// target graphs far larger than a PCG ever is and adds a parallel
// work-stealing layer this package has no use for; the iterative
// fixpoint algorithm below is the simpler, equally-correct choice for
// PCG-sized graphs.
package dom

import (
	"github.com/katalvlaran/pcg/pcg"
	"github.com/katalvlaran/pcg/reach"
)

// Tree is a dominator tree: IDom maps each reachable non-root vertex
// to its immediate dominator. The root itself has no entry.
type Tree struct {
	root int
	idom map[int]int
	// rpo is the reverse postorder the idom computation runs in, and
	// rpoPos each vertex's index in it.
	rpo    []int
	rpoPos map[int]int
}

// Build computes the dominator tree of the subgraph reachable from
// root by following edges in dir.
func Build(t *pcg.T, root int, dir reach.Direction) *Tree {
	postorder := reach.PostOrder(t, root, dir)
	rpo := make([]int, len(postorder))
	rpoPos := make(map[int]int, len(postorder))
	for i, id := range postorder {
		rpo[len(postorder)-1-i] = id
		rpoPos[id] = len(postorder) - 1 - i
	}

	predecessors := func(id int) []int {
		if dir == reach.Down {
			return t.Graph.InNeighbors(id)
		}

		return t.Graph.OutNeighbors(id)
	}

	idom := map[int]int{root: root}
	changed := true
	for changed {
		changed = false
		// Skip index 0 (root) — process in reverse-postorder so a
		// vertex's dominator candidates have already been processed
		// this pass (Cooper/Harvey/Kennedy §3).
		for i := 1; i < len(rpo); i++ {
			v := rpo[i]
			var newIdom int
			has := false
			for _, p := range predecessors(v) {
				if _, ok := idom[p]; !ok {
					continue
				}
				if !has {
					newIdom = p
					has = true

					continue
				}
				newIdom = intersect(idom, rpoPos, newIdom, p)
			}
			if !has {
				continue
			}
			if cur, ok := idom[v]; !ok || cur != newIdom {
				idom[v] = newIdom
				changed = true
			}
		}
	}
	delete(idom, root)

	return &Tree{root: root, idom: idom, rpo: rpo, rpoPos: rpoPos}
}

// intersect walks both candidate chains up to their common ancestor,
// using reverse-postorder position as the "finger" comparison
// Cooper/Harvey/Kennedy's algorithm relies on.
func intersect(idom map[int]int, rpoPos map[int]int, a, b int) int {
	for a != b {
		for rpoPos[a] > rpoPos[b] {
			a = idom[a]
		}
		for rpoPos[b] > rpoPos[a] {
			b = idom[b]
		}
	}

	return a
}

// IDom returns the immediate dominator of v, and whether v has one
// (false for the root and for unreachable vertices).
func (dt *Tree) IDom(v int) (int, bool) {
	id, ok := dt.idom[v]

	return id, ok
}

// Dominates reports whether d dominates v: every path from the root
// to v passes through d. A vertex dominates itself.
func (dt *Tree) Dominates(d, v int) bool {
	if d == v {
		return true
	}
	for cur, ok := dt.IDom(v); ok; cur, ok = dt.IDom(cur) {
		if cur == d {
			return true
		}
	}

	return false
}

// DominatedByMatching reports whether some proper ancestor of v in
// the dominator tree (strictly between v and the root, inclusive of
// the root) satisfies pred, by climbing idom[·] one step at a time.
func (dt *Tree) DominatedByMatching(v int, pred func(id int) bool) bool {
	for cur, ok := dt.IDom(v); ok; cur, ok = dt.IDom(cur) {
		if pred(cur) {
			return true
		}
	}
	if pred(dt.root) {
		return true
	}

	return false
}
