// Package consistency infers, for every internal topology location, a
// total preference order over the PCG states at that location via a
// bisimulation-style "protect" relation. It only reads
// its input PCG; it never mutates it.
package consistency

import (
	"fmt"

	"github.com/katalvlaran/pcg/dom"
	"github.com/katalvlaran/pcg/pcg"
)

// Kind discriminates the two ways ordering can fail.
type Kind int

const (
	// KindInconsistent marks an incomparable pair at a shared location:
	// neither protects the other.
	KindInconsistent Kind = iota
	// KindSimplePath marks a mustPrefer pair the simulation failed to
	// confirm.
	KindSimplePath
)

func (k Kind) String() string {
	if k == KindSimplePath {
		return "SimplePath"
	}

	return "Inconsistent"
}

// ConflictError is the witness returned when no consistent ordering
// exists: the pair of states that could not be ordered.
type ConflictError struct {
	Kind Kind
	X, Y pcg.CgState
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("consistency: %s(%d,%d) at location %q", e.Kind, e.X.Id, e.Y.Id, e.X.Loc())
}

type pairKey struct{ a, b int }

// protect decides whether x protects y: x's forward behavior
// dominates y's at every step, discovered by BFS over state pairs.
// cache is shared across the whole FindOrderingConservative call and
// holds only positive results — a negative outcome for one initial
// pair doesn't generalize to a different traversal context, so only
// successes are memoized.
func protect(cg *pcg.T, fwd *dom.Tree, x, y pcg.CgState, cache map[pairKey]bool) (bool, pcg.CgState, pcg.CgState) {
	key := pairKey{x.Id, y.Id}
	if cache[key] {
		return true, pcg.CgState{}, pcg.CgState{}
	}

	visited := make(map[pairKey]bool)
	var discovered []pairKey
	queue := []pairKey{key}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if visited[cur] {
			continue
		}
		visited[cur] = true

		a := cg.State(cur.a)
		b := cg.State(cur.b)

		minA, okA := a.Accept.Min()
		minB, okB := b.Accept.Min()
		if okA != okB {
			return false, a, b
		}
		if okA && minA > minB {
			return false, a, b
		}

		discovered = append(discovered, cur)

		for _, bID := range cg.Graph.OutNeighbors(b.Id) {
			bp := cg.State(bID)

			matched := false
			for _, aID := range cg.Graph.OutNeighbors(a.Id) {
				ap := cg.State(aID)
				if ap.Loc() == bp.Loc() {
					matched = true
					next := pairKey{ap.Id, bp.Id}
					if !visited[next] {
						queue = append(queue, next)
					}

					break
				}
			}
			if matched {
				continue
			}

			domID, ok := forwardDominatorAtLoc(cg, fwd, a.Id, bp.Loc())
			if !ok {
				return false, a, bp
			}
			next := pairKey{domID, bp.Id}
			if !visited[next] {
				queue = append(queue, next)
			}
		}
	}

	for _, p := range discovered {
		cache[p] = true
	}

	return true, pcg.CgState{}, pcg.CgState{}
}

// forwardDominatorAtLoc climbs the forward dominator chain of v
// (proper ancestors only, via idom) looking for the first one whose
// location is loc.
func forwardDominatorAtLoc(cg *pcg.T, fwd *dom.Tree, v int, loc string) (int, bool) {
	for cur, ok := fwd.IDom(v); ok; cur, ok = fwd.IDom(cur) {
		if cg.State(cur).Loc() == loc {
			return cur, true
		}
	}

	return 0, false
}
