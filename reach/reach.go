// Package reach implements DFS reachability and postorder traversal
// over a pcg.T, in either edge direction. It is the traversal
// primitive the dominator and minimizer packages build on: a
// stack-based traversal with a visited set and deterministic
// neighbor order.
package reach

import (
	"sort"

	"github.com/katalvlaran/pcg/bitset"
	"github.com/katalvlaran/pcg/pcg"
)

// Direction selects which edges a traversal follows.
type Direction int

const (
	// Down follows outgoing edges.
	Down Direction = iota
	// Up follows incoming edges.
	Up
)

func neighbors(t *pcg.T, id int, dir Direction) []int {
	if dir == Down {
		return t.Graph.OutNeighbors(id)
	}

	return t.Graph.InNeighbors(id)
}

// DFS returns every state reachable from src by following edges in
// dir, including src itself.
func DFS(t *pcg.T, src int, dir Direction) map[int]struct{} {
	visited := make(map[int]struct{})
	stack := []int{src}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := visited[cur]; ok {
			continue
		}
		visited[cur] = struct{}{}
		for _, n := range neighbors(t, cur, dir) {
			if _, ok := visited[n]; !ok {
				stack = append(stack, n)
			}
		}
	}

	return visited
}

// PostOrder returns the states reachable from src in dir as a
// depth-first postorder: a state appears after all of its children in
// the depth-first tree. On a cycle the state the traversal entered it
// through comes last, so only an edge that closes a cycle back to such
// an ancestor points to a later position. Reversed, this is the
// order the dominator package processes vertices in.
func PostOrder(t *pcg.T, src int, dir Direction) []int {
	visited := make(map[int]struct{})
	var order []int

	var visit func(id int)
	visit = func(id int) {
		if _, ok := visited[id]; ok {
			return
		}
		visited[id] = struct{}{}
		for _, n := range neighbors(t, id, dir) {
			visit(n)
		}
		order = append(order, id)
	}
	visit(src)

	return order
}

// SrcAccepting returns the union of Accept across every state
// reachable from src in dir.
func SrcAccepting(t *pcg.T, src int, dir Direction) bitset.BitSet31 {
	acc := bitset.Empty()
	for id := range DFS(t, src, dir) {
		acc = acc.Union(t.State(id).Accept)
	}

	return acc
}

// SortedIDs is a small determinism helper: several callers need a
// reachable-set turned into a stable slice for iteration.
func SortedIDs(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}
